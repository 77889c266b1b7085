package dispatch

// Record is one statically defined email to send.
type Record struct {
	Email   string `yaml:"email"`
	Name    string `yaml:"name"`
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
}
