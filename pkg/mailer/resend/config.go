package resend

import "github.com/dmitrymomot/outreach/pkg/mailer"

// Config holds Resend email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey      string `env:"RESEND_API_KEY,required,notEmpty"`
	SenderEmail string `env:"RESEND_FROM_EMAIL" envDefault:"onboarding@resend.dev"`
	SenderName  string `env:"RESEND_FROM_NAME" envDefault:"Gopiechand"`
}

// Identity returns the configured sender in "Name <email>" form.
func (c Config) Identity() string {
	return mailer.Recipient(c.SenderName, c.SenderEmail)
}
