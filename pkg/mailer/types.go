package mailer

import "fmt"

// Tags represents email tags that can be either presence-only
// (using struct{}{}) or key-value pairs (using string values).
// Resend expects name-value pairs, so presence-only tags become name="true".
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Tags    Tags     // Provider-specific tags
	Subject string   // Email subject
	Text    string   // Plain text body
	HTML    string   // Optional HTML body
	From    string   // Override default sender identity
	To      []string // Recipients (at least one required)
}

// Receipt is the response payload returned by a provider for an accepted email.
// It is opaque to callers and meant to be logged as-is.
type Receipt struct {
	ID string `json:"id"`
}
