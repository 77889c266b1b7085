package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers an email message and returns the provider's receipt.
	// The Email must have To, Subject and a body already set.
	Send(ctx context.Context, email *Email) (*Receipt, error)
}

// Validate checks that the email carries everything a provider needs.
func Validate(email *Email) error {
	if email == nil || len(email.To) == 0 || email.To[0] == "" {
		return ErrNoRecipient
	}
	if email.Subject == "" {
		return ErrNoSubject
	}
	if email.Text == "" && email.HTML == "" {
		return ErrNoContent
	}
	return nil
}
