// Package mailer defines the provider-neutral email sending contract.
//
// A Sender delivers a fully-prepared Email and returns the provider's Receipt.
// Providers live in subpackages; the Resend implementation is in
// github.com/dmitrymomot/outreach/pkg/mailer/resend.
//
// # Usage
//
//	sender := resend.New(resend.Config{
//		APIKey:      os.Getenv("RESEND_API_KEY"),
//		SenderEmail: "onboarding@resend.dev",
//		SenderName:  "Team",
//	})
//
//	receipt, err := sender.Send(ctx, &mailer.Email{
//		To:      []string{"alice@example.com"},
//		Subject: "Hello",
//		Text:    "Hi Alice",
//	})
//
// Use Recipient to format "Name <email>" addresses and SimpleTags for
// presence-only tags. Validate reports ErrNoRecipient, ErrNoSubject or
// ErrNoContent for incomplete messages.
package mailer
