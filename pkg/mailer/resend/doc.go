// Package resend implements mailer.Sender on top of the Resend HTTP API.
//
//	sender := resend.New(resend.Config{
//		APIKey:      os.Getenv("RESEND_API_KEY"),
//		SenderEmail: "onboarding@resend.dev",
//		SenderName:  "Gopiechand",
//	})
//
// Messages without an explicit From use the configured identity.
// The returned mailer.Receipt carries the Resend message id.
package resend
