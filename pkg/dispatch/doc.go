// Package dispatch sends a fixed, ordered batch of emails through a mailer.Sender.
//
// Records are sent strictly one at a time in list order with a fixed pause
// (DefaultDelay) between consecutive sends and none after the last. Each
// outcome produces exactly one log entry: "email sent" with the record name
// and the provider response, or "email send failed" with the record name and
// the error text. Failures never stop the run and are never retried, and Run
// reports nothing to its caller; the log stream is the only record of what
// happened.
//
//	d := dispatch.New(sender,
//		dispatch.WithLogger(log),
//		dispatch.WithSenderIdentity("Gopiechand <onboarding@resend.dev>"),
//	)
//	d.Run(ctx, records)
//
// Running the same records twice sends them twice.
package dispatch
