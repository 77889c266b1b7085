package resend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/outreach/pkg/mailer"
)

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client     *resend.Client
	httpClient *http.Client
	baseURL    *url.URL
	config     Config
}

// New creates a new Resend sender.
func New(cfg Config, opts ...Option) *Sender {
	s := &Sender{config: cfg}
	for _, opt := range opts {
		opt(s)
	}

	if s.httpClient != nil {
		s.client = resend.NewCustomClient(s.httpClient, cfg.APIKey)
	} else {
		s.client = resend.NewClient(cfg.APIKey)
	}
	if s.baseURL != nil {
		s.client.BaseURL = s.baseURL
	}

	return s
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) (*mailer.Receipt, error) {
	if err := mailer.Validate(email); err != nil {
		return nil, fmt.Errorf("%w: %w", mailer.ErrSendFailed, err)
	}

	from := email.From
	if from == "" {
		from = s.config.Identity()
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Text:    email.Text,
		Html:    email.HTML,
	}

	if len(email.Tags) > 0 {
		req.Tags = convertTags(email.Tags)
	}

	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: resend: %w", mailer.ErrSendFailed, err)
	}

	return &mailer.Receipt{ID: sent.Id}, nil
}

func convertTags(tags mailer.Tags) []resend.Tag {
	result := make([]resend.Tag, 0, len(tags))
	for name, value := range tags {
		result = append(result, resend.Tag{
			Name:  name,
			Value: tagValue(value),
		})
	}
	return result
}

// tagValue converts any value to a string for Resend's tag API.
// Presence-only tags (struct{}{}) become "true".
func tagValue(v any) string {
	switch val := v.(type) {
	case nil, struct{}:
		return "true"
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
