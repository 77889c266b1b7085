// Package contacts holds the built-in batch of outreach records.
package contacts

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/outreach/pkg/dispatch"
)

//go:embed contacts.yaml
var builtin []byte

// ErrInvalidRecord indicates a record is missing a required field.
var ErrInvalidRecord = errors.New("invalid contact record")

// Default returns the built-in records in send order.
func Default() ([]dispatch.Record, error) {
	return Parse(builtin)
}

// Parse decodes a YAML list of records. Every record needs an email, a subject and a body.
func Parse(data []byte) ([]dispatch.Record, error) {
	var records []dispatch.Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("contacts: decode: %w", err)
	}

	for i, rec := range records {
		switch {
		case rec.Email == "":
			return nil, fmt.Errorf("%w: record %d has no email", ErrInvalidRecord, i)
		case rec.Subject == "":
			return nil, fmt.Errorf("%w: record %d has no subject", ErrInvalidRecord, i)
		case rec.Body == "":
			return nil, fmt.Errorf("%w: record %d has no body", ErrInvalidRecord, i)
		}
	}

	return records, nil
}
