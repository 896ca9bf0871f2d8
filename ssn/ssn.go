// Package ssn selects a national identity number scheme by ISO 3166-1
// alpha-2 country code.
package ssn

import (
	"errors"
	"fmt"

	"github.com/fossbarrow/global-ssn-validator/personnummer"
)

// ErrUnsupportedCountry — no scheme is registered for the country code.
var ErrUnsupportedCountry = errors.New("unsupported country code")

// Scheme validates and masks one country's identity number format.
type Scheme interface {
	IsValid(id string) bool
	Mask(id string) (string, error)
}

// Supported country codes.
const (
	Sweden = "SE"
)

// ForCountry constructs the scheme for an ISO2 country code. The code
// is normalized (trimmed, uppercased) before lookup; construction is
// explicit per country, there is no mutable dispatch table.
func ForCountry(code string, opts ...personnummer.Option) (Scheme, error) {
	iso2, ok := NormalizeISO2(code)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an ISO2 code", ErrUnsupportedCountry, code)
	}

	switch iso2 {
	case Sweden:
		return swedishScheme{s: personnummer.New(opts...)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCountry, iso2)
	}
}

// swedishScheme adapts personnummer.Scheme to the Scheme interface.
type swedishScheme struct {
	s *personnummer.Scheme
}

func (w swedishScheme) IsValid(id string) bool {
	return w.s.Valid(id)
}

func (w swedishScheme) Mask(id string) (string, error) {
	return w.s.Mask(id)
}
