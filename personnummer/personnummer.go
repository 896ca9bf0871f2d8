// Package personnummer validates and masks Swedish personal identity
// numbers (YYMMDD±NNNN or YYYYMMDD±NNNN), including coordination
// numbers. All operations are pure and safe for concurrent use.
package personnummer

import (
	"errors"
	"fmt"
	"time"

	"github.com/fossbarrow/global-ssn-validator/timeutil"
)

// Validation outcomes reported to an attached Metrics hook.
const (
	ResultValid         = "valid"
	ResultFormatError   = "format_error"
	ResultDateError     = "date_error"
	ResultChecksumError = "checksum_error"
)

// Logger is an optional diagnostic hook. It never affects results.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugf(format string, args ...any)
}

// Metrics counts validation outcomes (one of the Result constants).
type Metrics interface {
	ObserveValidation(result string)
}

// Scheme validates and masks identity numbers. The zero-value options
// give a system clock, no logging and no metrics.
type Scheme struct {
	clock   timeutil.Clock
	log     Logger
	metrics Metrics
}

type Option func(*Scheme)

// WithClock overrides the time source used for century inference and
// the future-date check. Tests freeze it via timeutil.FrozenClock.
func WithClock(c timeutil.Clock) Option { return func(s *Scheme) { s.clock = c } }

// WithLogger attaches a diagnostic logger.
func WithLogger(l Logger) Option { return func(s *Scheme) { s.log = l } }

// WithMetrics attaches a validation outcome counter.
func WithMetrics(m Metrics) Option { return func(s *Scheme) { s.metrics = m } }

func New(opts ...Option) *Scheme {
	s := &Scheme{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scheme) now() time.Time {
	if s.clock != nil {
		return s.clock.Now().UTC()
	}
	return timeutil.Now()
}

// Check reports why an identity number is invalid, or nil. Phases run
// cheapest first and short-circuit: shape, then birth date, then check
// digit. The returned error wraps ErrFormat, ErrDate or ErrChecksum.
func (s *Scheme) Check(id string) error {
	err := s.check(id)
	s.observe(err)
	if err != nil && s.log != nil {
		s.log.Debugf("personnummer: %v", err)
	}
	return err
}

func (s *Scheme) check(id string) error {
	p, ok := split(id)
	if !ok {
		return fmt.Errorf("%w: %q does not match YYMMDD±NNNN or YYYYMMDD±NNNN", ErrFormat, id)
	}

	now := s.now()
	if _, err := p.birthDate(now); err != nil {
		return err
	}

	// The check digit covers the digits as written, coordination
	// offset included, century excluded.
	want, err := checkDigit(p.shortDate() + p.serial)
	if err != nil {
		return err
	}
	if got := int(p.check - '0'); got != want {
		return fmt.Errorf("%w: got %d, want %d", ErrChecksum, got, want)
	}
	return nil
}

// Valid reports whether id is a structurally valid identity number.
// It never panics or errors on malformed input.
func (s *Scheme) Valid(id string) bool {
	return s.Check(id) == nil
}

const maskByte = 'X'

// Mask renders a validated identity number with every digit replaced
// by 'X' except the day of month and the gender-indicating serial
// digit. The separator is kept verbatim and the output has the same
// length as the input. Invalid input fails with the underlying
// validation error; no partial mask is ever returned.
func (s *Scheme) Mask(id string) (string, error) {
	if err := s.Check(id); err != nil {
		return "", fmt.Errorf("mask identity number: %w", err)
	}

	// Validated shapes are ASCII with the separator five bytes from
	// the end, preceded by the two day-of-month digits. The gender
	// digit is the next-to-last byte.
	b := []byte(id)
	sep := len(b) - 5
	for i := range b {
		switch i {
		case sep, sep - 2, sep - 1, len(b) - 2:
		default:
			b[i] = maskByte
		}
	}
	return string(b), nil
}

func (s *Scheme) observe(err error) {
	if s.metrics == nil {
		return
	}

	switch {
	case err == nil:
		s.metrics.ObserveValidation(ResultValid)
	case errors.Is(err, ErrDate):
		s.metrics.ObserveValidation(ResultDateError)
	case errors.Is(err, ErrChecksum):
		s.metrics.ObserveValidation(ResultChecksumError)
	default:
		s.metrics.ObserveValidation(ResultFormatError)
	}
}

// ===== Package-level convenience over a default scheme =====

var defaultScheme = New()

// Valid reports whether id is a valid identity number using the
// default clock.
func Valid(id string) bool { return defaultScheme.Valid(id) }

// Check explains why id is invalid, or returns nil.
func Check(id string) error { return defaultScheme.Check(id) }

// Mask masks a valid identity number; see Scheme.Mask.
func Mask(id string) (string, error) { return defaultScheme.Mask(id) }
