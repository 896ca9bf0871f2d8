package personnummer

import (
	"errors"
	"testing"
	"time"

	"github.com/fossbarrow/global-ssn-validator/timeutil"
)

func frozenJune2026(t *testing.T) {
	t.Helper()
	restore := timeutil.WithDefault(timeutil.NewFrozenClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)))
	t.Cleanup(restore)
}

func TestNormalize(t *testing.T) {
	frozenJune2026(t)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "short form previous century", in: "811218-9876", want: "198112189876"},
		{name: "short form current century", in: "120101-0017", want: "201201010017"},
		{name: "short form not yet born this century", in: "270101-0018", want: "192701010018"},
		{name: "plus separator over one hundred", in: "430416+1476", want: "184304161476"},
		{name: "long form passes through", in: "19811218-9876", want: "198112189876"},
		{name: "long form with plus", in: "18430416+1476", want: "184304161476"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.in)
			if err != nil {
				t.Fatalf("Normalize(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_RejectsBadShapes(t *testing.T) {
	frozenJune2026(t)

	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "no separator", in: "8112189876"},
		{name: "space separator", in: "811218 9876"},
		{name: "misplaced separator", in: "81121-89876"},
		{name: "trailing digit", in: "811218-98761"},
		{name: "short serial", in: "811218-987"},
		{name: "letters", in: "81121a-9876"},
		{name: "seven digit date", in: "8112181-9876"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Normalize(tt.in); !errors.Is(err, ErrFormat) {
				t.Fatalf("Normalize(%q) error = %v, want ErrFormat", tt.in, err)
			}
		})
	}
}

func TestFullYear(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		yy   int
		sep  byte
		want int
	}{
		{name: "dash past year", yy: 81, sep: '-', want: 1981},
		{name: "dash current year", yy: 26, sep: '-', want: 2026},
		{name: "dash next year wraps back", yy: 27, sep: '-', want: 1927},
		{name: "dash year zero", yy: 0, sep: '-', want: 2000},
		{name: "plus shifts a century", yy: 43, sep: '+', want: 1843},
		{name: "plus exactly one hundred", yy: 26, sep: '+', want: 1926},
		{name: "plus wraps back", yy: 27, sep: '+', want: 1827},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fullYear(tt.yy, tt.sep, now); got != tt.want {
				t.Fatalf("fullYear(%d, %q) = %d, want %d", tt.yy, tt.sep, got, tt.want)
			}
		})
	}
}
