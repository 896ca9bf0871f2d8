package timeutil

import "time"

// DateOnly truncates t to its UTC calendar day at 00:00:00.
func DateOnly(t time.Time) time.Time {
	ut := t.UTC()
	y, m, d := ut.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsFutureDate reports whether at falls on a later UTC calendar day
// than now. Comparison is day-granular so the result does not flip
// within a day depending on wall-clock time.
// Zero values are treated as invalid and return false.
func IsFutureDate(now, at time.Time) bool {
	if now.IsZero() || at.IsZero() {
		return false
	}
	return DateOnly(at).After(DateOnly(now))
}
