package personnummer

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/fossbarrow/global-ssn-validator/timeutil"
)

// Accepted shapes: YYMMDD±NNNC and YYYYMMDD±NNNC. The separator is
// required; '-' marks a subject under 100 years old, '+' one of 100 or
// older.
var shapeRe = regexp.MustCompile(`^(\d{6}|\d{8})([-+])(\d{3})(\d)$`)

// parts is a structurally matched identity number, digits as written.
type parts struct {
	date   string // 6 or 8 digits: [CC]YYMMDD
	sep    byte   // '-' or '+'
	serial string // 3 digits
	check  byte   // '0'..'9'
}

func split(id string) (parts, bool) {
	m := shapeRe.FindStringSubmatch(id)
	if m == nil {
		return parts{}, false
	}
	return parts{date: m[1], sep: m[2][0], serial: m[3], check: m[4][0]}, true
}

// longForm reports whether the date part carries explicit century digits.
func (p parts) longForm() bool { return len(p.date) == 8 }

// shortDate returns the six YYMMDD digits as written in the input.
func (p parts) shortDate() string { return p.date[len(p.date)-6:] }

// fullYear resolves a two-digit year against now. The base year is the
// current year for '-' and the current year minus 100 for '+'; the
// result is the largest year with the given suffix not exceeding the
// base.
func fullYear(yy int, sep byte, now time.Time) int {
	base := now.Year()
	if sep == '+' {
		base -= 100
	}

	y := base - base%100 + yy
	if y > base {
		y -= 100
	}
	return y
}

// birthYear resolves the four-digit birth year, inferring the century
// for short forms.
func (p parts) birthYear(now time.Time) int {
	if p.longForm() {
		y, _ := strconv.Atoi(p.date[:4])
		return y
	}
	yy, _ := strconv.Atoi(p.date[:2])
	return fullYear(yy, p.sep, now)
}

// birthDate reconstructs the embedded calendar date. Coordination
// numbers carry the day of month offset by 60; the offset is removed
// before the calendar check.
func (p parts) birthDate(now time.Time) (time.Time, error) {
	n := len(p.date)
	year := p.birthYear(now)
	month, _ := strconv.Atoi(p.date[n-4 : n-2])
	day, _ := strconv.Atoi(p.date[n-2:])

	if day >= coordinationOffset+1 && day <= coordinationOffset+31 {
		day -= coordinationOffset
	}

	bt := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if bt.Year() != year || bt.Month() != time.Month(month) || bt.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d is not a calendar date",
			ErrDate, year, month, day)
	}
	if timeutil.IsFutureDate(now, bt) {
		return time.Time{}, fmt.Errorf("%w: birth date %s is in the future",
			ErrDate, bt.Format(time.DateOnly))
	}
	return bt, nil
}

const coordinationOffset = 60

// Normalize strips the separator and returns the twelve-digit
// CCYYMMDDNNNC form, inferring century digits for ten-digit inputs
// against the default clock. It fails with ErrFormat when the input
// does not match an accepted shape.
func Normalize(id string) (string, error) {
	return normalize(id, timeutil.Now())
}

func normalize(id string, now time.Time) (string, error) {
	p, ok := split(id)
	if !ok {
		return "", fmt.Errorf("%w: %q does not match YYMMDD±NNNN or YYYYMMDD±NNNN", ErrFormat, id)
	}

	date := p.date
	if !p.longForm() {
		date = fmt.Sprintf("%02d", p.birthYear(now)/100) + date
	}
	return date + p.serial + string(p.check), nil
}
