package personnummer

import "fmt"

// checkDigit computes the mod-10 check digit over exactly nine digits:
// two-digit year, month, day and the three-digit serial. Century digits
// never participate. Digits at even positions (0-indexed from the left)
// are doubled and products >= 10 are reduced by summing their decimal
// digits.
//
// Callers must pass digits only; anything else is a contract violation
// reported as ErrFormat.
func checkDigit(digits string) (int, error) {
	if len(digits) != checksumInputLen {
		return 0, fmt.Errorf("%w: check digit input must be %d digits, got %d",
			ErrFormat, checksumInputLen, len(digits))
	}

	total := 0
	for i := 0; i < checksumInputLen; i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: non-digit %q in check digit input", ErrFormat, c)
		}

		n := int(c - '0')
		if i%2 == 0 {
			n *= 2
			if n >= 10 {
				n -= 9
			}
		}
		total += n
	}

	// A total ending in 0 yields check digit 0, not 10.
	return (10 - total%10) % 10, nil
}

const checksumInputLen = 9
