package personnummer

import "errors"

var (
	// ErrFormat — input does not match an accepted identity number shape.
	ErrFormat = errors.New("invalid identity number format")
	// ErrDate — embedded birth date does not exist or lies in the future.
	ErrDate = errors.New("invalid identity number birth date")
	// ErrChecksum — trailing check digit does not match the recomputed one.
	ErrChecksum = errors.New("identity number checksum mismatch")
)
