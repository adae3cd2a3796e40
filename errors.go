package abits

import (
	"errors"
	"fmt"

	"github.com/calebcase/oops"
)

// Sentinel error variants. Public operations return one of these,
// optionally wrapped with context via fmt.Errorf("%w: ...", ...);
// nothing is caught internally and no panic path exists in the default
// build.
var (
	ErrWidthMismatch    = errors.New("abits: width mismatch")
	ErrNonRepresentable = errors.New("abits: value not representable")
	ErrOutOfBounds      = errors.New("abits: bit index out of bounds")
	ErrOverlap          = errors.New("abits: overlapping Bits arguments")
	ErrDivision         = errors.New("abits: division by zero")
	ErrParseInvalidChar = errors.New("abits: invalid character in mantissa")
	ErrParseOverflow    = errors.New("abits: value overflows requested width")
	ErrAllocation       = errors.New("abits: allocation failed")
)

func widthMismatch(want, got uint) error {
	return fmt.Errorf("%w: want bw=%d, got bw=%d", ErrWidthMismatch, want, got)
}

func outOfBounds(i, bw uint) error {
	return fmt.Errorf("%w: index %d, bw=%d", ErrOutOfBounds, i, bw)
}

func nonRepresentable(reason string) error {
	return fmt.Errorf("%w: %s", ErrNonRepresentable, reason)
}

func overlap(detail string) error {
	return fmt.Errorf("%w: %s", ErrOverlap, detail)
}

// allocationFailed wraps ErrAllocation with oops.Trace, the same idiom
// calebcase/bsv's decoder uses to attach a stack trace to a sentinel
// without losing errors.Is compatibility (control/decoder.go).
func allocationFailed(reason any) error {
	return oops.Trace(fmt.Errorf("%w: %v", ErrAllocation, reason))
}
