//go:build !abits_digit8 && !abits_digit16 && !abits_digit32

package abits

// word is the digit type backing every Bits value in this build. The
// default build uses a 64-bit digit; build with -tags abits_digit8,
// abits_digit16 or abits_digit32 to narrow it. 128-bit digits are not
// offered: Go has no native 128-bit integer and no math/bits widening
// primitive for one (see DESIGN.md).
type word = uint64

// wordBits is the number of bits in a single digit.
const wordBits = 64
