//go:build abits_digit32

package abits

type word = uint32

const wordBits = 32
