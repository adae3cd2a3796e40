//go:build abits_digit16

package abits

type word = uint16

const wordBits = 16
