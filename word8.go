//go:build abits_digit8

package abits

type word = uint8

const wordBits = 8
