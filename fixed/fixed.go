// Package fixed provides a fixed-point wrapper around abits.Bits: a
// thin layer that tracks a policy — here, sign and fractional-point
// position — around a lower-level numeric value and exposes operator
// methods that respect it.
package fixed

import (
	"math"

	"github.com/dbits/abits"
)

// MaxUFP is the largest fractional-point position this package
// supports. It exists because a point position near bw leaves too few
// integer bits for float conversion to stay within float64's 53-bit
// mantissa without a warning sign in the API, so values beyond it are
// rejected at construction rather than silently produced and later
// found to convert incorrectly.
const MaxUFP = 4096

// Fixed wraps an abits.Bits with a fractional-point position and a
// signedness flag, giving the underlying bit pattern a fixed-point
// interpretation: value = bits / 2**Frac, read as two's complement when
// Signed is true.
type Fixed struct {
	Bits   abits.Bits
	Frac   uint
	Signed bool
}

// New wraps x as a fixed-point value with frac fractional bits. frac
// must not exceed MaxUFP or x's own width.
func New(x abits.Bits, frac uint, signed bool) (Fixed, error) {
	if frac > MaxUFP {
		return Fixed{}, abits.ErrNonRepresentable
	}
	if frac > x.Width() {
		return Fixed{}, abits.ErrNonRepresentable
	}
	return Fixed{Bits: x, Frac: frac, Signed: signed}, nil
}

// Float64 converts f to the nearest float64. It is intended for
// diagnostics and tests, not for paths where every bit of precision
// matters — those should operate on f.Bits directly.
func (f Fixed) Float64() (float64, error) {
	radix, err := bitsToFloat(f.Bits, f.Signed)
	if err != nil {
		return 0, err
	}
	return radix / math.Pow(2, float64(f.Frac)), nil
}

func bitsToFloat(x abits.Bits, signed bool) (float64, error) {
	neg := false
	if signed {
		if s, err := x.Get(x.Width() - 1); err == nil && s {
			neg = true
		}
	}
	var v float64
	bw := x.Width()
	for i := uint(0); i < bw; i++ {
		b, err := x.Get(i)
		if err != nil {
			return 0, err
		}
		if b {
			v += math.Pow(2, float64(i))
		}
	}
	if neg {
		v -= math.Pow(2, float64(bw))
	}
	return v, nil
}

// Add sets f's bits to f+g mod 2**bw, ignoring overflow; callers that
// need overflow detection should call f.Bits.CinSum directly instead.
// f and g must share both width and fractional position.
func (f Fixed) Add(g Fixed) error {
	if f.Frac != g.Frac {
		return abits.ErrWidthMismatch
	}
	return f.Bits.Add(g.Bits)
}

// Sub sets f's bits to f-g mod 2**bw. f and g must share both width and
// fractional position.
func (f Fixed) Sub(g Fixed) error {
	if f.Frac != g.Frac {
		return abits.ErrWidthMismatch
	}
	return f.Bits.Sub(g.Bits)
}

// Mul sets f to a*b, rescaled back to f's fractional position. The
// exact product needs a.Bits.Width()+b.Bits.Width() bits, wider than
// any of f/a/b individually, so Mul computes it in scratch storage via
// ArbUMulAdd/ArbIMulAdd (which, unlike Mul, accepts a receiver whose
// width differs from its operands') before shifting to f's Frac and
// narrowing into f.Bits.
func (f Fixed) Mul(a, b Fixed) error {
	wide := a.Bits.Width() + b.Bits.Width()
	s, err := abits.NewExternal(wide)
	if err != nil {
		return err
	}
	scratch := s.View()
	if f.Signed {
		if err := scratch.ArbIMulAdd(a.Bits, b.Bits); err != nil {
			return err
		}
	} else if err := scratch.ArbUMulAdd(a.Bits, b.Bits); err != nil {
		return err
	}
	total := a.Frac + b.Frac
	if total > f.Frac {
		if err := scratch.Lshr(total - f.Frac); err != nil {
			return err
		}
	} else if total < f.Frac {
		if err := scratch.Shl(f.Frac - total); err != nil {
			return err
		}
	}
	abits.ZeroResize(f.Bits, scratch)
	return nil
}
