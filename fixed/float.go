package fixed

import (
	"math"

	"github.com/dbits/abits"
)

// FromFloat64 sets x (unsigned, frac fractional bits) to the
// fixed-point representation of v, rounded to nearest with ties to
// even. It fails with abits.ErrNonRepresentable if v is negative, NaN,
// infinite, or does not fit x's width.
func FromFloat64(x abits.Bits, frac uint, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return abits.ErrNonRepresentable
	}
	scaled := math.RoundToEven(v * math.Pow(2, float64(frac)))
	if scaled >= math.Pow(2, float64(x.Width())) {
		return abits.ErrNonRepresentable
	}
	x.Zero()
	for i := uint(0); i < x.Width() && scaled >= 1; i++ {
		bit := math.Mod(math.Floor(scaled), 2)
		if bit != 0 {
			if err := x.Set(i, true); err != nil {
				return err
			}
		}
		scaled = math.Floor(scaled / 2)
	}
	return nil
}

// binary64Bits returns the IEEE-754 binary64 encoding of v as a 64-bit
// unsigned Bits view over dst, whose width must be exactly 64.
func binary64Bits(dst abits.Bits, v float64) error {
	if dst.Width() != 64 {
		return abits.ErrWidthMismatch
	}
	return abits.ParseBits(dst, uint64ToBinaryString(math.Float64bits(v)), 2)
}

// binary32Bits is binary64Bits's float32 counterpart; dst's width must
// be exactly 32.
func binary32Bits(dst abits.Bits, v float32) error {
	if dst.Width() != 32 {
		return abits.ErrWidthMismatch
	}
	return abits.ParseBits(dst, uint64ToBinaryString(uint64(math.Float32bits(v))), 2)
}

// uint64ToBinaryString renders v as an unpadded base-2 string; ParseBits
// zero-fills any remaining high bits of the destination, so no
// left-padding is needed here.
func uint64ToBinaryString(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [64]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v&1)
		v >>= 1
	}
	return string(buf[i:])
}

// ToBinary64 encodes v into dst (a 64-bit Bits) as IEEE-754 binary64.
func ToBinary64(dst abits.Bits, v float64) error {
	return binary64Bits(dst, v)
}

// ToBinary32 encodes v into dst (a 32-bit Bits) as IEEE-754 binary32.
func ToBinary32(dst abits.Bits, v float32) error {
	return binary32Bits(dst, v)
}

// FromBinary64 decodes x (a 64-bit Bits holding an IEEE-754 binary64
// pattern) back to a float64.
func FromBinary64(x abits.Bits) (float64, error) {
	if x.Width() != 64 {
		return 0, abits.ErrWidthMismatch
	}
	return math.Float64frombits(uint64(x.UintValue())), nil
}

// FromBinary32 decodes x (a 32-bit Bits holding an IEEE-754 binary32
// pattern) back to a float32.
func FromBinary32(x abits.Bits) (float32, error) {
	if x.Width() != 32 {
		return 0, abits.ErrWidthMismatch
	}
	return math.Float32frombits(uint32(x.UintValue())), nil
}
