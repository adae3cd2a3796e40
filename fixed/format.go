package fixed

import (
	"fmt"
	"strings"
)

// maxFracDigits bounds how many decimal digits String prints after the
// point: a binary fraction's decimal expansion is not generally finite,
// so some cutoff is unavoidable.
const maxFracDigits = 18

// String renders f as a decimal fixed-point string. It goes through
// Float64, which is exact for the Frac values float64's 53-bit mantissa
// can hold and only approximate beyond that — callers needing exactness
// at large Frac should read f.Bits directly instead. MaxUFP exists
// precisely because float64 stops being trustworthy well before it.
func (f Fixed) String() string {
	v, err := f.Float64()
	if err != nil {
		return fmt.Sprintf("<fixed: %v>", err)
	}

	var sb strings.Builder
	if v < 0 {
		sb.WriteByte('-')
		v = -v
	}

	whole := float64(int64(v))
	sb.WriteString(fmt.Sprintf("%.0f", whole))

	if f.Frac == 0 {
		return sb.String()
	}
	sb.WriteByte('.')
	frac := v - whole
	digits := 0
	for digits < maxFracDigits && frac > 0 {
		frac *= 10
		d := int64(frac)
		sb.WriteByte(byte('0' + d))
		frac -= float64(d)
		digits++
	}
	if digits == 0 {
		sb.WriteByte('0')
	}
	return sb.String()
}
