package abits

// MulAdd sets the receiver to receiver + lhs*rhs mod 2**bw. lhs and rhs
// must share the receiver's width; for products of differently-sized
// operands use ArbUMulAdd/ArbIMulAdd instead.
func (x Bits) MulAdd(lhs, rhs Bits) error {
	if err := x.checkWidth(lhs); err != nil {
		return err
	}
	if err := x.checkWidth(rhs); err != nil {
		return err
	}
	if err := checkOverlap(x, lhs); err != nil {
		return err
	}
	if err := checkOverlap(x, rhs); err != nil {
		return err
	}
	x.mulAddDigits(lhs, rhs)
	return nil
}

// Mul sets the receiver to lhs*rhs mod 2**bw.
func (x Bits) Mul(lhs, rhs Bits) error {
	if err := x.checkWidth(lhs); err != nil {
		return err
	}
	if err := x.checkWidth(rhs); err != nil {
		return err
	}
	if err := checkOverlap(x, lhs); err != nil {
		return err
	}
	if err := checkOverlap(x, rhs); err != nil {
		return err
	}
	x.Zero()
	x.mulAddDigits(lhs, rhs)
	return nil
}

// mulAddDigits is the schoolbook O(n^2) multiply-accumulate shared by
// MulAdd and Mul. Partial products beyond the receiver's digit count
// are dropped, which is exactly truncation modulo 2**bw once
// clearUnused masks the top digit.
func (x Bits) mulAddDigits(lhs, rhs Bits) {
	n := x.totalDigits()
	for i := 0; i < n && i < len(lhs.d); i++ {
		li := lhs.d[i]
		if li == 0 {
			continue
		}
		var carry Word
		for j := 0; i+j < n && j < len(rhs.d); j++ {
			lo, hi := wideningMulAdd(li, rhs.d[j], x.d[i+j], carry)
			x.d[i+j] = lo
			carry = hi
		}
	}
	x.clearUnused()
}

// ArbUMulAdd adds the unsigned product of lhs and rhs into the receiver
// mod 2**bw. Unlike MulAdd, lhs and rhs may be narrower or wider than
// the receiver and need not match each other's width either: each
// operand's value beyond its own digits is treated as zero.
func (x Bits) ArbUMulAdd(lhs, rhs Bits) error {
	if err := checkOverlap(x, lhs); err != nil {
		return err
	}
	if err := checkOverlap(x, rhs); err != nil {
		return err
	}
	x.arbMulAdd(lhs, rhs, false)
	return nil
}

// ArbIMulAdd is the signed counterpart of ArbUMulAdd: each operand is
// conceptually sign-extended to infinite width before the product is
// accumulated, so a negative operand narrower than the receiver still
// contributes the correct two's-complement value.
func (x Bits) ArbIMulAdd(lhs, rhs Bits) error {
	if err := checkOverlap(x, lhs); err != nil {
		return err
	}
	if err := checkOverlap(x, rhs); err != nil {
		return err
	}
	x.arbMulAdd(lhs, rhs, true)
	return nil
}

// digitAt returns b's k'th digit, or the appropriate extension digit
// (0, or all-ones when signExtend and b is negative) once k runs past
// b's own digits.
func digitAt(b Bits, k int, signExtend bool) Word {
	if n := b.totalDigits(); k < n {
		w := b.d[k]
		if signExtend && k == n-1 {
			// fill the unused high bits of a partial last digit too
			if s, _ := b.Get(b.bw - 1); s {
				w |= ^b.lastMask()
			}
		}
		return w
	}
	if signExtend {
		if s, _ := b.Get(b.bw - 1); s {
			return DigitMax
		}
	}
	return 0
}

// arbMulAdd is the general multiply-accumulate behind ArbUMulAdd and
// ArbIMulAdd: it walks the receiver's own digit range, synthesizing
// operand digits past their real width via digitAt so the schoolbook
// loop never needs a scratch buffer sized to the full double-width
// product — every Bits operation stays allocation-free.
func (x Bits) arbMulAdd(lhs, rhs Bits, signed bool) {
	n := x.totalDigits()
	signL := signed
	signR := signed
	for i := 0; i < n; i++ {
		li := digitAt(lhs, i, signL)
		if li == 0 {
			continue
		}
		var carry Word
		for j := 0; i+j < n; j++ {
			rj := digitAt(rhs, j, signR)
			lo, hi := wideningMulAdd(li, rj, x.d[i+j], carry)
			x.d[i+j] = lo
			carry = hi
		}
	}
	x.clearUnused()
}
