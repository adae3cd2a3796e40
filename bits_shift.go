package abits

// Shl shifts the receiver left by s bits in place, discarding bits
// shifted out past bw. s >= bw fails with ErrNonRepresentable: there is
// no silent truncation of the shift amount.
func (x Bits) Shl(s uint) error {
	if s >= x.bw {
		return nonRepresentable("shift amount >= width")
	}
	if s == 0 {
		return nil
	}
	wordShift, bitShift := int(s/wordBits), s%wordBits
	n := len(x.d)
	if bitShift == 0 {
		for i := n - 1; i >= wordShift; i-- {
			x.d[i] = x.d[i-wordShift]
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			var hi, lo Word
			if j := i - wordShift; j >= 0 {
				hi = x.d[j] << bitShift
			}
			if j := i - wordShift - 1; j >= 0 {
				lo = x.d[j] >> (wordBits - bitShift)
			}
			x.d[i] = hi | lo
		}
	}
	for i := 0; i < wordShift && i < n; i++ {
		x.d[i] = 0
	}
	x.clearUnused()
	return nil
}

// Lshr shifts the receiver right (logically, zero-filling) by s bits.
func (x Bits) Lshr(s uint) error {
	if s >= x.bw {
		return nonRepresentable("shift amount >= width")
	}
	if s == 0 {
		return nil
	}
	x.clearUnused() // unused bits must not leak into the shifted value
	wordShift, bitShift := int(s/wordBits), s%wordBits
	n := len(x.d)
	if bitShift == 0 {
		for i := 0; i < n-wordShift; i++ {
			x.d[i] = x.d[i+wordShift]
		}
	} else {
		for i := 0; i < n; i++ {
			var lo, hi Word
			if j := i + wordShift; j < n {
				lo = x.d[j] >> bitShift
			}
			if j := i + wordShift + 1; j < n {
				hi = x.d[j] << (wordBits - bitShift)
			}
			x.d[i] = lo | hi
		}
	}
	for i := n - wordShift; i < n; i++ {
		if i >= 0 {
			x.d[i] = 0
		}
	}
	x.clearUnused()
	return nil
}

// Ashr shifts the receiver right arithmetically by s bits, replicating
// bit bw-1 (the sign bit) into the vacated high bits.
func (x Bits) Ashr(s uint) error {
	if s >= x.bw {
		return nonRepresentable("shift amount >= width")
	}
	sign, _ := x.Get(x.bw - 1)
	if err := x.Lshr(s); err != nil {
		return err
	}
	if sign {
		for i := x.bw - s; i < x.bw; i++ {
			x.setBitUnchecked(i, true)
		}
		x.clearUnused()
	}
	return nil
}

// reverseRange reverses the bits in [lo, hi) in place. It is the
// workhorse behind Rotl/Rotr: rotation-by-reversal needs no scratch
// storage beyond two bit positions, keeping rotation allocation-free
// the way every other Bits operation is.
func (x Bits) reverseRange(lo, hi uint) {
	for lo < hi {
		hi--
		a, _ := x.Get(lo)
		b, _ := x.Get(hi)
		x.setBitUnchecked(lo, b)
		x.setBitUnchecked(hi, a)
		lo++
	}
}

// Rotl rotates the receiver left by s bits. s >= bw fails with
// ErrNonRepresentable, matching the shift family's amount rule.
func (x Bits) Rotl(s uint) error {
	if s >= x.bw {
		return nonRepresentable("rotate amount >= width")
	}
	if s == 0 {
		return nil
	}
	x.reverseRange(0, x.bw-s)
	x.reverseRange(x.bw-s, x.bw)
	x.reverseRange(0, x.bw)
	return nil
}

// Rotr rotates the receiver right by s bits.
func (x Bits) Rotr(s uint) error {
	if s >= x.bw {
		return nonRepresentable("rotate amount >= width")
	}
	if s == 0 {
		return nil
	}
	return x.Rotl(x.bw - s)
}
