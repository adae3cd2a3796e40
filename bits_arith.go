package abits

import "math/bits"

// Add sets the receiver to receiver + rhs mod 2**bw. The carry out of
// bit bw-1 lands in the lowest unused-bit position (or leaves the top
// digit when there are no unused bits, where it is discarded) and is
// then masked away so Invariant U holds on exit.
func (x Bits) Add(rhs Bits) error {
	if err := x.checkWidth(rhs); err != nil {
		return err
	}
	x.addRaw(rhs, 0)
	x.clearUnused()
	return nil
}

// addRaw performs the digit carry-chain for Add/Rsb/CinSum without
// re-establishing Invariant U, returning the carry out of the top
// digit's full wordBits width (not merely out of bit bw-1).
func (x Bits) addRaw(rhs Bits, cin Word) Word {
	if wordBits < 64 {
		c := uint64(cin)
		for i := range x.d {
			s := uint64(x.d[i]) + uint64(rhs.d[i]) + c
			x.d[i] = Word(s)
			c = s >> wordBits
		}
		return Word(c)
	}
	var c uint64 = uint64(cin)
	for i := range x.d {
		s, cc := bits.Add64(uint64(x.d[i]), uint64(rhs.d[i]), c)
		x.d[i] = Word(s)
		c = cc
	}
	return Word(c)
}

// Sub sets the receiver to receiver - rhs mod 2**bw.
func (x Bits) Sub(rhs Bits) error {
	if err := x.checkWidth(rhs); err != nil {
		return err
	}
	x.subRaw(rhs, 0)
	x.clearUnused()
	return nil
}

func (x Bits) subRaw(rhs Bits, bin Word) Word {
	if wordBits < 64 {
		b := uint64(bin)
		for i := range x.d {
			s := int64(x.d[i]) - int64(rhs.d[i]) - int64(b)
			if s < 0 {
				one := int64(1)
				s += one << wordBits
				b = 1
			} else {
				b = 0
			}
			x.d[i] = Word(s)
		}
		return Word(b)
	}
	var b uint64 = uint64(bin)
	for i := range x.d {
		d, bb := bits.Sub64(uint64(x.d[i]), uint64(rhs.d[i]), b)
		x.d[i] = Word(d)
		b = bb
	}
	return Word(b)
}

// Rsb sets the receiver to rhs - receiver mod 2**bw ("reverse subtract").
func (x Bits) Rsb(rhs Bits) error {
	if err := x.checkWidth(rhs); err != nil {
		return err
	}
	x.Not()
	x.addRaw(rhs, 1)
	x.clearUnused()
	return nil
}

// Neg two's-complement negates the receiver in place when cond is true;
// it is a no-op otherwise, letting callers write branch-free code such
// as x.Neg(signBit) without an explicit if.
func (x Bits) Neg(cond bool) {
	if !cond {
		return
	}
	x.Not()
	x.addOneInPlace()
}

func (x Bits) addOneInPlace() {
	if wordBits < 64 {
		c := uint64(1)
		for i := range x.d {
			s := uint64(x.d[i]) + c
			x.d[i] = Word(s)
			c = s >> wordBits
			if c == 0 {
				break
			}
		}
	} else {
		var c uint64 = 1
		for i := range x.d {
			s, cc := bits.Add64(uint64(x.d[i]), 0, c)
			x.d[i] = Word(s)
			c = cc
			if c == 0 {
				break
			}
		}
	}
	x.clearUnused()
}

// CinSum computes the full sum receiver + rhs + cin, leaving the result
// in the receiver, and reports both the unsigned and signed overflow of
// that addition. Signed overflow is
// (sign(a)==sign(b)) && (sign(result)!=sign(a)); unsigned overflow is
// the carry out of bit bw-1, corrected for any unused high bits in the
// last digit.
func (x Bits) CinSum(cin bool, rhs Bits) (unsignedOverflow, signedOverflow bool, err error) {
	if err = x.checkWidth(rhs); err != nil {
		return
	}
	signA, _ := x.Get(x.bw - 1)
	signB, _ := rhs.Get(rhs.bw - 1)
	var c Word
	if cin {
		c = 1
	}
	finalCarry := x.addRaw(rhs, c)
	if extra := x.extra(); extra != 0 {
		unsignedOverflow = (x.d[x.totalDigits()-1]>>extra)&1 != 0
	} else {
		unsignedOverflow = finalCarry != 0
	}
	signR, _ := x.Get(x.bw - 1)
	signedOverflow = signA == signB && signR != signA
	x.clearUnused()
	return
}
