package abits

// FromBytes loads the receiver from b, interpreted little-endian. If b
// is shorter than the receiver's byte width the remaining high bits are
// zero-filled, or sign-extended from b's top bit when signed is true;
// if b is longer, the excess high bytes must be the correct fill value
// (all-zero, or all-one when signed and negative) or ErrParseOverflow
// is returned: a round trip through bytes never silently drops
// information.
func (x Bits) FromBytes(b []byte, signed bool) error {
	x.Zero()
	nb := int(x.bw+7) / 8
	n := len(b)
	if n > nb {
		fill := byte(0)
		if signed && n > 0 && b[n-1]&0x80 != 0 {
			fill = 0xff
		}
		for i := nb; i < n; i++ {
			if b[i] != fill {
				return ErrParseOverflow
			}
		}
		n = nb
	}
	for i := 0; i < n; i++ {
		byteIdx := i
		bitOff := uint(byteIdx * 8)
		x.orByteAt(bitOff, b[i])
	}
	if signed && n > 0 && b[n-1]&0x80 != 0 {
		for i := uint(n * 8); i < x.bw; i++ {
			x.setBitUnchecked(i, true)
		}
	}
	x.clearUnused()
	return nil
}

// orByteAt ORs the 8 bits of v into the receiver starting at bit offset
// off, clipping at bw.
func (x Bits) orByteAt(off uint, v byte) {
	for i := uint(0); i < 8 && off+i < x.bw; i++ {
		if v&(1<<i) != 0 {
			x.setBitUnchecked(off+i, true)
		}
	}
}

// ToBytes writes the receiver's value little-endian into buf, which
// must be at least ceil(bw/8) bytes; any bytes beyond ceil(bw/8) are
// zero-filled, so a round trip through bytes never leaves caller
// garbage in the unused high bytes of a larger buffer.
func (x Bits) ToBytes(buf []byte) error {
	nb := int(x.bw+7) / 8
	if len(buf) < nb {
		return outOfBounds(uint(nb*8), x.bw)
	}
	for i := 0; i < nb; i++ {
		var v byte
		for j := uint(0); j < 8; j++ {
			bit := uint(i)*8 + j
			if bit >= x.bw {
				break
			}
			if b, _ := x.Get(bit); b {
				v |= 1 << j
			}
		}
		buf[i] = v
	}
	for i := nb; i < len(buf); i++ {
		buf[i] = 0
	}
	return nil
}

// ByteLen returns ceil(bw/8), the number of bytes ToBytes writes.
func (x Bits) ByteLen() int {
	return int(x.bw+7) / 8
}
