package abits

import "math/bits"

// Field copies width bits from from[fromOff:fromOff+width) into
// to[toOff:toOff+width), leaving every other bit of to untouched. from
// and to must not overlap, and passing the same Bits as both fails with
// ErrOverlap; Field exists so callers moving data between
// differently-laid-out Bits don't have to hand-roll a shift and mask
// pair.
func Field(to Bits, toOff uint, from Bits, fromOff uint, width uint) error {
	if toOff+width > to.bw {
		return outOfBounds(toOff+width, to.bw)
	}
	if fromOff+width > from.bw {
		return outOfBounds(fromOff+width, from.bw)
	}
	if sameView(to, from) {
		return overlap("to and from are the same Bits")
	}
	if err := checkOverlap(to, from); err != nil {
		return err
	}
	for i := uint(0); i < width; i++ {
		b, _ := from.Get(fromOff + i)
		to.setBitUnchecked(toOff+i, b)
	}
	return nil
}

// FieldTo copies the receiver's low width bits into to starting at
// toOff.
func (x Bits) FieldTo(to Bits, toOff uint, width uint) error {
	return Field(to, toOff, x, 0, width)
}

// FieldFrom overwrites the receiver's low width bits with bits taken
// from from starting at fromOff.
func (x Bits) FieldFrom(from Bits, fromOff uint, width uint) error {
	return Field(x, 0, from, fromOff, width)
}

// FieldWidth copies min(x.bw, rhs.bw) low bits from rhs into the
// receiver, the common case of Field where both offsets are zero.
func (x Bits) FieldWidth(rhs Bits) error {
	w := x.bw
	if rhs.bw < w {
		w = rhs.bw
	}
	return Field(x, 0, rhs, 0, w)
}

// FieldBit copies a single bit, the width-1 specialization of Field.
func (x Bits) FieldBit(toOff uint, from Bits, fromOff uint) error {
	return Field(x, toOff, from, fromOff, 1)
}

// Lut sets the receiver to the table entry selected by interpreting
// indexer as an unsigned index: table is partitioned into 2**indexer.bw
// entries, each x.bw wide, and entry indexer is copied into x whole.
// LutSet is the single-bit specialization of this (writing one selected
// bit into bit i of a larger Bits rather than the whole entry into x).
func (x Bits) Lut(table, indexer Bits) error {
	if indexer.bw >= uint(bits.UintSize) {
		return nonRepresentable("lut indexer too wide")
	}
	entries := uint(1) << indexer.bw
	lutLen := entries * x.bw
	if x.bw != 0 && lutLen/x.bw != entries {
		return nonRepresentable("lut table size overflows")
	}
	if table.bw != lutLen {
		return widthMismatch(lutLen, table.bw)
	}
	if err := checkOverlap(x, indexer); err != nil {
		return err
	}
	idx := indexer.UintValue()
	return Field(x, 0, table, idx*x.bw, x.bw)
}

// Funnel extracts a contiguous window of x.bw bits out of rhs starting
// at the bit offset given by amt, the non-wrapping window a funnel
// shifter selects (not a rotate). amt.bw must equal
// ceil(log2(rhs.bw/2+1)) exactly — not merely enough bits to represent
// the largest valid offset: a narrower or wider amt is always a
// programmer error, so it is rejected rather than silently accepted.
// Because that width can represent a few offsets beyond the valid
// range (ceil rounds up), an out-of-range amt fails with
// ErrOutOfBounds rather than wrapping back into range.
func (x Bits) Funnel(rhs Bits, amt Bits) error {
	want := funnelAmtWidth(rhs.bw)
	if amt.bw != want {
		return widthMismatch(want, amt.bw)
	}
	if rhs.bw != 2*x.bw {
		return widthMismatch(2*x.bw, rhs.bw)
	}
	off := amt.UintValue()
	return Field(x, 0, rhs, off, x.bw)
}

// funnelAmtWidth computes ceil(log2(rhsWidth/2+1)), the exact amt width
// Funnel requires.
func funnelAmtWidth(rhsWidth uint) uint {
	n := rhsWidth/2 + 1
	var w uint
	for (uint(1) << w) < n {
		w++
	}
	return w
}

// Mux sets the receiver to other when cond is true, leaving it
// unchanged otherwise; it is the branch-free select Bits offers
// alongside Neg.
func (x Bits) Mux(other Bits, cond bool) error {
	if !cond {
		return nil
	}
	return x.Copy(other)
}
