package abits

// Bits is a borrowed, width-carrying view over a run of digits, least
// significant digit first. It never owns its backing array: copying a
// Bits value copies the slice header, not the digits, so every Bits
// obtained from the same storage aliases the same memory.
//
// bw is the declared bit width; it never changes for the lifetime of a
// given Bits value. Invariant U (the high "unused" bits of the last
// digit are zero) holds on entry to and exit from every exported method.
type Bits struct {
	d  []Word
	bw uint
}

// view constructs a Bits over d with bit width bw without checking
// Invariant U; used internally by storages that already enforce it.
func view(d []Word, bw uint) Bits {
	return Bits{d: d, bw: bw}
}

// Width returns the receiver's bit width.
func (x Bits) Width() uint { return x.bw }

// totalDigits returns ⌈bw/wordBits⌉, the number of digits backing x.
func (x Bits) totalDigits() int {
	return int((x.bw + wordBits - 1) / wordBits)
}

// extra returns bw mod wordBits; 0 means the last digit is fully used.
func (x Bits) extra() uint {
	return x.bw % wordBits
}

// unused returns the number of high, always-zero bits in the last digit.
func (x Bits) unused() uint {
	if e := x.extra(); e != 0 {
		return wordBits - e
	}
	return 0
}

// lastMask returns a mask with exactly the in-range bits of the last
// digit set.
func (x Bits) lastMask() Word {
	if e := x.extra(); e != 0 {
		return Word(1)<<e - 1
	}
	return DigitMax
}

// clearUnused re-establishes Invariant U by masking the high bits of
// the last digit. Every interior algorithm is free to dirty those bits
// as long as it calls this before returning; centralizing it here is
// the single place invariant U can be broken or fixed (design note
// "Invariant U is the pivot").
func (x Bits) clearUnused() {
	if n := x.totalDigits(); n > 0 {
		x.d[n-1] &= x.lastMask()
	}
}

// sameView reports whether x and y are the identical view (same backing
// array, offset and length) rather than merely overlapping.
func sameView(x, y Bits) bool {
	if len(x.d) == 0 && len(y.d) == 0 {
		return true
	}
	if len(x.d) != len(y.d) {
		return false
	}
	return &x.d[0] == &y.d[0]
}

// overlaps reports whether x and y's backing arrays share any memory
// without being the identical view. Pointer+length comparison suffices
// (design note "Same-Bits aliasing versus overlap"): two Go slices
// overlap iff neither's start is past the other's end, computed via
// pointer arithmetic on the common element type.
func overlaps(x, y Bits) bool {
	if sameView(x, y) || len(x.d) == 0 || len(y.d) == 0 {
		return false
	}
	xs, xe := sliceBounds(x.d)
	ys, ye := sliceBounds(y.d)
	return xs < ye && ys < xe
}

func sliceBounds(d []Word) (start, end uintptr) {
	// len(d), not cap(d): a Bits view only ever reads or writes its own
	// len(d) digits, so two adjacent views cut from one array are disjoint.
	start = wordAddr(d, 0)
	end = wordAddr(d, len(d))
	return
}

// checkWidth fails with ErrWidthMismatch unless y's width equals x's.
func (x Bits) checkWidth(y Bits) error {
	if x.bw != y.bw {
		return widthMismatch(x.bw, y.bw)
	}
	return nil
}

// checkOverlap fails with ErrOverlap if x and y alias overlapping but
// non-identical memory.
func checkOverlap(x, y Bits) error {
	if overlaps(x, y) {
		return overlap("distinct Bits arguments share backing memory")
	}
	return nil
}

// Zero sets the receiver to 0.
func (x Bits) Zero() {
	for i := range x.d {
		x.d[i] = 0
	}
}

// UMax sets the receiver to its maximum unsigned value, 2**bw - 1.
func (x Bits) UMax() {
	for i := range x.d {
		x.d[i] = DigitMax
	}
	x.clearUnused()
}

// IMax sets the receiver to its maximum signed (two's complement) value.
func (x Bits) IMax() {
	x.UMax()
	x.setBitUnchecked(x.bw-1, false)
}

// IMin sets the receiver to its minimum signed (two's complement) value.
func (x Bits) IMin() {
	x.Zero()
	x.setBitUnchecked(x.bw-1, true)
}

// UOne sets the receiver to 1. bw must be >= 1, which every valid Bits
// value already guarantees.
func (x Bits) UOne() {
	x.Zero()
	if len(x.d) > 0 {
		x.d[0] = 1
	}
}

// Copy sets the receiver to a bit-identical copy of src.
func (x Bits) Copy(src Bits) error {
	if err := x.checkWidth(src); err != nil {
		return err
	}
	if err := checkOverlap(x, src); err != nil {
		return err
	}
	if sameView(x, src) {
		return nil
	}
	copy(x.d, src.d)
	return nil
}
