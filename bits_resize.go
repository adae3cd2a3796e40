package abits

// Fit classifies how a value moved between two widths during a resize:
// callers that care whether a conversion was lossless no longer have
// to recompute it themselves.
type Fit int

const (
	// FitExact means the value is identical before and after resizing.
	FitExact Fit = iota
	// FitTruncated means significant high bits were discarded.
	FitTruncated
	// FitSignExtended means the value grew in width by replicating the
	// sign bit, which is lossless but distinct from FitExact since the
	// representation's width changed.
	FitSignExtended
)

// ZeroResize sets the receiver, which may have any width, to the
// zero-extended or truncated value of src, treating src as unsigned. It
// reports how the value fit in the receiver's width.
func ZeroResize(x Bits, src Bits) Fit {
	x.Zero()
	n := x.bw
	if src.bw < n {
		n = src.bw
	}
	for i := uint(0); i < n; i++ {
		if b, _ := src.Get(i); b {
			x.setBitUnchecked(i, true)
		}
	}
	x.clearUnused()
	if x.bw >= src.bw {
		return FitExact
	}
	for i := x.bw; i < src.bw; i++ {
		if b, _ := src.Get(i); b {
			return FitTruncated
		}
	}
	return FitExact
}

// SignResize is ZeroResize's signed counterpart: src's sign bit is
// replicated into any additional high bits of the receiver when the
// receiver is wider, and truncation is still reported when narrower.
func SignResize(x Bits, src Bits) Fit {
	sign, _ := src.Get(src.bw - 1)
	n := x.bw
	if src.bw < n {
		n = src.bw
	}
	x.Zero()
	for i := uint(0); i < n; i++ {
		if b, _ := src.Get(i); b {
			x.setBitUnchecked(i, true)
		}
	}
	if x.bw > src.bw {
		if sign {
			for i := src.bw; i < x.bw; i++ {
				x.setBitUnchecked(i, true)
			}
		}
		x.clearUnused()
		return FitSignExtended
	}
	x.clearUnused()
	if x.bw == src.bw {
		return FitExact
	}
	// Narrowing: lossless only if every discarded high bit equals the
	// sign bit that would have occupied the receiver's own top bit.
	newSign, _ := x.Get(x.bw - 1)
	for i := x.bw; i < src.bw; i++ {
		b, _ := src.Get(i)
		if b != newSign {
			return FitTruncated
		}
	}
	return FitExact
}

// Digits returns a read-only view of the receiver's raw digits.
// Collaborators needing direct digit access (Component H) use this
// instead of reaching past the Bits abstraction.
func (x Bits) Digits() []Word {
	return x.d
}

// ForEachDigit calls fn once per digit, least significant first,
// stopping early if fn returns false.
func (x Bits) ForEachDigit(fn func(i int, d Word) bool) {
	for i, d := range x.d {
		if !fn(i, d) {
			return
		}
	}
}
