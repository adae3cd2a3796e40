package abits

// Raw exposes the receiver's backing digits and width together, the
// pair a collaborator needs to reconstruct an equivalent Bits elsewhere:
// consumers that want to swap in a different evaluation strategy — a
// DAG recorder instead of eager evaluation, for instance — must be able
// to get at the same digits-and-width pair Bits itself is built from.
func (x Bits) Raw() (digits []Word, bw uint) {
	return x.d, x.bw
}

// FromRaw constructs a Bits view directly over digits at width bw
// without checking Invariant U, mirroring view's internal constructor
// but exported for collaborators that already guarantee the invariant
// themselves (e.g. a storage type outside this package).
func FromRaw(digits []Word, bw uint) Bits {
	return view(digits, bw)
}

// Arithmetic is the capability set a collaborator must implement to
// stand in for Bits's eager evaluation — for example, a DAG-recording
// type that defers every operation instead of computing it immediately.
// It names core arithmetic operations Bits implements. Bits is the only
// implementation in this module; Field, Funnel and the fixed-point
// wrapper take Bits values directly rather than an Arithmetic.
type Arithmetic interface {
	Width() uint
	Add(rhs Bits) error
	Sub(rhs Bits) error
	Mul(lhs, rhs Bits) error
	Not()
	And(rhs Bits) error
	Or(rhs Bits) error
	Xor(rhs Bits) error
	Shl(s uint) error
	Lshr(s uint) error
	Cmp(rhs Bits) (int, error)
}

var _ Arithmetic = Bits{}
