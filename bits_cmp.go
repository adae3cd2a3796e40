package abits

// Cmp returns -1, 0 or +1 comparing the receiver and rhs as unsigned
// integers.
func (x Bits) Cmp(rhs Bits) (int, error) {
	if err := x.checkWidth(rhs); err != nil {
		return 0, err
	}
	for i := len(x.d) - 1; i >= 0; i-- {
		if x.d[i] != rhs.d[i] {
			if x.d[i] < rhs.d[i] {
				return -1, nil
			}
			return 1, nil
		}
	}
	return 0, nil
}

// Eq reports whether the receiver and rhs hold the same bit pattern.
func (x Bits) Eq(rhs Bits) (bool, error) {
	c, err := x.Cmp(rhs)
	return c == 0, err
}

// SCmp returns -1, 0 or +1 comparing the receiver and rhs as two's
// complement signed integers.
func (x Bits) SCmp(rhs Bits) (int, error) {
	if err := x.checkWidth(rhs); err != nil {
		return 0, err
	}
	xs, _ := x.Get(x.bw - 1)
	ys, _ := rhs.Get(rhs.bw - 1)
	if xs != ys {
		if xs {
			return -1, nil
		}
		return 1, nil
	}
	return x.Cmp(rhs)
}

// TotalCmp imposes a total order over Bits of equal width by comparing
// them as signed lexicographic values. It returns exactly what SCmp
// returns, including ErrWidthMismatch for operands of different widths.
func (x Bits) TotalCmp(rhs Bits) (int, error) {
	return x.SCmp(rhs)
}
