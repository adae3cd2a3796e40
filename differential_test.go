package abits

import (
	"context"
	"fmt"
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"golang.org/x/sync/errgroup"
)

// mask64 reduces a big.Int to its low 64 bits, the value space a
// 64-bit Bits covers, for comparison against operations carried out on
// the bit-slice type.
func mask64(v *big.Int) uint64 {
	var m big.Int
	m.SetUint64(^uint64(0))
	var r big.Int
	r.And(v, &m)
	return r.Uint64()
}

func bitsFromU64(t *testing.T, v uint64) Bits {
	t.Helper()
	return fromUint(t, 64, v)
}

// newBitsFromU64NoT and newZeroedBitsNoT build Bits without a *testing.T
// so they're safe to call from the non-test goroutines errgroup spawns
// below — require.NoError's FailNow is documented as unsafe to invoke
// from any goroutine but the one running the test.
func newBitsFromU64NoT(bw uint, v uint64) (Bits, error) {
	s, err := NewExternal(bw)
	if err != nil {
		return Bits{}, err
	}
	x := s.View()
	for i := uint(0); i < bw && i < 64; i++ {
		if v&(1<<i) != 0 {
			x.setBitUnchecked(i, true)
		}
	}
	return x, nil
}

func newZeroedBitsNoT(bw uint) (Bits, error) {
	s, err := NewExternal(bw)
	if err != nil {
		return Bits{}, err
	}
	return s.View(), nil
}

// TestAddMatchesMathBig differentially tests Add against math/big over
// many random operand pairs, each trial independent of the others.
func TestAddMatchesMathBig(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Add matches math/big truncated to 64 bits", prop.ForAll(
		func(a, b uint64) bool {
			x := bitsFromU64(t, a)
			y := bitsFromU64(t, b)
			if err := x.Add(y); err != nil {
				return false
			}
			want := mask64(new(big.Int).Add(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b)))
			return uint64(x.UintValue()) == want
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

func TestMulMatchesMathBig(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("Mul matches math/big truncated to 64 bits", prop.ForAll(
		func(a, b uint64) bool {
			x := mkInline(t, 64)
			lhs := bitsFromU64(t, a)
			rhs := bitsFromU64(t, b)
			if err := x.Mul(lhs, rhs); err != nil {
				return false
			}
			want := mask64(new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b)))
			return uint64(x.UintValue()) == want
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestUDivideConcurrentTrials runs a batch of random unsigned division
// trials concurrently via errgroup and checks each against Go's native
// uint64 division, exercising Bits from many goroutines at once: each
// trial works on its own Bits values over distinct storage, so there is
// no shared mutable state and nothing here needs a lock.
func TestUDivideConcurrentTrials(t *testing.T) {
	type trial struct{ n, d uint64 }
	trials := make([]trial, 0, 256)
	var seed uint64 = 0x9e3779b97f4a7c15
	for i := 0; i < 256; i++ {
		seed = seed*6364136223846793005 + 1442695040888963407
		d := seed%1_000_000 + 1
		seed = seed*6364136223846793005 + 1442695040888963407
		trials = append(trials, trial{n: seed, d: d})
	}

	g, _ := errgroup.WithContext(context.Background())
	for _, tr := range trials {
		tr := tr
		g.Go(func() error {
			n, err := newBitsFromU64NoT(64, tr.n)
			if err != nil {
				return err
			}
			d, err := newBitsFromU64NoT(64, tr.d)
			if err != nil {
				return err
			}
			q, err := newZeroedBitsNoT(64)
			if err != nil {
				return err
			}
			r, err := newZeroedBitsNoT(64)
			if err != nil {
				return err
			}
			if err := UDivide(q, r, n, d); err != nil {
				return err
			}
			wantQ := tr.n / tr.d
			wantR := tr.n % tr.d
			if uint64(q.UintValue()) != wantQ || uint64(r.UintValue()) != wantR {
				return fmt.Errorf("UDivide(%d,%d) = (%d,%d), want (%d,%d); trial: %s",
					tr.n, tr.d, uint64(q.UintValue()), uint64(r.UintValue()), wantQ, wantR, spew.Sdump(tr))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
