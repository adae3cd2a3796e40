package fixed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dbits/abits"
)

func mustExternal(t *testing.T, bw uint) abits.Bits {
	t.Helper()
	// abits has no exported constructor that skips storage, so route
	// through NewExternal the way any consumer outside the package must.
	s, err := abits.NewExternal(bw)
	require.NoError(t, err)
	return s.View()
}

func TestFixedAddSub(t *testing.T) {
	a, err := New(mustExternal(t, 16), 8, false)
	require.NoError(t, err)
	b, err := New(mustExternal(t, 16), 8, false)
	require.NoError(t, err)

	require.NoError(t, abits.ParseBits(a.Bits, "256", 10)) // 1.0 at frac=8
	require.NoError(t, abits.ParseBits(b.Bits, "128", 10)) // 0.5 at frac=8

	require.NoError(t, a.Add(b))
	v, err := a.Float64()
	require.NoError(t, err)
	require.InDelta(t, 1.5, v, 1e-9)
}

func TestFixedMulRescales(t *testing.T) {
	a, err := New(mustExternal(t, 16), 8, false)
	require.NoError(t, err)
	b, err := New(mustExternal(t, 16), 8, false)
	require.NoError(t, err)
	dst, err := New(mustExternal(t, 16), 8, false)
	require.NoError(t, err)

	require.NoError(t, abits.ParseBits(a.Bits, "512", 10)) // 2.0
	require.NoError(t, abits.ParseBits(b.Bits, "384", 10)) // 1.5

	require.NoError(t, dst.Mul(a, b))
	v, err := dst.Float64()
	require.NoError(t, err)
	require.InDelta(t, 3.0, v, 1e-9)
}

func TestFixedStringFormatsFractionalPart(t *testing.T) {
	a, err := New(mustExternal(t, 16), 8, false)
	require.NoError(t, err)
	require.NoError(t, abits.ParseBits(a.Bits, "384", 10)) // 1.5
	require.Equal(t, "1.5", a.String())
}

func TestMaxUFPRejected(t *testing.T) {
	_, err := New(mustExternal(t, 8), MaxUFP+1, false)
	require.Error(t, err)
}

func TestBinary64RoundTrip(t *testing.T) {
	dst := mustExternal(t, 64)
	require.NoError(t, ToBinary64(dst, 3.25))
	v, err := FromBinary64(dst)
	require.NoError(t, err)
	require.Equal(t, 3.25, v)
}
