package collab

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckedOkAndUnwrap(t *testing.T) {
	c := Of(42, nil)
	require.True(t, c.Ok())
	require.Equal(t, 42, c.Unwrap())
}

func TestCheckedErrPropagates(t *testing.T) {
	boom := errors.New("boom")
	c := Of(0, boom)
	require.False(t, c.Ok())
	require.Equal(t, 7, c.UnwrapOr(7))
}

func TestCheckedUnwrapPanicsOnError(t *testing.T) {
	c := Of(0, errors.New("boom"))
	require.Panics(t, func() { c.Unwrap() })
}

func TestMapTransformsOkValue(t *testing.T) {
	c := Of(3, nil)
	mapped := Map(c, func(v int) string {
		if v == 3 {
			return "three"
		}
		return "?"
	})
	require.True(t, mapped.Ok())
	require.Equal(t, "three", mapped.Value)
}

func TestMapPassesThroughError(t *testing.T) {
	boom := errors.New("boom")
	c := Of(3, boom)
	mapped := Map(c, func(v int) string { return "unused" })
	require.False(t, mapped.Ok())
	require.ErrorIs(t, mapped.Err, boom)
}
