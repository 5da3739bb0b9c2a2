package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvolkhin/zariski/reduce"
	"github.com/mvolkhin/zariski/ring"
)

func TestContains(t *testing.T) {
	r := ring.MustRing(ring.Q, []string{"x", "y"})
	ideal := ring.MustIdeal(r,
		ring.MustParse(r, "x^2"),
		ring.MustParse(r, "x*y - y^2"),
	)

	cases := []struct {
		f    string
		want bool
	}{
		{"y^3", true},
		{"x^2*y - 5*x^2", true},
		{"x*y - y^2", true},
		{"y^2", false},
		{"x", false},
		{"1", false},
	}
	for _, c := range cases {
		got, err := reduce.Contains(ideal, ring.MustParse(r, c.f))
		require.NoError(t, err)
		require.Equal(t, c.want, got, "Contains(%s)", c.f)
	}

	got, err := reduce.Contains(ideal, r.Zero())
	require.NoError(t, err)
	require.True(t, got, "zero is in every ideal")
}

func TestContainsUsesGlobalFallback(t *testing.T) {
	// local default ordering: membership still goes through a global one
	r := ring.MustRing(ring.Q, []string{"x", "y"}, ring.WithOrdering(ring.NegLex))
	ideal := ring.MustIdeal(r, ring.MustParse(r, "x"))

	got, err := reduce.Contains(ideal, ring.MustParse(r, "x*y + x^2"))
	require.NoError(t, err)
	require.True(t, got)
}

func TestIdealsEqual(t *testing.T) {
	r := ring.MustRing(ring.Q, []string{"x", "y"})
	a := ring.MustIdeal(r, ring.MustParse(r, "x"), ring.MustParse(r, "y"))
	b := ring.MustIdeal(r, ring.MustParse(r, "x + y"), ring.MustParse(r, "y"))
	c := ring.MustIdeal(r, ring.MustParse(r, "x"))

	eq, err := reduce.IdealsEqual(a, b)
	require.NoError(t, err)
	require.True(t, eq)

	eq, err = reduce.IdealsEqual(a, c)
	require.NoError(t, err)
	require.False(t, eq)

	sub, err := reduce.ContainsIdeal(a, c)
	require.NoError(t, err)
	require.True(t, sub, "<x> sits inside <x, y>")
}

func TestIsUnitIdeal(t *testing.T) {
	r := ring.MustRing(ring.Q, []string{"x"})

	unit, err := reduce.IsUnitIdeal(ring.MustIdeal(r, r.FromInt(7)))
	require.NoError(t, err)
	require.True(t, unit)

	// 1 appears only after basis computation: <x, x+1> contains x+1-x
	unit, err = reduce.IsUnitIdeal(ring.MustIdeal(r,
		ring.MustParse(r, "x"),
		ring.MustParse(r, "x + 1"),
	))
	require.NoError(t, err)
	require.True(t, unit)

	unit, err = reduce.IsUnitIdeal(ring.MustIdeal(r, ring.MustParse(r, "x")))
	require.NoError(t, err)
	require.False(t, unit)

	unit, err = reduce.IsUnitIdeal(ring.MustIdeal(r))
	require.NoError(t, err)
	require.False(t, unit, "the zero ideal is not the unit ideal")
}
