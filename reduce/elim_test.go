package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvolkhin/zariski/reduce"
	"github.com/mvolkhin/zariski/ring"
)

func TestEliminate(t *testing.T) {
	// project the twisted cubic's parametrization: eliminating t from
	// <t^2 - x, t^3 - y> leaves the cuspidal relation x^3 - y^2
	src := ring.MustRing(ring.Q, []string{"t", "x", "y"})
	dst := ring.MustRing(ring.Q, []string{"x", "y"})
	i := ring.MustIdeal(src,
		ring.MustParse(src, "t^2 - x"),
		ring.MustParse(src, "t^3 - y"),
	)

	out, err := reduce.Eliminate(i, 1, dst)
	require.NoError(t, err)
	requireIdealsEqual(t, out, ring.MustIdeal(dst, ring.MustParse(dst, "x^3 - y^2")))

	// shape errors
	_, err = reduce.Eliminate(i, 3, dst)
	require.ErrorIs(t, err, reduce.ErrVarIndex)
	_, err = reduce.Eliminate(i, 2, dst)
	require.ErrorIs(t, err, ring.ErrVarCount)
}

func TestPreimageKernel(t *testing.T) {
	// x -> t^2, y -> t^3: the kernel is the curve's defining ideal
	src := ring.MustRing(ring.Q, []string{"x", "y"})
	dst := ring.MustRing(ring.Q, []string{"t"})
	m, err := ring.NewMap(src, dst, []ring.Frac{
		ring.Poly(ring.MustParse(dst, "t^2")),
		ring.Poly(ring.MustParse(dst, "t^3")),
	})
	require.NoError(t, err)

	pre, err := reduce.Preimage(m, ring.MustIdeal(dst))
	require.NoError(t, err)
	requireIdealsEqual(t, pre, ring.MustIdeal(src, ring.MustParse(src, "x^3 - y^2")))
}

func TestPreimageRational(t *testing.T) {
	// chart change on the projective line: t -> 1/s pulls the point s = 2
	// back to t = 1/2
	tc := ring.MustRing(ring.Q, []string{"t"})
	sc := ring.MustRing(ring.Q, []string{"s"})
	m, err := ring.NewMap(tc, sc, []ring.Frac{
		{Num: sc.One(), Den: ring.MustParse(sc, "s")},
	})
	require.NoError(t, err)

	pre, err := reduce.Preimage(m, ring.MustIdeal(sc, ring.MustParse(sc, "s - 2")))
	require.NoError(t, err)
	requireIdealsEqual(t, pre, ring.MustIdeal(tc, ring.MustParse(tc, "t - 1/2")))
}

func TestPreimagePolynomialAgreesWithApply(t *testing.T) {
	// for a polynomial map, f in preimage(I) iff m(f) in I
	src := ring.MustRing(ring.Q, []string{"x", "y"})
	dst := ring.MustRing(ring.Q, []string{"u", "v"})
	m, err := ring.NewMap(src, dst, []ring.Frac{
		ring.Poly(ring.MustParse(dst, "u + v")),
		ring.Poly(ring.MustParse(dst, "u*v")),
	})
	require.NoError(t, err)
	i := ring.MustIdeal(dst, ring.MustParse(dst, "u"), ring.MustParse(dst, "v"))

	pre, err := reduce.Preimage(m, i)
	require.NoError(t, err)

	for _, f := range []*ring.Polynomial{
		ring.MustParse(src, "y"),
		ring.MustParse(src, "x^2 - 2*y"),
		ring.MustParse(src, "x + 1"),
	} {
		img, err := m.Apply(f)
		require.NoError(t, err)
		inImage, err := reduce.Contains(i, img)
		require.NoError(t, err)
		inPre, err := reduce.Contains(pre, f)
		require.NoError(t, err)
		require.Equal(t, inImage, inPre, "membership mismatch for %s", f)
	}
}

func TestPreimageWrongCodomain(t *testing.T) {
	src := ring.MustRing(ring.Q, []string{"x"})
	dst := ring.MustRing(ring.Q, []string{"t"})
	m, err := ring.NewMap(src, dst, []ring.Frac{ring.Poly(dst.Var(0))})
	require.NoError(t, err)

	_, err = reduce.Preimage(m, ring.MustIdeal(src, src.Var(0)))
	require.ErrorIs(t, err, reduce.ErrWrongCodomain)
}
