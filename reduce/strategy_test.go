package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvolkhin/zariski/reduce"
	"github.com/mvolkhin/zariski/ring"
)

func gf(t *testing.T, p uint64) *ring.PrimeField {
	t.Helper()
	f, err := ring.NewPrimeField(p)
	require.NoError(t, err)
	return f
}

func TestSelectStrategy(t *testing.T) {
	fp := gf(t, 32003)
	modular := ring.MustRing(fp, []string{"x", "y"})
	rational := ring.MustRing(ring.Q, []string{"x", "y"})
	graded := ring.MustRing(fp, []string{"x", "y"}, ring.WithGrading([][]int{{1}, {1}}))

	i := ring.MustIdeal(modular, modular.Var(0))
	require.Equal(t, reduce.StrategyFastPrimeField, reduce.SelectStrategy(i, ring.DegRevLex))
	require.Equal(t, reduce.StrategyGeneral, reduce.SelectStrategy(i, ring.Lex),
		"the fast reducer only speaks degrevlex")

	require.Equal(t, reduce.StrategyGeneral,
		reduce.SelectStrategy(ring.MustIdeal(rational, rational.Var(0)), ring.DegRevLex))
	require.Equal(t, reduce.StrategyGeneral,
		reduce.SelectStrategy(ring.MustIdeal(graded, graded.Var(0)), ring.DegRevLex),
		"gradings disable the flat path")

	// characteristic at or above 2^31 overflows the flat arithmetic
	big := gf(t, (1<<31)+11)
	huge := ring.MustRing(big, []string{"x"})
	require.Equal(t, reduce.StrategyGeneral,
		reduce.SelectStrategy(ring.MustIdeal(huge, huge.Var(0)), ring.DegRevLex))

	require.Equal(t, "fast-prime-field", reduce.StrategyFastPrimeField.String())
	require.Equal(t, "general", reduce.StrategyGeneral.String())
}

func TestNormalFormRejectsInexactField(t *testing.T) {
	r := ring.MustRing(ring.R64, []string{"x"})
	ideal := ring.MustIdeal(r, r.Var(0))

	_, err := reduce.NormalForm(r.One(), ideal)
	require.ErrorIs(t, err, reduce.ErrInexactField)
}

func TestNormalFormSpansOrderings(t *testing.T) {
	r := ring.MustRing(ring.Q, []string{"x", "y"})
	ideal := ring.MustIdeal(r,
		ring.MustParse(r, "x^2"),
		ring.MustParse(r, "x*y - y^2"),
	)

	nf, err := reduce.NormalForm(ring.MustParse(r, "y^3"), ideal)
	require.NoError(t, err)
	require.True(t, nf.IsZero(), "y^3 lies in the ideal")

	nf, err = reduce.NormalForm(ring.MustParse(r, "y^2 + 1"), ideal)
	require.NoError(t, err)
	require.True(t, nf.Equal(ring.MustParse(r, "y^2 + 1")))
}

func TestNormalFormZeroIdeal(t *testing.T) {
	r := ring.MustRing(ring.Q, []string{"x"})
	f := ring.MustParse(r, "x^2 - 1")

	nf, err := reduce.NormalForm(f, ring.MustIdeal(r))
	require.NoError(t, err)
	require.True(t, nf.Equal(f))
}

// The flat prime-field reducer and the general engine must agree exactly.
func TestFastPathMatchesGeneral(t *testing.T) {
	fp := gf(t, 32003)
	r := ring.MustRing(fp, []string{"x", "y", "z"})
	ideal := ring.MustIdeal(r,
		ring.MustParse(r, "x^2 - y*z"),
		ring.MustParse(r, "x*y - z^2"),
		ring.MustParse(r, "y^3 + 2*z"),
	)
	require.Equal(t, reduce.StrategyFastPrimeField, reduce.SelectStrategy(ideal, ring.DegRevLex))

	inputs := []*ring.Polynomial{
		ring.MustParse(r, "x^3*y^2 - z^5 + 7"),
		ring.MustParse(r, "x*y*z + y^4"),
		r.Zero(),
		ring.MustParse(r, "31999*x + 5"),
	}

	fast, err := reduce.NormalFormList(inputs, ideal)
	require.NoError(t, err)

	basis, err := reduce.Basis(ideal)
	require.NoError(t, err)
	for i, f := range inputs {
		general, err := reduce.ReduceBy(f, basis)
		require.NoError(t, err)
		require.True(t, fast[i].Equal(general), "engines disagree on input %d", i)
	}
}
