package sheaf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvolkhin/zariski/ring"
	"github.com/mvolkhin/zariski/sheaf"
)

func TestNewValidatesSeed(t *testing.T) {
	cov, u0, _ := projectiveLine(t)
	rt := u0.Ring()
	foreign := ring.MustRing(ring.Q, []string{"t"})

	_, err := sheaf.New(cov, map[sheaf.ChartID]*ring.Ideal{
		u0.ID(): ring.MustIdeal(foreign, foreign.Var(0)),
	})
	require.ErrorIs(t, err, sheaf.ErrRingMismatch)

	_, err = sheaf.New(cov, map[sheaf.ChartID]*ring.Ideal{
		9: ring.MustIdeal(rt, rt.Var(0)),
	})
	require.ErrorIs(t, err, sheaf.ErrChartNotFound)

	s, err := sheaf.New(cov, map[sheaf.ChartID]*ring.Ideal{
		u0.ID(): ring.MustIdeal(rt, ring.MustParse(rt, "t - 2")),
	})
	require.NoError(t, err)
	require.Equal(t, []sheaf.ChartID{u0.ID()}, s.Seeded())
	require.False(t, s.Complete())

	i, ok := s.Ideal(u0.ID())
	require.True(t, ok)
	require.True(t, i.Gen(0).Equal(ring.MustParse(rt, "t - 2")))
	_, ok = s.Ideal(1)
	require.False(t, ok)
}

func TestSumProduct(t *testing.T) {
	r := ring.MustRing(ring.Q, []string{"x", "y"})
	cov := sheaf.NewCovering()
	ch := cov.AddChart(r, "A")

	a := sheaf.NewUnchecked(cov, map[sheaf.ChartID]*ring.Ideal{
		ch.ID(): ring.MustIdeal(r, ring.MustParse(r, "x")),
	})
	b := sheaf.NewUnchecked(cov, map[sheaf.ChartID]*ring.Ideal{
		ch.ID(): ring.MustIdeal(r, ring.MustParse(r, "y")),
	})

	sum, err := a.Sum(b)
	require.NoError(t, err)
	i, _ := sum.Ideal(ch.ID())
	requireIdealsEqual(t, i, ring.MustIdeal(r, ring.MustParse(r, "x"), ring.MustParse(r, "y")))

	prod, err := a.Product(b)
	require.NoError(t, err)
	i, _ = prod.Ideal(ch.ID())
	requireIdealsEqual(t, i, ring.MustIdeal(r, ring.MustParse(r, "x*y")))

	// a different Covering value, even an identical one, is a mismatch
	cov2 := sheaf.NewCovering()
	ch2 := cov2.AddChart(r, "A")
	c := sheaf.NewUnchecked(cov2, map[sheaf.ChartID]*ring.Ideal{
		ch2.ID(): ring.MustIdeal(r, r.One()),
	})
	_, err = a.Sum(c)
	require.ErrorIs(t, err, sheaf.ErrCoveringMismatch)

	// assignment on one side only
	d := sheaf.NewUnchecked(cov, nil)
	_, err = a.Sum(d)
	require.ErrorIs(t, err, sheaf.ErrCoveringMismatch)
}

func TestSimplify(t *testing.T) {
	r := ring.MustRing(ring.Q, []string{"x", "y"})
	cov := sheaf.NewCovering()
	ch := cov.AddChart(r, "A")

	s := sheaf.NewUnchecked(cov, map[sheaf.ChartID]*ring.Ideal{
		ch.ID(): ring.MustIdeal(r,
			ring.MustParse(r, "2*x"),
			ring.MustParse(r, "x + y"),
			r.Zero(),
		),
	})
	require.NoError(t, s.Simplify())

	slim, _ := s.Ideal(ch.ID())
	require.Equal(t, 2, slim.Len(), "zero and redundant generators removed")
	requireIdealsEqual(t, slim, ring.MustIdeal(r, r.Var(0), r.Var(1)))
}

func TestValidate(t *testing.T) {
	cov, u0, u1 := projectiveLine(t)
	rt, rs := u0.Ring(), u1.Ring()

	good, err := sheaf.New(cov, map[sheaf.ChartID]*ring.Ideal{
		u0.ID(): ring.MustIdeal(rt, ring.MustParse(rt, "t - 2")),
		u1.ID(): ring.MustIdeal(rs, ring.MustParse(rs, "2*s - 1")),
	})
	require.NoError(t, err)
	require.NoError(t, good.Validate())

	bad, err := sheaf.New(cov, map[sheaf.ChartID]*ring.Ideal{
		u0.ID(): ring.MustIdeal(rt, ring.MustParse(rt, "t - 2")),
		u1.ID(): ring.MustIdeal(rs, ring.MustParse(rs, "s - 3")),
	})
	require.NoError(t, err)
	require.ErrorIs(t, bad.Validate(), sheaf.ErrInconsistent)

	// a chart without an assignment is skipped, not an error
	half, err := sheaf.New(cov, map[sheaf.ChartID]*ring.Ideal{
		u0.ID(): ring.MustIdeal(rt, ring.MustParse(rt, "t - 2")),
	})
	require.NoError(t, err)
	require.NoError(t, half.Validate())
}
