package sheaf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvolkhin/zariski/reduce"
	"github.com/mvolkhin/zariski/ring"
	"github.com/mvolkhin/zariski/sheaf"
)

// substTransition transports ideals from near to far by substituting the
// near chart's variables with polynomial images in the far ring.
func substTransition(t *testing.T, near, far *ring.Ring, images ...string) sheaf.Transition {
	t.Helper()
	fr := make([]ring.Frac, len(images))
	for i, s := range images {
		fr[i] = ring.Poly(ring.MustParse(far, s))
	}
	m, err := ring.NewMap(near, far, fr)
	require.NoError(t, err)
	return sheaf.TransitionFunc(func(i *ring.Ideal) (*ring.Ideal, error) {
		gens := make([]*ring.Polynomial, i.Len())
		for k, g := range i.Gens() {
			img, err := m.Apply(g)
			if err != nil {
				return nil, err
			}
			gens[k] = img
		}
		return ring.NewIdeal(far, gens...)
	})
}

// projectiveLine builds the standard two-chart covering of P^1 over Q:
// coordinate t on one chart, s on the other, glued by t = 1/s away from
// the origins.
func projectiveLine(t *testing.T) (*sheaf.Covering, *sheaf.Chart, *sheaf.Chart) {
	t.Helper()
	rt := ring.MustRing(ring.Q, []string{"t"})
	rs := ring.MustRing(ring.Q, []string{"s"})

	cov := sheaf.NewCovering()
	u0 := cov.AddChart(rt, "U0")
	u1 := cov.AddChart(rs, "U1")

	sInT, err := ring.NewMap(rs, rt, []ring.Frac{{Num: rt.One(), Den: rt.Var(0)}})
	require.NoError(t, err)
	to1, err := sheaf.NewRationalTransition(sInT, rt.Var(0), rs.Var(0))
	require.NoError(t, err)

	tInS, err := ring.NewMap(rt, rs, []ring.Frac{{Num: rs.One(), Den: rs.Var(0)}})
	require.NoError(t, err)
	to0, err := sheaf.NewRationalTransition(tInS, rs.Var(0), rt.Var(0))
	require.NoError(t, err)

	require.NoError(t, cov.Glue(u0.ID(), u1.ID(), rt.Var(0), rs.Var(0), to1, to0))
	return cov, u0, u1
}

func requireIdealsEqual(t *testing.T, a, b *ring.Ideal) {
	t.Helper()
	eq, err := reduce.IdealsEqual(a, b)
	require.NoError(t, err)
	require.True(t, eq, "ideals differ: %s vs %s", a, b)
}

func TestCoveringCharts(t *testing.T) {
	cov := sheaf.NewCovering()
	r0 := ring.MustRing(ring.Q, []string{"x"})
	r1 := ring.MustRing(ring.Q, []string{"y"})

	a := cov.AddChart(r0, "A")
	b := cov.AddChart(r1, "B")
	require.Equal(t, 2, cov.Len())
	require.Equal(t, sheaf.ChartID(0), a.ID())
	require.Equal(t, sheaf.ChartID(1), b.ID())
	require.Equal(t, "A", a.Name())
	require.Same(t, r0, a.Ring())

	got, err := cov.Chart(b.ID())
	require.NoError(t, err)
	require.Same(t, b, got)

	_, err = cov.Chart(5)
	require.ErrorIs(t, err, sheaf.ErrChartNotFound)
	_, err = cov.Chart(-1)
	require.ErrorIs(t, err, sheaf.ErrChartNotFound)
}

func TestGlue(t *testing.T) {
	cov := sheaf.NewCovering()
	r0 := ring.MustRing(ring.Q, []string{"x"})
	r1 := ring.MustRing(ring.Q, []string{"y"})
	a := cov.AddChart(r0, "A")
	b := cov.AddChart(r1, "B")
	id01 := substTransition(t, r0, r1, "y")
	id10 := substTransition(t, r1, r0, "x")

	require.ErrorIs(t, cov.Glue(a.ID(), a.ID(), nil, nil, id01, id10), sheaf.ErrSelfGlue)
	require.ErrorIs(t, cov.Glue(a.ID(), 9, nil, nil, id01, id10), sheaf.ErrChartNotFound)
	require.ErrorIs(t, cov.Glue(a.ID(), b.ID(), r1.One(), nil, id01, id10), sheaf.ErrRingMismatch)

	require.NoError(t, cov.Glue(a.ID(), b.ID(), nil, nil, id01, id10))
	require.ErrorIs(t, cov.Glue(b.ID(), a.ID(), nil, nil, id10, id01), sheaf.ErrAlreadyGlued)

	g, ok := cov.GlueingBetween(b.ID(), a.ID())
	require.True(t, ok, "glueings are undirected")
	// a nil locus is stored as the constant 1
	require.True(t, g.Locus(a.ID()).Equal(r0.One()))
	require.True(t, g.Locus(b.ID()).Equal(r1.One()))

	require.Equal(t, []sheaf.ChartID{b.ID()}, cov.Neighbors(a.ID()))
	require.Empty(t, cov.Neighbors(7))
}

func TestGlueingDirections(t *testing.T) {
	cov, u0, u1 := projectiveLine(t)
	g, ok := cov.GlueingBetween(u0.ID(), u1.ID())
	require.True(t, ok)

	// transport of a point through each direction of the glueing
	rt := u0.Ring()
	rs := u1.Ring()
	moved, err := g.From(u0.ID()).Transport(ring.MustIdeal(rt, ring.MustParse(rt, "t - 2")))
	require.NoError(t, err)
	requireIdealsEqual(t, moved, ring.MustIdeal(rs, ring.MustParse(rs, "s - 1/2")))

	back, err := g.From(u1.ID()).Transport(moved)
	require.NoError(t, err)
	requireIdealsEqual(t, back, ring.MustIdeal(rt, ring.MustParse(rt, "t - 2")))
}

func TestSmoothLCICoverUnimplemented(t *testing.T) {
	_, err := sheaf.NewCovering().SmoothLCICover()
	require.ErrorIs(t, err, sheaf.ErrUnimplemented)
}
