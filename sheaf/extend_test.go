package sheaf_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvolkhin/zariski/ring"
	"github.com/mvolkhin/zariski/sheaf"
)

func TestExtendPropagatesAcrossGlueing(t *testing.T) {
	cov, u0, u1 := projectiveLine(t)
	rt, rs := u0.Ring(), u1.Ring()

	s, err := sheaf.New(cov, map[sheaf.ChartID]*ring.Ideal{
		u0.ID(): ring.MustIdeal(rt, ring.MustParse(rt, "t - 2")),
	})
	require.NoError(t, err)
	require.NoError(t, s.Extend())
	require.True(t, s.Complete())

	// the point t = 2 lands at s = 1/2 on the far chart
	got, ok := s.Ideal(u1.ID())
	require.True(t, ok)
	requireIdealsEqual(t, got, ring.MustIdeal(rs, ring.MustParse(rs, "s - 1/2")))
	require.NoError(t, s.Validate())
}

func TestExtendPointOutsideOverlap(t *testing.T) {
	cov, u0, u1 := projectiveLine(t)
	rt := u0.Ring()

	// t = 0 lies outside the overlap; the far chart sees nothing of it
	s, err := sheaf.New(cov, map[sheaf.ChartID]*ring.Ideal{
		u0.ID(): ring.MustIdeal(rt, rt.Var(0)),
	})
	require.NoError(t, err)
	require.NoError(t, s.Extend())

	got, _ := s.Ideal(u1.ID())
	require.True(t, got.ContainsUnitGenerator(), "transported closure of an invisible point is the unit ideal")
}

func TestExtendKeepsSeededCharts(t *testing.T) {
	cov, u0, u1 := projectiveLine(t)
	rt, rs := u0.Ring(), u1.Ring()

	// both charts seeded: Extend must not overwrite either side
	s, err := sheaf.New(cov, map[sheaf.ChartID]*ring.Ideal{
		u0.ID(): ring.MustIdeal(rt, ring.MustParse(rt, "t - 2")),
		u1.ID(): ring.MustIdeal(rs, ring.MustParse(rs, "s - 3")),
	})
	require.NoError(t, err)
	require.NoError(t, s.Extend())

	got, _ := s.Ideal(u1.ID())
	requireIdealsEqual(t, got, ring.MustIdeal(rs, ring.MustParse(rs, "s - 3")))
}

func TestExtendUnreachedChartsGetZeroIdeal(t *testing.T) {
	cov, u0, _ := projectiveLine(t)
	rt := u0.Ring()

	// an isolated chart no propagation can reach
	island := cov.AddChart(ring.MustRing(ring.Q, []string{"z"}), "island")

	s, err := sheaf.New(cov, map[sheaf.ChartID]*ring.Ideal{
		u0.ID(): ring.MustIdeal(rt, ring.MustParse(rt, "t - 2")),
	})
	require.NoError(t, err)
	require.NoError(t, s.Extend())
	require.True(t, s.Complete())

	got, ok := s.Ideal(island.ID())
	require.True(t, ok)
	require.True(t, got.IsZeroIdeal(), "unreached charts default to the zero ideal")
}

func TestExtendEmptySeed(t *testing.T) {
	cov, _, _ := projectiveLine(t)
	s := sheaf.NewUnchecked(cov, nil)

	require.NoError(t, s.Extend())
	require.True(t, s.Complete())
	for _, ch := range cov.Charts() {
		i, _ := s.Ideal(ch.ID())
		require.True(t, i.IsZeroIdeal())
	}
}

func TestExtendCancellation(t *testing.T) {
	cov, u0, _ := projectiveLine(t)
	rt := u0.Ring()

	s, err := sheaf.New(cov, map[sheaf.ChartID]*ring.Ideal{
		u0.ID(): ring.MustIdeal(rt, ring.MustParse(rt, "t - 2")),
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, s.Extend(sheaf.WithContext(ctx)), context.Canceled)
}
