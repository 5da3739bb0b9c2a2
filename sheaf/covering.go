package sheaf

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mvolkhin/zariski/ring"
)

// Sentinel errors for coverings and sheaves.
var (
	// ErrChartNotFound indicates a ChartID outside the arena.
	ErrChartNotFound = errors.New("sheaf: chart not found in covering")

	// ErrSelfGlue indicates an attempt to glue a chart to itself.
	ErrSelfGlue = errors.New("sheaf: cannot glue a chart to itself")

	// ErrAlreadyGlued indicates a second glueing for the same chart pair.
	ErrAlreadyGlued = errors.New("sheaf: chart pair already glued")

	// ErrCoveringMismatch indicates sheaves over different coverings.
	ErrCoveringMismatch = errors.New("sheaf: sheaves live on different coverings")

	// ErrInconsistent reports local component data that simultaneously
	// matches and contradicts a record across overlaps. Mathematically
	// impossible for correct inputs, so it is fatal, never retried.
	ErrInconsistent = errors.New("sheaf: local components match and contradict simultaneously")

	// ErrUnimplemented marks entry points that are declared but not built.
	ErrUnimplemented = errors.New("sheaf: not implemented")

	// ErrRingMismatch indicates an ideal on the wrong chart ring.
	ErrRingMismatch = errors.New("sheaf: ideal does not live in the chart's coordinate ring")
)

// ChartID is a stable index into a Covering's chart arena.
type ChartID int

// Chart is one affine piece of a covered space: a coordinate ring plus its
// arena identity.
type Chart struct {
	id   ChartID
	ring *ring.Ring
	name string
}

// ID returns the chart's arena index.
func (c *Chart) ID() ChartID { return c.id }

// Ring returns the chart's coordinate ring.
func (c *Chart) Ring() *ring.Ring { return c.ring }

// Name returns the diagnostic name given at AddChart.
func (c *Chart) Name() string { return c.name }

// Transition transports an ideal across a glueing: given an ideal on the
// near chart it returns the saturated defining ideal of the Zariski closure
// of the transported locus on the far chart. Implementations are free to
// treat closure and saturation as black boxes of the coordinate-ring layer.
type Transition interface {
	Transport(ideal *ring.Ideal) (*ring.Ideal, error)
}

// TransitionFunc adapts a plain function to the Transition interface.
type TransitionFunc func(*ring.Ideal) (*ring.Ideal, error)

// Transport implements Transition.
func (f TransitionFunc) Transport(ideal *ring.Ideal) (*ring.Ideal, error) { return f(ideal) }

// Glueing records the overlap between two charts: the loci D(LocusA) ⊆ A
// and D(LocusB) ⊆ B identified by the transitions AtoB and BtoA.
type Glueing struct {
	A, B           ChartID
	LocusA, LocusB *ring.Polynomial
	AtoB, BtoA     Transition
}

// From returns the transition leaving the given chart. id must be one of
// the glueing's two charts.
func (g *Glueing) From(id ChartID) Transition {
	if id == g.A {
		return g.AtoB
	}
	return g.BtoA
}

// Locus returns the overlap locus on the given chart's side.
func (g *Glueing) Locus(id ChartID) *ring.Polynomial {
	if id == g.A {
		return g.LocusA
	}
	return g.LocusB
}

// Covering is an arena of charts plus an undirected glueing graph. ChartIDs
// are assigned densely in AddChart order and never change, which is what
// makes per-chart maps stable and comparable.
type Covering struct {
	charts   []*Chart
	adj      map[ChartID][]ChartID
	glueings map[[2]ChartID]*Glueing
}

// NewCovering returns an empty covering.
func NewCovering() *Covering {
	return &Covering{
		adj:      make(map[ChartID][]ChartID),
		glueings: make(map[[2]ChartID]*Glueing),
	}
}

// AddChart appends a chart with the given coordinate ring and diagnostic
// name, returning its arena entry.
func (c *Covering) AddChart(r *ring.Ring, name string) *Chart {
	ch := &Chart{id: ChartID(len(c.charts)), ring: r, name: name}
	c.charts = append(c.charts, ch)
	return ch
}

// Len returns the number of charts.
func (c *Covering) Len() int { return len(c.charts) }

// Chart resolves a ChartID.
func (c *Covering) Chart(id ChartID) (*Chart, error) {
	if int(id) < 0 || int(id) >= len(c.charts) {
		return nil, fmt.Errorf("%w: id %d", ErrChartNotFound, id)
	}
	return c.charts[id], nil
}

// Charts returns the arena in id order.
func (c *Covering) Charts() []*Chart { return append([]*Chart(nil), c.charts...) }

// Glue records a glueing between two distinct charts. locusA/locusB are the
// overlap loci on each side (nil means the whole chart, stored as the
// constant 1); ab and ba are the two transports. One glueing per pair.
func (c *Covering) Glue(a, b ChartID, locusA, locusB *ring.Polynomial, ab, ba Transition) error {
	ca, err := c.Chart(a)
	if err != nil {
		return err
	}
	cb, err := c.Chart(b)
	if err != nil {
		return err
	}
	if a == b {
		return ErrSelfGlue
	}
	key := pairKey(a, b)
	if _, dup := c.glueings[key]; dup {
		return ErrAlreadyGlued
	}
	if locusA == nil {
		locusA = ca.ring.One()
	}
	if locusB == nil {
		locusB = cb.ring.One()
	}
	if locusA.Ring() != ca.ring || locusB.Ring() != cb.ring {
		return ErrRingMismatch
	}

	c.glueings[key] = &Glueing{A: a, B: b, LocusA: locusA, LocusB: locusB, AtoB: ab, BtoA: ba}
	c.adj[a] = append(c.adj[a], b)
	c.adj[b] = append(c.adj[b], a)

	return nil
}

// Neighbors returns the charts glued to id, sorted for determinism.
func (c *Covering) Neighbors(id ChartID) []ChartID {
	out := append([]ChartID(nil), c.adj[id]...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// GlueingBetween returns the glueing of a pair, if any.
func (c *Covering) GlueingBetween(a, b ChartID) (*Glueing, bool) {
	g, ok := c.glueings[pairKey(a, b)]
	return g, ok
}

// SmoothLCICover would refine the covering into one by smooth local
// complete intersections. It is declared for interface completeness and
// unconditionally fails; callers must not rely on it.
func (c *Covering) SmoothLCICover() (*Covering, error) {
	return nil, fmt.Errorf("%w: smooth local complete intersection cover", ErrUnimplemented)
}

func pairKey(a, b ChartID) [2]ChartID {
	if a > b {
		a, b = b, a
	}
	return [2]ChartID{a, b}
}
