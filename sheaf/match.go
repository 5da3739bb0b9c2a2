package sheaf

import (
	"sort"

	"github.com/mvolkhin/zariski/reduce"
	"github.com/mvolkhin/zariski/ring"
)

// Component is one global component of an ideal sheaf, built incrementally:
// a chart → local prime (or primary) ideal map. Charts where the component
// is absent carry the unit ideal once the record is finalized.
type Component struct {
	locals map[ChartID]*ring.Ideal
}

// Ideal returns the component's local ideal on a chart.
func (c *Component) Ideal(id ChartID) (*ring.Ideal, bool) {
	i, ok := c.locals[id]
	return i, ok
}

// Charts returns the charts with an entry, in id order.
func (c *Component) Charts() []ChartID {
	out := make([]ChartID, 0, len(c.locals))
	for id := range c.locals {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithConsistencyCheck makes the matcher fail loudly (ErrInconsistent) when
// one record both confirms and contradicts a candidate component across
// different overlaps, instead of treating the contradiction as a plain
// mismatch.
func WithConsistencyCheck() MatcherOption {
	return func(m *Matcher) { m.check = true }
}

// Matcher assigns freshly computed local components to cross-chart
// component records over one covering.
type Matcher struct {
	cov   *Covering
	check bool
}

// NewMatcher builds a matcher for the covering.
func NewMatcher(cov *Covering, opts ...MatcherOption) *Matcher {
	m := &Matcher{cov: cov}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// verdict of one record against one candidate component.
type verdict struct {
	confirmed    bool
	contradicted bool
}

// compare inspects every chart of the record glued to u, restricting both
// the record's local ideal and the transported candidate to the overlap.
// Unit restrictions carry no information; equal non-unit restrictions
// confirm, unequal ones contradict.
func (m *Matcher) compare(rec *Component, u ChartID, comp *ring.Ideal) (verdict, error) {
	var v verdict
	for _, w := range rec.Charts() {
		g, ok := m.cov.GlueingBetween(u, w)
		if !ok {
			continue
		}
		moved, err := g.From(u).Transport(comp)
		if err != nil {
			return v, err
		}
		lhs, err := reduce.Saturate(moved, g.Locus(w))
		if err != nil {
			return v, err
		}
		rhs, err := reduce.Saturate(rec.locals[w], g.Locus(w))
		if err != nil {
			return v, err
		}
		lhsUnit, err := reduce.IsUnitIdeal(lhs)
		if err != nil {
			return v, err
		}
		rhsUnit, err := reduce.IsUnitIdeal(rhs)
		if err != nil {
			return v, err
		}
		if lhsUnit || rhsUnit {
			continue // trivial overlap: vacuously present or absent
		}
		equal, err := reduce.IdealsEqual(lhs, rhs)
		if err != nil {
			return v, err
		}
		if equal {
			v.confirmed = true
		} else {
			v.contradicted = true
		}
	}
	return v, nil
}

// Absorb places a local component found on chart u into the record list:
// no matching record starts a new one, exactly one match extends it, and
// several matches reveal that those records were one global component and
// merges them (the survivor keeps the lowest position). The updated list is
// returned; records is not reused afterwards by the caller.
func (m *Matcher) Absorb(records []*Component, u ChartID, comp *ring.Ideal) ([]*Component, error) {
	if _, err := m.cov.Chart(u); err != nil {
		return nil, err
	}
	ch, _ := m.cov.Chart(u)
	if comp == nil || comp.Ring() != ch.Ring() {
		return nil, ErrRingMismatch
	}

	var matched []int
	for idx, rec := range records {
		v, err := m.compare(rec, u, comp)
		if err != nil {
			return nil, err
		}
		if m.check && v.confirmed && v.contradicted {
			return nil, ErrInconsistent
		}
		if v.contradicted {
			continue
		}
		if v.confirmed {
			matched = append(matched, idx)
		}
	}

	switch len(matched) {
	case 0:
		rec := &Component{locals: map[ChartID]*ring.Ideal{u: comp}}
		return append(records, rec), nil
	case 1:
		records[matched[0]].locals[u] = comp
		return records, nil
	}

	// several records turned out to be one component: merge into the first
	survivor := records[matched[0]]
	drop := make(map[int]bool, len(matched)-1)
	for _, idx := range matched[1:] {
		for id, ideal := range records[idx].locals {
			if _, exists := survivor.locals[id]; !exists {
				survivor.locals[id] = ideal
			}
		}
		drop[idx] = true
	}
	survivor.locals[u] = comp

	out := records[:0]
	for idx, rec := range records {
		if !drop[idx] {
			out = append(out, rec)
		}
	}
	return out, nil
}

// finalize fills every chart missing from a record with the unit ideal:
// the component is absent there.
func finalize(cov *Covering, records []*Component) []*Component {
	for _, rec := range records {
		for _, ch := range cov.charts {
			if _, ok := rec.locals[ch.id]; !ok {
				rec.locals[ch.id] = ring.MustIdeal(ch.ring, ch.ring.One())
			}
		}
	}
	return records
}
