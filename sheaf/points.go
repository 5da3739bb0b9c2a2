package sheaf

import (
	"sort"

	"github.com/mvolkhin/zariski/reduce"
	"github.com/mvolkhin/zariski/ring"
)

// DecomposeFunc computes a per-chart decomposition of a local ideal into
// prime ideals (minimal primes, or all associated primes). Decomposition is
// an external-engine concern; the sheaf layer only consumes the results.
type DecomposeFunc func(*ring.Ideal) ([]*ring.Ideal, error)

// PrimaryPair is one primary component with its associated prime.
type PrimaryPair struct {
	Primary, Prime *ring.Ideal
}

// PrimaryDecomposeFunc computes a per-chart primary decomposition.
type PrimaryDecomposeFunc func(*ring.Ideal) ([]PrimaryPair, error)

// MinimalAssociatedPoints computes the global components whose local data
// are the minimal primes of the sheaf's local ideals, matched across
// charts. The sheaf is extended first if incomplete. Finished records carry
// the unit ideal on charts where the component is absent.
func MinimalAssociatedPoints(s *IdealSheaf, minimalPrimes DecomposeFunc, opts ...MatcherOption) ([]*Component, error) {
	return matchPointwise(s, minimalPrimes, opts)
}

// AssociatedPoints is MinimalAssociatedPoints with all associated primes
// per chart instead of the minimal ones.
func AssociatedPoints(s *IdealSheaf, associatedPrimes DecomposeFunc, opts ...MatcherOption) ([]*Component, error) {
	return matchPointwise(s, associatedPrimes, opts)
}

func matchPointwise(s *IdealSheaf, decompose DecomposeFunc, opts []MatcherOption) ([]*Component, error) {
	if decompose == nil {
		return nil, reduce.ErrNilInput
	}
	if !s.Complete() {
		if err := s.Extend(); err != nil {
			return nil, err
		}
	}

	m := NewMatcher(s.cov, opts...)
	var records []*Component
	for _, ch := range s.cov.charts {
		local := s.local[ch.id]
		unit, err := reduce.IsUnitIdeal(local)
		if err != nil {
			return nil, err
		}
		if unit {
			continue // nothing vanishes on this chart
		}
		comps, err := decompose(local)
		if err != nil {
			return nil, err
		}
		for _, comp := range comps {
			trivial, err := reduce.IsUnitIdeal(comp)
			if err != nil {
				return nil, err
			}
			if trivial {
				continue
			}
			records, err = m.Absorb(records, ch.id, comp)
			if err != nil {
				return nil, err
			}
		}
	}

	return finalize(s.cov, records), nil
}

// PrimaryComponent is one global primary component: per chart, the primary
// ideal and its radical. Both maps are filled with the unit ideal on
// absent charts once finalized.
type PrimaryComponent struct {
	primaries map[ChartID]*ring.Ideal
	primes    map[ChartID]*ring.Ideal
}

// Primary returns the primary ideal on a chart.
func (c *PrimaryComponent) Primary(id ChartID) (*ring.Ideal, bool) {
	i, ok := c.primaries[id]
	return i, ok
}

// Prime returns the associated prime on a chart.
func (c *PrimaryComponent) Prime(id ChartID) (*ring.Ideal, bool) {
	i, ok := c.primes[id]
	return i, ok
}

// Charts returns the charts with entries, in id order.
func (c *PrimaryComponent) Charts() []ChartID {
	out := make([]ChartID, 0, len(c.primes))
	for id := range c.primes {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PrimaryComponents computes the global primary components of the sheaf:
// per chart primary decompositions, matched across charts with the
// radical-matching test as a pre-filter and equality of the restricted
// primary ideals as confirmation.
func PrimaryComponents(s *IdealSheaf, decompose PrimaryDecomposeFunc, opts ...MatcherOption) ([]*PrimaryComponent, error) {
	if decompose == nil {
		return nil, reduce.ErrNilInput
	}
	if !s.Complete() {
		if err := s.Extend(); err != nil {
			return nil, err
		}
	}

	m := NewMatcher(s.cov, opts...)
	var records []*PrimaryComponent
	for _, ch := range s.cov.charts {
		local := s.local[ch.id]
		unit, err := reduce.IsUnitIdeal(local)
		if err != nil {
			return nil, err
		}
		if unit {
			continue
		}
		pairs, err := decompose(local)
		if err != nil {
			return nil, err
		}
		for _, pair := range pairs {
			trivial, err := reduce.IsUnitIdeal(pair.Primary)
			if err != nil {
				return nil, err
			}
			if trivial {
				continue
			}
			records, err = m.absorbPrimary(records, ch.id, pair)
			if err != nil {
				return nil, err
			}
		}
	}

	for _, rec := range records {
		for _, ch := range s.cov.charts {
			if _, ok := rec.primes[ch.id]; !ok {
				unit := ring.MustIdeal(ch.ring, ch.ring.One())
				rec.primes[ch.id] = unit
				rec.primaries[ch.id] = unit
			}
		}
	}
	return records, nil
}

// absorbPrimary follows the same tie-break and merge policy as Absorb, with
// the two-stage comparison: radicals pre-filter, primaries confirm.
func (m *Matcher) absorbPrimary(records []*PrimaryComponent, u ChartID, pair PrimaryPair) ([]*PrimaryComponent, error) {
	ch, err := m.cov.Chart(u)
	if err != nil {
		return nil, err
	}
	if pair.Primary == nil || pair.Prime == nil ||
		pair.Primary.Ring() != ch.Ring() || pair.Prime.Ring() != ch.Ring() {
		return nil, ErrRingMismatch
	}

	var matched []int
	for idx, rec := range records {
		v, err := m.comparePrimary(rec, u, pair)
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
		rec := &PrimaryComponent{
			primaries: map[ChartID]*ring.Ideal{u: pair.Primary},
			primes:    map[ChartID]*ring.Ideal{u: pair.Prime},
		}
		return append(records, rec), nil
	case 1:
		records[matched[0]].primaries[u] = pair.Primary
		records[matched[0]].primes[u] = pair.Prime
		return records, nil
	}

	survivor := records[matched[0]]
	drop := make(map[int]bool, len(matched)-1)
	for _, idx := range matched[1:] {
		for id, ideal := range records[idx].primaries {
			if _, exists := survivor.primaries[id]; !exists {
				survivor.primaries[id] = ideal
				survivor.primes[id] = records[idx].primes[id]
			}
		}
		drop[idx] = true
	}
	survivor.primaries[u] = pair.Primary
	survivor.primes[u] = pair.Prime

	out := records[:0]
	for idx, rec := range records {
		if !drop[idx] {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *Matcher) comparePrimary(rec *PrimaryComponent, u ChartID, pair PrimaryPair) (verdict, error) {
	var v verdict
	for _, w := range rec.Charts() {
		g, ok := m.cov.GlueingBetween(u, w)
		if !ok {
			continue
		}

		// stage one: radicals on the overlap
		movedPrime, err := g.From(u).Transport(pair.Prime)
		if err != nil {
			return v, err
		}
		lhsP, err := reduce.Saturate(movedPrime, g.Locus(w))
		if err != nil {
			return v, err
		}
		rhsP, err := reduce.Saturate(rec.primes[w], g.Locus(w))
		if err != nil {
			return v, err
		}
		lhsUnit, err := reduce.IsUnitIdeal(lhsP)
		if err != nil {
			return v, err
		}
		rhsUnit, err := reduce.IsUnitIdeal(rhsP)
		if err != nil {
			return v, err
		}
		if lhsUnit || rhsUnit {
			continue
		}
		primesEqual, err := reduce.IdealsEqual(lhsP, rhsP)
		if err != nil {
			return v, err
		}
		if !primesEqual {
			v.contradicted = true
			continue
		}

		// stage two: the primary ideals themselves must agree
		movedQ, err := g.From(u).Transport(pair.Primary)
		if err != nil {
			return v, err
		}
		lhsQ, err := reduce.Saturate(movedQ, g.Locus(w))
		if err != nil {
			return v, err
		}
		rhsQ, err := reduce.Saturate(rec.primaries[w], g.Locus(w))
		if err != nil {
			return v, err
		}
		primariesEqual, err := reduce.IdealsEqual(lhsQ, rhsQ)
		if err != nil {
			return v, err
		}
		if primariesEqual {
			v.confirmed = true
		} else {
			v.contradicted = true
		}
	}
	return v, nil
}
