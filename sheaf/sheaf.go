package sheaf

import (
	"fmt"
	"sort"

	"github.com/mvolkhin/zariski/reduce"
	"github.com/mvolkhin/zariski/ring"
)

// IdealSheaf assigns a local ideal to charts of a covering. It starts from
// a seed on a subset of charts and is completed by Extend; Simplify and the
// points functions mutate it in place under the usual single-writer
// contract.
type IdealSheaf struct {
	cov   *Covering
	local map[ChartID]*ring.Ideal
}

// New builds a sheaf from a seed assignment. Seed ideals are re-wrapped
// into fresh Ideal values so the sheaf never shares mutable cache state
// with the caller; use NewUnchecked to skip that copy. Every seed chart
// must belong to the covering with an ideal over its coordinate ring.
func New(cov *Covering, seed map[ChartID]*ring.Ideal) (*IdealSheaf, error) {
	sh := &IdealSheaf{cov: cov, local: make(map[ChartID]*ring.Ideal, len(seed))}
	for id, ideal := range seed {
		ch, err := cov.Chart(id)
		if err != nil {
			return nil, err
		}
		if ideal == nil || ideal.Ring() != ch.Ring() {
			return nil, fmt.Errorf("%w: chart %d", ErrRingMismatch, id)
		}
		cp, err := ring.NewIdeal(ch.Ring(), ideal.Gens()...)
		if err != nil {
			return nil, err
		}
		sh.local[id] = cp
	}
	return sh, nil
}

// NewUnchecked wraps the seed map's ideals directly, sharing them with the
// caller, and performs no validation.
func NewUnchecked(cov *Covering, seed map[ChartID]*ring.Ideal) *IdealSheaf {
	local := make(map[ChartID]*ring.Ideal, len(seed))
	for id, ideal := range seed {
		local[id] = ideal
	}
	return &IdealSheaf{cov: cov, local: local}
}

// Covering returns the underlying covering.
func (s *IdealSheaf) Covering() *Covering { return s.cov }

// Ideal returns the local ideal on a chart, if assigned.
func (s *IdealSheaf) Ideal(id ChartID) (*ring.Ideal, bool) {
	i, ok := s.local[id]
	return i, ok
}

// Seeded returns the charts currently carrying an ideal, in id order.
func (s *IdealSheaf) Seeded() []ChartID {
	out := make([]ChartID, 0, len(s.local))
	for id := range s.local {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Complete reports whether every chart of the covering has an ideal.
func (s *IdealSheaf) Complete() bool { return len(s.local) == s.cov.Len() }

// Sum returns the chartwise sum sheaf. Both sheaves must live on the same
// Covering value and be assigned on the same charts.
func (s *IdealSheaf) Sum(t *IdealSheaf) (*IdealSheaf, error) {
	return s.combine(t, (*ring.Ideal).Sum)
}

// Product returns the chartwise product sheaf.
func (s *IdealSheaf) Product(t *IdealSheaf) (*IdealSheaf, error) {
	return s.combine(t, (*ring.Ideal).Product)
}

func (s *IdealSheaf) combine(t *IdealSheaf, op func(*ring.Ideal, *ring.Ideal) (*ring.Ideal, error)) (*IdealSheaf, error) {
	if t == nil || s.cov != t.cov {
		return nil, ErrCoveringMismatch
	}
	out := &IdealSheaf{cov: s.cov, local: make(map[ChartID]*ring.Ideal, len(s.local))}
	for id, a := range s.local {
		b, ok := t.local[id]
		if !ok {
			return nil, fmt.Errorf("%w: chart %d assigned on one side only", ErrCoveringMismatch, id)
		}
		c, err := op(a, b)
		if err != nil {
			return nil, err
		}
		out.local[id] = c
	}
	return out, nil
}

// Simplify replaces every local ideal's generators with an interreduced
// set, in place.
func (s *IdealSheaf) Simplify(opts ...reduce.Option) error {
	o := reduce.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	for _, id := range s.Seeded() {
		ideal := s.local[id]
		ord := o.Ord
		if ord == nil {
			ord = ideal.Ring().Ordering()
		}
		gens, err := reduce.Interreduce(ideal.Gens(), ord)
		if err != nil {
			return err
		}
		slim, err := ring.NewIdeal(ideal.Ring(), gens...)
		if err != nil {
			return err
		}
		s.local[id] = slim
	}
	return nil
}

// Validate checks the sheaf invariant: for every glued pair with ideals on
// both sides, the transported restriction from one chart agrees with the
// direct restriction on the other. Returns a wrapped ErrInconsistent naming
// the first failing pair.
func (s *IdealSheaf) Validate() error {
	for key, g := range s.cov.glueings {
		ia, okA := s.local[g.A]
		ib, okB := s.local[g.B]
		if !okA || !okB {
			continue
		}
		equal, err := restrictionsAgree(g, ia, ib)
		if err != nil {
			return err
		}
		if !equal {
			return fmt.Errorf("%w: charts %d and %d disagree on their overlap", ErrInconsistent, key[0], key[1])
		}
	}
	return nil
}

// restrictionsAgree compares I_A and I_B on the overlap of a glueing, both
// viewed inside chart B.
func restrictionsAgree(g *Glueing, ia, ib *ring.Ideal) (bool, error) {
	moved, err := g.AtoB.Transport(ia)
	if err != nil {
		return false, err
	}
	lhs, err := reduce.Saturate(moved, g.LocusB)
	if err != nil {
		return false, err
	}
	rhs, err := reduce.Saturate(ib, g.LocusB)
	if err != nil {
		return false, err
	}
	return reduce.IdealsEqual(lhs, rhs)
}
