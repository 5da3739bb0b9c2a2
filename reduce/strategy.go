package reduce

import "github.com/mvolkhin/zariski/ring"

// Strategy selects the normal-form engine.
type Strategy int

const (
	// StrategyGeneral: standard basis for the requested ordering plus the
	// general division engine. Works for every exact field and ordering.
	StrategyGeneral Strategy = iota

	// StrategyFastPrimeField: flat uint64 reducer, available only for the
	// graded-reverse-lexicographic ordering on an ungraded ring over a
	// prime field of characteristic below 2^31.
	StrategyFastPrimeField
)

func (s Strategy) String() string {
	if s == StrategyFastPrimeField {
		return "fast-prime-field"
	}
	return "general"
}

// SelectStrategy is the pure predicate choosing the normal-form engine for
// an ideal and ordering. It never mutates its arguments.
func SelectStrategy(ideal *ring.Ideal, ord ring.Ordering) Strategy {
	if ord != ring.DegRevLex {
		return StrategyGeneral
	}
	r := ideal.Ring()
	if r.Graded() {
		return StrategyGeneral
	}
	pf, ok := r.Field().(*ring.PrimeField)
	if !ok || pf.Characteristic() >= 1<<31 {
		return StrategyGeneral
	}
	return StrategyFastPrimeField
}

// NormalForm computes the normal form of f against the ideal: the remainder
// of f under a standard basis of the ideal for the requested ordering.
// The coefficient field must be exact; inexact fields fail immediately with
// ErrInexactField before any basis work. The basis is taken from the
// ideal's cache when present and computed (and cached) otherwise.
func NormalForm(f *ring.Polynomial, ideal *ring.Ideal, opts ...Option) (*ring.Polynomial, error) {
	out, err := NormalFormList([]*ring.Polynomial{f}, ideal, opts...)
	if err != nil {
		return nil, err
	}
	return out[0], nil
}

// NormalFormList is NormalForm over a list; the result preserves length and
// zero entries.
func NormalFormList(fs []*ring.Polynomial, ideal *ring.Ideal, opts ...Option) ([]*ring.Polynomial, error) {
	if ideal == nil {
		return nil, ErrNilInput
	}
	r := ideal.Ring()
	if !r.Field().Exact() {
		return nil, ErrInexactField
	}
	for _, f := range fs {
		if f == nil {
			return nil, ErrNilInput
		}
		if f.Ring() != r {
			return nil, ErrRingMismatch
		}
	}
	o := buildOptions(r, opts)

	basis, err := Basis(ideal, opts...)
	if err != nil {
		return nil, err
	}
	if len(basis) == 0 {
		// zero ideal: everything is its own normal form
		return append([]*ring.Polynomial(nil), fs...), nil
	}

	if SelectStrategy(ideal, o.Ord) == StrategyFastPrimeField {
		return fastNormalFormList(fs, basis)
	}

	basisIdeal, err := ring.NewIdeal(r, basis...)
	if err != nil {
		return nil, err
	}
	basisIdeal.MarkBasis(o.Ord)
	return ReduceList(fs, basisIdeal, opts...)
}
