package ring

import (
	"errors"
	"strings"
)

// ErrEmptyIdeal is returned when an operation needs at least one generator.
var ErrEmptyIdeal = errors.New("ring: ideal has no generators")

// Ideal is an ordered sequence of generators over one ring, together with a
// one-slot basis cache. The cache holds, for a single ordering, either a
// computed standard basis, a note that the generators themselves are one, or
// both. Generators are fixed at construction, so the cache can never go
// stale; it is however mutated in place without synchronization, and callers
// sharing an Ideal across goroutines must serialize access themselves.
type Ideal struct {
	ring *Ring
	gens []*Polynomial

	cache basisCache
}

// basisCache is valid only as a whole: ord qualifies both fields.
type basisCache struct {
	ord      Ordering
	basis    []*Polynomial // computed standard basis for ord, nil if unset
	verified bool          // the generator sequence itself is a basis for ord
}

// NewIdeal builds an ideal from generators over r. Zero generators are kept
// (the sequence is ordered and length-preserving); an empty sequence is the
// zero ideal. Generators from another ring are rejected.
func NewIdeal(r *Ring, gens ...*Polynomial) (*Ideal, error) {
	cp := make([]*Polynomial, len(gens))
	for i, g := range gens {
		if g == nil || g.Ring() != r {
			return nil, ErrRingMismatch
		}
		cp[i] = g
	}
	return &Ideal{ring: r, gens: cp}, nil
}

// MustIdeal is NewIdeal that panics on error.
func MustIdeal(r *Ring, gens ...*Polynomial) *Ideal {
	i, err := NewIdeal(r, gens...)
	if err != nil {
		panic(err)
	}
	return i
}

// Ring returns the ambient ring.
func (i *Ideal) Ring() *Ring { return i.ring }

// Len returns the number of generators.
func (i *Ideal) Len() int { return len(i.gens) }

// Gen returns generator k.
func (i *Ideal) Gen(k int) *Polynomial { return i.gens[k] }

// Gens returns a copy of the generator sequence.
func (i *Ideal) Gens() []*Polynomial { return append([]*Polynomial(nil), i.gens...) }

// IsZeroIdeal reports whether every generator is zero.
func (i *Ideal) IsZeroIdeal() bool {
	for _, g := range i.gens {
		if !g.IsZero() {
			return false
		}
	}
	return true
}

// ContainsUnitGenerator reports whether some generator is a nonzero
// constant, which makes the ideal the whole ring.
func (i *Ideal) ContainsUnitGenerator() bool {
	for _, g := range i.gens {
		if !g.IsZero() && g.IsConstant() {
			return true
		}
	}
	return false
}

// Sum returns the ideal generated by both generator sequences. The result
// carries no cache.
func (i *Ideal) Sum(j *Ideal) (*Ideal, error) {
	if i.ring != j.ring {
		return nil, ErrRingMismatch
	}
	return NewIdeal(i.ring, append(i.Gens(), j.gens...)...)
}

// Product returns the ideal generated by all pairwise products.
func (i *Ideal) Product(j *Ideal) (*Ideal, error) {
	if i.ring != j.ring {
		return nil, ErrRingMismatch
	}
	gens := make([]*Polynomial, 0, len(i.gens)*len(j.gens))
	for _, a := range i.gens {
		for _, b := range j.gens {
			gens = append(gens, a.Mul(b))
		}
	}
	return NewIdeal(i.ring, gens...)
}

// MarkBasis records that the generator sequence itself is a standard basis
// for ord. Single-writer: see the type comment.
func (i *Ideal) MarkBasis(ord Ordering) {
	if i.cache.ord != ord {
		i.cache = basisCache{ord: ord}
	}
	i.cache.verified = true
	if i.cache.basis == nil {
		i.cache.basis = i.Gens()
	}
}

// KnownBasis reports whether the generators are known to be a standard
// basis for ord.
func (i *Ideal) KnownBasis(ord Ordering) bool {
	return i.cache.verified && i.cache.ord == ord
}

// SetCachedBasis stores a computed standard basis for ord, replacing any
// cache for a different ordering.
func (i *Ideal) SetCachedBasis(ord Ordering, basis []*Polynomial) {
	i.cache = basisCache{ord: ord, basis: append([]*Polynomial(nil), basis...)}
}

// CachedBasis returns the stored standard basis for ord, if any.
func (i *Ideal) CachedBasis(ord Ordering) ([]*Polynomial, bool) {
	if i.cache.basis == nil || i.cache.ord != ord {
		return nil, false
	}
	return append([]*Polynomial(nil), i.cache.basis...), true
}

// String renders the ideal as "<g1, g2, ...>".
func (i *Ideal) String() string {
	parts := make([]string, len(i.gens))
	for k, g := range i.gens {
		parts[k] = g.String()
	}
	return "<" + strings.Join(parts, ", ") + ">"
}
