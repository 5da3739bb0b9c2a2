// Package stdbasis verifies standard and Gröbner bases with the Buchberger
// criterion: a generator sequence is a standard basis for an ordering
// exactly when every S-polynomial of a pair of generators reduces to zero
// against the full sequence.
//
// Verification mutates the checked ideal's basis cache on success, so a
// second call with the same ordering returns immediately. The cache write
// follows the kernel's single-writer contract; concurrent verification of
// one ideal is not safe.
package stdbasis

import (
	"errors"

	"github.com/mvolkhin/zariski/reduce"
	"github.com/mvolkhin/zariski/ring"
)

// ErrLocalOrdering rejects IsGroebnerBasis calls with a local ordering:
// Gröbner bases are standard bases under global orderings only.
var ErrLocalOrdering = errors.New("stdbasis: Gröbner basis verification requires a global ordering")

// ErrNilInput indicates a nil ideal argument.
var ErrNilInput = errors.New("stdbasis: nil ideal")

// IsStandardBasis reports whether the ideal's generator sequence is a
// standard basis for ord (the ring default when ord is nil). A cached
// positive verdict for the same ordering short-circuits the test. The pair
// loop returns false on the first nonzero S-polynomial remainder without
// testing the remaining pairs; a full pass of zeros records the verdict in
// the ideal's cache.
func IsStandardBasis(ideal *ring.Ideal, ord ring.Ordering) (bool, error) {
	if ideal == nil {
		return false, ErrNilInput
	}
	if ord == nil {
		ord = ideal.Ring().Ordering()
	}
	if ideal.KnownBasis(ord) {
		return true, nil
	}

	gens := ideal.Gens()
	for i := 0; i < len(gens); i++ {
		if gens[i].IsZero() {
			continue
		}
		for j := i + 1; j < len(gens); j++ {
			if gens[j].IsZero() {
				continue
			}
			s, err := reduce.SPolynomial(gens[i], gens[j], ord)
			if err != nil {
				return false, err
			}
			rem, err := reduce.Reduce(s, ideal, reduce.WithOrdering(ord))
			if err != nil {
				return false, err
			}
			if !rem.IsZero() {
				return false, nil
			}
		}
	}

	ideal.MarkBasis(ord)

	return true, nil
}

// IsGroebnerBasis is IsStandardBasis restricted to global orderings; a
// local ordering is a usage error.
func IsGroebnerBasis(ideal *ring.Ideal, ord ring.Ordering) (bool, error) {
	if ideal == nil {
		return false, ErrNilInput
	}
	if ord == nil {
		ord = ideal.Ring().Ordering()
	}
	if !ord.Global() {
		return false, ErrLocalOrdering
	}
	return IsStandardBasis(ideal, ord)
}
