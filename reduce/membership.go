package reduce

import "github.com/mvolkhin/zariski/ring"

// membershipOrdering picks a global ordering for membership-style tests:
// the ring default when it is global, degrevlex otherwise. Normal forms
// under a global ordering vanish exactly on ideal members.
func membershipOrdering(r *ring.Ring) ring.Ordering {
	if r.Ordering().Global() {
		return r.Ordering()
	}
	return ring.DegRevLex
}

// Contains reports whether f lies in the ideal, by normal form against a
// Gröbner basis under a global ordering. Requires an exact field.
func Contains(ideal *ring.Ideal, f *ring.Polynomial, opts ...Option) (bool, error) {
	if ideal == nil || f == nil {
		return false, ErrNilInput
	}
	if f.Ring() != ideal.Ring() {
		return false, ErrRingMismatch
	}
	if f.IsZero() {
		return true, nil
	}
	ord := membershipOrdering(ideal.Ring())
	nf, err := NormalForm(f, ideal, append(opts, WithOrdering(ord))...)
	if err != nil {
		return false, err
	}
	return nf.IsZero(), nil
}

// ContainsIdeal reports J ⊆ I.
func ContainsIdeal(i, j *ring.Ideal, opts ...Option) (bool, error) {
	if i == nil || j == nil {
		return false, ErrNilInput
	}
	if i.Ring() != j.Ring() {
		return false, ErrRingMismatch
	}
	for _, g := range j.Gens() {
		in, err := Contains(i, g, opts...)
		if err != nil {
			return false, err
		}
		if !in {
			return false, nil
		}
	}
	return true, nil
}

// IdealsEqual reports set equality of the two ideals by mutual inclusion.
func IdealsEqual(i, j *ring.Ideal, opts ...Option) (bool, error) {
	fwd, err := ContainsIdeal(i, j, opts...)
	if err != nil || !fwd {
		return false, err
	}
	return ContainsIdeal(j, i, opts...)
}

// IsUnitIdeal reports whether the ideal is the whole ring, by checking for
// a nonzero constant in its Gröbner basis. The ideal's basis cache is left
// untouched.
func IsUnitIdeal(ideal *ring.Ideal, opts ...Option) (bool, error) {
	if ideal == nil {
		return false, ErrNilInput
	}
	if ideal.ContainsUnitGenerator() {
		return true, nil
	}
	ord := membershipOrdering(ideal.Ring())
	basis, err := scratchBasis(ideal, append(opts, WithOrdering(ord))...)
	if err != nil {
		return false, err
	}
	for _, g := range basis {
		if !g.IsZero() && g.IsConstant() {
			return true, nil
		}
	}
	return false, nil
}
