package sheaf

import (
	"errors"
	"sort"

	"github.com/mvolkhin/zariski/ring"
)

// ErrNotMonomial indicates a generator with more than one term where a
// monomial ideal was required.
var ErrNotMonomial = errors.New("sheaf: generator is not a monomial")

// MonomialMinimalPrimes is a ready-made DecomposeFunc for monomial ideals:
// the minimal primes of ⟨m1,…,mk⟩ are the ideals generated by the minimal
// variable sets hitting the support of every generator (this computes the
// minimal primes of the radical, so non-squarefree generators are fine).
// General ideals still need a caller-supplied decomposition engine.
func MonomialMinimalPrimes(ideal *ring.Ideal) ([]*ring.Ideal, error) {
	r := ideal.Ring()

	var supports [][]int
	for _, g := range ideal.Gens() {
		if g.IsZero() {
			continue
		}
		if g.Len() != 1 {
			return nil, ErrNotMonomial
		}
		t := g.Terms()[0]
		var sup []int
		for i, e := range t.Exp {
			if e > 0 {
				sup = append(sup, i)
			}
		}
		if len(sup) == 0 {
			// unit generator: the whole ring, no primes
			return nil, nil
		}
		supports = append(supports, sup)
	}
	if len(supports) == 0 {
		// zero ideal: its one minimal prime is itself
		zero, err := ring.NewIdeal(r)
		if err != nil {
			return nil, err
		}
		return []*ring.Ideal{zero}, nil
	}

	covers := minimalHittingSets(supports, r.NumVars())

	out := make([]*ring.Ideal, 0, len(covers))
	for _, cover := range covers {
		gens := make([]*ring.Polynomial, 0, len(cover))
		for _, v := range cover {
			gens = append(gens, r.Var(v))
		}
		p, err := ring.NewIdeal(r, gens...)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// minimalHittingSets enumerates the inclusion-minimal variable sets meeting
// every support. Exponential in the worst case, like the combinatorial
// problem itself; intended for the small per-chart ideals that arise here.
func minimalHittingSets(supports [][]int, nvars int) [][]int {
	var all [][]int
	var walk func(idx int, chosen map[int]bool)
	walk = func(idx int, chosen map[int]bool) {
		if idx == len(supports) {
			set := make([]int, 0, len(chosen))
			for v := range chosen {
				set = append(set, v)
			}
			sort.Ints(set)
			all = append(all, set)
			return
		}
		hit := false
		for _, v := range supports[idx] {
			if chosen[v] {
				hit = true
				break
			}
		}
		if hit {
			walk(idx+1, chosen)
			return
		}
		for _, v := range supports[idx] {
			chosen[v] = true
			walk(idx+1, chosen)
			delete(chosen, v)
		}
	}
	walk(0, make(map[int]bool))

	// prune non-minimal and duplicate sets
	sort.Slice(all, func(i, j int) bool { return len(all[i]) < len(all[j]) })
	var out [][]int
	for _, cand := range all {
		keep := true
		for _, kept := range out {
			if subset(kept, cand) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, cand)
		}
	}
	return out
}

// subset reports a ⊆ b for sorted int slices.
func subset(a, b []int) bool {
	i := 0
	for _, x := range b {
		if i < len(a) && a[i] == x {
			i++
		}
	}
	return i == len(a)
}
