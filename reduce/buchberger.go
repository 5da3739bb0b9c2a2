package reduce

import "github.com/mvolkhin/zariski/ring"

// Basis computes a standard basis of the ideal for the requested ordering
// (Gröbner basis when the ordering is global) with Buchberger's algorithm,
// reusing the ideal's cache when it already holds a basis for that
// ordering. The result is interreduced and monic, and is stored back into
// the ideal's cache. Single-writer discipline on the ideal applies.
func Basis(ideal *ring.Ideal, opts ...Option) ([]*ring.Polynomial, error) {
	if ideal == nil {
		return nil, ErrNilInput
	}
	r := ideal.Ring()
	o := buildOptions(r, opts)

	if b, ok := ideal.CachedBasis(o.Ord); ok {
		return b, nil
	}

	g := make([]*ring.Polynomial, 0, ideal.Len())
	for _, gen := range ideal.Gens() {
		if gen.IsZero() {
			continue
		}
		m, err := monic(gen, o.Ord)
		if err != nil {
			return nil, err
		}
		g = append(g, m)
	}
	if len(g) == 0 {
		ideal.SetCachedBasis(o.Ord, nil)
		return nil, nil
	}

	// pair queue, FIFO with the coprime-lcm skip
	type pair struct{ i, j int }
	var pairs []pair
	for i := range g {
		for j := i + 1; j < len(g); j++ {
			pairs = append(pairs, pair{i, j})
		}
	}

	for len(pairs) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		p := pairs[0]
		pairs = pairs[1:]

		ltI, _ := g[p.i].LeadingTerm(o.Ord)
		ltJ, _ := g[p.j].LeadingTerm(o.Ord)
		if coprime(ltI.Exp, ltJ.Exp) {
			continue // Buchberger's first criterion
		}

		s, err := SPolynomial(g[p.i], g[p.j], o.Ord)
		if err != nil {
			return nil, err
		}
		rem, err := normalFormAgainst(s, g, o.Ord)
		if err != nil {
			return nil, err
		}
		if rem.IsZero() {
			continue
		}
		m, err := monic(rem, o.Ord)
		if err != nil {
			return nil, err
		}
		g = append(g, m)
		for i := 0; i < len(g)-1; i++ {
			pairs = append(pairs, pair{i, len(g) - 1})
		}
	}

	g, err := Interreduce(g, o.Ord)
	if err != nil {
		return nil, err
	}
	ideal.SetCachedBasis(o.Ord, g)

	return g, nil
}

// scratchBasis is Basis without the cache write-back: a cached basis for
// the requested ordering is still reused, but a miss is computed on a
// throwaway copy of the ideal, so query-style callers (Eliminate,
// SaturateVariable, IsUnitIdeal) never evict the single cache slot the
// caller may be holding under another ordering.
func scratchBasis(ideal *ring.Ideal, opts ...Option) ([]*ring.Polynomial, error) {
	if ideal == nil {
		return nil, ErrNilInput
	}
	o := buildOptions(ideal.Ring(), opts)
	if b, ok := ideal.CachedBasis(o.Ord); ok {
		return b, nil
	}
	sc, err := ring.NewIdeal(ideal.Ring(), ideal.Gens()...)
	if err != nil {
		return nil, err
	}
	return Basis(sc, opts...)
}

// normalFormAgainst reduces f by the slice of divisors, dispatching on the
// ordering the same way the public engine does.
func normalFormAgainst(f *ring.Polynomial, gens []*ring.Polynomial, ord ring.Ordering) (*ring.Polynomial, error) {
	d, err := newDivider(f.Ring(), gens, ord)
	if err != nil {
		return nil, err
	}
	if ord.Global() {
		rem, _ := d.divideGlobal(f, true)
		return rem, nil
	}
	rem, _, _ := d.divideMora(f)
	return rem, nil
}

// Interreduce reduces every polynomial by all the others until stable,
// drops zeros, and normalizes leading coefficients to 1. The span of the
// set is preserved.
func Interreduce(gens []*ring.Polynomial, ord ring.Ordering) ([]*ring.Polynomial, error) {
	work := append([]*ring.Polynomial(nil), gens...)
	for changed := true; changed; {
		changed = false
		for i := 0; i < len(work); i++ {
			if work[i].IsZero() {
				work = append(work[:i], work[i+1:]...)
				i--
				changed = true
				continue
			}
			others := make([]*ring.Polynomial, 0, len(work)-1)
			others = append(others, work[:i]...)
			others = append(others, work[i+1:]...)
			if len(others) == 0 {
				continue
			}
			rem, err := normalFormAgainst(work[i], others, ord)
			if err != nil {
				return nil, err
			}
			if !rem.Equal(work[i]) {
				work[i] = rem
				changed = true
			}
		}
	}
	for i, g := range work {
		m, err := monic(g, ord)
		if err != nil {
			return nil, err
		}
		work[i] = m
	}
	return work, nil
}

func monic(p *ring.Polynomial, ord ring.Ordering) (*ring.Polynomial, error) {
	lt, ok := p.LeadingTerm(ord)
	if !ok {
		return p, nil
	}
	inv, err := p.Ring().Field().Inv(lt.Coef)
	if err != nil {
		return nil, err
	}
	return p.MulScalar(inv), nil
}

func coprime(a, b []int) bool {
	for i := range a {
		if a[i] > 0 && b[i] > 0 {
			return false
		}
	}
	return true
}
