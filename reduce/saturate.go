package reduce

import "github.com/mvolkhin/zariski/ring"

// Saturate computes I : f^∞, the largest ideal J with J·f^k ⊆ I for some k.
// Implementation: Rabinowitsch's trick — in R[t], the ideal ⟨I, 1 − t·f⟩ is
// contracted back to R by eliminating t. Saturating by a nonzero constant
// returns I unchanged; saturating by zero returns the unit ideal.
func Saturate(ideal *ring.Ideal, f *ring.Polynomial, opts ...Option) (*ring.Ideal, error) {
	if ideal == nil || f == nil {
		return nil, ErrNilInput
	}
	r := ideal.Ring()
	if f.Ring() != r {
		return nil, ErrRingMismatch
	}
	if !f.IsZero() && f.IsConstant() {
		return ring.NewIdeal(r, ideal.Gens()...)
	}
	if f.IsZero() {
		return ring.NewIdeal(r, r.One())
	}

	ext, err := ring.NewRing(r.Field(), append([]string{"t#sat"}, tagVars(r.Vars(), "x")...))
	if err != nil {
		return nil, err
	}
	up := make([]int, r.NumVars())
	for i := range up {
		up[i] = i + 1
	}

	gens := make([]*ring.Polynomial, 0, ideal.Len()+1)
	for _, g := range ideal.Gens() {
		lift, err := ring.Transfer(ext, g, up)
		if err != nil {
			return nil, err
		}
		gens = append(gens, lift)
	}
	fl, err := ring.Transfer(ext, f, up)
	if err != nil {
		return nil, err
	}
	gens = append(gens, ext.One().Sub(ext.Var(0).Mul(fl)))

	extIdeal, err := ring.NewIdeal(ext, gens...)
	if err != nil {
		return nil, err
	}
	return Eliminate(extIdeal, 1, r, opts...)
}

// SaturateVariable computes I : x_idx^∞ by Bayer's method: under degrevlex
// with x_idx compared last, dividing every Gröbner basis element by its
// x_idx-power yields a basis of the quotient by one power; iterating to a
// fixpoint gives the saturation. Cheaper than Saturate for the variable
// case and the workhorse of the blowup strict transform. The input ideal's
// basis cache is left untouched; the result carries the fixpoint basis.
func SaturateVariable(ideal *ring.Ideal, idx int, opts ...Option) (*ring.Ideal, error) {
	if ideal == nil {
		return nil, ErrNilInput
	}
	r := ideal.Ring()
	if idx < 0 || idx >= r.NumVars() {
		return nil, ErrVarIndex
	}
	ord := ring.VarLast(idx)

	cur := ideal
	for {
		basis, err := scratchBasis(cur, append(opts, WithOrdering(ord))...)
		if err != nil {
			return nil, err
		}
		divided := make([]*ring.Polynomial, len(basis))
		changed := false
		for i, g := range basis {
			v := minVarExponent(g, idx)
			if v > 0 {
				changed = true
				divided[i] = divideByVarPower(g, idx, v)
			} else {
				divided[i] = g
			}
		}
		next, err := ring.NewIdeal(r, divided...)
		if err != nil {
			return nil, err
		}
		if !changed {
			next.MarkBasis(ord)
			return next, nil
		}
		cur = next
	}
}

// minVarExponent returns the minimal exponent of variable idx over the
// terms of p (0 for the zero polynomial).
func minVarExponent(p *ring.Polynomial, idx int) int {
	best := -1
	for _, t := range p.Terms() {
		if best == -1 || t.Exp[idx] < best {
			best = t.Exp[idx]
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// divideByVarPower divides p by x_idx^k; every term must carry at least
// exponent k on that variable.
func divideByVarPower(p *ring.Polynomial, idx, k int) *ring.Polynomial {
	r := p.Ring()
	terms := p.Terms()
	for i := range terms {
		terms[i].Exp[idx] -= k
	}
	out, err := ring.NewPolynomial(r, terms)
	if err != nil {
		panic(err) // exponents stay nonnegative by the caller's contract
	}
	return out
}
