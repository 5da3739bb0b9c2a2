package reduce

import (
	"github.com/mvolkhin/zariski/ring"
)

// Eliminate projects the ideal onto the last NumVars−k variables: it
// computes a Gröbner basis under the block elimination order for the first
// k variables and keeps the basis elements free of them, re-expressed in
// dst. dst must have NumVars−k variables over the same field; dst variable
// i corresponds to source variable k+i. The ideal's basis cache is left
// untouched.
func Eliminate(ideal *ring.Ideal, k int, dst *ring.Ring, opts ...Option) (*ring.Ideal, error) {
	if ideal == nil || dst == nil {
		return nil, ErrNilInput
	}
	src := ideal.Ring()
	if k < 0 || k >= src.NumVars() {
		return nil, ErrVarIndex
	}
	if dst.NumVars() != src.NumVars()-k {
		return nil, ring.ErrVarCount
	}

	inner := dst.Ordering()
	if !inner.Global() {
		inner = ring.DegRevLex
	}
	ord := ring.Elim(k, inner)

	basis, err := scratchBasis(ideal, append(opts, WithOrdering(ord))...)
	if err != nil {
		return nil, err
	}

	varMap := make([]int, src.NumVars())
	for i := range varMap {
		if i < k {
			varMap[i] = -1
		} else {
			varMap[i] = i - k
		}
	}

	var kept []*ring.Polynomial
	for _, g := range basis {
		if usesEliminated(g, k) {
			continue
		}
		t, err := ring.Transfer(dst, g, varMap)
		if err != nil {
			return nil, err
		}
		kept = append(kept, t)
	}
	return ring.NewIdeal(dst, kept...)
}

func usesEliminated(p *ring.Polynomial, k int) bool {
	for _, t := range p.Terms() {
		for i := 0; i < k; i++ {
			if t.Exp[i] > 0 {
				return true
			}
		}
	}
	return false
}

// Preimage computes the contraction of an ideal along a ring map: for
// m: R → S and I ⊆ S it returns m⁻¹(I) ⊆ R. Rational images are handled by
// the graph-ideal construction: in S ⊗ R, the ideal generated by I and the
// relations den_i·y_i − num_i is saturated by the product of denominators
// and the S-variables are eliminated. The ideal must live in the map's
// destination ring (ErrWrongCodomain otherwise).
func Preimage(m *ring.Map, ideal *ring.Ideal, opts ...Option) (*ring.Ideal, error) {
	if m == nil || ideal == nil {
		return nil, ErrNilInput
	}
	src, dst := m.Src(), m.Dst()
	if ideal.Ring() != dst {
		return nil, ErrWrongCodomain
	}

	// combined ring: destination variables first (they get eliminated)
	names := append(tagVars(dst.Vars(), "s"), tagVars(src.Vars(), "r")...)
	comb, err := ring.NewRing(dst.Field(), names)
	if err != nil {
		return nil, err
	}

	dstMap := make([]int, dst.NumVars())
	for i := range dstMap {
		dstMap[i] = i
	}
	srcMap := make([]int, src.NumVars())
	for i := range srcMap {
		srcMap[i] = dst.NumVars() + i
	}

	gens := make([]*ring.Polynomial, 0, ideal.Len()+src.NumVars())
	for _, g := range ideal.Gens() {
		lift, err := ring.Transfer(comb, g, dstMap)
		if err != nil {
			return nil, err
		}
		gens = append(gens, lift)
	}

	denProduct := comb.One()
	for i := 0; i < src.NumVars(); i++ {
		im := m.Image(i)
		num, err := ring.Transfer(comb, im.Num, dstMap)
		if err != nil {
			return nil, err
		}
		den, err := ring.Transfer(comb, im.Den, dstMap)
		if err != nil {
			return nil, err
		}
		rel := den.Mul(comb.Var(srcMap[i])).Sub(num)
		gens = append(gens, rel)
		if !den.IsConstant() {
			denProduct = denProduct.Mul(den)
		}
	}

	graph, err := ring.NewIdeal(comb, gens...)
	if err != nil {
		return nil, err
	}
	if !denProduct.IsConstant() {
		graph, err = Saturate(graph, denProduct, opts...)
		if err != nil {
			return nil, err
		}
	}

	return Eliminate(graph, dst.NumVars(), src, opts...)
}

// tagVars decorates variable names so the combined ring never collides.
func tagVars(vars []string, tag string) []string {
	out := make([]string, len(vars))
	for i, v := range vars {
		out[i] = v + "#" + tag
	}
	return out
}
