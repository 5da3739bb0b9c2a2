package reduce

import (
	"sort"

	"github.com/mvolkhin/zariski/ring"
)

// The fast normal-form path specializes the division loop to degrevlex over
// a small prime field: coefficients are raw uint64 residues, polynomials
// are term slices kept sorted in decreasing degrevlex order, and reduction
// is a merge-subtract with no interface dispatch in the inner loop.

type fterm struct {
	exp []int
	c   uint64
}

type fpoly []fterm

func drlLess(a, b []int) bool { return ring.DegRevLex.Compare(a, b) < 0 }

func toFast(p *ring.Polynomial) fpoly {
	terms := p.SortedTerms(ring.DegRevLex)
	out := make(fpoly, len(terms))
	for i, t := range terms {
		out[i] = fterm{exp: t.Exp, c: t.Coef.(uint64)}
	}
	return out
}

func fromFast(r *ring.Ring, p fpoly) (*ring.Polynomial, error) {
	terms := make([]ring.Term, len(p))
	for i, t := range p {
		terms[i] = ring.Term{Exp: t.exp, Coef: t.c}
	}
	return ring.NewPolynomial(r, terms)
}

// fastNormalFormList reduces each input against the (already computed,
// monic) degrevlex basis. Results match the general engine exactly.
func fastNormalFormList(fs []*ring.Polynomial, basis []*ring.Polynomial) ([]*ring.Polynomial, error) {
	if len(fs) == 0 {
		return nil, nil
	}
	r := fs[0].Ring()
	pf := r.Field().(*ring.PrimeField)

	fb := make([]fpoly, len(basis))
	for i, g := range basis {
		fb[i] = toFast(g)
	}

	out := make([]*ring.Polynomial, len(fs))
	for i, f := range fs {
		red, err := fromFast(r, fastReduce(pf, toFast(f), fb))
		if err != nil {
			return nil, err
		}
		out[i] = red
	}
	return out, nil
}

// fastReduce runs complete reduction: every leading term is either rewritten
// by a basis element or finalized into the remainder.
func fastReduce(pf *ring.PrimeField, h fpoly, basis []fpoly) fpoly {
	var rem fpoly
	for len(h) > 0 {
		lt := h[0]
		j := -1
		for k, g := range basis {
			if expDivides(g[0].exp, lt.exp) {
				j = k
				break
			}
		}
		if j < 0 {
			rem = append(rem, lt)
			h = h[1:]
			continue
		}
		// basis elements are monic, so the multiplier coefficient is lt.c
		h = fastSubMul(pf, h, basis[j], lt.c, expSub(lt.exp, basis[j][0].exp))
	}
	// rem was produced in decreasing order already, but a final sort keeps
	// the invariant explicit
	sort.Slice(rem, func(a, b int) bool { return drlLess(rem[b].exp, rem[a].exp) })
	return rem
}

// fastSubMul returns h − c·x^shift·g as a sorted merge. The leading terms
// cancel by construction.
func fastSubMul(pf *ring.PrimeField, h, g fpoly, c uint64, shift []int) fpoly {
	out := make(fpoly, 0, len(h)+len(g))
	i, j := 0, 0
	for i < len(h) && j < len(g) {
		ge := expAdd(g[j].exp, shift)
		switch {
		case drlLess(ge, h[i].exp):
			out = append(out, h[i])
			i++
		case drlLess(h[i].exp, ge):
			gc := pf.Neg(pf.Mul(c, g[j].c)).(uint64)
			if gc != 0 {
				out = append(out, fterm{exp: ge, c: gc})
			}
			j++
		default:
			d := pf.Sub(h[i].c, pf.Mul(c, g[j].c)).(uint64)
			if d != 0 {
				out = append(out, fterm{exp: h[i].exp, c: d})
			}
			i++
			j++
		}
	}
	out = append(out, h[i:]...)
	for ; j < len(g); j++ {
		gc := pf.Neg(pf.Mul(c, g[j].c)).(uint64)
		if gc != 0 {
			out = append(out, fterm{exp: expAdd(g[j].exp, shift), c: gc})
		}
	}
	return out
}

func expAdd(a, b []int) []int {
	out := make([]int, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}
