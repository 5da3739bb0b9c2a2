package reduce

import "github.com/mvolkhin/zariski/ring"

// divider holds the precomputed generator data shared by every input row of
// one division call.
type divider struct {
	r     *ring.Ring
	ord   ring.Ordering
	gens  []*ring.Polynomial
	lead  []ring.Term    // leading terms of nonzero generators
	invLC []ring.Element // inverted leading coefficients
	live  []bool         // false for zero generators
}

func newDivider(r *ring.Ring, gens []*ring.Polynomial, ord ring.Ordering) (*divider, error) {
	d := &divider{
		r:     r,
		ord:   ord,
		gens:  gens,
		lead:  make([]ring.Term, len(gens)),
		invLC: make([]ring.Element, len(gens)),
		live:  make([]bool, len(gens)),
	}
	f := r.Field()
	for j, g := range gens {
		if g == nil {
			return nil, ErrNilInput
		}
		if g.Ring() != r {
			return nil, ErrRingMismatch
		}
		lt, ok := g.LeadingTerm(ord)
		if !ok {
			continue // zero generator: kept in the sequence, never divides
		}
		inv, err := f.Inv(lt.Coef)
		if err != nil {
			return nil, err
		}
		d.lead[j] = lt
		d.invLC[j] = inv
		d.live[j] = true
	}
	return d, nil
}

// findReducer returns the first live generator whose leading monomial
// divides exp, or -1.
func (d *divider) findReducer(exp []int) int {
	for j := range d.gens {
		if d.live[j] && expDivides(d.lead[j].Exp, exp) {
			return j
		}
	}
	return -1
}

// divideGlobal runs ordinary multivariate long division of f by the
// generator set. Termination: each rewrite strictly decreases the leading
// monomial of the work polynomial, and global orderings are well-orderings.
//
// With tail reduction, irreducible leading terms move to the remainder and
// division continues on the rest; without it, the first irreducible leading
// term stops the loop and the whole work polynomial becomes the remainder.
func (d *divider) divideGlobal(f *ring.Polynomial, tail bool) (rem *ring.Polynomial, quo []*ring.Polynomial) {
	fld := d.r.Field()
	quo = make([]*ring.Polynomial, len(d.gens))
	for j := range quo {
		quo[j] = d.r.Zero()
	}
	rem = d.r.Zero()
	h := f

	for !h.IsZero() {
		lt, _ := h.LeadingTerm(d.ord)
		j := d.findReducer(lt.Exp)
		if j < 0 {
			if !tail {
				rem = rem.Add(h)
				return rem, quo
			}
			rem = rem.AddTerm(lt)
			h = h.AddTerm(ring.Term{Exp: lt.Exp, Coef: fld.Neg(lt.Coef)})
			continue
		}
		m := ring.Term{Exp: expSub(lt.Exp, d.lead[j].Exp), Coef: fld.Mul(lt.Coef, d.invLC[j])}
		quo[j] = quo[j].AddTerm(m)
		h = h.Sub(d.gens[j].MulTerm(m))
	}
	return rem, quo
}
