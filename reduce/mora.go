package reduce

import "github.com/mvolkhin/zariski/ring"

// moraElem is a divisor candidate together with its representation in terms
// of the original input f and generators g_j:
//
//	h = u·f − Σ_j q[j]·g_j
//
// Original generators enter with u = 0, q[j] = −1; the running work
// polynomial and any intermediate added to the divisor set carry their full
// representation so the final unit and quotients fall out of the invariant.
type moraElem struct {
	h     *ring.Polynomial
	u     *ring.Polynomial
	q     []*ring.Polynomial
	lead  ring.Term
	ecart int
}

func (d *divider) newMoraElem(h, u *ring.Polynomial, q []*ring.Polynomial) *moraElem {
	e := &moraElem{h: h, u: u, q: q}
	if lt, ok := h.LeadingTerm(d.ord); ok {
		e.lead = lt
		e.ecart = h.TotalDegree() - termDeg(lt.Exp)
	}
	return e
}

func termDeg(exp []int) int {
	d := 0
	for _, e := range exp {
		d += e
	}
	return d
}

// divideMora computes the weak normal form of f with respect to the
// generators under a local ordering, returning (remainder, quotients, unit)
// with unit·f = Σ quotients[j]·gens[j] + remainder. The unit is invertible
// in the local ring at the ordering (its leading monomial is 1).
//
// Mora's strategy: among the divisors whose leading monomial divides the
// current leading monomial, pick one of minimal ecart; if its ecart exceeds
// the work polynomial's, the work polynomial itself joins the divisor set
// first. That bound on the ecart is what makes the loop terminate where
// naive long division would not.
func (d *divider) divideMora(f *ring.Polynomial) (rem *ring.Polynomial, quo []*ring.Polynomial, unit *ring.Polynomial) {
	fld := d.r.Field()
	n := len(d.gens)

	zeroRow := func() []*ring.Polynomial {
		row := make([]*ring.Polynomial, n)
		for j := range row {
			row[j] = d.r.Zero()
		}
		return row
	}

	// Divisor pool: generators with their trivial representations.
	pool := make([]*moraElem, 0, n)
	for j, g := range d.gens {
		if !d.live[j] {
			continue
		}
		q := zeroRow()
		q[j] = d.r.FromInt(-1)
		pool = append(pool, d.newMoraElem(g, d.r.Zero(), q))
	}

	cur := d.newMoraElem(f, d.r.One(), zeroRow())

	for !cur.h.IsZero() {
		// pick a divisor of minimal ecart among those matching the lead
		var pick *moraElem
		for _, cand := range pool {
			if !expDivides(cand.lead.Exp, cur.lead.Exp) {
				continue
			}
			if pick == nil || cand.ecart < pick.ecart {
				pick = cand
			}
		}
		if pick == nil {
			break // leading term irreducible: weak normal form reached
		}
		if pick.ecart > cur.ecart {
			// freeze a copy of the current state as a future divisor
			frozen := d.newMoraElem(cur.h, cur.u, append([]*ring.Polynomial(nil), cur.q...))
			pool = append(pool, frozen)
		}

		// cancel the leading term: cur −= λ·pick with λ = lt(cur)/lt(pick)
		inv, _ := fld.Inv(pick.lead.Coef)
		lam := ring.Term{
			Exp:  expSub(cur.lead.Exp, pick.lead.Exp),
			Coef: fld.Mul(cur.lead.Coef, inv),
		}
		h := cur.h.Sub(pick.h.MulTerm(lam))
		u := cur.u.Sub(pick.u.MulTerm(lam))
		q := make([]*ring.Polynomial, n)
		for j := range q {
			q[j] = cur.q[j].Sub(pick.q[j].MulTerm(lam))
		}
		cur = d.newMoraElem(h, u, q)
	}

	return cur.h, cur.q, cur.u
}
