package ring

import (
	"sort"
	"strconv"
	"strings"
)

// Term is one monomial with its coefficient. Exp always has the ring's
// variable count; accessors hand out defensive copies.
type Term struct {
	Exp  []int
	Coef Element
}

// Polynomial is an immutable element of a Ring, stored as a term map keyed
// by encoded exponent vector. All arithmetic returns new values.
type Polynomial struct {
	ring  *Ring
	terms map[string]Term
}

// expKey encodes an exponent vector as a map key.
func expKey(exp []int) string {
	var b strings.Builder
	for i, e := range exp {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(e))
	}
	return b.String()
}

// NewPolynomial builds a polynomial from terms, merging duplicates and
// dropping zero coefficients. Exponent vectors are copied.
func NewPolynomial(r *Ring, terms []Term) (*Polynomial, error) {
	p := r.Zero()
	f := r.field
	for _, t := range terms {
		if len(t.Exp) != r.NumVars() {
			return nil, ErrVarCount
		}
		for _, e := range t.Exp {
			if e < 0 {
				return nil, ErrNegExponent
			}
		}
		k := expKey(t.Exp)
		if old, ok := p.terms[k]; ok {
			c := f.Add(old.Coef, t.Coef)
			if f.IsZero(c) {
				delete(p.terms, k)
			} else {
				p.terms[k] = Term{Exp: old.Exp, Coef: c}
			}
			continue
		}
		if f.IsZero(t.Coef) {
			continue
		}
		p.terms[k] = Term{Exp: append([]int(nil), t.Exp...), Coef: t.Coef}
	}
	return p, nil
}

// Ring returns the polynomial's ring.
func (p *Polynomial) Ring() *Ring { return p.ring }

// IsZero reports whether p has no terms.
func (p *Polynomial) IsZero() bool { return len(p.terms) == 0 }

// Len returns the number of terms.
func (p *Polynomial) Len() int { return len(p.terms) }

// IsConstant reports whether p is zero or a single degree-zero term.
func (p *Polynomial) IsConstant() bool {
	if len(p.terms) == 0 {
		return true
	}
	if len(p.terms) > 1 {
		return false
	}
	for _, t := range p.terms {
		return totalDeg(t.Exp) == 0
	}
	return false
}

// Coeff returns the coefficient of x^exp (zero when absent).
func (p *Polynomial) Coeff(exp []int) Element {
	if t, ok := p.terms[expKey(exp)]; ok {
		return t.Coef
	}
	return p.ring.field.Zero()
}

// Terms returns the terms in no particular order, with copied exponents.
func (p *Polynomial) Terms() []Term {
	out := make([]Term, 0, len(p.terms))
	for _, t := range p.terms {
		out = append(out, Term{Exp: append([]int(nil), t.Exp...), Coef: t.Coef})
	}
	return out
}

// SortedTerms returns the terms in decreasing order under ord.
func (p *Polynomial) SortedTerms(ord Ordering) []Term {
	out := p.Terms()
	sort.Slice(out, func(i, j int) bool { return ord.Compare(out[i].Exp, out[j].Exp) > 0 })
	return out
}

// LeadingTerm returns the largest term under ord; ok is false for zero.
func (p *Polynomial) LeadingTerm(ord Ordering) (Term, bool) {
	var best Term
	found := false
	for _, t := range p.terms {
		if !found || ord.Compare(t.Exp, best.Exp) > 0 {
			best = t
			found = true
		}
	}
	if !found {
		return Term{}, false
	}
	return Term{Exp: append([]int(nil), best.Exp...), Coef: best.Coef}, true
}

// TotalDegree returns the maximum total degree of a term, or -1 for zero.
func (p *Polynomial) TotalDegree() int {
	d := -1
	for _, t := range p.terms {
		if td := totalDeg(t.Exp); td > d {
			d = td
		}
	}
	return d
}

func (p *Polynomial) sameRing(q *Polynomial) {
	if p.ring != q.ring {
		panic(ErrRingMismatch)
	}
}

func (p *Polynomial) clone() *Polynomial {
	out := p.ring.Zero()
	for k, t := range p.terms {
		out.terms[k] = t
	}
	return out
}

// addTermInto mutates out; internal plumbing for the arithmetic below.
func addTermInto(out *Polynomial, exp []int, c Element) {
	f := out.ring.field
	if f.IsZero(c) {
		return
	}
	k := expKey(exp)
	if old, ok := out.terms[k]; ok {
		s := f.Add(old.Coef, c)
		if f.IsZero(s) {
			delete(out.terms, k)
		} else {
			out.terms[k] = Term{Exp: old.Exp, Coef: s}
		}
		return
	}
	out.terms[k] = Term{Exp: append([]int(nil), exp...), Coef: c}
}

// Add returns p + q.
func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	p.sameRing(q)
	out := p.clone()
	for _, t := range q.terms {
		addTermInto(out, t.Exp, t.Coef)
	}
	return out
}

// Sub returns p - q.
func (p *Polynomial) Sub(q *Polynomial) *Polynomial {
	p.sameRing(q)
	f := p.ring.field
	out := p.clone()
	for _, t := range q.terms {
		addTermInto(out, t.Exp, f.Neg(t.Coef))
	}
	return out
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {
	f := p.ring.field
	out := p.ring.Zero()
	for k, t := range p.terms {
		out.terms[k] = Term{Exp: t.Exp, Coef: f.Neg(t.Coef)}
	}
	return out
}

// AddTerm returns p + c·x^exp.
func (p *Polynomial) AddTerm(t Term) *Polynomial {
	out := p.clone()
	addTermInto(out, t.Exp, t.Coef)
	return out
}

// MulTerm returns p · (c·x^exp).
func (p *Polynomial) MulTerm(t Term) *Polynomial {
	f := p.ring.field
	out := p.ring.Zero()
	if f.IsZero(t.Coef) {
		return out
	}
	n := p.ring.NumVars()
	for _, pt := range p.terms {
		exp := make([]int, n)
		for i := range exp {
			exp[i] = pt.Exp[i] + t.Exp[i]
		}
		out.terms[expKey(exp)] = Term{Exp: exp, Coef: f.Mul(pt.Coef, t.Coef)}
	}
	return out
}

// MulScalar returns c·p.
func (p *Polynomial) MulScalar(c Element) *Polynomial {
	f := p.ring.field
	out := p.ring.Zero()
	if f.IsZero(c) {
		return out
	}
	for k, t := range p.terms {
		out.terms[k] = Term{Exp: t.Exp, Coef: f.Mul(t.Coef, c)}
	}
	return out
}

// Mul returns p · q.
func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	p.sameRing(q)
	f := p.ring.field
	n := p.ring.NumVars()
	out := p.ring.Zero()
	for _, pt := range p.terms {
		for _, qt := range q.terms {
			exp := make([]int, n)
			for i := range exp {
				exp[i] = pt.Exp[i] + qt.Exp[i]
			}
			addTermInto(out, exp, f.Mul(pt.Coef, qt.Coef))
		}
	}
	return out
}

// Equal reports exact term-by-term equality.
func (p *Polynomial) Equal(q *Polynomial) bool {
	if p.ring != q.ring || len(p.terms) != len(q.terms) {
		return false
	}
	f := p.ring.field
	for k, t := range p.terms {
		qt, ok := q.terms[k]
		if !ok || !f.Equal(t.Coef, qt.Coef) {
			return false
		}
	}
	return true
}

// IsHomogeneous reports whether every term has the same degree: under the
// ring's multigrading when present, by total degree otherwise. The zero
// polynomial is homogeneous.
func (p *Polynomial) IsHomogeneous() bool {
	if len(p.terms) == 0 {
		return true
	}
	if p.ring.grading == nil {
		d := -1
		for _, t := range p.terms {
			td := totalDeg(t.Exp)
			if d == -1 {
				d = td
			} else if td != d {
				return false
			}
		}
		return true
	}
	var ref []int
	for _, t := range p.terms {
		d := p.gradedDegree(t.Exp)
		if ref == nil {
			ref = d
			continue
		}
		for i := range d {
			if d[i] != ref[i] {
				return false
			}
		}
	}
	return true
}

func (p *Polynomial) gradedDegree(exp []int) []int {
	dim := len(p.ring.grading[0])
	d := make([]int, dim)
	for i, e := range exp {
		for j := 0; j < dim; j++ {
			d[j] += e * p.ring.grading[i][j]
		}
	}
	return d
}

// String renders p with terms in decreasing default order, e.g.
// "x^2*y - 3*y^3 + 1/2".
func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	f := p.ring.field
	var b strings.Builder
	for i, t := range p.SortedTerms(p.ring.ord) {
		cs := f.Format(t.Coef)
		neg := strings.HasPrefix(cs, "-")
		if neg {
			cs = cs[1:]
		}
		if i == 0 {
			if neg {
				b.WriteByte('-')
			}
		} else if neg {
			b.WriteString(" - ")
		} else {
			b.WriteString(" + ")
		}
		b.WriteString(formatTerm(p.ring, cs, t.Exp))
	}
	return b.String()
}

func formatTerm(r *Ring, coef string, exp []int) string {
	var parts []string
	for i, e := range exp {
		switch {
		case e == 1:
			parts = append(parts, r.vars[i])
		case e > 1:
			parts = append(parts, r.vars[i]+"^"+strconv.Itoa(e))
		}
	}
	if len(parts) == 0 {
		return coef
	}
	if coef == "1" {
		return strings.Join(parts, "*")
	}
	return coef + "*" + strings.Join(parts, "*")
}
