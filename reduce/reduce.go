package reduce

import "github.com/mvolkhin/zariski/ring"

// ReduceWithQuotientsAndUnit divides every input by the generator sequence
// and returns the full Division, satisfying Unit·I = Quotients·J + R as an
// exact identity over the ring. Inputs and generators must share one ring;
// the ordering defaults to the ring's. An empty generator sequence returns
// the inputs unchanged with an m×0 quotient matrix and identity unit. An
// empty input sequence returns an empty Division (callers special-case it).
func ReduceWithQuotientsAndUnit(inputs []*ring.Polynomial, gens *ring.Ideal, opts ...Option) (*Division, error) {
	if gens == nil {
		return nil, ErrNilInput
	}
	r := gens.Ring()
	for _, f := range inputs {
		if f == nil {
			return nil, ErrNilInput
		}
		if f.Ring() != r {
			return nil, ErrRingMismatch
		}
	}
	o := buildOptions(r, opts)

	d, err := newDivider(r, gens.Gens(), o.Ord)
	if err != nil {
		return nil, err
	}

	out := &Division{
		Remainders: make([]*ring.Polynomial, len(inputs)),
		Quotients:  make([][]*ring.Polynomial, len(inputs)),
		Unit:       make([]*ring.Polynomial, len(inputs)),
	}
	for i, f := range inputs {
		if o.Ord.Global() {
			rem, quo := d.divideGlobal(f, o.Tail)
			out.Remainders[i] = rem
			out.Quotients[i] = quo
			out.Unit[i] = r.One()
			continue
		}
		rem, quo, unit := d.divideMora(f)
		out.Remainders[i] = rem
		out.Quotients[i] = quo
		out.Unit[i] = unit
	}
	return out, nil
}

// Reduce divides a single polynomial by the generators and returns the
// remainder. Reducing by an empty generator sequence returns f unchanged.
func Reduce(f *ring.Polynomial, gens *ring.Ideal, opts ...Option) (*ring.Polynomial, error) {
	div, err := ReduceWithQuotientsAndUnit([]*ring.Polynomial{f}, gens, opts...)
	if err != nil {
		return nil, err
	}
	return div.Remainders[0], nil
}

// ReduceList divides a list of polynomials and returns the remainders.
// The result always has the same length as the input: entries that reduce
// to zero stay in place, they are never dropped.
func ReduceList(fs []*ring.Polynomial, gens *ring.Ideal, opts ...Option) ([]*ring.Polynomial, error) {
	div, err := ReduceWithQuotientsAndUnit(fs, gens, opts...)
	if err != nil {
		return nil, err
	}
	return div.Remainders, nil
}

// ReduceBy is Reduce over a raw generator slice.
func ReduceBy(f *ring.Polynomial, gens []*ring.Polynomial, opts ...Option) (*ring.Polynomial, error) {
	if f == nil {
		return nil, ErrNilInput
	}
	ideal, err := ring.NewIdeal(f.Ring(), gens...)
	if err != nil {
		return nil, ErrRingMismatch
	}
	return Reduce(f, ideal, opts...)
}

// ReduceListBy is ReduceList over a raw generator slice.
func ReduceListBy(fs []*ring.Polynomial, gens []*ring.Polynomial, opts ...Option) ([]*ring.Polynomial, error) {
	if len(fs) == 0 {
		return nil, nil
	}
	if fs[0] == nil {
		return nil, ErrNilInput
	}
	ideal, err := ring.NewIdeal(fs[0].Ring(), gens...)
	if err != nil {
		return nil, ErrRingMismatch
	}
	return ReduceList(fs, ideal, opts...)
}

// SPolynomial returns the S-polynomial of f and g under ord: both are
// scaled and shifted so their leading terms meet at the lcm and cancel.
// Either input being zero yields the zero polynomial.
func SPolynomial(f, g *ring.Polynomial, ord ring.Ordering) (*ring.Polynomial, error) {
	if f == nil || g == nil {
		return nil, ErrNilInput
	}
	if f.Ring() != g.Ring() {
		return nil, ErrRingMismatch
	}
	r := f.Ring()
	ltF, okF := f.LeadingTerm(ord)
	ltG, okG := g.LeadingTerm(ord)
	if !okF || !okG {
		return r.Zero(), nil
	}
	fld := r.Field()
	lcm := expLcm(ltF.Exp, ltG.Exp)
	invF, err := fld.Inv(ltF.Coef)
	if err != nil {
		return nil, err
	}
	invG, err := fld.Inv(ltG.Coef)
	if err != nil {
		return nil, err
	}
	a := f.MulTerm(ring.Term{Exp: expSub(lcm, ltF.Exp), Coef: invF})
	b := g.MulTerm(ring.Term{Exp: expSub(lcm, ltG.Exp), Coef: invG})
	return a.Sub(b), nil
}
