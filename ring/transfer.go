package ring

import "errors"

// ErrTransfer indicates a polynomial cannot be re-expressed in the target
// ring: a variable with no destination carries a nonzero exponent, or the
// rings disagree on the coefficient field.
var ErrTransfer = errors.New("ring: polynomial does not transfer to the target ring")

// Transfer re-expresses p in dst, sending source variable i to destination
// variable varMap[i]. A varMap entry of -1 drops the variable; transferring
// a term that actually uses a dropped variable fails. Both rings must share
// one coefficient field. Used by elimination, saturation, and the blowup
// transforms to move polynomials between a ring and its extensions.
func Transfer(dst *Ring, p *Polynomial, varMap []int) (*Polynomial, error) {
	src := p.Ring()
	if len(varMap) != src.NumVars() {
		return nil, ErrVarCount
	}
	if src.Field() != dst.Field() {
		return nil, ErrFieldMismatch
	}
	for _, j := range varMap {
		if j >= dst.NumVars() {
			return nil, ErrVarCount
		}
	}
	out := dst.Zero()
	for _, t := range p.Terms() {
		exp := make([]int, dst.NumVars())
		for i, e := range t.Exp {
			if e == 0 {
				continue
			}
			j := varMap[i]
			if j < 0 {
				return nil, ErrTransfer
			}
			exp[j] += e
		}
		addTermInto(out, exp, t.Coef)
	}
	return out, nil
}
