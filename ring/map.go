package ring

import "errors"

// Sentinel errors for ring maps.
var (
	// ErrMapShape indicates the image count does not match the source ring.
	ErrMapShape = errors.New("ring: map needs one image per source variable")

	// ErrZeroDenominator indicates a rational image with zero denominator.
	ErrZeroDenominator = errors.New("ring: zero denominator in map image")

	// ErrRationalImage is returned by Apply when the map has a genuinely
	// rational image and cannot act on polynomials directly.
	ErrRationalImage = errors.New("ring: map has rational images; use an elimination-based preimage")
)

// Frac is a rational function Num/Den over one ring. Den must be nonzero; a
// polynomial image has Den == 1.
type Frac struct {
	Num, Den *Polynomial
}

// Poly wraps a polynomial as a Frac with denominator 1.
func Poly(p *Polynomial) Frac { return Frac{Num: p, Den: p.Ring().One()} }

// Map is a ring map Src → Dst, defined by a rational image in Dst for each
// Src variable. Polynomial maps apply directly; rational maps are consumed
// by the elimination-based preimage in package reduce.
type Map struct {
	src, dst *Ring
	images   []Frac
}

// NewMap builds the map sending Src variable i to images[i]. All numerators
// and denominators must live in dst, with nonzero denominators.
func NewMap(src, dst *Ring, images []Frac) (*Map, error) {
	if len(images) != src.NumVars() {
		return nil, ErrMapShape
	}
	cp := make([]Frac, len(images))
	for i, im := range images {
		if im.Num == nil || im.Num.Ring() != dst {
			return nil, ErrRingMismatch
		}
		den := im.Den
		if den == nil {
			den = dst.One()
		}
		if den.Ring() != dst {
			return nil, ErrRingMismatch
		}
		if den.IsZero() {
			return nil, ErrZeroDenominator
		}
		cp[i] = Frac{Num: im.Num, Den: den}
	}
	return &Map{src: src, dst: dst, images: cp}, nil
}

// Src returns the source ring.
func (m *Map) Src() *Ring { return m.src }

// Dst returns the destination ring.
func (m *Map) Dst() *Ring { return m.dst }

// Image returns the image of source variable i.
func (m *Map) Image(i int) Frac { return m.images[i] }

// IsPolynomial reports whether every denominator is the constant 1.
func (m *Map) IsPolynomial() bool {
	one := m.dst.One()
	for _, im := range m.images {
		if !im.Den.Equal(one) {
			return false
		}
	}
	return true
}

// Apply evaluates the map on a polynomial of the source ring. Only defined
// for polynomial maps; rational maps return ErrRationalImage.
func (m *Map) Apply(p *Polynomial) (*Polynomial, error) {
	if p.Ring() != m.src {
		return nil, ErrRingMismatch
	}
	if !m.IsPolynomial() {
		return nil, ErrRationalImage
	}
	out := m.dst.Zero()
	for _, t := range p.Terms() {
		img := m.dst.Const(t.Coef)
		for i, e := range t.Exp {
			for k := 0; k < e; k++ {
				img = img.Mul(m.images[i].Num)
			}
		}
		out = out.Add(img)
	}
	return out, nil
}
