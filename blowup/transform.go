// Package blowup computes total and strict transforms of ideals under
// toric blowups: the Cox-ring module homomorphism attached to the blown-up
// ray (a grading shift by the exceptional divisor), followed by saturation
// at the exceptional variable for the strict transform.
package blowup

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/mvolkhin/zariski/reduce"
	"github.com/mvolkhin/zariski/ring"
)

// Sentinel errors for blowup transforms.
var (
	// ErrTorusFactor: total transforms need a target fan without torus
	// factor.
	ErrTorusFactor = errors.New("blowup: target fan has a torus factor")

	// ErrNotSimplicial: strict transforms need a simplicial (orbifold)
	// target fan.
	ErrNotSimplicial = errors.New("blowup: target fan is not simplicial")

	// ErrNotSmooth: the index-tracking strict transform needs a smooth
	// target fan.
	ErrNotSmooth = errors.New("blowup: target fan is not smooth")

	// ErrNotHomogeneous rejects inhomogeneous generators over a graded
	// Cox ring.
	ErrNotHomogeneous = errors.New("blowup: ideal generator is not homogeneous")

	// ErrConeShape indicates supercone data of the wrong dimension, or a
	// degenerate (non-invertible) supercone.
	ErrConeShape = errors.New("blowup: minimal supercone must be a full-rank square matrix matching the ray dimension")

	// ErrRingShape indicates Cox rings whose variable counts do not differ
	// by exactly the exceptional variable.
	ErrRingShape = errors.New("blowup: blowup Cox ring must extend the base ring by the exceptional variable")
)

// MorphismOption configures fan flags on a Morphism. The default is the
// smooth affine case: no torus factor, simplicial, smooth.
type MorphismOption func(*Morphism)

// WithTorusFactor records that the target fan has a torus factor, which
// blocks total transforms.
func WithTorusFactor() MorphismOption {
	return func(m *Morphism) { m.torusFactor = true }
}

// WithOrbifold records a simplicial but non-smooth target fan: strict
// transforms work, the index-tracking variant does not.
func WithOrbifold() MorphismOption {
	return func(m *Morphism) { m.smooth = false }
}

// WithNonSimplicial records a non-simplicial target fan, blocking both
// strict transform variants.
func WithNonSimplicial() MorphismOption {
	return func(m *Morphism) { m.simplicial = false; m.smooth = false }
}

// Morphism is a toric blowup: the base Cox ring, the blowup Cox ring (base
// variables plus the exceptional variable), the blown-up ray, and the
// minimal supercone containing it. The supercone coordinates of the ray are
// solved once per morphism and cached.
type Morphism struct {
	base, total *ring.Ring
	excIdx      int   // index of the exceptional variable in total
	baseToTotal []int // base variable i → total variable index

	ray  []int
	cone [][]int // rows are the minimal supercone generators

	torusFactor bool
	simplicial  bool
	smooth      bool

	p []*big.Rat // cached minimal supercone coordinates
}

// NewMorphism builds the blowup of ray inside the minimal supercone whose
// generators are the rows of cone. total must extend base by exactly one
// variable, the exceptional one at excIdx; the remaining total variables
// correspond to the base variables in order.
func NewMorphism(base, total *ring.Ring, excIdx int, ray []int, cone [][]int, opts ...MorphismOption) (*Morphism, error) {
	if base == nil || total == nil {
		return nil, reduce.ErrNilInput
	}
	if total.NumVars() != base.NumVars()+1 || excIdx < 0 || excIdx >= total.NumVars() {
		return nil, ErrRingShape
	}
	if base.Field() != total.Field() {
		return nil, ring.ErrFieldMismatch
	}
	d := len(ray)
	if d == 0 || len(cone) != d {
		return nil, ErrConeShape
	}
	for _, row := range cone {
		if len(row) != d {
			return nil, ErrConeShape
		}
	}

	baseToTotal := make([]int, base.NumVars())
	j := 0
	for i := range baseToTotal {
		if j == excIdx {
			j++
		}
		baseToTotal[i] = j
		j++
	}

	m := &Morphism{
		base:        base,
		total:       total,
		excIdx:      excIdx,
		baseToTotal: baseToTotal,
		ray:         append([]int(nil), ray...),
		cone:        cone,
		simplicial:  true,
		smooth:      true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// BaseRing returns the Cox ring of the blowup's target base.
func (m *Morphism) BaseRing() *ring.Ring { return m.base }

// TotalRing returns the Cox ring of the blown-up space.
func (m *Morphism) TotalRing() *ring.Ring { return m.total }

// ExceptionalIndex returns the exceptional variable's index in TotalRing.
func (m *Morphism) ExceptionalIndex() int { return m.excIdx }

// SuperconeCoordinates returns the coordinates p of the blown-up ray in the
// minimal supercone basis, solving cone^T·p = ray exactly over the
// rationals. Solved on first use and cached for the morphism's lifetime.
func (m *Morphism) SuperconeCoordinates() ([]*big.Rat, error) {
	if m.p == nil {
		p, err := solveRational(m.cone, m.ray)
		if err != nil {
			return nil, err
		}
		m.p = p
	}
	return append([]*big.Rat(nil), m.p...), nil
}

// CoxModuleHom applies the module homomorphism of the blowup to one
// polynomial of the base Cox ring, termwise: a monomial with exponent
// vector a maps to the same monomial times e^ceil(a·p). Additive, not
// multiplicative.
func (m *Morphism) CoxModuleHom(f *ring.Polynomial) (*ring.Polynomial, error) {
	if f == nil {
		return nil, reduce.ErrNilInput
	}
	if f.Ring() != m.base {
		return nil, ring.ErrRingMismatch
	}
	p, err := m.SuperconeCoordinates()
	if err != nil {
		return nil, err
	}

	out := m.total.Zero()
	for _, t := range f.Terms() {
		exp := make([]int, m.total.NumVars())
		dot := new(big.Rat)
		for i, e := range t.Exp {
			exp[m.baseToTotal[i]] = e
			if e != 0 {
				dot.Add(dot, new(big.Rat).Mul(big.NewRat(int64(e), 1), p[i]))
			}
		}
		exp[m.excIdx] = ceilRat(dot)
		mono, err := m.total.Monomial(t.Coef, exp)
		if err != nil {
			return nil, err
		}
		out = out.Add(mono)
	}
	return out, nil
}

// TotalTransform applies the module homomorphism to every generator of I,
// giving the total transform ideal in the blowup Cox ring. The target fan
// must be free of torus factors; over a graded base every generator must
// be homogeneous.
func (m *Morphism) TotalTransform(ideal *ring.Ideal) (*ring.Ideal, error) {
	if ideal == nil {
		return nil, reduce.ErrNilInput
	}
	if ideal.Ring() != m.base {
		return nil, ring.ErrRingMismatch
	}
	if m.torusFactor {
		return nil, ErrTorusFactor
	}

	gens := make([]*ring.Polynomial, ideal.Len())
	for i, g := range ideal.Gens() {
		if m.base.Graded() && !g.IsHomogeneous() {
			return nil, fmt.Errorf("%w: generator %d", ErrNotHomogeneous, i)
		}
		img, err := m.CoxModuleHom(g)
		if err != nil {
			return nil, err
		}
		gens[i] = img
	}
	return ring.NewIdeal(m.total, gens...)
}

// StrictTransform is the total transform saturated by the ideal of the
// exceptional variable. Requires a simplicial target fan.
func (m *Morphism) StrictTransform(ideal *ring.Ideal) (*ring.Ideal, error) {
	if !m.simplicial {
		return nil, ErrNotSimplicial
	}
	tot, err := m.TotalTransform(ideal)
	if err != nil {
		return nil, err
	}
	return reduce.SaturateVariable(tot, m.excIdx)
}

// StrictTransformWithIndex returns the strict transform together with the
// saturation exponent: the multiplicity of the exceptional divisor in the
// total transform, i.e. the largest k with the total transform inside
// ⟨e^k⟩. Requires a smooth target fan.
func (m *Morphism) StrictTransformWithIndex(ideal *ring.Ideal) (*ring.Ideal, int, error) {
	if !m.smooth {
		return nil, 0, ErrNotSmooth
	}
	tot, err := m.TotalTransform(ideal)
	if err != nil {
		return nil, 0, err
	}

	index := -1
	for _, g := range tot.Gens() {
		if g.IsZero() {
			continue
		}
		v := minExponent(g, m.excIdx)
		if index == -1 || v < index {
			index = v
		}
	}
	if index < 0 {
		index = 0
	}

	strict, err := reduce.SaturateVariable(tot, m.excIdx)
	if err != nil {
		return nil, 0, err
	}
	return strict, index, nil
}

func minExponent(p *ring.Polynomial, idx int) int {
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

// ceilRat returns ⌈q⌉. Denominators of big.Rat are positive, so Div floors
// and ceil is floor + 1 on non-integers.
func ceilRat(q *big.Rat) int {
	z := new(big.Int).Div(q.Num(), q.Denom())
	if !q.IsInt() {
		z.Add(z, big.NewInt(1))
	}
	return int(z.Int64())
}

// solveRational solves cone^T·p = ray by Gaussian elimination over the
// rationals. Fails with ErrConeShape on a singular matrix.
func solveRational(cone [][]int, ray []int) ([]*big.Rat, error) {
	d := len(ray)

	// augmented matrix of the system Σ_i p_i · cone[i] = ray, unknowns p_i:
	// row r is Σ_i cone[i][r]·p_i = ray[r]
	a := make([][]*big.Rat, d)
	for r := 0; r < d; r++ {
		a[r] = make([]*big.Rat, d+1)
		for i := 0; i < d; i++ {
			a[r][i] = big.NewRat(int64(cone[i][r]), 1)
		}
		a[r][d] = big.NewRat(int64(ray[r]), 1)
	}

	for col := 0; col < d; col++ {
		pivot := -1
		for r := col; r < d; r++ {
			if a[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return nil, ErrConeShape
		}
		a[col], a[pivot] = a[pivot], a[col]

		inv := new(big.Rat).Inv(a[col][col])
		for c := col; c <= d; c++ {
			a[col][c] = new(big.Rat).Mul(a[col][c], inv)
		}
		for r := 0; r < d; r++ {
			if r == col || a[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(a[r][col])
			for c := col; c <= d; c++ {
				a[r][c] = new(big.Rat).Sub(a[r][c], new(big.Rat).Mul(factor, a[col][c]))
			}
		}
	}

	p := make([]*big.Rat, d)
	for i := 0; i < d; i++ {
		p[i] = a[i][d]
	}
	return p, nil
}
