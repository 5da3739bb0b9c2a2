package ring

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for ring construction and cross-ring operations.
var (
	// ErrNoVars indicates a ring was requested with no variables.
	ErrNoVars = errors.New("ring: at least one variable is required")

	// ErrDupVar indicates duplicate variable names.
	ErrDupVar = errors.New("ring: duplicate variable name")

	// ErrBadGrading indicates a grading with the wrong shape.
	ErrBadGrading = errors.New("ring: grading must assign one degree vector of a common length per variable")

	// ErrRingMismatch indicates values from different rings were mixed.
	ErrRingMismatch = errors.New("ring: values belong to different rings")

	// ErrVarCount indicates an exponent vector of the wrong length.
	ErrVarCount = errors.New("ring: exponent vector length does not match variable count")

	// ErrNegExponent indicates a negative exponent in a term.
	ErrNegExponent = errors.New("ring: negative exponent")
)

// RingOption configures a Ring before creation.
type RingOption func(*Ring)

// WithOrdering sets the ring's default monomial ordering (DegRevLex when
// unset).
func WithOrdering(ord Ordering) RingOption {
	return func(r *Ring) {
		if ord != nil {
			r.ord = ord
		}
	}
}

// WithGrading attaches a multigrading: degs[i] is the degree vector of
// variable i. All vectors must share one length.
func WithGrading(degs [][]int) RingOption {
	return func(r *Ring) { r.grading = degs }
}

// Ring is a multivariate polynomial ring over one coefficient Field, with
// named variables, a default Ordering, and an optional multigrading.
// Ring identity is pointer identity: polynomials from two separately
// constructed rings never mix, even if the rings look identical.
type Ring struct {
	field   Field
	vars    []string
	ord     Ordering
	grading [][]int // nil when ungraded
}

// NewRing constructs a polynomial ring over f with the given variable names.
// Default ordering is DegRevLex unless WithOrdering overrides it.
func NewRing(f Field, vars []string, opts ...RingOption) (*Ring, error) {
	if len(vars) == 0 {
		return nil, ErrNoVars
	}
	seen := make(map[string]struct{}, len(vars))
	for _, v := range vars {
		if v == "" {
			return nil, fmt.Errorf("%w: empty name", ErrDupVar)
		}
		if _, ok := seen[v]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDupVar, v)
		}
		seen[v] = struct{}{}
	}

	r := &Ring{
		field: f,
		vars:  append([]string(nil), vars...),
		ord:   DegRevLex,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.grading != nil {
		if len(r.grading) != len(r.vars) {
			return nil, ErrBadGrading
		}
		dim := len(r.grading[0])
		cp := make([][]int, len(r.grading))
		for i, d := range r.grading {
			if len(d) != dim {
				return nil, ErrBadGrading
			}
			cp[i] = append([]int(nil), d...)
		}
		r.grading = cp
	}

	return r, nil
}

// MustRing is NewRing that panics on error; intended for tests and fixed
// literal rings.
func MustRing(f Field, vars []string, opts ...RingOption) *Ring {
	r, err := NewRing(f, vars, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Field returns the coefficient field.
func (r *Ring) Field() Field { return r.field }

// NumVars returns the number of variables.
func (r *Ring) NumVars() int { return len(r.vars) }

// Vars returns a copy of the variable names.
func (r *Ring) Vars() []string { return append([]string(nil), r.vars...) }

// VarName returns the name of variable i.
func (r *Ring) VarName(i int) string { return r.vars[i] }

// VarIndex resolves a variable name to its index.
func (r *Ring) VarIndex(name string) (int, bool) {
	for i, v := range r.vars {
		if v == name {
			return i, true
		}
	}
	return 0, false
}

// Ordering returns the default monomial ordering.
func (r *Ring) Ordering() Ordering { return r.ord }

// Graded reports whether the ring carries a multigrading.
func (r *Ring) Graded() bool { return r.grading != nil }

// VarDegree returns the degree vector of variable i under the grading, or
// nil when ungraded.
func (r *Ring) VarDegree(i int) []int {
	if r.grading == nil {
		return nil
	}
	return append([]int(nil), r.grading[i]...)
}

// Zero returns the zero polynomial.
func (r *Ring) Zero() *Polynomial { return &Polynomial{ring: r, terms: map[string]Term{}} }

// One returns the constant polynomial 1.
func (r *Ring) One() *Polynomial { return r.Const(r.field.One()) }

// Const returns the constant polynomial with the given coefficient.
func (r *Ring) Const(c Element) *Polynomial {
	if r.field.IsZero(c) {
		return r.Zero()
	}
	p := r.Zero()
	exp := make([]int, len(r.vars))
	p.terms[expKey(exp)] = Term{Exp: exp, Coef: c}
	return p
}

// FromInt returns the constant polynomial n.
func (r *Ring) FromInt(n int64) *Polynomial { return r.Const(r.field.FromInt(n)) }

// Var returns the polynomial consisting of variable i alone.
func (r *Ring) Var(i int) *Polynomial {
	exp := make([]int, len(r.vars))
	exp[i] = 1
	p := r.Zero()
	p.terms[expKey(exp)] = Term{Exp: exp, Coef: r.field.One()}
	return p
}

// Monomial returns c·x^exp as a polynomial.
func (r *Ring) Monomial(c Element, exp []int) (*Polynomial, error) {
	if len(exp) != len(r.vars) {
		return nil, ErrVarCount
	}
	for _, e := range exp {
		if e < 0 {
			return nil, ErrNegExponent
		}
	}
	if r.field.IsZero(c) {
		return r.Zero(), nil
	}
	cp := append([]int(nil), exp...)
	p := r.Zero()
	p.terms[expKey(cp)] = Term{Exp: cp, Coef: c}
	return p, nil
}

// String renders the ring as "Field[x,y,z]".
func (r *Ring) String() string {
	return r.field.Name() + "[" + strings.Join(r.vars, ",") + "]"
}
