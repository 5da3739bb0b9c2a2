package reduce

import (
	"context"
	"errors"

	"github.com/mvolkhin/zariski/ring"
)

// Sentinel errors for the reduction engine.
var (
	// ErrRingMismatch indicates inputs and generators from different rings.
	ErrRingMismatch = errors.New("reduce: inputs and generators must share one ring")

	// ErrNilInput indicates a nil polynomial or ideal argument.
	ErrNilInput = errors.New("reduce: nil input")

	// ErrInexactField rejects normal-form requests over inexact coefficient
	// domains before any computation starts.
	ErrInexactField = errors.New("reduce: normal form requires an exact coefficient field")

	// ErrWrongCodomain indicates a preimage request for an ideal that does
	// not live in the map's destination ring.
	ErrWrongCodomain = errors.New("reduce: ideal does not live in the map's destination ring")

	// ErrVarIndex indicates a variable index out of range.
	ErrVarIndex = errors.New("reduce: variable index out of range")
)

// Options configures the engine entry points.
type Options struct {
	// Ord overrides the ring's default monomial ordering.
	Ord ring.Ordering

	// Tail enables complete reduction: every term of the work polynomial is
	// tested for reducibility, not just the leading one. Defaults to true.
	// Ignored on the local (Mora) path, which always returns the weak
	// normal form.
	Tail bool

	// Ctx allows cancellation of long-running basis computations.
	Ctx context.Context
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions: ring-default ordering, tail reduction on, background
// context.
func DefaultOptions() Options {
	return Options{Tail: true, Ctx: context.Background()}
}

// WithOrdering overrides the monomial ordering for this call.
func WithOrdering(ord ring.Ordering) Option {
	return func(o *Options) {
		if ord != nil {
			o.Ord = ord
		}
	}
}

// WithTailReduction toggles complete reduction of non-leading terms.
func WithTailReduction(on bool) Option {
	return func(o *Options) { o.Tail = on }
}

// WithContext sets a cancellation context for basis computation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

func buildOptions(r *ring.Ring, opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Ord == nil {
		o.Ord = r.Ordering()
	}
	return o
}

// Division is the result of ReduceWithQuotientsAndUnit: for inputs I and
// generators J, Unit[i]·I[i] = Σ_j Quotients[i][j]·J[j] + Remainders[i].
type Division struct {
	// Remainders is parallel to the input sequence.
	Remainders []*ring.Polynomial

	// Quotients is the m×n quotient matrix.
	Quotients [][]*ring.Polynomial

	// Unit holds the diagonal of the m×m unit matrix. Every entry is 1
	// under a global ordering; under a local ordering entries are units of
	// the local ring at that ordering.
	Unit []*ring.Polynomial
}

// expDivides reports a | b componentwise.
func expDivides(a, b []int) bool {
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

func expSub(a, b []int) []int {
	out := make([]int, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func expLcm(a, b []int) []int {
	out := make([]int, len(a))
	for i := range a {
		out[i] = a[i]
		if b[i] > out[i] {
			out[i] = b[i]
		}
	}
	return out
}
