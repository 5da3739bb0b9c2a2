package ring

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// Sentinel errors for coefficient fields.
var (
	// ErrNotInvertible is returned when inverting the zero element.
	ErrNotInvertible = errors.New("ring: element is not invertible")

	// ErrNotPrime is returned by NewPrimeField for a composite modulus.
	ErrNotPrime = errors.New("ring: modulus is not prime")

	// ErrFieldMismatch indicates two values belong to different fields.
	ErrFieldMismatch = errors.New("ring: elements belong to different fields")
)

// Element is an opaque coefficient value. Its concrete type is owned by the
// Field that produced it; callers never inspect it directly.
type Element interface{}

// Field provides exact (or, for R64, approximate) arithmetic on opaque
// coefficient values. Implementations are comparable, so two rings share a
// field exactly when their Field values are equal.
type Field interface {
	// Zero returns the additive identity.
	Zero() Element
	// One returns the multiplicative identity.
	One() Element
	// FromInt embeds an integer into the field.
	FromInt(n int64) Element

	Add(a, b Element) Element
	Sub(a, b Element) Element
	Mul(a, b Element) Element
	Neg(a Element) Element
	// Inv returns the multiplicative inverse, or ErrNotInvertible for zero.
	Inv(a Element) (Element, error)

	IsZero(a Element) bool
	Equal(a, b Element) bool

	// Exact reports whether arithmetic is exact. Normal-form computation
	// refuses inexact fields.
	Exact() bool
	// Characteristic returns the field characteristic (0 for Q and R64).
	Characteristic() uint64
	// Format renders an element for display.
	Format(a Element) string
	// Name identifies the field for diagnostics.
	Name() string
}

// rationals is the field of arbitrary-precision rationals. Elements are
// *big.Rat values treated as immutable.
type rationals struct{}

// Q is the field of rational numbers.
var Q Field = rationals{}

func (rationals) Zero() Element           { return new(big.Rat) }
func (rationals) One() Element            { return big.NewRat(1, 1) }
func (rationals) FromInt(n int64) Element { return big.NewRat(n, 1) }

func (rationals) Add(a, b Element) Element {
	return new(big.Rat).Add(a.(*big.Rat), b.(*big.Rat))
}

func (rationals) Sub(a, b Element) Element {
	return new(big.Rat).Sub(a.(*big.Rat), b.(*big.Rat))
}

func (rationals) Mul(a, b Element) Element {
	return new(big.Rat).Mul(a.(*big.Rat), b.(*big.Rat))
}

func (rationals) Neg(a Element) Element { return new(big.Rat).Neg(a.(*big.Rat)) }

func (rationals) Inv(a Element) (Element, error) {
	r := a.(*big.Rat)
	if r.Sign() == 0 {
		return nil, ErrNotInvertible
	}
	return new(big.Rat).Inv(r), nil
}

func (rationals) IsZero(a Element) bool   { return a.(*big.Rat).Sign() == 0 }
func (rationals) Equal(a, b Element) bool { return a.(*big.Rat).Cmp(b.(*big.Rat)) == 0 }
func (rationals) Exact() bool             { return true }
func (rationals) Characteristic() uint64  { return 0 }
func (rationals) Name() string            { return "QQ" }

func (rationals) Format(a Element) string {
	r := a.(*big.Rat)
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}

// PrimeField is the finite field F_p for a prime modulus p < 2^63.
// Elements are uint64 values in [0, p).
type PrimeField struct {
	p uint64
}

// NewPrimeField constructs F_p. The modulus is primality-checked; composite
// moduli are rejected with ErrNotPrime.
func NewPrimeField(p uint64) (*PrimeField, error) {
	if p < 2 || p >= 1<<63 {
		return nil, fmt.Errorf("%w: %d", ErrNotPrime, p)
	}
	if !new(big.Int).SetUint64(p).ProbablyPrime(32) {
		return nil, fmt.Errorf("%w: %d", ErrNotPrime, p)
	}
	return &PrimeField{p: p}, nil
}

func (f *PrimeField) Zero() Element { return uint64(0) }
func (f *PrimeField) One() Element  { return uint64(1) }

func (f *PrimeField) FromInt(n int64) Element {
	m := n % int64(f.p)
	if m < 0 {
		m += int64(f.p)
	}
	return uint64(m)
}

func (f *PrimeField) Add(a, b Element) Element { return f.add(a.(uint64), b.(uint64)) }
func (f *PrimeField) Sub(a, b Element) Element { return f.sub(a.(uint64), b.(uint64)) }
func (f *PrimeField) Mul(a, b Element) Element { return f.mul(a.(uint64), b.(uint64)) }
func (f *PrimeField) Neg(a Element) Element    { return f.sub(0, a.(uint64)) }

func (f *PrimeField) Inv(a Element) (Element, error) {
	v := a.(uint64)
	if v == 0 {
		return nil, ErrNotInvertible
	}
	return f.inv(v), nil
}

func (f *PrimeField) IsZero(a Element) bool   { return a.(uint64) == 0 }
func (f *PrimeField) Equal(a, b Element) bool { return a.(uint64) == b.(uint64) }
func (f *PrimeField) Exact() bool             { return true }
func (f *PrimeField) Characteristic() uint64  { return f.p }
func (f *PrimeField) Name() string            { return "GF(" + strconv.FormatUint(f.p, 10) + ")" }
func (f *PrimeField) Format(a Element) string { return strconv.FormatUint(a.(uint64), 10) }

func (f *PrimeField) add(a, b uint64) uint64 {
	s := a + b
	if s >= f.p || s < a {
		s -= f.p
	}
	return s
}

func (f *PrimeField) sub(a, b uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + f.p - b
}

// mul reduces the full 128-bit product. Safe because a, b < p < 2^63 keeps
// the high word below the modulus.
func (f *PrimeField) mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, f.p)
	return rem
}

// inv computes a^(p-2) by square-and-multiply (Fermat).
func (f *PrimeField) inv(a uint64) uint64 {
	res, base, e := uint64(1), a, f.p-2
	for e > 0 {
		if e&1 == 1 {
			res = f.mul(res, base)
		}
		base = f.mul(base, base)
		e >>= 1
	}
	return res
}

// floats is float64 arithmetic. It is inexact: normal-form computation over
// it must fail, and tests rely on that.
type floats struct{}

// R64 is the inexact field of float64 values.
var R64 Field = floats{}

func (floats) Zero() Element             { return float64(0) }
func (floats) One() Element              { return float64(1) }
func (floats) FromInt(n int64) Element   { return float64(n) }
func (floats) Add(a, b Element) Element  { return a.(float64) + b.(float64) }
func (floats) Sub(a, b Element) Element  { return a.(float64) - b.(float64) }
func (floats) Mul(a, b Element) Element  { return a.(float64) * b.(float64) }
func (floats) Neg(a Element) Element     { return -a.(float64) }
func (floats) IsZero(a Element) bool     { return a.(float64) == 0 }
func (floats) Equal(a, b Element) bool   { return a.(float64) == b.(float64) }
func (floats) Exact() bool               { return false }
func (floats) Characteristic() uint64    { return 0 }
func (floats) Name() string              { return "R64" }
func (floats) Format(a Element) string   { return strconv.FormatFloat(a.(float64), 'g', -1, 64) }

func (floats) Inv(a Element) (Element, error) {
	v := a.(float64)
	if v == 0 {
		return nil, ErrNotInvertible
	}
	return 1 / v, nil
}
