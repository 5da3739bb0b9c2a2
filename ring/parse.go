package ring

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

// ErrParse wraps all polynomial-parsing failures.
var ErrParse = errors.New("ring: parse error")

// Parse reads a polynomial in the ring's variables from a string such as
// "x^2*y - 3/2*y^3 + 1". Grammar: sums of terms; terms are '*'-separated
// factors; a factor is an integer, a rational a/b, a variable with an
// optional '^' power, or a parenthesized sub-expression.
func Parse(r *Ring, s string) (*Polynomial, error) {
	p := &parser{r: r, in: s}
	out, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.in) {
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrParse, p.in[p.pos:], p.pos)
	}
	return out, nil
}

// MustParse is Parse that panics on error; intended for tests and literals.
func MustParse(r *Ring, s string) *Polynomial {
	p, err := Parse(r, s)
	if err != nil {
		panic(err)
	}
	return p
}

type parser struct {
	r   *Ring
	in  string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.in) && (p.in[p.pos] == ' ' || p.in[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.in) {
		return 0
	}
	return p.in[p.pos]
}

// expr := ['-'] term (('+'|'-') term)*
func (p *parser) expr() (*Polynomial, error) {
	p.skipSpace()
	neg := false
	if p.peek() == '-' {
		neg = true
		p.pos++
	} else if p.peek() == '+' {
		p.pos++
	}
	sum, err := p.term()
	if err != nil {
		return nil, err
	}
	if neg {
		sum = sum.Neg()
	}
	for {
		p.skipSpace()
		op := p.peek()
		if op != '+' && op != '-' {
			return sum, nil
		}
		p.pos++
		t, err := p.term()
		if err != nil {
			return nil, err
		}
		if op == '-' {
			sum = sum.Sub(t)
		} else {
			sum = sum.Add(t)
		}
	}
}

// term := factor ('*' factor)*
func (p *parser) term() (*Polynomial, error) {
	prod, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		if p.peek() != '*' {
			return prod, nil
		}
		p.pos++
		f, err := p.factor()
		if err != nil {
			return nil, err
		}
		prod = prod.Mul(f)
	}
}

// factor := number | var ['^' int] | '(' expr ')'
func (p *parser) factor() (*Polynomial, error) {
	p.skipSpace()
	switch c := p.peek(); {
	case c == '(':
		p.pos++
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return nil, fmt.Errorf("%w: missing ')' at offset %d", ErrParse, p.pos)
		}
		p.pos++
		return inner, nil
	case c >= '0' && c <= '9':
		return p.number()
	case isIdentStart(rune(c)):
		return p.variable()
	}
	return nil, fmt.Errorf("%w: unexpected input at offset %d", ErrParse, p.pos)
}

func (p *parser) number() (*Polynomial, error) {
	num, err := p.integer()
	if err != nil {
		return nil, err
	}
	c := p.r.field.FromInt(num)
	p.skipSpace()
	if p.peek() == '/' {
		p.pos++
		den, err := p.integer()
		if err != nil {
			return nil, err
		}
		inv, err := p.r.field.Inv(p.r.field.FromInt(den))
		if err != nil {
			return nil, fmt.Errorf("%w: zero denominator", ErrParse)
		}
		c = p.r.field.Mul(c, inv)
	}
	return p.r.Const(c), nil
}

func (p *parser) integer() (int64, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.in) && p.in[p.pos] >= '0' && p.in[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return 0, fmt.Errorf("%w: expected integer at offset %d", ErrParse, start)
	}
	n, err := strconv.ParseInt(p.in[start:p.pos], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return n, nil
}

func (p *parser) variable() (*Polynomial, error) {
	start := p.pos
	for p.pos < len(p.in) && isIdentPart(rune(p.in[p.pos])) {
		p.pos++
	}
	name := p.in[start:p.pos]
	idx, ok := p.r.VarIndex(name)
	if !ok {
		return nil, fmt.Errorf("%w: unknown variable %q", ErrParse, name)
	}
	v := p.r.Var(idx)
	p.skipSpace()
	if p.peek() != '^' {
		return v, nil
	}
	p.pos++
	e, err := p.integer()
	if err != nil {
		return nil, err
	}
	exp := make([]int, p.r.NumVars())
	exp[idx] = int(e)
	m, err := p.r.Monomial(p.r.field.One(), exp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return m, nil
}

func isIdentStart(c rune) bool { return unicode.IsLetter(c) || c == '_' }

func isIdentPart(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '\''
}
