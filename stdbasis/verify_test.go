package stdbasis_test

import (
	"errors"
	"testing"

	"github.com/mvolkhin/zariski/reduce"
	"github.com/mvolkhin/zariski/ring"
	"github.com/mvolkhin/zariski/stdbasis"
)

func TestIsGroebnerBasis(t *testing.T) {
	r := ring.MustRing(ring.Q, []string{"x", "y"})

	// [x^2, x*y - y^2] misses the S-pair reduction y^3
	open := ring.MustIdeal(r,
		ring.MustParse(r, "x^2"),
		ring.MustParse(r, "x*y - y^2"),
	)
	ok, err := stdbasis.IsGroebnerBasis(open, ring.DegRevLex)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("generator pair with a nonzero S-pair remainder accepted")
	}

	// closing it with Buchberger yields a verified basis
	basis, err := reduce.Basis(open)
	if err != nil {
		t.Fatal(err)
	}
	closed := ring.MustIdeal(r, basis...)
	ok, err = stdbasis.IsGroebnerBasis(closed, ring.DegRevLex)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("Buchberger output rejected")
	}
	if !closed.KnownBasis(ring.DegRevLex) {
		t.Error("positive verdict not recorded on the ideal")
	}
}

func TestIsGroebnerBasisRejectsLocalOrdering(t *testing.T) {
	r := ring.MustRing(ring.Q, []string{"x"})
	i := ring.MustIdeal(r, r.Var(0))

	if _, err := stdbasis.IsGroebnerBasis(i, ring.NegLex); !errors.Is(err, stdbasis.ErrLocalOrdering) {
		t.Errorf("got %v, want ErrLocalOrdering", err)
	}

	// the ring default applies (and can itself be local)
	local := ring.MustRing(ring.Q, []string{"x"}, ring.WithOrdering(ring.NegDegRevLex))
	j := ring.MustIdeal(local, local.Var(0))
	if _, err := stdbasis.IsGroebnerBasis(j, nil); !errors.Is(err, stdbasis.ErrLocalOrdering) {
		t.Errorf("nil ordering should fall back to the local ring default: %v", err)
	}
}

func TestIsStandardBasisLocal(t *testing.T) {
	// a single generator is always a standard basis, any ordering
	r := ring.MustRing(ring.Q, []string{"x", "y"}, ring.WithOrdering(ring.NegDegRevLex))
	i := ring.MustIdeal(r, ring.MustParse(r, "x - x^2"))

	ok, err := stdbasis.IsStandardBasis(i, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("singleton sequence rejected")
	}
	if !i.KnownBasis(ring.NegDegRevLex) {
		t.Error("verdict not cached")
	}
}

func TestNegLexRoundTrip(t *testing.T) {
	r := ring.MustRing(ring.Q, []string{"x", "y"})

	// both generators lead with y under neglex, so the S-pair leaves
	// x^2 - x^3 behind and the pair is not a standard basis
	open := ring.MustIdeal(r,
		ring.MustParse(r, "y + x^2"),
		ring.MustParse(r, "y + x^3"),
	)
	ok, err := stdbasis.IsStandardBasis(open, ring.NegLex)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("open pair accepted under neglex")
	}

	// the computed neglex standard basis closes the gap
	basis, err := reduce.Basis(open, reduce.WithOrdering(ring.NegLex))
	if err != nil {
		t.Fatal(err)
	}
	closed := ring.MustIdeal(r, basis...)
	ok, err = stdbasis.IsStandardBasis(closed, ring.NegLex)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("computed neglex standard basis rejected")
	}
	if !closed.KnownBasis(ring.NegLex) {
		t.Error("positive verdict not recorded on the ideal")
	}
}

func TestCachedVerdictShortCircuits(t *testing.T) {
	r := ring.MustRing(ring.Q, []string{"x", "y"})
	// this pair is NOT a basis, but a forged cache entry must win
	i := ring.MustIdeal(r,
		ring.MustParse(r, "x^2"),
		ring.MustParse(r, "x*y - y^2"),
	)
	i.MarkBasis(ring.DegRevLex)

	ok, err := stdbasis.IsStandardBasis(i, ring.DegRevLex)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("cached verdict ignored")
	}

	// a different ordering is not covered by the cache entry
	ok, err = stdbasis.IsGroebnerBasis(i, ring.Lex)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("cache for degrevlex leaked to lex")
	}
}

func TestZeroGeneratorsIgnored(t *testing.T) {
	r := ring.MustRing(ring.Q, []string{"x", "y"})
	i := ring.MustIdeal(r, r.Zero(), ring.MustParse(r, "x"), r.Zero(), ring.MustParse(r, "y"))

	ok, err := stdbasis.IsGroebnerBasis(i, ring.DegRevLex)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("[0, x, 0, y] is a Gröbner basis; zeros must not disturb the pair loop")
	}
}

func TestNilIdeal(t *testing.T) {
	if _, err := stdbasis.IsStandardBasis(nil, ring.Lex); !errors.Is(err, stdbasis.ErrNilInput) {
		t.Errorf("got %v, want ErrNilInput", err)
	}
}
