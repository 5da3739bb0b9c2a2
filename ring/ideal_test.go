package ring_test

import (
	"testing"

	"github.com/mvolkhin/zariski/ring"
)

func TestIdealConstruction(t *testing.T) {
	r := ring.MustRing(ring.Q, []string{"x", "y"})
	other := ring.MustRing(ring.Q, []string{"x", "y"})

	if _, err := ring.NewIdeal(r, other.One()); err != ring.ErrRingMismatch {
		t.Fatalf("foreign generator: got %v, want ErrRingMismatch", err)
	}

	zero := ring.MustIdeal(r)
	if !zero.IsZeroIdeal() || zero.Len() != 0 {
		t.Error("empty generator list should be the zero ideal")
	}

	// zero generators are kept in place
	i := ring.MustIdeal(r, r.Zero(), ring.MustParse(r, "x"), r.Zero())
	if i.Len() != 3 {
		t.Errorf("Len = %d, want 3", i.Len())
	}
	if !i.Gen(0).IsZero() || i.Gen(1).IsZero() {
		t.Error("generator order not preserved")
	}
	if i.IsZeroIdeal() {
		t.Error("ideal with a nonzero generator reported zero")
	}

	if !ring.MustIdeal(r, r.FromInt(5)).ContainsUnitGenerator() {
		t.Error("constant 5 should be a unit generator")
	}
	if ring.MustIdeal(r, r.Zero()).ContainsUnitGenerator() {
		t.Error("zero is not a unit generator")
	}
}

func TestIdealSumProduct(t *testing.T) {
	r := ring.MustRing(ring.Q, []string{"x", "y"})
	i := ring.MustIdeal(r, ring.MustParse(r, "x"))
	j := ring.MustIdeal(r, ring.MustParse(r, "y"), ring.MustParse(r, "x+y"))

	s, err := i.Sum(j)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 {
		t.Errorf("Sum length = %d, want 3", s.Len())
	}

	p, err := i.Product(j)
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 2 {
		t.Errorf("Product length = %d, want 2", p.Len())
	}
	if !p.Gen(0).Equal(ring.MustParse(r, "x*y")) {
		t.Errorf("Product gen 0 = %s", p.Gen(0))
	}

	other := ring.MustRing(ring.Q, []string{"x"})
	if _, err := i.Sum(ring.MustIdeal(other, other.One())); err != ring.ErrRingMismatch {
		t.Errorf("cross-ring Sum: got %v, want ErrRingMismatch", err)
	}
}

func TestBasisCache(t *testing.T) {
	r := ring.MustRing(ring.Q, []string{"x", "y"})
	i := ring.MustIdeal(r, ring.MustParse(r, "x"), ring.MustParse(r, "y"))

	if i.KnownBasis(ring.DegRevLex) {
		t.Fatal("fresh ideal claims a verified basis")
	}
	if _, ok := i.CachedBasis(ring.DegRevLex); ok {
		t.Fatal("fresh ideal has a cached basis")
	}

	i.MarkBasis(ring.DegRevLex)
	if !i.KnownBasis(ring.DegRevLex) {
		t.Error("MarkBasis did not stick")
	}
	if b, ok := i.CachedBasis(ring.DegRevLex); !ok || len(b) != 2 {
		t.Error("MarkBasis should expose the generators as the cached basis")
	}
	// the cache holds one ordering at a time
	if i.KnownBasis(ring.Lex) {
		t.Error("verification for degrevlex leaked to lex")
	}

	basis := []*ring.Polynomial{ring.MustParse(r, "x"), ring.MustParse(r, "y")}
	i.SetCachedBasis(ring.Lex, basis)
	if i.KnownBasis(ring.Lex) {
		t.Error("SetCachedBasis must not mark the generators verified")
	}
	if _, ok := i.CachedBasis(ring.DegRevLex); ok {
		t.Error("replacing the cache ordering should evict the old entry")
	}
	if b, ok := i.CachedBasis(ring.Lex); !ok || len(b) != 2 {
		t.Error("cached basis for lex missing")
	}
}
