package ring

// Ordering is a total order on monomials, given by their exponent vectors.
// Compare returns +1 when a is larger than b in the order (a would be the
// leading monomial), -1 when smaller, 0 when equal.
//
// An ordering is global when 1 is the smallest monomial; division by leading
// terms then terminates by well-ordering. Local orderings invert that and
// force the reduction engine onto the weak division strategy.
//
// All shipped orderings are comparable values, so they can be used as cache
// keys and compared with ==.
type Ordering interface {
	Compare(a, b []int) int
	Global() bool
	Name() string
}

// Shipped orderings. Lex, DegLex and DegRevLex are global; NegLex, NegDegLex
// and NegDegRevLex are the local mirror images.
var (
	Lex          Ordering = lexOrd{}
	DegLex       Ordering = degLexOrd{}
	DegRevLex    Ordering = degRevLexOrd{}
	NegLex       Ordering = negLexOrd{}
	NegDegLex    Ordering = negDegLexOrd{}
	NegDegRevLex Ordering = negDegRevLexOrd{}
)

func totalDeg(a []int) int {
	d := 0
	for _, e := range a {
		d += e
	}
	return d
}

// cmpLex: first nonzero entry of a-b decides; positive means a is larger.
func cmpLex(a, b []int) int {
	for i := range a {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}
	return 0
}

// cmpRevLex: last nonzero entry of a-b decides; negative means a is larger.
func cmpRevLex(a, b []int) int {
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return 1
		case a[i] > b[i]:
			return -1
		}
	}
	return 0
}

func cmpInt(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}

type lexOrd struct{}

func (lexOrd) Compare(a, b []int) int { return cmpLex(a, b) }
func (lexOrd) Global() bool           { return true }
func (lexOrd) Name() string           { return "lex" }

type degLexOrd struct{}

func (degLexOrd) Compare(a, b []int) int {
	if c := cmpInt(totalDeg(a), totalDeg(b)); c != 0 {
		return c
	}
	return cmpLex(a, b)
}
func (degLexOrd) Global() bool { return true }
func (degLexOrd) Name() string { return "deglex" }

type degRevLexOrd struct{}

func (degRevLexOrd) Compare(a, b []int) int {
	if c := cmpInt(totalDeg(a), totalDeg(b)); c != 0 {
		return c
	}
	return cmpRevLex(a, b)
}
func (degRevLexOrd) Global() bool { return true }
func (degRevLexOrd) Name() string { return "degrevlex" }

type negLexOrd struct{}

func (negLexOrd) Compare(a, b []int) int { return -cmpLex(a, b) }
func (negLexOrd) Global() bool           { return false }
func (negLexOrd) Name() string           { return "neglex" }

type negDegLexOrd struct{}

func (negDegLexOrd) Compare(a, b []int) int {
	if c := cmpInt(totalDeg(b), totalDeg(a)); c != 0 {
		return c
	}
	return cmpLex(a, b)
}
func (negDegLexOrd) Global() bool { return false }
func (negDegLexOrd) Name() string { return "negdeglex" }

type negDegRevLexOrd struct{}

func (negDegRevLexOrd) Compare(a, b []int) int {
	if c := cmpInt(totalDeg(b), totalDeg(a)); c != 0 {
		return c
	}
	return cmpRevLex(a, b)
}
func (negDegRevLexOrd) Global() bool { return false }
func (negDegRevLexOrd) Name() string { return "negdegrevlex" }

// weightedOrd compares by a fixed-length weight vector first, then by a tie
// breaker. The weight slice lives behind an array-backed key so the value
// stays comparable; MaxWeightVars bounds the ring size it supports.
const MaxWeightVars = 16

type weightedOrd struct {
	n      int
	w      [MaxWeightVars]int
	tie    Ordering
	global bool
}

// Weighted builds a weight ordering: monomials compare by w·a first, ties
// resolved by tie. It is global exactly when every weight is positive and
// tie is global. Panics if len(w) exceeds MaxWeightVars.
func Weighted(w []int, tie Ordering) Ordering {
	if len(w) > MaxWeightVars {
		panic("ring: weight vector exceeds MaxWeightVars")
	}
	o := weightedOrd{n: len(w), tie: tie, global: tie.Global()}
	for i, wi := range w {
		o.w[i] = wi
		if wi <= 0 {
			o.global = false
		}
	}
	return o
}

func (o weightedOrd) Compare(a, b []int) int {
	wa, wb := 0, 0
	for i := 0; i < o.n && i < len(a); i++ {
		wa += o.w[i] * a[i]
		wb += o.w[i] * b[i]
	}
	if c := cmpInt(wa, wb); c != 0 {
		return c
	}
	return o.tie.Compare(a, b)
}
func (o weightedOrd) Global() bool { return o.global }
func (o weightedOrd) Name() string { return "weighted(" + o.tie.Name() + ")" }

// elimOrd is a block order eliminating the first k variables: the leading
// block compares by deglex on those variables, so any monomial involving an
// eliminated variable beats any monomial that avoids them all.
type elimOrd struct {
	k     int
	inner Ordering
}

// Elim builds the elimination order for the first k variables with inner
// ordering the remaining block. Global exactly when inner is.
func Elim(k int, inner Ordering) Ordering { return elimOrd{k: k, inner: inner} }

func (o elimOrd) Compare(a, b []int) int {
	if c := cmpInt(totalDeg(a[:o.k]), totalDeg(b[:o.k])); c != 0 {
		return c
	}
	if c := cmpLex(a[:o.k], b[:o.k]); c != 0 {
		return c
	}
	return o.inner.Compare(a[o.k:], b[o.k:])
}
func (o elimOrd) Global() bool { return o.inner.Global() }
func (o elimOrd) Name() string { return "elim(" + o.inner.Name() + ")" }

// VarLast reorders degrevlex so that variable idx compares as the very last
// (cheapest) position. Saturation by a single variable relies on it.
type varLastOrd struct {
	idx int
}

// VarLast returns degrevlex with variable idx moved to the last position.
func VarLast(idx int) Ordering { return varLastOrd{idx: idx} }

func (o varLastOrd) Compare(a, b []int) int {
	if c := cmpInt(totalDeg(a), totalDeg(b)); c != 0 {
		return c
	}
	// revlex with position idx scanned first (it is the cheapest variable)
	if c := cmpInt(b[o.idx], a[o.idx]); c != 0 {
		return c
	}
	for i := len(a) - 1; i >= 0; i-- {
		if i == o.idx {
			continue
		}
		switch {
		case a[i] < b[i]:
			return 1
		case a[i] > b[i]:
			return -1
		}
	}
	return 0
}
func (o varLastOrd) Global() bool { return true }
func (o varLastOrd) Name() string { return "degrevlex(varlast)" }
