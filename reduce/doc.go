// Package reduce implements multivariate polynomial division with
// remainders, quotient matrices, and units, for arbitrary global and local
// monomial orderings, plus the ideal-level operations built on it:
// normal forms, standard-basis computation, membership, elimination, and
// saturation.
//
// What
//
//   - ReduceWithQuotientsAndUnit: the full division contract. For inputs I
//     (length m) and generators J (length n) it returns remainders R,
//     an m×n quotient matrix Q, and a diagonal unit matrix U with
//     U·I = Q·J + R exactly. Under a global ordering U is the identity;
//     under a local ordering the weak (Mora) division strategy runs and the
//     diagonal entries of U are units of the local ring.
//   - Reduce / ReduceList and the ReduceBy / ReduceListBy shapes: the
//     calling-convention facade. ReduceList preserves length and zero
//     entries — zero remainders are never elided.
//   - NormalForm / NormalFormList: normal forms against an ideal, with an
//     explicit strategy choice (SelectStrategy) between a flat prime-field
//     degrevlex fast path and the general engine. Inexact coefficient
//     fields are rejected up front.
//   - Basis: Buchberger's algorithm driven by the division engine, which
//     makes it a standard-basis engine under local orderings as well.
//   - Contains, IdealsEqual, Eliminate, Preimage, Saturate,
//     SaturateVariable: the ideal calculus the sheaf and blowup layers
//     consume.
//
// Division strategy
//
//	Global orderings use ordinary long division: each rewrite strictly
//	decreases the leading monomial, so termination follows from the
//	well-ordering. With tail reduction enabled (the default) every term is
//	tested for reducibility; with it disabled the algorithm stops at the
//	first irreducible leading term. Local orderings use Mora's weak normal
//	form with ecart selection; intermediate results join the divisor set,
//	and the accumulated factor in front of the input is returned as the
//	unit. Tail reduction does not apply on the local path.
//
// Complexity: division is output-sensitive; Buchberger is worst-case
// doubly exponential like every Gröbner engine. All entry points are
// synchronous; Basis accepts a context for caller-imposed cancellation.
package reduce
