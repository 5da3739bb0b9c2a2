// Package ring implements the small commutative-algebra kernel that the
// reduction, basis-verification, sheaf, and blowup packages are built on:
// exact coefficient fields, monomial orderings, multivariate polynomials,
// ideals, and ring maps.
//
// What
//
//   - Field: exact coefficient arithmetic behind an opaque Element value.
//     Shipped fields: Q (arbitrary-precision rationals), prime fields F_p
//     (NewPrimeField), and R64 (float64, inexact — exists so callers can
//     exercise inexact-domain error paths).
//   - Ordering: total orders on monomials, classified global or local.
//     Global orders (Lex, DegLex, DegRevLex, positive Weighted, Elim) make
//     division by leading terms terminate; local orders (NegLex, NegDegLex,
//     NegDegRevLex) do not, and the reduction engine switches to a weak
//     division strategy for them.
//   - Ring: a polynomial ring over one Field with named variables, a
//     default Ordering, and an optional multigrading.
//   - Polynomial: an immutable term map (exponent vector → coefficient);
//     arithmetic always produces new values.
//   - Ideal: an ordered generator sequence plus a mutable one-slot basis
//     cache (ordering, basis, verified flag). The cache is written by the
//     basis engines under a single-writer contract; it is not synchronized.
//   - Map: a ring map given by rational images of the source variables.
//
// Why
//
//	The division/reduction engine and the ideal-sheaf machinery treat
//	coefficient arithmetic, monomial comparison, and ideal bookkeeping as
//	oracle calls. This package is that oracle: deliberately small, exact,
//	and free of any algorithmic content beyond term arithmetic.
//
// Conventions
//
//   - Mixing values from different rings (or elements from different
//     fields) in polynomial arithmetic is a programming error and panics
//     with ErrRingMismatch; package entry points that accept user input
//     validate first and return errors instead.
//   - Exponent vectors are never retained by the caller nor mutated after
//     construction; accessors hand out copies.
//
// Complexity: polynomial Add/Sub are O(t) in the term count, Mul is
// O(t_a·t_b), LeadingTerm is O(t) per call (no sorted representation is
// maintained).
package ring
