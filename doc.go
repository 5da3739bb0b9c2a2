// Package zariski is a computer-algebra library for polynomial ideal
// reduction and ideal-sheaf machinery: multivariate division with quotients
// and units under global and local monomial orderings, standard-basis
// verification, ideal sheaves on glued charts, and toric blowup transforms.
//
// What lives where:
//
//	ring/     — coefficient fields (Q, F_p, float64), monomial orderings,
//	            polynomials, ideals with a basis cache, ring maps
//	reduce/   — the division engine (long division and Mora's weak normal
//	            form), reduction facade, Buchberger bases, normal-form
//	            strategies, elimination and saturation
//	stdbasis/ — Buchberger-criterion verification of standard and Gröbner
//	            bases
//	sheaf/    — chart arenas, glueings and transitions, ideal-sheaf
//	            propagation across a covering, component matching,
//	            associated and minimal points
//	blowup/   — Cox module homomorphisms, total and strict transforms of
//	            ideals under toric blowups
//
// The core contract of the division engine, for inputs I, generators J and
// any monomial ordering:
//
//	U·I = Q·J + R
//
// with U the identity under global orderings and a diagonal matrix of local
// units under local ones. Everything else in the library — basis
// verification, membership, saturation, sheaf propagation, blowup strict
// transforms — is built on that identity.
//
// All algorithms are synchronous and single-threaded; the few in-place
// caches (ideal basis cache, sheaf chart maps) follow a documented
// single-writer contract and are not synchronized.
package zariski
