// Package sheaf implements ideal sheaves on a covered algebraic space:
// a chart arena with glueing data, worklist propagation of local ideals
// across the glueing graph, and matching of primary/prime components across
// overlapping charts.
//
// What
//
//   - Covering: an arena of charts with stable integer ChartIDs and an
//     undirected glueing graph. Chart identity is arena identity — two
//     charts are the same patch exactly when they carry the same ChartID in
//     the same Covering, never by algebraic comparison.
//   - Glueing: overlap loci D(f) on both sides plus a Transition per
//     direction. A Transition transports an ideal across the overlap and
//     returns the saturated ideal of the Zariski closure on the far side;
//     RationalTransition derives one from rational coordinate images,
//     TransitionFunc adapts any function.
//   - IdealSheaf: a partial chart → ideal assignment. Extend completes it
//     over the whole covering by worklist propagation; charts the seeds
//     never reach are assigned the zero ideal. That default is deliberate
//     ("no constraint known"), in contrast to the unit-ideal default of
//     component records ("component absent here") — the two fillers encode
//     different things and are never interchangeable.
//   - Matcher: decides whether a freshly computed local component on one
//     chart continues an existing cross-chart component record, starts a
//     new one, or proves that several records were one component all along
//     (merge). Only non-unit overlap restrictions carry information; a
//     record that simultaneously confirms and contradicts is reported as
//     fatally inconsistent when the consistency check is on.
//   - MinimalAssociatedPoints, AssociatedPoints, PrimaryComponents: drive
//     the matcher over per-chart decompositions supplied as function hooks.
//
// Concurrency
//
//	Everything here is synchronous and mutates sheaf-internal maps in
//	place. Nothing is locked; callers sharing a sheaf or matcher across
//	goroutines must serialize access themselves. Extend accepts a context
//	for caller-imposed cancellation.
package sheaf
