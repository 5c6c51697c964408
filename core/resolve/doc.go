// Package resolve orders catalog entities so that every parent is processed
// before any child referencing it.
//
// The ordering is a stable topological sort: entities are grouped by
// dependency depth (the length of the longest chain of in-catalog parents)
// and, within a depth, keep their catalog declaration order. This keeps
// output and log order deterministic and close to the source tables.
//
// Parent references that name entities outside the catalog are external:
// they add no ordering edge and are reported in Plan.External, but they still
// have to be found remotely at reconciliation time.
//
// A cycle in the parent graph is a catalog defect. Resolve fails with a
// *CycleError naming the keys involved, before any network call is made.
package resolve
