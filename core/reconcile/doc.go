// Package reconcile drives idempotent upserts of catalog entities against the
// inventory API.
//
// A run resolves the catalog into a processing order (see core/resolve), then
// walks it sequentially. For every entity it:
//
//  1. Resolves each parent reference to a remote id. In-catalog parents come
//     from the run index, filled as earlier entities are found or created;
//     external parents are looked up remotely once and cached in the index.
//     A parent that cannot be resolved makes the entity Skipped.
//  2. Looks the entity up by natural key (narrowed by scope parents). When it
//     exists the outcome is AlreadyExists, unless a mutable relationship has
//     drifted from the resolved parent id, in which case a single PATCH
//     corrects it and the outcome is Updated.
//  3. Creates the entity when it is absent, with resolved parent ids placed in
//     their declared fields. A duplicate-key rejection triggers one re-lookup
//     so that a concurrent run's create is absorbed as AlreadyExists.
//
// # Failure Containment
//
// Errors never unwind past a single entity: they become a Failed or Skipped
// outcome and only prevent the resolution of the entity's descendants. The
// only run-level error is a *resolve.CycleError, returned before any request
// is made.
//
// # Idempotence
//
// Natural keys are the sole existence test, so a second run over the same
// catalog performs lookups only and produces no Created outcomes.
//
// # Usage
//
//	r := reconcile.New(client, logger, reporter)
//	run, err := r.Reconcile(ctx, cat)
//	if err != nil {
//	    return err // catalog defect, nothing was sent
//	}
//	if !run.OK() {
//	    ...
//	}
package reconcile
