// Package reconcile provides the building blocks for optimistic mutations that
// are reconciled with a remote once persistence settles.
//
// A mutation is applied to local state first. Persistence then runs in the
// background and its outcome is folded back into local state. This package holds
// the pieces that are independent of the record type:
//
//   - Policy: what to do with the optimistic value when persistence fails
//     (retain it, or revert to the previous value).
//   - Pending: a handle to a background persistence result.
//   - Tracker: counts in-flight persistence work so a session can drain it.
//
// # Ordering
//
// Background persistence calls are independent. Their outcomes are applied in
// the order they arrive, so the last response to land wins. There is no
// sequencing token; callers that need stricter ordering must add one.
//
// # Usage Example
//
//	p := reconcile.NewPending[models.Character]()
//	tracker.Go(func() {
//	    rec, err := client.PersistVotes(ctx, id, votes)
//	    // fold rec/err back into local state here
//	    p.Resolve(rec, err)
//	})
//	rec, err := p.Wait(ctx)
package reconcile
