// Package observe provides the observable state container shared by every
// deskset utility.
//
// A Value holds one immutable snapshot. Mutation happens only through
// Commit, which replaces the snapshot atomically and then notifies every
// subscriber synchronously, in registration order. This direct iteration —
// rather than a published event bus — keeps notification ordering
// deterministic.
//
// The container is mutex-guarded because timer ticks arrive on their own
// goroutine, but the contract is cooperative: commits are not queued or
// batched, and a listener that calls back into the emitting object's
// mutating operations risks a nested commit (or a deadlock when the caller
// holds its own lock through notification). Treat listeners as render
// hooks, not controllers.
package observe
