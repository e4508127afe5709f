// Package order contains the Order aggregate: the central entity of the
// escrow payment tracker.
//
// The package implements:
//   - the lifecycle state machine (Status) governing which actor may trigger
//     which transition, under what preconditions, and with what timestamps
//   - the derived-amount computation (advance = rounded percentage of the
//     total, remaining = exact subtractive complement)
//   - the deterministic service agreement text generated at creation
//
// The aggregate is pure: it holds no references to storage and is invoked
// per-call with its full state, returning mutations through validated
// methods. Persistence is the responsibility of repository adapters working
// through the ports package.
//
// The original catalogue of statuses also carried a "completed" value that
// no transition ever produced; it is deliberately absent here rather than
// given an invented transition.
package order
