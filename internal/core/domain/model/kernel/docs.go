// Package kernel contains shared value objects used across the domain model.
//
// The kernel provides:
//   - UUID: validated unique identifiers for entities and aggregates
//   - Money: two-decimal currency amounts with exact split arithmetic
//
// Value objects in this package are immutable, validate themselves on
// construction, and carry no business rules of their own. Domain aggregates
// build their invariants on top of them.
package kernel
