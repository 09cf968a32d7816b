// Package order provides domain entities and business logic for laundry order
// management. It implements the Order aggregate root with lifecycle management,
// NFC tag binding, and an append-only status history.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, ownership, tag binding,
//     shelf location, and lifecycle
//   - Status: The fixed set of pipeline states an order moves through
//   - TransitionPolicy: A configurable allow-list deciding which transitions are legal
//   - LogEntry: A single record in the order's append-only status history
//
// Key business rules:
//   - Orders must have a valid unique identifier and owner
//   - The status log is seeded with one entry at creation and grows by exactly
//     one entry per transition; it is never truncated or reordered
//   - Completed is a terminal status under every transition policy
//   - An NFC tag, once bound, stays bound until the order completes
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
