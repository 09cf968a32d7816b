// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the laundry tracking system. It implements
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - TagPool: The owner of the physical NFC tag universe, handing tags out to
//     new orders and reclaiming them on completion
//   - Access policy functions deciding, per operation, whether the acting
//     identity may perform it
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
