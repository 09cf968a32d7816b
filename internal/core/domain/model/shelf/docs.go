// Package shelf provides the domain entity for physical storage shelves in the
// laundry facility. A shelf is a location slot tagged with the pipeline stage it
// serves, optionally holding one order's items at a time.
//
// The package includes:
//   - Shelf: The aggregate root managing shelf identity, stage, and occupancy
//   - Stage: A value object for the pipeline phase a shelf physically serves
//
// Key business rules:
//   - Shelf codes are unique and immutable once created
//   - A shelf holds at most one order at a time
//   - Occupancy is derived from the current order reference, so the two can
//     never disagree
package shelf
