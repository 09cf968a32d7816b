package order

import (
	"errors"
	"time"

	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/pkg/errs"
	"laundrytrack/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// one of the factory functions. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder, NewOrderWithTag, or RestoreOrder")

	// ErrShelfLocationIsRequired is returned when a shelf location is empty
	// where one is mandatory.
	ErrShelfLocationIsRequired = errs.NewValueIsRequiredError("shelf location")

	// ErrOrderAlreadyCompleted is returned when attempting to mutate an order
	// that has reached its terminal status.
	ErrOrderAlreadyCompleted = errors.New("order is already completed")
)

// LogEntry is a single record in an order's append-only status history.
// Entries are stored oldest first and are never rewritten.
type LogEntry struct {
	Status    Status
	Timestamp time.Time
}

// Order represents a physical laundry drop-off moving through the processing
// pipeline. It is the aggregate root that manages the order lifecycle from
// drop-off through wash, iron, and pickup.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid owner
//   - The status log always holds at least one entry and grows by exactly one
//     entry per status transition, in chronological order
//   - The NFC tag binding, when present, is immutable for the order's lifetime
//   - Status transitions are checked against the supplied TransitionPolicy
//   - Can only be created through a factory function
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// ownerID references the user who dropped the items off
	ownerID kernel.UUID

	// nfcTag is the bound physical tag (nil on the manual intake path)
	nfcTag *kernel.TagID

	// status is the current state in the processing pipeline
	status Status

	// shelfLocation is the free-text or shelf-code location of the items
	shelfLocation string

	// statusLog is the append-only history of status transitions, oldest first
	statusLog []LogEntry

	// guard ensures the order was created via a factory function
	guard guard.ConstructorGuard
}

// NewOrder creates an order on the manual intake path.
// The order starts in YetToWash with no NFC tag bound, and the status log is
// seeded with a single entry for the initial status.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - ownerID: The authenticated customer dropping the items off
//   - shelfLocation: Where the items were placed (must be non-empty)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(id kernel.UUID, ownerID kernel.UUID, shelfLocation string) (*Order, error) {
	return newOrder(id, ownerID, nil, shelfLocation, StatusYetToWash)
}

// NewOrderWithTag creates an order on the NFC intake path.
// The caller supplies an already-acquired pool tag and an explicit initial
// status; the tag stays bound to the order until completion.
//
// The tag must have been obtained from the TagPool by the caller: this
// constructor does not touch pool state, so a failed construction leaves the
// caller responsible for releasing the tag.
//
// Parameters:
//   - id: Unique identifier for the order
//   - ownerID: The authenticated customer
//   - shelfLocation: Where the items were placed (must be non-empty)
//   - tag: The acquired NFC tag to bind
//   - initialStatus: Explicit initial pipeline status (must be valid)
//
// Returns:
//   - *Order: The created order with the tag bound
//   - error: Validation error if any parameter is invalid
func NewOrderWithTag(
	id kernel.UUID,
	ownerID kernel.UUID,
	shelfLocation string,
	tag kernel.TagID,
	initialStatus Status,
) (*Order, error) {
	if err := tag.Validate(); err != nil {
		return nil, err
	}
	return newOrder(id, ownerID, &tag, shelfLocation, initialStatus)
}

func newOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	nfcTag *kernel.TagID,
	shelfLocation string,
	initialStatus Status,
) (*Order, error) {
	o := &Order{
		nfcTag: nfcTag,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwnerID(ownerID),
		o.setShelfLocation(shelfLocation),
		o.setInitialStatus(initialStatus),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike the creation constructors, it accepts the full persisted state
// including the status history, and performs consistency validation on it.
//
// Business rules:
//   - The status log must be non-empty and its last entry must match the
//     current status
//   - Log entries must be in non-decreasing timestamp order
func RestoreOrder(
	id kernel.UUID,
	ownerID kernel.UUID,
	nfcTag *kernel.TagID,
	status Status,
	shelfLocation string,
	statusLog []LogEntry,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		ownerID.Validate(),
		status.Validate(),
		validateStatusLog(statusLog, status),
	); err != nil {
		return nil, err
	}

	if nfcTag != nil {
		if err := nfcTag.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		ownerID:       ownerID,
		nfcTag:        nfcTag,
		status:        status,
		shelfLocation: shelfLocation,
		statusLog:     statusLog,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func validateStatusLog(log []LogEntry, current Status) error {
	if len(log) == 0 {
		return errs.NewValueIsRequiredError("status log")
	}
	if log[len(log)-1].Status != current {
		return errs.NewValueIsInvalidError("status log does not end with the current status")
	}
	for i := 1; i < len(log); i++ {
		if log[i].Timestamp.Before(log[i-1].Timestamp) {
			return errs.NewValueIsInvalidError("status log timestamps are not in order")
		}
	}
	return nil
}

// Validate ensures the Order instance was properly constructed through a factory function.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identifier of the customer who owns the order.
func (o *Order) OwnerID() kernel.UUID {
	return o.ownerID
}

// Tag returns the bound NFC tag, or nil for manually created orders.
func (o *Order) Tag() *kernel.TagID {
	return o.nfcTag
}

// Status returns the current pipeline status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ShelfLocation returns the current shelf location of the order's items.
func (o *Order) ShelfLocation() string {
	return o.shelfLocation
}

// StatusLog returns a copy of the append-only status history, oldest first.
// The copy keeps callers from mutating the aggregate's internal state.
func (o *Order) StatusLog() []LogEntry {
	log := make([]LogEntry, len(o.statusLog))
	copy(log, o.statusLog)
	return log
}

// IsCompleted reports whether the order has reached its terminal status.
func (o *Order) IsCompleted() bool {
	return o.status.IsTerminal()
}

// ChangeStatus moves the order to the target status and appends an entry to
// the status log.
//
// The transition is checked against the supplied policy; on a terminal order
// ErrOrderAlreadyCompleted is returned before the policy is consulted so both
// policies reject repeat completion identically.
//
// Parameters:
//   - target: The status to move to (must be valid)
//   - policy: The transition allow-list in effect
//
// Returns:
//   - nil on success, with exactly one new log entry appended
//   - ErrOrderAlreadyCompleted if the order is terminal
//   - a validation error if the policy rejects the transition
func (o *Order) ChangeStatus(target Status, policy TransitionPolicy) error {
	if o.IsCompleted() {
		return ErrOrderAlreadyCompleted
	}

	if err := policy.CheckTransition(o.status, target); err != nil {
		return err
	}

	o.status = target
	o.statusLog = append(o.statusLog, LogEntry{Status: target, Timestamp: time.Now().UTC()})
	return nil
}

// RelocateTo updates the shelf location of the order's items.
// The location must be non-empty; relocation does not touch the status log.
func (o *Order) RelocateTo(shelfLocation string) error {
	if shelfLocation == "" {
		return ErrShelfLocationIsRequired
	}
	o.shelfLocation = shelfLocation
	return nil
}

// Complete marks the order as completed (items handed back to the owner).
//
// This is a specialized status transition: after the aggregate is persisted
// the caller must return the bound NFC tag to the pool. The aggregate keeps
// the tag reference even when completed so a reconciliation pass can detect
// a completed order whose tag was never released.
//
// Returns:
//   - nil on successful completion
//   - ErrOrderAlreadyCompleted if invoked on a terminal order
//   - a validation error if the policy rejects the transition
func (o *Order) Complete(policy TransitionPolicy) error {
	return o.ChangeStatus(StatusCompleted, policy)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setShelfLocation(shelfLocation string) error {
	if shelfLocation == "" {
		return ErrShelfLocationIsRequired
	}
	o.shelfLocation = shelfLocation
	return nil
}

func (o *Order) setInitialStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status.IsTerminal() {
		return errs.NewValueIsInvalidError("initial status cannot be terminal")
	}

	o.status = status
	o.statusLog = []LogEntry{{Status: status, Timestamp: time.Now().UTC()}}
	return nil
}
