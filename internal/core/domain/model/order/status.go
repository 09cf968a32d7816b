package order

import (
	"fmt"

	"laundrytrack/internal/pkg/errs"
)

// Status represents the pipeline state of a laundry order.
// Orders move through the physical processing pipeline
// wash -> iron -> pickup, finishing in the terminal Completed state.
//
// Which movements between states are legal is not fixed here: it is decided
// by a TransitionPolicy, so deployments can choose between the historically
// permissive behavior and a strict forward-only pipeline.
//
// Status is a value object that validates itself and provides string
// representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusYetToWash is the initial status for manually created orders.
	// Items have been dropped off and are waiting for the wash stage.
	StatusYetToWash

	// StatusWashed indicates the items have been through the wash stage.
	StatusWashed

	// StatusIroning indicates the items are in the ironing stage.
	StatusIroning

	// StatusReadyForPickup indicates processing is finished and the items
	// are resting on a ready shelf awaiting the owner.
	StatusReadyForPickup

	// StatusCompleted indicates the items were handed back to the owner.
	// This is a terminal state; the bound NFC tag returns to the pool.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusYetToWash:      "YetToWash",
		StatusWashed:         "Washed",
		StatusIroning:        "Ironing",
		StatusReadyForPickup: "ReadyForPickup",
		StatusCompleted:      "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusYetToWash:      "YetToWash",
		StatusWashed:         "Washed",
		StatusIroning:        "Ironing",
		StatusReadyForPickup: "ReadyForPickup",
		StatusCompleted:      "Completed",
	}
}

// statusAliases maps the NFC-intake vocabulary onto the canonical one.
// The tag-scan clients historically submitted a slightly different set of
// status names than the manual flow; both are accepted on input, only the
// canonical names are ever emitted.
func statusAliases() map[string]Status {
	return map[string]Status{
		"Washing": StatusWashed,
		"Ready":   StatusReadyForPickup,
	}
}

// StatusFromString parses a status from its wire form.
// Canonical names ("YetToWash", "Washed", "Ironing", "ReadyForPickup",
// "Completed") and the legacy NFC-intake aliases are accepted.
// Returns a ValueIsInvalidError for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	if status, ok := statusAliases()[s]; ok {
		return status, nil
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: YetToWash, Washed, Ironing, ReadyForPickup, Completed.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any Status
// value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Only Completed is terminal.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

// TransitionPolicy decides which status transitions are legal.
// The policy is an explicit allow-list rather than a hardcoded graph: the
// historical behavior lets staff move an order to any state, while stricter
// deployments can insist on forward-only pipeline progress.
type TransitionPolicy struct {
	name    string
	allowed func(from, to Status) bool
}

// PermissiveTransitions allows any transition from a non-terminal status to
// any valid status. This matches the historical behavior where staff could
// correct an order to an arbitrary state. Completed remains terminal.
func PermissiveTransitions() TransitionPolicy {
	return TransitionPolicy{
		name: "permissive",
		allowed: func(from, to Status) bool {
			return !from.IsTerminal()
		},
	}
}

// StrictTransitions only allows forward movement along the pipeline:
// YetToWash -> Washed -> Ironing -> ReadyForPickup -> Completed.
// Skipping stages forward is allowed, moving backwards is not.
func StrictTransitions() TransitionPolicy {
	return TransitionPolicy{
		name: "strict",
		allowed: func(from, to Status) bool {
			return !from.IsTerminal() && to > from
		},
	}
}

// Name returns the policy's configuration name ("permissive" or "strict").
func (p TransitionPolicy) Name() string {
	return p.name
}

// CheckTransition validates a transition from one status to another.
//
// Both statuses must be valid, and the movement must be permitted by the
// policy's allow-list. A zero-value policy rejects every transition.
//
// Returns:
//   - nil if the transition is allowed
//   - a ValueIsInvalidError describing the rejected transition otherwise
func (p TransitionPolicy) CheckTransition(from, to Status) error {
	if err := from.Validate(); err != nil {
		return err
	}
	if err := to.Validate(); err != nil {
		return err
	}
	if p.allowed == nil || !p.allowed(from, to) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("transition from %s to %s is not allowed", from, to),
		)
	}
	return nil
}
