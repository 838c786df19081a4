package order

import (
	"albarans/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery note.
// It implements a state machine with defined transitions to ensure
// orders follow the correct warehouse workflow.
//
// State transitions:
//
//	Pending ──> InPreparation ──> Shipped ──> Delivered
//	   │              │              │
//	   └──────────────┴──────────────┴──────> Cancelled
//
// From any non-terminal state an order may advance to the next state in
// sequence or be cancelled. Skipping ahead and moving backwards are both
// rejected. Delivered and Cancelled are terminal.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is first created.
	// Lines may only be added, edited and removed while the order is pending.
	StatusPending

	// StatusInPreparation indicates warehouse staff is picking the order.
	StatusInPreparation

	// StatusShipped indicates the order has left the warehouse. Reaching this
	// status is coupled to stock consumption: the fulfillment workflow is the
	// only path that ships an order.
	StatusShipped

	// StatusDelivered indicates the client has received the goods.
	// This is a final state with no further transitions allowed.
	StatusDelivered

	// StatusCancelled indicates the order was abandoned before delivery.
	// This is a final state reachable from any non-terminal status.
	StatusCancelled
)

// getStatusStrings returns a map of valid Status values to their storage
// representations. StatusUnknown is intentionally excluded.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusPending:       "PENDING",
		StatusInPreparation: "IN_PREPARATION",
		StatusShipped:       "SHIPPED",
		StatusDelivered:     "DELIVERED",
		StatusCancelled:     "CANCELLED",
	}
}

// getNextStatus returns the single forward transition for each status.
// Terminal statuses have no forward transition.
func getNextStatus() map[Status]Status {
	return map[Status]Status{
		StatusPending:       StatusInPreparation,
		StatusInPreparation: StatusShipped,
		StatusShipped:       StatusDelivered,
	}
}

// StatusFromString parses a status from its storage representation.
//
// Returns:
//   - the matching Status for "PENDING", "IN_PREPARATION", "SHIPPED",
//     "DELIVERED" or "CANCELLED"
//   - (StatusUnknown, error) for any other input
func StatusFromString(name string) (Status, error) {
	for status, statusName := range getStatusStrings() {
		if statusName == name {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InPreparation, Shipped, Delivered, Cancelled.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the storage representation of the status.
//
// Returns:
//   - the upper-case snake name for valid statuses
//   - "UNKNOWN" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo checks whether moving to target is allowed without
// performing the transition. A move is allowed when target is the next status
// in sequence, or when target is Cancelled and the current status is not
// terminal.
func (s Status) CanTransitionTo(target Status) bool {
	if err := s.Validate(); err != nil {
		return false
	}
	if err := target.Validate(); err != nil {
		return false
	}
	if target == StatusCancelled {
		return !s.IsTerminal()
	}
	return getNextStatus()[s] == target
}

// TransitionTo moves the status to target.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) wrapping ErrInvalidTransition otherwise
//
// This method is used by Order.Transition() and Order.Cancel() to enforce
// the state machine. It never mutates the receiver.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return target, nil
}
