package order

import (
	"fmt"

	"instagrow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders follow the fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Paid ──> Processing ──> Completed
//	   │          │           │
//	   └──────────┴───────────┴──> Cancelled
//
// Completed and Cancelled are terminal: no further transition is legal from
// either. A transition to the current status is treated as an idempotent
// no-op by the Order aggregate, not by Status itself.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order awaits payment.
	Pending

	// Paid indicates payment confirmation was recorded.
	Paid

	// Processing indicates delivery of the purchased package is in progress.
	Processing

	// Completed indicates the package was fully delivered. Terminal.
	Completed

	// Cancelled indicates the order was abandoned or refunded before
	// completion. Terminal.
	Cancelled
)

// getStatusStrings returns the wire labels for all Status values,
// including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Paid:       "paid",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getValidStatusStrings returns the wire labels of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Paid:       "paid",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getAllowedTransitions returns the transition table of the lifecycle.
// Statuses absent from a target set are unreachable from that source;
// terminal statuses map to empty sets.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Paid, Cancelled},
		Paid:       {Processing, Cancelled},
		Processing: {Completed, Cancelled},
		Completed:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses a wire label such as "pending" into a Status.
// Unknown labels fail with a ValueIsInvalidError before ever reaching the
// lifecycle engine.
func StatusFromString(s string) (Status, error) {
	for status, label := range getValidStatusStrings() {
		if label == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the five valid states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lower-case wire label of the status, or "unknown"
// for invalid values. Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is legal from s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the move from s to next appears in the
// transition table. A same-status move is not a transition and returns false;
// idempotent handling of that case belongs to the Order aggregate.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getAllowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the move from s to next against the transition
// table and returns the new status.
//
// Returns:
//   - (next, nil) when the transition table allows the move
//   - (0, *errs.InvalidStatusTransitionError) otherwise, carrying both the
//     current status and the rejected target
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewInvalidStatusTransitionError(s.String(), next.String())
	}
	return next, nil
}
