package order

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// The forward path is linear:
//
//	PENDING -> CONFIRMED -> PREPARING -> READY -> OUT_FOR_DELIVERY
//	        -> DELIVERING -> DELIVERED -> COMPLETED
//
// Any of the first four states can also move to CANCELLED. COMPLETED and
// CANCELLED are terminal. READY -> OUT_FOR_DELIVERY is the only step that
// needs extra input (the delivery staff member), so Order.Advance refuses it
// and Order.AssignDelivery performs it.
type Status int

const (
	// Unknown catches uninitialized or unparseable values.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	Ready
	OutForDelivery
	Delivering
	Delivered
	Completed
	Cancelled
)

// forward holds the single successor of every non-terminal state.
var forward = map[Status]Status{
	Pending:        Confirmed,
	Confirmed:      Preparing,
	Preparing:      Ready,
	Ready:          OutForDelivery,
	OutForDelivery: Delivering,
	Delivering:     Delivered,
	Delivered:      Completed,
}

var statusStrings = map[Status]string{
	Pending:        "PENDING",
	Confirmed:      "CONFIRMED",
	Preparing:      "PREPARING",
	Ready:          "READY",
	OutForDelivery: "OUT_FOR_DELIVERY",
	Delivering:     "DELIVERING",
	Delivered:      "DELIVERED",
	Completed:      "COMPLETED",
	Cancelled:      "CANCELLED",
}

// statusColors are the badge colors the storefront screens use for each state.
var statusColors = map[Status]string{
	Pending:        "#812732",
	Confirmed:      "#e67e22",
	Preparing:      "#3498db",
	Ready:          "#27ae60",
	OutForDelivery: "#9b59b6",
	Delivering:     "#2ecc71",
	Delivered:      "#2ecc71",
	Completed:      "#1abc9c",
	Cancelled:      "#aa0000",
}

// AllStatuses returns every valid status in lifecycle order, CANCELLED last.
func AllStatuses() []Status {
	return []Status{
		Pending, Confirmed, Preparing, Ready, OutForDelivery,
		Delivering, Delivered, Completed, Cancelled,
	}
}

// ParseStatus converts the persisted/wire form (e.g. "OUT_FOR_DELIVERY") back
// into a Status. Matching is case-insensitive.
func ParseStatus(s string) (Status, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range statusStrings {
		if str == needle {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a known status", s),
	)
}

// Validate checks that s is one of the nine lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusStrings[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the UPPER_SNAKE name used in storage and on the wire,
// or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := statusStrings[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Next returns the successor on the forward path. The boolean is false for
// terminal and invalid states; that is "no transition", not an error.
func (s Status) Next() (Status, bool) {
	next, ok := forward[s]
	return next, ok
}

// IsTerminal reports whether no further transition exists.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanCancel reports whether the order may still be cancelled. Only the
// pre-dispatch states qualify; once a driver has the order it has to be
// delivered.
func (s Status) CanCancel() bool {
	switch s {
	case Pending, Confirmed, Preparing, Ready:
		return true
	default:
		return false
	}
}

// IsActive is false for states the customer treats as closed.
func (s Status) IsActive() bool {
	switch s {
	case Delivered, Completed, Cancelled:
		return false
	default:
		return s.Validate() == nil
	}
}

// RequiresDeliveryStaff reports whether an order in this state must carry a
// delivery staff id. Cancelled orders never reach dispatch, so they never do.
func (s Status) RequiresDeliveryStaff() bool {
	switch s {
	case OutForDelivery, Delivering, Delivered, Completed:
		return true
	default:
		return false
	}
}

// IsOnTheRoad is true for the two states a delivery driver works on.
func (s Status) IsOnTheRoad() bool {
	return s == OutForDelivery || s == Delivering
}

// Color returns the hex badge color for the state, grey for invalid values.
func (s Status) Color() string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return "#888888"
}

// ValidateCanHaveDeliveryStaff checks the consistency between status and
// delivery assignment of a restored order.
func (s Status) ValidateCanHaveDeliveryStaff(assigned bool) error {
	if assigned && !s.RequiresDeliveryStaff() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have delivery staff", s),
		)
	}
	if !assigned && s.RequiresDeliveryStaff() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no delivery staff", s),
		)
	}
	return nil
}
