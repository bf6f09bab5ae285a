package order

import (
	"fmt"

	"fastdelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> InDelivery ──> Delivered
//
// Transitions are intentionally unguarded: Approve and Deliver on the Order
// aggregate overwrite the status from any current state. Status itself only
// knows the set of valid values and their wire names.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting to be approved for delivery.
	Pending

	// InDelivery indicates the order was approved and assigned to a courier.
	InDelivery

	// Delivered indicates the order reached the customer.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		InDelivery: "IN_DELIVERY",
		Delivered:  "DELIVERED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		InDelivery: "IN_DELIVERY",
		Delivered:  "DELIVERED",
	}
}

// ParseStatus converts a wire name ("PENDING", "IN_DELIVERY", "DELIVERED")
// into a Status. Used for the status query filter and for reconstructing
// orders from persistence.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is one of Pending, InDelivery, Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer and is
// safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
