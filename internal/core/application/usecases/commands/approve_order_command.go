package commands

import (
	"errors"
	"strings"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/pkg/errs"
	"fastdelivery/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand represents a request to approve an order and hand it
// to a courier. The courier reference is weak: the id must parse, but the
// courier registry is never consulted.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApproveOrderCommand validates the raw request and builds the command.
func NewApproveOrderCommand(orderID kernel.UUID, courierID string) (ApproveOrderCommand, error) {
	cmd := ApproveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
	); err != nil {
		return ApproveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

// OrderID returns the identity of the order being approved.
func (c ApproveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the weak reference to the assigned courier.
func (c ApproveOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *ApproveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ApproveOrderCommand) setCourierID(courierID string) error {
	if strings.TrimSpace(courierID) == "" {
		return errs.NewValueIsRequiredError("courierId")
	}

	id, err := kernel.UUIDFromString(courierID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("courierId", err)
	}

	c.courierID = id
	return nil
}
