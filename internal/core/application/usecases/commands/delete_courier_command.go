package commands

import (
	"errors"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/pkg/guard"
)

var ErrDeleteCourierCommandIsNotConstructed = errors.New(
	"DeleteCourierCommand must be created via NewDeleteCourierCommand constructor",
)

// DeleteCourierCommand represents a request to remove a courier permanently.
// Orders referencing the courier keep their courierId; the reference is weak.
type DeleteCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteCourierCommand validates the courier id and builds the command.
func NewDeleteCourierCommand(courierID kernel.UUID) (DeleteCourierCommand, error) {
	if err := courierID.Validate(); err != nil {
		return DeleteCourierCommand{}, err
	}

	return DeleteCourierCommand{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCourierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCourierCommandIsNotConstructed)
}

// CourierID returns the identity of the courier being removed.
func (c DeleteCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}
