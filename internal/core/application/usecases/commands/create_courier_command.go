package commands

import (
	"errors"
	"strings"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/pkg/errs"
	"fastdelivery/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand represents a request to register a new courier.
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	name      string
	vehicle   string

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand validates the raw request and builds the command.
// Vehicle is optional; the aggregate falls back to its default when blank.
func NewCreateCourierCommand(courierID kernel.UUID, name, vehicle string) (CreateCourierCommand, error) {
	cmd := CreateCourierCommand{
		vehicle: strings.TrimSpace(vehicle),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setName(name),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

// CourierID returns the identity assigned to the new courier.
func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Name returns the trimmed courier name.
func (c CreateCourierCommand) Name() string {
	return c.name
}

// Vehicle returns the trimmed vehicle type, empty when not provided.
func (c CreateCourierCommand) Vehicle() string {
	return c.vehicle
}

func (c *CreateCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	c.courierID = courierID
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
