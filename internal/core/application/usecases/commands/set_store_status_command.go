package commands

import (
	"errors"
	"strings"

	"fastdelivery/internal/pkg/errs"
	"fastdelivery/internal/pkg/guard"
)

var ErrSetStoreStatusCommandIsNotConstructed = errors.New(
	"SetStoreStatusCommand must be created via NewSetStoreStatusCommand constructor",
)

// SetStoreStatusCommand represents a request to open or close a store,
// addressed by its exact name.
type SetStoreStatusCommand struct { //nolint:recvcheck //using for validation
	name   string
	isOpen bool

	guard guard.ConstructorGuard
}

// NewSetStoreStatusCommand validates the raw request and builds the command.
func NewSetStoreStatusCommand(name string, isOpen bool) (SetStoreStatusCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SetStoreStatusCommand{}, errs.NewValueIsRequiredError("name")
	}

	return SetStoreStatusCommand{
		name:   name,
		isOpen: isOpen,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetStoreStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetStoreStatusCommandIsNotConstructed)
}

// Name returns the exact name of the store being updated.
func (c SetStoreStatusCommand) Name() string {
	return c.name
}

// IsOpen returns the requested open/closed status.
func (c SetStoreStatusCommand) IsOpen() bool {
	return c.isOpen
}
