package commands

import (
	"errors"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/pkg/guard"
)

var ErrDeleteStoreCommandIsNotConstructed = errors.New(
	"DeleteStoreCommand must be created via NewDeleteStoreCommand constructor",
)

// DeleteStoreCommand represents a request to remove a store permanently.
// Orders referencing the store keep their storeId; the reference is weak.
type DeleteStoreCommand struct { //nolint:recvcheck //using for validation
	storeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteStoreCommand validates the store id and builds the command.
func NewDeleteStoreCommand(storeID kernel.UUID) (DeleteStoreCommand, error) {
	if err := storeID.Validate(); err != nil {
		return DeleteStoreCommand{}, err
	}

	return DeleteStoreCommand{
		storeID: storeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteStoreCommand) Validate() error {
	return c.guard.Validate(ErrDeleteStoreCommandIsNotConstructed)
}

// StoreID returns the identity of the store being removed.
func (c DeleteStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}
