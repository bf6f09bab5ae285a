package commands

import (
	"errors"
	"strings"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/pkg/errs"
	"fastdelivery/internal/pkg/guard"
)

var ErrCreateStoreCommandIsNotConstructed = errors.New(
	"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
)

// CreateStoreCommand represents a request to register a new store.
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	storeID  kernel.UUID
	name     string
	category string
	address  string

	guard guard.ConstructorGuard
}

// NewCreateStoreCommand validates the raw request and builds the command.
// Address is optional; every violated field is reported.
func NewCreateStoreCommand(storeID kernel.UUID, name, category, address string) (CreateStoreCommand, error) {
	cmd := CreateStoreCommand{
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStoreID(storeID),
		cmd.setName(name),
		cmd.setCategory(category),
	); err != nil {
		return CreateStoreCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

// StoreID returns the identity assigned to the new store.
func (c CreateStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

// Name returns the trimmed store name.
func (c CreateStoreCommand) Name() string {
	return c.name
}

// Category returns the trimmed store category.
func (c CreateStoreCommand) Category() string {
	return c.category
}

// Address returns the trimmed store address, empty when not provided.
func (c CreateStoreCommand) Address() string {
	return c.address
}

func (c *CreateStoreCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	c.storeID = storeID
	return nil
}

func (c *CreateStoreCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateStoreCommand) setCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	c.category = category
	return nil
}
