package commands

import (
	"errors"
	"strings"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/core/domain/model/order"
	"fastdelivery/internal/pkg/errs"
	"fastdelivery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemInput is the raw line-item payload submitted by the customer.
type ItemInput struct {
	Name  string
	Qty   int
	Price float64
}

// CreateOrderCommand represents a request to place a new order against a
// store. The store reference is weak: the id must parse, but its existence
// is never checked against the store registry.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	storeID      kernel.UUID
	customerName string
	items        []order.Item

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the raw request and builds the command.
// Every violated field is reported in the returned error: storeId presence
// and format, customer name, and each line item with its 1-based position.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	storeID string,
	customerName string,
	items []ItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStoreID(storeID),
		cmd.setCustomerName(customerName),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identity assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StoreID returns the weak reference to the target store.
func (c CreateOrderCommand) StoreID() kernel.UUID {
	return c.storeID
}

// CustomerName returns the submitted customer name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// Items returns the validated line items in their submitted sequence.
func (c CreateOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setStoreID(storeID string) error {
	if strings.TrimSpace(storeID) == "" {
		return errs.NewValueIsRequiredError("storeId")
	}

	id, err := kernel.UUIDFromString(storeID)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("storeId", err)
	}

	c.storeID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if strings.TrimSpace(customerName) == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setItems(inputs []ItemInput) error {
	if len(inputs) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var itemErrs []error
	items := make([]order.Item, 0, len(inputs))
	for i, input := range inputs {
		item, err := order.NewItem(i+1, input.Name, input.Qty, input.Price)
		if err != nil {
			itemErrs = append(itemErrs, err)
			continue
		}
		items = append(items, item)
	}

	if err := errors.Join(itemErrs...); err != nil {
		return err
	}

	c.items = items
	return nil
}
