package order

import (
	"errors"
	"fmt"
	"strings"

	"fastdelivery/internal/pkg/errs"
	"fastdelivery/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory functions.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line-item value object within an order: a product name, a
// quantity, and a unit price. Items keep the order in which the customer
// listed them; the sequence is preserved for audit and display.
type Item struct {
	name  string
	qty   int
	price float64

	guard guard.ConstructorGuard
}

// NewItem creates a validated line item. position is the 1-based index of
// the item in the submitted list and is only used to label validation
// messages, so a failed create cites exactly which item was wrong.
//
// All violations are reported, not just the first: name must be non-empty
// after trimming, quantity and unit price must be greater than zero.
func NewItem(position int, name string, qty int, price float64) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(position, name),
		item.setQty(position, qty),
		item.setPrice(position, price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// RestoreItem reconstructs a line item from persistence without positional
// validation messages. The stored record is trusted to have passed creation
// validation.
func RestoreItem(name string, qty int, price float64) (Item, error) {
	return NewItem(1, name, qty, price)
}

// Validate ensures the Item was created through a factory function.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the product name.
func (i Item) Name() string {
	return i.name
}

// Qty returns the ordered quantity.
func (i Item) Qty() int {
	return i.qty
}

// Price returns the unit price.
func (i Item) Price() float64 {
	return i.price
}

// Subtotal returns price x qty for this line.
func (i Item) Subtotal() float64 {
	return i.price * float64(i.qty)
}

func (i *Item) setName(position int, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError(fmt.Sprintf("item %d: name", position))
	}
	i.name = name
	return nil
}

func (i *Item) setQty(position int, qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("item %d: qty", position),
			fmt.Errorf("%d is not greater than 0", qty),
		)
	}
	i.qty = qty
	return nil
}

func (i *Item) setPrice(position int, price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			fmt.Sprintf("item %d: price", position),
			fmt.Errorf("%v is not greater than 0", price),
		)
	}
	i.price = price
	return nil
}
