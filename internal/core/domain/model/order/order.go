package order

import (
	"errors"
	"strings"
	"time"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/pkg/errs"
	"fastdelivery/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a customer order.
//
// Invariants:
//   - Must reference a store (weak reference, existence never verified)
//   - Must have a non-empty trimmed customer name
//   - Must carry at least one valid line item; the item sequence is preserved
//   - total is derived once at creation from the items and never recomputed
//
// Status transitions are deliberately unguarded: Approve and Deliver apply
// from any current status, so a delivered order can be moved back to
// IN_DELIVERY by a repeated Approve. Repeated Deliver overwrites deliveredAt.
type Order struct {
	id           kernel.UUID
	storeID      kernel.UUID
	customerName string
	items        []Item
	total        float64
	status       Status
	courierID    *kernel.UUID
	createdAt    time.Time
	deliveredAt  *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status. Every violated field is
// reported in the returned error, not just the first. The total is computed
// here as the sum of price x qty over the items, in list order.
func NewOrder(
	id kernel.UUID,
	storeID kernel.UUID,
	customerName string,
	items []Item,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setStoreID(storeID),
		o.setCustomerName(customerName),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistence. The stored
// total is trusted as-is: the total is computed once at creation and never
// recomputed, even if item prices would sum differently.
func RestoreOrder(
	id kernel.UUID,
	storeID kernel.UUID,
	customerName string,
	items []Item,
	total float64,
	status Status,
	courierID *kernel.UUID,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setStoreID(storeID),
		o.setCustomerName(customerName),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.total = total
	o.status = status
	o.courierID = courierID
	o.createdAt = createdAt
	o.deliveredAt = deliveredAt
	return o, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// StoreID returns the weak reference to the store the order was placed against.
func (o *Order) StoreID() kernel.UUID {
	return o.storeID
}

// CustomerName returns the trimmed customer name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Items returns the line items in their original sequence.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the derived order total, fixed at creation time.
func (o *Order) Total() float64 {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CourierID returns the weak reference to the assigned courier.
// Nil until the order is approved.
func (o *Order) CourierID() *kernel.UUID {
	return o.courierID
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns the delivery timestamp. Nil until delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Approve moves the order to InDelivery and records the courier, regardless
// of the current status. The courier is not checked for existence or
// availability; a repeated Approve overwrites the previous assignment.
func (o *Order) Approve(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	o.status = InDelivery
	o.courierID = &courierID
	return nil
}

// Deliver moves the order to Delivered and stamps deliveredAt, regardless of
// the current status. A repeated Deliver overwrites the timestamp.
func (o *Order) Deliver(now time.Time) {
	o.status = Delivered
	o.deliveredAt = &now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("storeId", err)
	}
	o.storeID = storeID
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	customerName = strings.TrimSpace(customerName)
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	var total float64
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		total += item.Subtotal()
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.total = total
	return nil
}
