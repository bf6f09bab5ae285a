// Package courier provides the Courier aggregate for the courier registry.
//
// Availability is advisory only: the order lifecycle never consults it before
// assigning a courier to an order.
package courier

import (
	"errors"
	"strings"
	"time"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/pkg/errs"
	"fastdelivery/internal/pkg/guard"
)

// courierDefaultVehicle is assigned when no vehicle is provided at registration.
const courierDefaultVehicle = "moto"

// ErrCourierIsNotConstructed is returned when a Courier instance was not
// created through the NewCourier or RestoreCourier factory functions.
var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

// Courier represents a registered delivery courier. New couriers are
// available by default; availability is toggled through SetAvailable.
type Courier struct {
	id        kernel.UUID
	name      string
	vehicle   string
	available bool
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewCourier creates a new available Courier. Name must be non-empty after
// trimming; vehicle defaults to "moto" when blank.
func NewCourier(id kernel.UUID, name, vehicle string, now time.Time) (*Courier, error) {
	c := &Courier{
		available: true,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	c.setVehicle(vehicle)
	return c, nil
}

// RestoreCourier reconstructs a Courier aggregate from persistence.
func RestoreCourier(
	id kernel.UUID, name, vehicle string, available bool, createdAt time.Time,
) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	c.setVehicle(vehicle)
	c.available = available
	c.createdAt = createdAt
	return c, nil
}

// Validate ensures the Courier was created through a factory function.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the trimmed courier name.
func (c *Courier) Name() string {
	return c.name
}

// Vehicle returns the courier's vehicle type.
func (c *Courier) Vehicle() string {
	return c.vehicle
}

// Available reports the advisory availability flag.
func (c *Courier) Available() bool {
	return c.available
}

// CreatedAt returns the registration timestamp.
func (c *Courier) CreatedAt() time.Time {
	return c.createdAt
}

// SetAvailable updates the advisory availability flag.
func (c *Courier) SetAvailable(available bool) {
	c.available = available
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Courier) setVehicle(vehicle string) {
	vehicle = strings.TrimSpace(vehicle)
	if vehicle == "" {
		vehicle = courierDefaultVehicle
	}
	c.vehicle = vehicle
}
