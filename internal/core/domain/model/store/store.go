// Package store provides the Store aggregate for the store registry.
//
// Store names are unique across the registry; the uniqueness is enforced by
// the entity store's unique index and is case-sensitive, unlike usernames.
package store

import (
	"errors"
	"strings"
	"time"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/pkg/errs"
	"fastdelivery/internal/pkg/guard"
)

// ErrStoreIsNotConstructed is returned when a Store instance was not created
// through the NewStore or RestoreStore factory functions.
var ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore constructor")

// Store represents a registered store. New stores open for business
// immediately; isOpen is mutated through SetOpen.
type Store struct {
	id        kernel.UUID
	name      string
	category  string
	address   string
	isOpen    bool
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewStore creates a new open Store. Name and category must be non-empty
// after trimming; every violated field is reported. Address is optional and
// defaults to the empty string.
func NewStore(id kernel.UUID, name, category, address string, now time.Time) (*Store, error) {
	s := &Store{
		address:   strings.TrimSpace(address),
		isOpen:    true,
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setCategory(category),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStore reconstructs a Store aggregate from persistence.
func RestoreStore(
	id kernel.UUID, name, category, address string, isOpen bool, createdAt time.Time,
) (*Store, error) {
	s := &Store{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setCategory(category),
	); err != nil {
		return nil, err
	}

	s.address = address
	s.isOpen = isOpen
	s.createdAt = createdAt
	return s, nil
}

// Validate ensures the Store was created through a factory function.
func (s *Store) Validate() error {
	if s == nil {
		return ErrStoreIsNotConstructed
	}
	return s.guard.Validate(ErrStoreIsNotConstructed)
}

// ID returns the store's unique identifier.
func (s *Store) ID() kernel.UUID {
	return s.id
}

// Name returns the trimmed, registry-unique store name.
func (s *Store) Name() string {
	return s.name
}

// Category returns the trimmed store category.
func (s *Store) Category() string {
	return s.category
}

// Address returns the store address, empty when not provided.
func (s *Store) Address() string {
	return s.address
}

// IsOpen reports whether the store is currently open.
func (s *Store) IsOpen() bool {
	return s.isOpen
}

// CreatedAt returns the registration timestamp.
func (s *Store) CreatedAt() time.Time {
	return s.createdAt
}

// SetOpen updates the open/closed status.
func (s *Store) SetOpen(isOpen bool) {
	s.isOpen = isOpen
}

func (s *Store) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Store) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Store) setCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	s.category = category
	return nil
}
