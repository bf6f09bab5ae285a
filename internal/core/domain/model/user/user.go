// Package user provides the User aggregate for staff authentication.
//
// Usernames are unique by normalization: trimmed and lower-cased, so
// "Admin " and "admin" are the same account. The aggregate carries only a
// bcrypt password hash; raw credentials never reach the domain model.
package user

import (
	"errors"
	"strings"
	"time"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/pkg/errs"
	"fastdelivery/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory functions.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User represents a staff account.
type User struct {
	id           kernel.UUID
	username     string
	passwordHash string
	role         Role
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NormalizeUsername applies the lookup normalization: trim plus lowercase.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// NewUser creates a new User. The username is normalized; passwordHash must
// be a non-empty bcrypt hash produced by the caller.
func NewUser(id kernel.UUID, username, passwordHash string, role Role, now time.Time) (*User, error) {
	u := &User{
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User aggregate from persistence.
func RestoreUser(
	id kernel.UUID, username, passwordHash string, role Role, createdAt time.Time,
) (*User, error) {
	u, err := NewUser(id, username, passwordHash, role, createdAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Validate ensures the User was created through a factory function.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the normalized username.
func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the user's role.
func (u *User) Role() Role {
	return u.role
}

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// SetPasswordHash replaces the stored credential hash. Used by the admin
// bootstrap when the stored hash no longer verifies against the expected
// bootstrap password.
func (u *User) SetPasswordHash(passwordHash string) error {
	return u.setPasswordHash(passwordHash)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	username = NormalizeUsername(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
