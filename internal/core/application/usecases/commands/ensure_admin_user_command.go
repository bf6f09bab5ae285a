package commands

import (
	"errors"
	"strings"

	"fastdelivery/internal/pkg/errs"
	"fastdelivery/internal/pkg/guard"
)

const (
	passwordMinLength = 4
	passwordMaxLength = 72 // bcrypt input limit
)

var ErrEnsureAdminUserCommandIsNotConstructed = errors.New(
	"EnsureAdminUserCommand must be created via NewEnsureAdminUserCommand constructor",
)

// EnsureAdminUserCommand represents the startup request to guarantee that the
// bootstrap administrator account exists with a verifiable credential.
type EnsureAdminUserCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewEnsureAdminUserCommand validates the bootstrap credentials and builds
// the command. The password travels in clear only between configuration and
// the handler, which stores a bcrypt hash.
func NewEnsureAdminUserCommand(username, password string) (EnsureAdminUserCommand, error) {
	cmd := EnsureAdminUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setPassword(password),
	); err != nil {
		return EnsureAdminUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EnsureAdminUserCommand) Validate() error {
	return c.guard.Validate(ErrEnsureAdminUserCommandIsNotConstructed)
}

// Username returns the bootstrap administrator username.
func (c EnsureAdminUserCommand) Username() string {
	return c.username
}

// Password returns the bootstrap administrator password in clear.
func (c EnsureAdminUserCommand) Password() string {
	return c.password
}

func (c *EnsureAdminUserCommand) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *EnsureAdminUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < passwordMinLength || len(password) > passwordMaxLength {
		return errs.NewValueIsOutOfRangeError(
			"password length", len(password), passwordMinLength, passwordMaxLength,
		)
	}
	c.password = password
	return nil
}
