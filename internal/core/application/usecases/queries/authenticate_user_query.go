package queries

import (
	"errors"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/core/domain/model/user"
	"fastdelivery/internal/pkg/errs"
	"fastdelivery/internal/pkg/guard"
)

var ErrAuthenticateUserQueryIsNotConstructed = errors.New(
	"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
)

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password, so the response does not reveal which part failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticateUserQuery verifies staff credentials. The username is
// normalized before lookup, so case and surrounding whitespace never matter.
type AuthenticateUserQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery validates the raw credentials and builds the query.
func NewAuthenticateUserQuery(username, password string) (AuthenticateUserQuery, error) {
	q := AuthenticateUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setUsername(username),
		q.setPassword(password),
	); err != nil {
		return AuthenticateUserQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Username returns the normalized username.
func (q AuthenticateUserQuery) Username() string {
	return q.username
}

// Password returns the submitted password in clear.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

func (q *AuthenticateUserQuery) setUsername(username string) error {
	username = user.NormalizeUsername(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	q.username = username
	return nil
}

func (q *AuthenticateUserQuery) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	q.password = password
	return nil
}

// AuthenticateUserQueryResponse is the verified identity read model.
type AuthenticateUserQueryResponse struct {
	ID       kernel.UUID
	Username string
	Role     string
}
