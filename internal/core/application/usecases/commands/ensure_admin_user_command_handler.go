package commands

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/core/domain/model/user"
	"fastdelivery/internal/pkg/errs"
)

// EnsureAdminUserCommandHandler guarantees the bootstrap administrator at
// startup. A missing account is created; an existing account whose stored
// hash no longer verifies against the bootstrap password is re-hashed.
type EnsureAdminUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewEnsureAdminUserCommandHandler creates a handler for the admin bootstrap.
func NewEnsureAdminUserCommandHandler(uowFactory UserUoWFactory) EnsureAdminUserCommandHandler {
	return EnsureAdminUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bootstrap command and returns the administrator account.
func (h *EnsureAdminUserCommandHandler) Handle(ctx context.Context, cmd EnsureAdminUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	admin, err := uow.UserRepository().GetByUsername(ctx, cmd.Username())
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash()), []byte(cmd.Password())) == nil {
			return admin, nil
		}

		hash, hashErr := hashPassword(cmd.Password())
		if hashErr != nil {
			return nil, hashErr
		}
		if err = admin.SetPasswordHash(hash); err != nil {
			return nil, err
		}
		if err = uow.UserRepository().Update(ctx, admin); err != nil {
			return nil, err
		}

	case errors.Is(err, errs.ErrObjectNotFound):
		hash, hashErr := hashPassword(cmd.Password())
		if hashErr != nil {
			return nil, hashErr
		}

		admin, err = user.NewUser(kernel.NewUUID(), cmd.Username(), hash, user.RoleAdmin, time.Now().UTC())
		if err != nil {
			return nil, err
		}
		if err = uow.UserRepository().Add(ctx, admin); err != nil {
			return nil, err
		}

	default:
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return admin, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
