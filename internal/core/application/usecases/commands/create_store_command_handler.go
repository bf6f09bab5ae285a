package commands

import (
	"context"
	"time"

	"fastdelivery/internal/core/domain/model/store"
)

// CreateStoreCommandHandler handles store registration. The unique name
// constraint is enforced by the storage layer; a collision surfaces as
// errs.ObjectAlreadyExistsError.
type CreateStoreCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewCreateStoreCommandHandler creates a handler for store registration.
func NewCreateStoreCommandHandler(uowFactory StoreUoWFactory) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the store creation command and returns the persisted store.
func (h *CreateStoreCommandHandler) Handle(ctx context.Context, cmd CreateStoreCommand) (*store.Store, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newStore, err := store.NewStore(
		cmd.StoreID(),
		cmd.Name(),
		cmd.Category(),
		cmd.Address(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StoreRepository().Add(ctx, newStore); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newStore, nil
}
