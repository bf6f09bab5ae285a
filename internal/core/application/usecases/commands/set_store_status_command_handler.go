package commands

import (
	"context"

	"fastdelivery/internal/core/domain/model/store"
)

// SetStoreStatusCommandHandler handles opening and closing a store.
type SetStoreStatusCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewSetStoreStatusCommandHandler creates a handler for store status updates.
func NewSetStoreStatusCommandHandler(uowFactory StoreUoWFactory) SetStoreStatusCommandHandler {
	return SetStoreStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status update and returns the updated store.
func (h *SetStoreStatusCommandHandler) Handle(ctx context.Context, cmd SetStoreStatusCommand) (*store.Store, error) {
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

	storeAggregate, err := uow.StoreRepository().GetByName(ctx, cmd.Name())
	if err != nil {
		return nil, err
	}

	storeAggregate.SetOpen(cmd.IsOpen())

	if err = uow.StoreRepository().Update(ctx, storeAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return storeAggregate, nil
}
