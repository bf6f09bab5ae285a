package commands

import (
	"context"
)

// DeleteStoreCommandHandler handles permanent store removal.
type DeleteStoreCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewDeleteStoreCommandHandler creates a handler for store removal.
func NewDeleteStoreCommandHandler(uowFactory StoreUoWFactory) DeleteStoreCommandHandler {
	return DeleteStoreCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete command.
func (h *DeleteStoreCommandHandler) Handle(ctx context.Context, cmd DeleteStoreCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.StoreRepository().Delete(ctx, cmd.StoreID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
