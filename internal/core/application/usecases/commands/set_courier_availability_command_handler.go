package commands

import (
	"context"

	"fastdelivery/internal/core/domain/model/courier"
)

// SetCourierAvailabilityCommandHandler handles availability toggles. The flag
// is advisory: the order lifecycle never consults it.
type SetCourierAvailabilityCommandHandler struct {
	uowFactory CourierUoWFactory
}

// NewSetCourierAvailabilityCommandHandler creates a handler for availability updates.
func NewSetCourierAvailabilityCommandHandler(uowFactory CourierUoWFactory) SetCourierAvailabilityCommandHandler {
	return SetCourierAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability update and returns the updated courier.
func (h *SetCourierAvailabilityCommandHandler) Handle(
	ctx context.Context, cmd SetCourierAvailabilityCommand,
) (*courier.Courier, error) {
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

	courierAggregate, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return nil, err
	}

	courierAggregate.SetAvailable(cmd.Available())

	if err = uow.CourierRepository().Update(ctx, courierAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return courierAggregate, nil
}
