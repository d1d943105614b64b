package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/services/lifecycle"
	"storefront/internal/core/ports"
)

// AdvanceOrderCommandHandler runs RequestAdvance inside a transaction that
// holds the order's row lock, persists the new status with its history entry
// and publishes the change once committed.
type AdvanceOrderCommandHandler struct {
	uowFactory UoWFactory
	controller *lifecycle.Controller
	publisher  ports.EventPublisher
}

func NewAdvanceOrderCommandHandler(
	uowFactory UoWFactory,
	controller *lifecycle.Controller,
	publisher ports.EventPublisher,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		controller: controller,
		publisher:  publisher,
	}
}

// Handle returns NeedsDeliveryAssignment without writing anything when the
// order is READY.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, command AdvanceOrderCommand) (lifecycle.AdvanceResult, error) {
	if err := command.Validate(); err != nil {
		return lifecycle.AdvanceResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return lifecycle.AdvanceResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actorRepo := uow.ActorRepository()
	orderRepo := uow.OrderRepository()

	requester, err := actorRepo.Get(ctx, command.ActorID())
	if err != nil {
		return lifecycle.AdvanceResult{}, err
	}

	o, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return lifecycle.AdvanceResult{}, err
	}

	result, err := h.controller.RequestAdvance(ctx, o, requester, actorRepo)
	if err != nil {
		return lifecycle.AdvanceResult{}, err
	}
	if result.Outcome() != lifecycle.Advanced {
		return result, nil
	}

	now := time.Now()
	if err = persistTransition(ctx, orderRepo, o, result.From(), requester.ID(), command.Notes(), now); err != nil {
		return lifecycle.AdvanceResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return lifecycle.AdvanceResult{}, err
	}

	h.publisher.Publish(o.BranchID(), ports.EventOrderStatusChanged,
		orderEvent(o, result.From(), requester.ID(), command.Notes(), now))
	return result, nil
}
