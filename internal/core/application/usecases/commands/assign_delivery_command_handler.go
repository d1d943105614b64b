package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/services/lifecycle"
	"storefront/internal/core/ports"
)

// AssignDeliveryCommandHandler attaches the delivery staff member and moves
// the order to OUT_FOR_DELIVERY. Status and staff are written by one Update
// in the same transaction as the history entry.
type AssignDeliveryCommandHandler struct {
	uowFactory UoWFactory
	controller *lifecycle.Controller
	publisher  ports.EventPublisher
}

func NewAssignDeliveryCommandHandler(
	uowFactory UoWFactory,
	controller *lifecycle.Controller,
	publisher ports.EventPublisher,
) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
		controller: controller,
		publisher:  publisher,
	}
}

// Handle fails with lifecycle.ErrStaleOrderState when the order left READY
// after the candidates were listed.
func (h AssignDeliveryCommandHandler) Handle(ctx context.Context, command AssignDeliveryCommand) (lifecycle.AdvanceResult, error) {
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

	result, err := h.controller.AssignDeliveryAndAdvance(ctx, o, requester, actorRepo, command.StaffID())
	if err != nil {
		return lifecycle.AdvanceResult{}, err
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
