package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services/access"
	"storefront/internal/core/domain/services/lifecycle"
	"storefront/internal/core/ports"
)

// DeleteOrderCommandHandler removes an order with its items and history.
// Deletion is an administrative action and does not depend on the status.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	controller *lifecycle.Controller
	publisher  ports.EventPublisher
}

func NewDeleteOrderCommandHandler(
	uowFactory UoWFactory,
	controller *lifecycle.Controller,
	publisher ports.EventPublisher,
) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		controller: controller,
		publisher:  publisher,
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, command DeleteOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	requester, err := uow.ActorRepository().Get(ctx, command.ActorID())
	if err != nil {
		return err
	}

	o, err := orderRepo.GetForUpdate(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = h.controller.Authorize(requester, access.OrderResource(o), access.Delete); err != nil {
		return err
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(o.BranchID(), ports.EventOrderDeleted,
		orderEvent(o, order.Unknown, requester.ID(), "", time.Now()))
	return nil
}
