package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/services/lifecycle"
	"storefront/internal/core/ports"
)

type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	controller *lifecycle.Controller
	publisher  ports.EventPublisher
}

func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	controller *lifecycle.Controller,
	publisher ports.EventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		controller: controller,
		publisher:  publisher,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
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

	from := o.Status()
	if err = h.controller.RequestCancel(o, requester); err != nil {
		return err
	}

	now := time.Now()
	if err = persistTransition(ctx, orderRepo, o, from, requester.ID(), command.Notes(), now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(o.BranchID(), ports.EventOrderStatusChanged,
		orderEvent(o, from, requester.ID(), command.Notes(), now))
	return nil
}
