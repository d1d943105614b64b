package commands

import (
	"context"

	"storefront/internal/core/domain/services/access"
	"storefront/internal/core/domain/services/lifecycle"
)

// DeleteActorCommandHandler removes an actor record. USER records and other
// OWNER records are protected by the access policy.
type DeleteActorCommandHandler struct {
	uowFactory ActorUoWFactory
	controller *lifecycle.Controller
}

func NewDeleteActorCommandHandler(uowFactory ActorUoWFactory, controller *lifecycle.Controller) DeleteActorCommandHandler {
	return DeleteActorCommandHandler{
		uowFactory: uowFactory,
		controller: controller,
	}
}

func (h DeleteActorCommandHandler) Handle(ctx context.Context, command DeleteActorCommand) error {
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

	actorRepo := uow.ActorRepository()

	requester, err := actorRepo.Get(ctx, command.RequesterID())
	if err != nil {
		return err
	}

	target, err := actorRepo.Get(ctx, command.ActorID())
	if err != nil {
		return err
	}

	if err = h.controller.Authorize(requester, access.UserResource(target), access.Delete); err != nil {
		return err
	}

	if err = actorRepo.Delete(ctx, target.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
