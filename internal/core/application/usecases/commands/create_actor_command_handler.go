package commands

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/services/access"
	"storefront/internal/core/domain/services/lifecycle"
)

type CreateActorCommandHandler struct {
	uowFactory ActorUoWFactory
	controller *lifecycle.Controller
}

func NewCreateActorCommandHandler(uowFactory ActorUoWFactory, controller *lifecycle.Controller) CreateActorCommandHandler {
	return CreateActorCommandHandler{
		uowFactory: uowFactory,
		controller: controller,
	}
}

func (h CreateActorCommandHandler) Handle(ctx context.Context, command CreateActorCommand) (*actor.Actor, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	newActor, err := actor.NewActor(command.ActorID(), command.Name(), command.Role(), command.BranchID())
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

	actorRepo := uow.ActorRepository()

	requester, err := actorRepo.Get(ctx, command.RequesterID())
	if err != nil {
		return nil, err
	}

	if err = h.controller.Authorize(requester, access.UserResource(newActor), access.Create); err != nil {
		return nil, err
	}

	if err = actorRepo.Add(ctx, newActor); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newActor, nil
}
