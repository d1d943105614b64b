package commands

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services/access"
	"storefront/internal/core/domain/services/lifecycle"
)

type UpdateActorCommandHandler struct {
	uowFactory ActorUoWFactory
	controller *lifecycle.Controller
}

func NewUpdateActorCommandHandler(uowFactory ActorUoWFactory, controller *lifecycle.Controller) UpdateActorCommandHandler {
	return UpdateActorCommandHandler{
		uowFactory: uowFactory,
		controller: controller,
	}
}

// Handle needs Edit on the record both as stored and as amended. Moving it to
// another role or branch also needs Create there, so nobody can grant a role
// they could not have registered.
func (h UpdateActorCommandHandler) Handle(ctx context.Context, command UpdateActorCommand) (*actor.Actor, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	target, err := actorRepo.Get(ctx, command.ActorID())
	if err != nil {
		return nil, err
	}

	if err = h.controller.Authorize(requester, access.UserResource(target), access.Edit); err != nil {
		return nil, err
	}

	amended, err := target.Amend(command.Name(), command.Role(), command.BranchID())
	if err != nil {
		return nil, err
	}

	if err = h.controller.Authorize(requester, access.UserResource(amended), access.Edit); err != nil {
		return nil, err
	}
	if amended.Role() != target.Role() || !kernel.IsEqualPtr(amended.BranchID(), target.BranchID()) {
		if err = h.controller.Authorize(requester, access.UserResource(amended), access.Create); err != nil {
			return nil, err
		}
	}

	if err = actorRepo.Update(ctx, amended); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return amended, nil
}
