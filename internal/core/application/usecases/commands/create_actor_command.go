package commands

import (
	"errors"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrCreateActorCommandIsNotConstructed = errors.New(
	"CreateActorCommand must be created via NewCreateActorCommand constructor",
)

// CreateActorCommand registers a new actor on behalf of a requester. The
// role/branch pairing is checked when the actor is built.
type CreateActorCommand struct {
	actorID     kernel.UUID
	requesterID kernel.UUID
	name        string
	role        actor.Role
	branchID    *kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateActorCommand(
	actorID, requesterID kernel.UUID,
	name string,
	role actor.Role,
	branchID *kernel.UUID,
) (CreateActorCommand, error) {
	if err := errors.Join(
		validateID("actorID", actorID),
		validateID("requesterID", requesterID),
		role.Validate(),
	); err != nil {
		return CreateActorCommand{}, err
	}

	return CreateActorCommand{
		actorID:     actorID,
		requesterID: requesterID,
		name:        name,
		role:        role,
		branchID:    branchID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateActorCommand) Validate() error {
	return c.guard.Validate(ErrCreateActorCommandIsNotConstructed)
}

func (c CreateActorCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c CreateActorCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c CreateActorCommand) Name() string {
	return c.name
}

func (c CreateActorCommand) Role() actor.Role {
	return c.role
}

func (c CreateActorCommand) BranchID() *kernel.UUID {
	return c.branchID
}
