package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrDeleteActorCommandIsNotConstructed = errors.New(
	"DeleteActorCommand must be created via NewDeleteActorCommand constructor",
)

type DeleteActorCommand struct {
	actorID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteActorCommand(actorID, requesterID kernel.UUID) (DeleteActorCommand, error) {
	if err := errors.Join(
		validateID("actorID", actorID),
		validateID("requesterID", requesterID),
	); err != nil {
		return DeleteActorCommand{}, err
	}

	return DeleteActorCommand{
		actorID:     actorID,
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteActorCommand) Validate() error {
	return c.guard.Validate(ErrDeleteActorCommandIsNotConstructed)
}

func (c DeleteActorCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c DeleteActorCommand) RequesterID() kernel.UUID {
	return c.requesterID
}
