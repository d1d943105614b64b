package commands

import (
	"errors"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUpdateActorCommandIsNotConstructed = errors.New(
	"UpdateActorCommand must be created via NewUpdateActorCommand constructor",
)

// UpdateActorCommand changes an actor record. Nil fields keep their value.
type UpdateActorCommand struct {
	actorID     kernel.UUID
	requesterID kernel.UUID
	name        *string
	role        *actor.Role
	branchID    *kernel.UUID

	guard guard.ConstructorGuard
}

func NewUpdateActorCommand(
	actorID, requesterID kernel.UUID,
	name *string,
	role *actor.Role,
	branchID *kernel.UUID,
) (UpdateActorCommand, error) {
	errList := []error{
		validateID("actorID", actorID),
		validateID("requesterID", requesterID),
	}
	if role != nil {
		errList = append(errList, role.Validate())
	}
	if branchID != nil {
		if err := branchID.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("branchID", err))
		}
	}
	if name == nil && role == nil && branchID == nil {
		errList = append(errList, errs.NewValueIsRequiredError("name, role or branchID"))
	}
	if err := errors.Join(errList...); err != nil {
		return UpdateActorCommand{}, err
	}

	return UpdateActorCommand{
		actorID:     actorID,
		requesterID: requesterID,
		name:        name,
		role:        role,
		branchID:    branchID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateActorCommand) Validate() error {
	return c.guard.Validate(ErrUpdateActorCommandIsNotConstructed)
}

func (c UpdateActorCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c UpdateActorCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

func (c UpdateActorCommand) Name() *string {
	return c.name
}

func (c UpdateActorCommand) Role() *actor.Role {
	return c.role
}

func (c UpdateActorCommand) BranchID() *kernel.UUID {
	return c.branchID
}
