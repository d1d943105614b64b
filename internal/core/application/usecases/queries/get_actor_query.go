package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetActorQueryIsNotConstructed = errors.New(
	"GetActorQuery must be created via NewGetActorQuery constructor",
)

// GetActorQuery loads one actor record on behalf of a requester allowed to
// view it.
type GetActorQuery struct {
	targetID kernel.UUID
	actorID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetActorQuery(targetID, actorID kernel.UUID) (GetActorQuery, error) {
	if err := errors.Join(
		requireID("targetID", targetID),
		requireID("actorID", actorID),
	); err != nil {
		return GetActorQuery{}, err
	}

	return GetActorQuery{
		targetID: targetID,
		actorID:  actorID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetActorQuery) Validate() error {
	return q.guard.Validate(ErrGetActorQueryIsNotConstructed)
}

func (q GetActorQuery) TargetID() kernel.UUID {
	return q.targetID
}

func (q GetActorQuery) ActorID() kernel.UUID {
	return q.actorID
}
