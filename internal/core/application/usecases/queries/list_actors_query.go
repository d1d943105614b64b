package queries

import (
	"errors"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrListActorsQueryIsNotConstructed = errors.New(
	"ListActorsQuery must be created via NewListActorsQuery constructor",
)

// ListActorsQuery lists the actor records a requester may view, ordered by
// name. Role and branch narrow the list; they never widen it.
type ListActorsQuery struct {
	actorID  kernel.UUID
	role     *actor.Role
	branchID *kernel.UUID
	limit    int

	guard guard.ConstructorGuard
}

// NewListActorsQuery builds the query. A zero limit means DefaultListLimit.
func NewListActorsQuery(actorID kernel.UUID, role *actor.Role, branchID *kernel.UUID, limit int) (ListActorsQuery, error) {
	var errList []error
	errList = append(errList, requireID("actorID", actorID))
	if role != nil {
		errList = append(errList, role.Validate())
	}
	if branchID != nil {
		if err := branchID.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("branchID", err))
		}
	}
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 1 || limit > MaxListLimit {
		errList = append(errList, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit))
	}
	if err := errors.Join(errList...); err != nil {
		return ListActorsQuery{}, err
	}

	return ListActorsQuery{
		actorID:  actorID,
		role:     role,
		branchID: branchID,
		limit:    limit,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListActorsQuery) Validate() error {
	return q.guard.Validate(ErrListActorsQueryIsNotConstructed)
}

func (q ListActorsQuery) ActorID() kernel.UUID {
	return q.actorID
}

func (q ListActorsQuery) Role() *actor.Role {
	return q.role
}

func (q ListActorsQuery) BranchID() *kernel.UUID {
	return q.branchID
}

func (q ListActorsQuery) Limit() int {
	return q.limit
}
