package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists the orders an actor may see, newest first. Branch and
// status narrow the list further; they never widen it.
type ListOrdersQuery struct {
	actorID  kernel.UUID
	branchID *kernel.UUID
	status   *order.Status
	limit    int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery builds the query. A zero limit means DefaultListLimit.
func NewListOrdersQuery(actorID kernel.UUID, branchID *kernel.UUID, status *order.Status, limit int) (ListOrdersQuery, error) {
	var errList []error
	errList = append(errList, requireID("actorID", actorID))
	if branchID != nil {
		if err := branchID.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("branchID", err))
		}
	}
	if status != nil {
		errList = append(errList, status.Validate())
	}
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 1 || limit > MaxListLimit {
		errList = append(errList, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit))
	}
	if err := errors.Join(errList...); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		actorID:  actorID,
		branchID: branchID,
		status:   status,
		limit:    limit,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

func (q ListOrdersQuery) BranchID() *kernel.UUID {
	return q.branchID
}

func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

func (q ListOrdersQuery) Limit() int {
	return q.limit
}
