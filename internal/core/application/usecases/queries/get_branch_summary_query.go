package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrGetBranchSummaryQueryIsNotConstructed = errors.New(
	"GetBranchSummaryQuery must be created via NewGetBranchSummaryQuery constructor",
)

// GetBranchSummaryQuery reports order counts and completed sales of a branch
// for orders created in [from, to). Zero bounds leave that side open.
type GetBranchSummaryQuery struct {
	branchID kernel.UUID
	actorID  kernel.UUID
	from     time.Time
	to       time.Time

	guard guard.ConstructorGuard
}

func NewGetBranchSummaryQuery(branchID, actorID kernel.UUID, from, to time.Time) (GetBranchSummaryQuery, error) {
	var errList []error
	errList = append(errList,
		requireID("branchID", branchID),
		requireID("actorID", actorID),
	)
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		errList = append(errList, errs.NewValueIsInvalidError("from must be before to"))
	}
	if err := errors.Join(errList...); err != nil {
		return GetBranchSummaryQuery{}, err
	}

	return GetBranchSummaryQuery{
		branchID: branchID,
		actorID:  actorID,
		from:     from,
		to:       to,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetBranchSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetBranchSummaryQueryIsNotConstructed)
}

func (q GetBranchSummaryQuery) BranchID() kernel.UUID {
	return q.branchID
}

func (q GetBranchSummaryQuery) ActorID() kernel.UUID {
	return q.actorID
}

func (q GetBranchSummaryQuery) From() time.Time {
	return q.from
}

func (q GetBranchSummaryQuery) To() time.Time {
	return q.to
}
