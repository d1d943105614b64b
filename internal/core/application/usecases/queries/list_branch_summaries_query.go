package queries

import (
	"context"
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListBranchSummariesQueryIsNotConstructed = errors.New(
	"ListBranchSummariesQuery must be created via NewListBranchSummariesQuery constructor",
)

// ListBranchSummariesQuery summarizes every branch with orders created in
// [from, to). It runs without a requester and is meant for the report job;
// it must not be exposed to actors directly.
type ListBranchSummariesQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

func NewListBranchSummariesQuery(from, to time.Time) (ListBranchSummariesQuery, error) {
	if from.IsZero() || to.IsZero() {
		return ListBranchSummariesQuery{}, errs.NewValueIsRequiredError("from and to")
	}
	if !from.Before(to) {
		return ListBranchSummariesQuery{}, errs.NewValueIsInvalidError("from must be before to")
	}
	return ListBranchSummariesQuery{from: from, to: to, guard: guard.NewConstructorGuard()}, nil
}

func (q ListBranchSummariesQuery) Validate() error {
	return q.guard.Validate(ErrListBranchSummariesQueryIsNotConstructed)
}

type ListBranchSummariesQueryHandler struct {
	db *gorm.DB
}

func NewListBranchSummariesQueryHandler(db *gorm.DB) ListBranchSummariesQueryHandler {
	return ListBranchSummariesQueryHandler{db: db}
}

func (h ListBranchSummariesQueryHandler) Handle(ctx context.Context, query ListBranchSummariesQuery) ([]*BranchSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return summarize(ctx, h.db, nil, query.from, query.to)
}
