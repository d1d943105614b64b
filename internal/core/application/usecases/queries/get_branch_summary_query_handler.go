package queries

import (
	"context"

	"storefront/internal/core/domain/services/access"
	"storefront/internal/core/domain/services/lifecycle"

	"gorm.io/gorm"
)

type GetBranchSummaryQueryHandler struct {
	db         *gorm.DB
	controller *lifecycle.Controller
}

func NewGetBranchSummaryQueryHandler(db *gorm.DB, controller *lifecycle.Controller) GetBranchSummaryQueryHandler {
	return GetBranchSummaryQueryHandler{db: db, controller: controller}
}

// Handle requires View on the branch's reports. A branch without orders gets
// a summary of zeros.
func (h GetBranchSummaryQueryHandler) Handle(ctx context.Context, query GetBranchSummaryQuery) (*BranchSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requester, err := loadActor(ctx, h.db, query.ActorID())
	if err != nil {
		return nil, err
	}

	branchID := query.BranchID()
	if err = h.controller.Authorize(requester, access.Report(branchID), access.View); err != nil {
		return nil, err
	}

	summaries, err := summarize(ctx, h.db, &branchID, query.From(), query.To())
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return newBranchSummary(branchID, query.From(), query.To()), nil
	}
	return summaries[0], nil
}
