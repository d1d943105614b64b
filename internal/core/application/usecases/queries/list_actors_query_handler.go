package queries

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/services/access"
	"storefront/internal/core/domain/services/lifecycle"

	"gorm.io/gorm"
)

type ListActorsQueryHandler struct {
	db         *gorm.DB
	controller *lifecycle.Controller
}

func NewListActorsQueryHandler(db *gorm.DB, controller *lifecycle.Controller) ListActorsQueryHandler {
	return ListActorsQueryHandler{db: db, controller: controller}
}

// Handle narrows the SQL to records the requester could possibly view, then
// keeps those the access policy allows.
func (h ListActorsQueryHandler) Handle(ctx context.Context, query ListActorsQuery) ([]ActorView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requester, err := loadActor(ctx, h.db, query.ActorID())
	if err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("actors").Select(actorColumns)
	switch {
	case requester.Role() == actor.User:
		tx = tx.Where("id = ?", requester.ID().Raw())
	case requester.BranchID() != nil:
		tx = tx.Where("branch_id = ?", requester.BranchID().Raw())
	}
	if role := query.Role(); role != nil {
		tx = tx.Where("role = ?", role.String())
	}
	if branchID := query.BranchID(); branchID != nil {
		tx = tx.Where("branch_id = ?", branchID.Raw())
	}

	var rows []actorRow
	if err = tx.Order("name, id").Limit(query.Limit()).Scan(&rows).Error; err != nil {
		return nil, err
	}

	policy := h.controller.Policy()
	views := make([]ActorView, 0, len(rows))
	for _, row := range rows {
		target, restoreErr := row.restore()
		if restoreErr != nil {
			return nil, restoreErr
		}
		if policy.Allowed(requester, access.UserResource(target), access.View) {
			views = append(views, newActorView(target))
		}
	}
	return views, nil
}
