package queries

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services/lifecycle"

	"gorm.io/gorm"
)

// onTheRoad mirrors what the policy lets delivery staff see, so the limit
// applies to orders they carry rather than to past deliveries.
var onTheRoad = []string{order.OutForDelivery.String(), order.Delivering.String()}

type ListOrdersQueryHandler struct {
	db         *gorm.DB
	controller *lifecycle.Controller
}

func NewListOrdersQueryHandler(db *gorm.DB, controller *lifecycle.Controller) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, controller: controller}
}

// Handle narrows the SQL to the actor's own scope, then lets the access
// policy drop whatever the actor still may not view.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requester, err := loadActor(ctx, h.db, query.ActorID())
	if err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("orders").Select(orderColumns)
	switch {
	case requester.Role() == actor.User:
		tx = tx.Where("customer_id = ?", requester.ID().Raw())
	case requester.Role() == actor.Delivery:
		tx = tx.Where("delivery_staff_id = ? AND status IN ?", requester.ID().Raw(), onTheRoad)
	case requester.BranchID() != nil:
		tx = tx.Where("branch_id = ?", requester.BranchID().Raw())
	}
	if branchID := query.BranchID(); branchID != nil {
		tx = tx.Where("branch_id = ?", branchID.Raw())
	}
	if status := query.Status(); status != nil {
		tx = tx.Where("status = ?", status.String())
	}

	var rows []orderRow
	if err = tx.Order("created_at DESC, id").Limit(query.Limit()).Scan(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, restoreErr := row.restore()
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, o)
	}

	visible := h.controller.Policy().Visible(requester, orders)
	views := make([]OrderView, 0, len(visible))
	for _, o := range visible {
		views = append(views, newOrderView(o))
	}
	return views, nil
}
