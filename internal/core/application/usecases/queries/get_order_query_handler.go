package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services/access"
	"storefront/internal/core/domain/services/lifecycle"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItemView struct {
	ProductID kernel.UUID
	AddonID   *kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
	LineTotal kernel.Money
}

type StatusChangeView struct {
	From    order.Status
	To      order.Status
	ActorID kernel.UUID
	Notes   string
	At      time.Time
}

type GetOrderQueryResponse struct {
	OrderView
	Items   []OrderItemView
	History []StatusChangeView
}

type GetOrderQueryHandler struct {
	db         *gorm.DB
	controller *lifecycle.Controller
}

func NewGetOrderQueryHandler(db *gorm.DB, controller *lifecycle.Controller) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, controller: controller}
}

// Handle returns lifecycle.ErrForbidden when the actor may not view the order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	requester, err := loadActor(ctx, h.db, query.ActorID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	var rows []orderRow
	err = h.db.WithContext(ctx).
		Raw(`SELECT `+orderColumns+` FROM orders WHERE id = ?`, query.OrderID().Raw()).
		Scan(&rows).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	o, err := rows[0].restore()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if err = h.controller.Authorize(requester, access.OrderResource(o), access.View); err != nil {
		return GetOrderQueryResponse{}, err
	}

	items, err := h.items(ctx, o.ID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	history, err := h.history(ctx, o.ID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		OrderView: newOrderView(o),
		Items:     items,
		History:   history,
	}, nil
}

func (h GetOrderQueryHandler) items(ctx context.Context, orderID kernel.UUID) ([]OrderItemView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT product_id, addon_id, quantity, unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Raw()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemView, 0)
	for rows.Next() {
		var (
			productID uuid.UUID
			addonID   *uuid.UUID
			quantity  int
			unitPrice decimal.Decimal
		)
		if err = rows.Scan(&productID, &addonID, &quantity, &unitPrice); err != nil {
			return nil, err
		}

		item := OrderItemView{Quantity: quantity}
		if item.ProductID, err = kernel.UUIDFrom(productID); err != nil {
			return nil, err
		}
		if item.AddonID, err = kernel.UUIDPtrFrom(addonID); err != nil {
			return nil, err
		}
		if item.UnitPrice, err = kernel.NewMoney(unitPrice); err != nil {
			return nil, err
		}
		item.LineTotal = item.UnitPrice.Times(quantity)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (h GetOrderQueryHandler) history(ctx context.Context, orderID kernel.UUID) ([]StatusChangeView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT from_status, to_status, actor_id, notes, changed_at
		FROM order_status_changes
		WHERE order_id = ?
		ORDER BY changed_at, id
	`, orderID.Raw()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]StatusChangeView, 0)
	for rows.Next() {
		var (
			from, to string
			actorID  uuid.UUID
			change   StatusChangeView
		)
		if err = rows.Scan(&from, &to, &actorID, &change.Notes, &change.At); err != nil {
			return nil, err
		}

		if change.From, err = order.ParseStatus(from); err != nil {
			return nil, err
		}
		if change.To, err = order.ParseStatus(to); err != nil {
			return nil, err
		}
		if change.ActorID, err = kernel.UUIDFrom(actorID); err != nil {
			return nil, err
		}
		history = append(history, change)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return history, nil
}
