// Package queries contains read operations. Handlers read straight from the
// database with SQL and apply the access policy to what they load; they never
// go through the unit of work.
package queries

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is the read model of an order without its items.
type OrderView struct {
	ID              kernel.UUID
	Number          string
	BranchID        kernel.UUID
	CustomerID      kernel.UUID
	DeliveryStaffID *kernel.UUID
	Status          order.Status
	Total           kernel.Money
	CreatedAt       time.Time
}

type orderRow struct {
	ID              uuid.UUID
	Number          string
	BranchID        uuid.UUID
	CustomerID      uuid.UUID
	DeliveryStaffID *uuid.UUID
	Status          string
	Total           decimal.Decimal
	CreatedAt       time.Time
}

const orderColumns = "id, number, branch_id, customer_id, delivery_staff_id, status, total, created_at"

// restore builds an item-less order so the access policy can judge it.
func (r orderRow) restore() (*order.Order, error) {
	id, err := kernel.UUIDFrom(r.ID)
	if err != nil {
		return nil, err
	}
	branchID, err := kernel.UUIDFrom(r.BranchID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFrom(r.CustomerID)
	if err != nil {
		return nil, err
	}
	staffID, err := kernel.UUIDPtrFrom(r.DeliveryStaffID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(r.Total)
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(id, r.Number, branchID, customerID, staffID, nil, total, status, r.CreatedAt)
}

func newOrderView(o *order.Order) OrderView {
	return OrderView{
		ID:              o.ID(),
		Number:          o.Number(),
		BranchID:        o.BranchID(),
		CustomerID:      o.CustomerID(),
		DeliveryStaffID: o.DeliveryStaffID(),
		Status:          o.Status(),
		Total:           o.Total(),
		CreatedAt:       o.CreatedAt(),
	}
}

// ActorView is the read model of an actor record.
type ActorView struct {
	ID       kernel.UUID
	Name     string
	Role     actor.Role
	BranchID *kernel.UUID
}

func newActorView(a *actor.Actor) ActorView {
	return ActorView{
		ID:       a.ID(),
		Name:     a.Name(),
		Role:     a.Role(),
		BranchID: a.BranchID(),
	}
}

type actorRow struct {
	ID       uuid.UUID
	Name     string
	Role     string
	BranchID *uuid.UUID
}

const actorColumns = "id, name, role, branch_id"

func (r actorRow) restore() (*actor.Actor, error) {
	actorID, err := kernel.UUIDFrom(r.ID)
	if err != nil {
		return nil, err
	}
	branchID, err := kernel.UUIDPtrFrom(r.BranchID)
	if err != nil {
		return nil, err
	}
	role, err := actor.ParseRole(r.Role)
	if err != nil {
		return nil, err
	}
	return actor.RestoreActor(actorID, r.Name, role, branchID)
}

// loadActor reads one actor record; the requester of a query or its target.
func loadActor(ctx context.Context, db *gorm.DB, id kernel.UUID) (*actor.Actor, error) {
	var rows []actorRow
	err := db.WithContext(ctx).
		Raw(`SELECT `+actorColumns+` FROM actors WHERE id = ?`, id.Raw()).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errs.NewObjectNotFoundError("actor", id.String())
	}
	return rows[0].restore()
}
