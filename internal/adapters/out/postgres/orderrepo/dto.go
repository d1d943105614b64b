// Package orderrepo maps order aggregates onto the orders, order_items and
// order_status_changes tables.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of the orders table. Status is stored by name so the
// table stays readable from SQL.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number          string          `gorm:"size:16;not null"`
	BranchID        uuid.UUID       `gorm:"type:uuid;not null"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null"`
	DeliveryStaffID *uuid.UUID      `gorm:"type:uuid"`
	Status          string          `gorm:"size:32;not null"`
	Total           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt       time.Time       `gorm:"not null"`
	Items           []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ItemDTO struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	AddonID   *uuid.UUID      `gorm:"type:uuid"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

// StatusChangeDTO is one entry of an order's status history.
type StatusChangeDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus string    `gorm:"size:32;not null"`
	ToStatus   string    `gorm:"size:32;not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	Notes      string    `gorm:"size:500;not null;default:''"`
	ChangedAt  time.Time `gorm:"not null"`
}

func (StatusChangeDTO) TableName() string {
	return "order_status_changes"
}

func fromDomain(o *order.Order) OrderDTO {
	items := o.Items()
	dtoItems := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtoItems = append(dtoItems, ItemDTO{
			OrderID:   o.ID().Raw(),
			ProductID: item.ProductID().Raw(),
			AddonID:   kernel.RawPtr(item.AddonID()),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice().Amount(),
		})
	}

	return OrderDTO{
		ID:              o.ID().Raw(),
		Number:          o.Number(),
		BranchID:        o.BranchID().Raw(),
		CustomerID:      o.CustomerID().Raw(),
		DeliveryStaffID: kernel.RawPtr(o.DeliveryStaffID()),
		Status:          o.Status().String(),
		Total:           o.Total().Amount(),
		CreatedAt:       o.CreatedAt(),
		Items:           dtoItems,
	}
}

func statusChangeFromDomain(c order.StatusChange) StatusChangeDTO {
	return StatusChangeDTO{
		OrderID:    c.OrderID().Raw(),
		FromStatus: c.From().String(),
		ToStatus:   c.To().String(),
		ActorID:    c.ActorID().Raw(),
		Notes:      c.Notes(),
		ChangedAt:  c.At(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}
	branchID, err := kernel.UUIDFrom(dto.BranchID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFrom(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	staffID, err := kernel.UUIDPtrFrom(dto.DeliveryStaffID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, dto.Number, branchID, customerID, staffID, items, total, status, dto.CreatedAt)
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFrom(dto.ProductID)
	if err != nil {
		return order.Item{}, err
	}
	addonID, err := kernel.UUIDPtrFrom(dto.AddonID)
	if err != nil {
		return order.Item{}, err
	}
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(productID, dto.Quantity, addonID, price)
}
