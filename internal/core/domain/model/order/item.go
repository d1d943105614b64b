package order

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	MinItemQuantity = 1
	MaxItemQuantity = 99
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order: a product, its quantity, an optional addon
// and the unit price captured at checkout. Items never change after the
// order is placed.
type Item struct {
	productID kernel.UUID
	addonID   *kernel.UUID
	quantity  int
	unitPrice kernel.Money

	guard.ConstructorGuard
}

func NewItem(productID kernel.UUID, quantity int, addonID *kernel.UUID, unitPrice kernel.Money) (Item, error) {
	item := Item{ConstructorGuard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setAddonID(addonID),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}
	return item, nil
}

func (i Item) Validate() error {
	return i.ConstructorGuard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// AddonID is nil when the line has no addon.
func (i Item) AddonID() *kernel.UUID {
	return i.addonID
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal is unit price times quantity.
func (i Item) LineTotal() kernel.Money {
	return i.unitPrice.Times(i.quantity)
}

func (i *Item) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productID", err)
	}
	i.productID = id
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < MinItemQuantity || quantity > MaxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinItemQuantity, MaxItemQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setAddonID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("addonID", err)
	}
	addon := *id
	i.addonID = &addon
	return nil
}

func (i *Item) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("unitPrice", err)
	}
	i.unitPrice = price
	return nil
}
