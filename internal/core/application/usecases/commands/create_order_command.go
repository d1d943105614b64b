package commands

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a checkout: a cart of items placed against a
// branch. Staff taking an order at the counter pass the customer explicitly;
// otherwise the requester is the customer.
//
// Example:
//
//	item, _ := order.NewItem(productID, 2, nil, price)
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), actorID, branchID, nil, []order.Item{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	orderID    kernel.UUID
	actorID    kernel.UUID
	branchID   kernel.UUID
	customerID *kernel.UUID
	items      []order.Item

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID, actorID, branchID kernel.UUID,
	customerID *kernel.UUID,
	items []order.Item,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		validateID("orderID", orderID),
		validateID("actorID", actorID),
		validateID("branchID", branchID),
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actorID = actorID
	cmd.branchID = branchID
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c CreateOrderCommand) BranchID() kernel.UUID {
	return c.branchID
}

// CustomerID is nil when the requester orders for themselves.
func (c CreateOrderCommand) CustomerID() *kernel.UUID {
	return c.customerID
}

func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c *CreateOrderCommand) setCustomerID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := validateID("customerID", *id); err != nil {
		return err
	}
	customer := *id
	c.customerID = &customer
	return nil
}

func (c *CreateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return order.ErrOrderHasNoItems
	}
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
	}
	c.items = items
	return nil
}
