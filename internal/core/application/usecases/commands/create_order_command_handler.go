package commands

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services/access"
	"storefront/internal/core/domain/services/lifecycle"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// maxOrderNumberRetries bounds how often checkout retries after two orders of
// one branch raced for the same number.
const maxOrderNumberRetries = 3

// CreateOrderResponse describes the placed order.
type CreateOrderResponse struct {
	ID     string
	Number string
	Total  string
	Status order.Status
}

// CreateOrderCommandHandler places orders. Each attempt runs in its own
// transaction: a unique violation aborts the Postgres transaction, so a retry
// cannot reuse it.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	controller *lifecycle.Controller
	publisher  ports.EventPublisher
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	controller *lifecycle.Controller,
	publisher ports.EventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		controller: controller,
		publisher:  publisher,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (CreateOrderResponse, error) {
	if err := command.Validate(); err != nil {
		return CreateOrderResponse{}, err
	}

	var lastErr error
	for attempt := 0; attempt < maxOrderNumberRetries; attempt++ {
		placed, err := h.place(ctx, command)
		if err == nil {
			h.publisher.Publish(placed.BranchID(), ports.EventOrderCreated,
				orderEvent(placed, order.Unknown, command.ActorID(), "", placed.CreatedAt()))

			return CreateOrderResponse{
				ID:     placed.ID().String(),
				Number: placed.Number(),
				Total:  placed.Total().String(),
				Status: placed.Status(),
			}, nil
		}
		if !errors.Is(err, ports.ErrOrderNumberTaken) {
			return CreateOrderResponse{}, err
		}
		lastErr = err
	}

	return CreateOrderResponse{}, fmt.Errorf("giving up after %d attempts: %w", maxOrderNumberRetries, lastErr)
}

func (h CreateOrderCommandHandler) place(ctx context.Context, command CreateOrderCommand) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	actorRepo := uow.ActorRepository()

	requester, err := actorRepo.Get(ctx, command.ActorID())
	if err != nil {
		return nil, err
	}

	customerID := requester.ID()
	if command.CustomerID() != nil {
		customerID = *command.CustomerID()
	}

	number, err := orderRepo.NextNumber(ctx, command.BranchID())
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(command.OrderID(), number, command.BranchID(), customerID, command.Items())
	if err != nil {
		return nil, err
	}

	if err = h.controller.Authorize(requester, access.OrderResource(placed), access.Create); err != nil {
		return nil, err
	}

	if !customerID.IsEqual(requester.ID()) {
		if err = h.requireCustomer(ctx, actorRepo, customerID); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

// requireCustomer checks that staff place the order for a known USER.
func (h CreateOrderCommandHandler) requireCustomer(ctx context.Context, actorRepo ports.ActorRepository, id kernel.UUID) error {
	customer, err := actorRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if customer.Role() != actor.User {
		return errs.NewValueIsInvalidErrorWithCause(
			"customerID",
			fmt.Errorf("%s is not a customer", customer.Role()),
		)
	}
	return nil
}
