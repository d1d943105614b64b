package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services/lifecycle"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	owner := newActor(t, actor.Owner, nil)
	o := restoreOrder(t, order.Cancelled, nil)
	cmd, err := commands.NewDeleteOrderCommand(o.ID(), owner.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	actorRepo := new(MockActorRepository)
	uow := new(MockUoW)
	publisher := new(MockPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ActorRepository").Return(actorRepo).Once(),
		actorRepo.On("Get", ctx, owner.ID()).Return(owner, nil).Once(),
		orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Delete", ctx, o.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", branchA, ports.EventOrderDeleted, mock.Anything).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory, newController(t), publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_CashierForbidden(t *testing.T) {
	ctx := t.Context()
	cashier := newActor(t, actor.Cashier, &branchA)
	o := restoreOrder(t, order.Pending, nil)
	cmd, err := commands.NewDeleteOrderCommand(o.ID(), cashier.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	actorRepo := new(MockActorRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		uow.On("ActorRepository").Return(actorRepo).Once(),
		actorRepo.On("Get", ctx, cashier.ID()).Return(cashier, nil).Once(),
		orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeleteOrderCommandHandler(factory, newController(t), new(MockPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, lifecycle.ErrForbidden)
	orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
