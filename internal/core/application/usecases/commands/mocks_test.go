package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services/access"
	"storefront/internal/core/domain/services/lifecycle"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) NextNumber(ctx context.Context, branchID kernel.UUID) (string, error) {
	args := m.Called(ctx, branchID)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) AddStatusChange(ctx context.Context, change order.StatusChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

type MockActorRepository struct{ mock.Mock }

func (m *MockActorRepository) Add(ctx context.Context, a *actor.Actor) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*actor.Actor), args.Error(1)
}

func (m *MockActorRepository) Update(ctx context.Context, a *actor.Actor) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockActorRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockActorRepository) GetDeliveryStaff(ctx context.Context, branchID kernel.UUID) ([]*actor.Actor, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*actor.Actor), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ActorRepository() ports.ActorRepository {
	args := m.Called()
	return args.Get(0).(ports.ActorRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockActorUoWFactory struct{ mock.Mock }

func (m *MockActorUoWFactory) Create() commands.ActorUoW {
	args := m.Called()
	return args.Get(0).(commands.ActorUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(branchID kernel.UUID, eventType string, payload any) {
	m.Called(branchID, eventType, payload)
}

var (
	branchA = kernel.MustUUID("aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa")
	branchB = kernel.MustUUID("bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb")
)

func newController(t *testing.T) *lifecycle.Controller {
	t.Helper()
	c, err := lifecycle.NewController(access.NewPolicy())
	require.NoError(t, err)
	return c
}

func newActor(t *testing.T, role actor.Role, branch *kernel.UUID) *actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), "Test "+role.String(), role, branch)
	require.NoError(t, err)
	return a
}

func restoreOrder(t *testing.T, status order.Status, staff *kernel.UUID) *order.Order {
	t.Helper()
	total, err := kernel.MoneyFromString("18.40")
	require.NoError(t, err)
	o, err := order.RestoreOrder(kernel.NewUUID(), "000010", branchA, kernel.NewUUID(), staff, nil, total, status, time.Now())
	require.NoError(t, err)
	return o
}

func newItems(t *testing.T) []order.Item {
	t.Helper()
	price, err := kernel.MoneyFromString("9.20")
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), 2, nil, price)
	require.NoError(t, err)
	return []order.Item{item}
}
