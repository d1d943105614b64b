package queries_test

import (
	"context"
	"time"

	"storefront/internal/adapters/out/postgres/actorrepo"
	"storefront/internal/adapters/out/postgres/migrations"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services/access"
	"storefront/internal/core/domain/services/lifecycle"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	branchA = kernel.MustUUID("aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa")
	branchB = kernel.MustUUID("bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb")
)

// dbSuite starts one migrated PostgreSQL container per handler suite and
// seeds it through the real repositories.
type dbSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	orderRepo  *orderrepo.GormOrderRepository
	actorRepo  *actorrepo.GormActorRepository
	controller *lifecycle.Controller
}

func (s *dbSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)
	s.Require().NoError(migrations.Up(dsn))

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	s.orderRepo = orderrepo.NewGormOrderRepository(db)
	s.actorRepo = actorrepo.NewGormActorRepository(db)
	s.controller, err = lifecycle.NewController(access.NewPolicy())
	s.Require().NoError(err)
}

func (s *dbSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *dbSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE orders, actors CASCADE").Error)
}

func (s *dbSuite) addActor(role actor.Role, branch *kernel.UUID) *actor.Actor {
	a, err := actor.NewActor(kernel.NewUUID(), "Test "+role.String(), role, branch)
	s.Require().NoError(err)
	s.Require().NoError(s.actorRepo.Add(context.Background(), a))
	return a
}

// addOrder places an order and walks it forward to status, assigning staff
// when the walk passes READY.
func (s *dbSuite) addOrder(branch, customer kernel.UUID, total string, status order.Status, staff *kernel.UUID) *order.Order {
	ctx := context.Background()

	price, err := kernel.MoneyFromString(total)
	s.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), 1, nil, price)
	s.Require().NoError(err)

	number, err := s.orderRepo.NextNumber(ctx, branch)
	s.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), number, branch, customer, []order.Item{item})
	s.Require().NoError(err)

	if status == order.Cancelled {
		s.Require().NoError(o.Cancel())
	}
	for o.Status() != status && status != order.Cancelled {
		if o.Status() == order.Ready {
			s.Require().NotNil(staff)
			s.Require().NoError(o.AssignDelivery(*staff))
			continue
		}
		_, err = o.Advance()
		s.Require().NoError(err)
	}

	s.Require().NoError(s.orderRepo.Add(ctx, o))
	return o
}
