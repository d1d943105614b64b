package actorrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/actorrepo"
	"storefront/internal/adapters/out/postgres/migrations"
	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	branchA = kernel.MustUUID("aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa")
	branchB = kernel.MustUUID("bbbbbbbb-bbbb-4bbb-8bbb-bbbbbbbbbbbb")
)

type ActorRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *actorrepo.GormActorRepository
}

func (suite *ActorRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)
	suite.Require().NoError(migrations.Up(connStr))

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db
	suite.repository = actorrepo.NewGormActorRepository(db)
}

func (suite *ActorRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE actors").Error)
}

func (suite *ActorRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ActorRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsRoleAndBranch() {
	ctx := context.Background()
	cashier := suite.newActor("Dana", actor.Cashier, &branchA)
	owner := suite.newActor("Olga", actor.Owner, nil)

	suite.Require().NoError(suite.repository.Add(ctx, cashier))
	suite.Require().NoError(suite.repository.Add(ctx, owner))

	loaded, err := suite.repository.Get(ctx, cashier.ID())
	suite.Require().NoError(err)
	suite.Equal("Dana", loaded.Name())
	suite.Equal(actor.Cashier, loaded.Role())
	suite.True(loaded.BelongsTo(branchA))

	loaded, err = suite.repository.Get(ctx, owner.ID())
	suite.Require().NoError(err)
	suite.Equal(actor.Owner, loaded.Role())
	suite.Nil(loaded.BranchID())
}

func (suite *ActorRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFound() {
	loaded, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(loaded)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ActorRepositoryIntegrationTestSuite) TestGetDeliveryStaff_FiltersByBranchAndRole() {
	ctx := context.Background()
	for _, a := range []*actor.Actor{
		suite.newActor("Zed", actor.Delivery, &branchA),
		suite.newActor("Amir", actor.Delivery, &branchA),
		suite.newActor("Bea", actor.Delivery, &branchB),
		suite.newActor("Cal", actor.Cashier, &branchA),
		suite.newActor("Uma", actor.User, nil),
	} {
		suite.Require().NoError(suite.repository.Add(ctx, a))
	}

	staff, err := suite.repository.GetDeliveryStaff(ctx, branchA)

	suite.Require().NoError(err)
	suite.Require().Len(staff, 2)
	suite.Equal("Amir", staff[0].Name())
	suite.Equal("Zed", staff[1].Name())
}

func (suite *ActorRepositoryIntegrationTestSuite) TestGetDeliveryStaff_NoneInBranch_ReturnsEmpty() {
	staff, err := suite.repository.GetDeliveryStaff(context.Background(), branchB)

	suite.Require().NoError(err)
	suite.NotNil(staff)
	suite.Empty(staff)
}

func (suite *ActorRepositoryIntegrationTestSuite) TestUpdate_ClearsBranchWhenRoleBecomesBranchless() {
	ctx := context.Background()
	cashier := suite.newActor("Dana", actor.Cashier, &branchA)
	suite.Require().NoError(suite.repository.Add(ctx, cashier))

	name := "Dana K"
	role := actor.User
	amended, err := cashier.Amend(&name, &role, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, amended))

	loaded, err := suite.repository.Get(ctx, cashier.ID())
	suite.Require().NoError(err)
	suite.Equal("Dana K", loaded.Name())
	suite.Equal(actor.User, loaded.Role())
	suite.Nil(loaded.BranchID())
}

func (suite *ActorRepositoryIntegrationTestSuite) TestUpdate_Unknown_ReturnsNotFound() {
	ghost := suite.newActor("Ghost", actor.Delivery, &branchB)

	err := suite.repository.Update(context.Background(), ghost)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ActorRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	driver := suite.newActor("Amir", actor.Delivery, &branchA)
	suite.Require().NoError(suite.repository.Add(ctx, driver))

	suite.Require().NoError(suite.repository.Delete(ctx, driver.ID()))

	_, err := suite.repository.Get(ctx, driver.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Require().ErrorIs(suite.repository.Delete(ctx, driver.ID()), errs.ErrObjectNotFound)
}

func (suite *ActorRepositoryIntegrationTestSuite) newActor(name string, role actor.Role, branch *kernel.UUID) *actor.Actor {
	a, err := actor.NewActor(kernel.NewUUID(), name, role, branch)
	suite.Require().NoError(err)
	return a
}

func TestActorRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ActorRepositoryIntegrationTestSuite))
}
