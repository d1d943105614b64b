package queries_test

import (
	"context"
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
)

type ListOrdersQueryHandlerTestSuite struct {
	dbSuite
}

func (s *ListOrdersQueryHandlerTestSuite) list(actorID kernel.UUID, branchID *kernel.UUID, status *order.Status) []queries.OrderView {
	query, err := queries.NewListOrdersQuery(actorID, branchID, status, 0)
	s.Require().NoError(err)
	views, err := queries.NewListOrdersQueryHandler(s.db, s.controller).Handle(context.Background(), query)
	s.Require().NoError(err)
	return views
}

func (s *ListOrdersQueryHandlerTestSuite) ids(views []queries.OrderView) []kernel.UUID {
	result := make([]kernel.UUID, 0, len(views))
	for _, v := range views {
		result = append(result, v.ID)
	}
	return result
}

func (s *ListOrdersQueryHandlerTestSuite) TestHandle_EachRoleSeesItsScope() {
	owner := s.addActor(actor.Owner, nil)
	adminA := s.addActor(actor.BranchAdmin, &branchA)
	driverA := s.addActor(actor.Delivery, &branchA)
	otherDriver := s.addActor(actor.Delivery, &branchA)
	alice := s.addActor(actor.User, nil)
	bob := s.addActor(actor.User, nil)

	driverID := driverA.ID()
	pendingA := s.addOrder(branchA, alice.ID(), "5.00", order.Pending, nil)
	onTheRoadA := s.addOrder(branchA, bob.ID(), "7.00", order.OutForDelivery, &driverID)
	pendingB := s.addOrder(branchB, alice.ID(), "9.00", order.Pending, nil)

	s.ElementsMatch([]kernel.UUID{pendingA.ID(), onTheRoadA.ID(), pendingB.ID()}, s.ids(s.list(owner.ID(), nil, nil)))
	s.ElementsMatch([]kernel.UUID{pendingA.ID(), onTheRoadA.ID()}, s.ids(s.list(adminA.ID(), nil, nil)))
	s.ElementsMatch([]kernel.UUID{onTheRoadA.ID()}, s.ids(s.list(driverA.ID(), nil, nil)))
	s.Empty(s.list(otherDriver.ID(), nil, nil))
	s.ElementsMatch([]kernel.UUID{pendingA.ID(), pendingB.ID()}, s.ids(s.list(alice.ID(), nil, nil)))
}

func (s *ListOrdersQueryHandlerTestSuite) TestHandle_FiltersNarrowButNeverWiden() {
	owner := s.addActor(actor.Owner, nil)
	adminA := s.addActor(actor.BranchAdmin, &branchA)
	customer := s.addActor(actor.User, nil)

	pendingA := s.addOrder(branchA, customer.ID(), "5.00", order.Pending, nil)
	s.addOrder(branchA, customer.ID(), "5.00", order.Cancelled, nil)
	s.addOrder(branchB, customer.ID(), "5.00", order.Pending, nil)

	pending := order.Pending
	s.ElementsMatch([]kernel.UUID{pendingA.ID()}, s.ids(s.list(owner.ID(), &branchA, &pending)))
	s.Empty(s.list(adminA.ID(), &branchB, nil))
}

func (s *ListOrdersQueryHandlerTestSuite) TestHandle_DriverSeesLiveOrdersBehindPastDeliveries() {
	driver := s.addActor(actor.Delivery, &branchA)
	customer := s.addActor(actor.User, nil)
	driverID := driver.ID()

	live := s.addOrder(branchA, customer.ID(), "5.00", order.OutForDelivery, &driverID)
	for i := 0; i < 4; i++ {
		s.addOrder(branchA, customer.ID(), "5.00", order.Delivered, &driverID)
	}

	query, err := queries.NewListOrdersQuery(driver.ID(), nil, nil, 3)
	s.Require().NoError(err)
	views, err := queries.NewListOrdersQueryHandler(s.db, s.controller).Handle(context.Background(), query)
	s.Require().NoError(err)

	s.Equal([]kernel.UUID{live.ID()}, s.ids(views))
}

func (s *ListOrdersQueryHandlerTestSuite) TestHandle_NewestFirst() {
	owner := s.addActor(actor.Owner, nil)
	customer := s.addActor(actor.User, nil)
	first := s.addOrder(branchA, customer.ID(), "5.00", order.Pending, nil)
	second := s.addOrder(branchA, customer.ID(), "5.00", order.Pending, nil)

	views := s.list(owner.ID(), nil, nil)

	s.Require().Len(views, 2)
	s.Equal(second.ID(), views[0].ID)
	s.Equal(first.ID(), views[1].ID)
	s.Equal("000002", views[0].Number)
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}
