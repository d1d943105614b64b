package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services/lifecycle"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	advanceOrderHandler   commands.AdvanceOrderCommandHandler
	assignDeliveryHandler commands.AssignDeliveryCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler
	deleteOrderHandler    commands.DeleteOrderCommandHandler
	createActorHandler    commands.CreateActorCommandHandler
	deleteActorHandler    commands.DeleteActorCommandHandler
	updateActorHandler    commands.UpdateActorCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	listOrdersHandler       queries.ListOrdersQueryHandler
	getBranchSummaryHandler queries.GetBranchSummaryQueryHandler
	getActorHandler         queries.GetActorQueryHandler
	listActorsHandler       queries.ListActorsQueryHandler
}

// Handlers groups everything NewServer needs.
type Handlers struct {
	CreateOrder    commands.CreateOrderCommandHandler
	AdvanceOrder   commands.AdvanceOrderCommandHandler
	AssignDelivery commands.AssignDeliveryCommandHandler
	CancelOrder    commands.CancelOrderCommandHandler
	DeleteOrder    commands.DeleteOrderCommandHandler
	CreateActor    commands.CreateActorCommandHandler
	DeleteActor    commands.DeleteActorCommandHandler
	UpdateActor    commands.UpdateActorCommandHandler

	GetOrder         queries.GetOrderQueryHandler
	ListOrders       queries.ListOrdersQueryHandler
	GetBranchSummary queries.GetBranchSummaryQueryHandler
	GetActor         queries.GetActorQueryHandler
	ListActors       queries.ListActorsQueryHandler
}

func NewServer(h Handlers) *Server {
	return &Server{
		createOrderHandler:      h.CreateOrder,
		advanceOrderHandler:     h.AdvanceOrder,
		assignDeliveryHandler:   h.AssignDelivery,
		cancelOrderHandler:      h.CancelOrder,
		deleteOrderHandler:      h.DeleteOrder,
		createActorHandler:      h.CreateActor,
		deleteActorHandler:      h.DeleteActor,
		updateActorHandler:      h.UpdateActor,
		getOrderHandler:         h.GetOrder,
		listOrdersHandler:       h.ListOrders,
		getBranchSummaryHandler: h.GetBranchSummary,
		getActorHandler:         h.GetActor,
		listActorsHandler:       h.ListActors,
	}
}

var _ servers.ServerInterface = (*Server)(nil)

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	branchID, err := kernel.UUIDPtrFrom(params.BranchId)
	if err != nil {
		return err
	}

	var status *order.Status
	if params.Status != nil {
		parsed, parseErr := order.ParseStatus(string(*params.Status))
		if parseErr != nil {
			return parseErr
		}
		status = &parsed
	}

	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListOrdersQuery(requesterID(ctx), branchID, status, limit)
	if err != nil {
		return err
	}

	views, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Order, len(views))
	for i, view := range views {
		response[i] = toOrder(view)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	branchID, err := kernel.UUIDFrom(body.BranchId)
	if err != nil {
		return err
	}
	customerID, err := kernel.UUIDPtrFrom(body.CustomerId)
	if err != nil {
		return err
	}
	items, err := toItems(body.Items)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), requesterID(ctx), branchID, customerID, items)
	if err != nil {
		return err
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{
		Id:     cmd.OrderID().Raw(),
		Number: created.Number,
		Total:  created.Total,
		Status: servers.Status(created.Status.String()),
	})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFrom(orderId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID, requesterID(ctx))
	if err != nil {
		return err
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toOrderDetails(found))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFrom(orderId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID, requesterID(ctx))
	if err != nil {
		return err
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceOrder handles POST /api/v1/orders/{orderId}/advance. A READY order
// answers 202 with the delivery staff to pick from.
func (s *Server) AdvanceOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFrom(orderId)
	if err != nil {
		return err
	}

	body, err := bindTransition(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, requesterID(ctx), notes(body.Notes))
	if err != nil {
		return err
	}

	result, err := s.advanceOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	code := http.StatusOK
	if result.Outcome() == lifecycle.NeedsDeliveryAssignment {
		code = http.StatusAccepted
	}
	return ctx.JSON(code, toAdvanceResult(result))
}

// AssignDelivery handles POST /api/v1/orders/{orderId}/assign-delivery.
func (s *Server) AssignDelivery(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFrom(orderId)
	if err != nil {
		return err
	}

	var body servers.AssignDeliveryJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	staffID, err := kernel.UUIDFrom(body.StaffId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignDeliveryCommand(orderID, requesterID(ctx), staffID, notes(body.Notes))
	if err != nil {
		return err
	}

	result, err := s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toAdvanceResult(result))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := kernel.UUIDFrom(orderId)
	if err != nil {
		return err
	}

	body, err := bindTransition(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, requesterID(ctx), notes(body.Notes))
	if err != nil {
		return err
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListActors handles GET /api/v1/actors.
func (s *Server) ListActors(ctx echo.Context, params servers.ListActorsParams) error {
	var role *actor.Role
	if params.Role != nil {
		parsed, err := actor.ParseRole(string(*params.Role))
		if err != nil {
			return err
		}
		role = &parsed
	}

	branchID, err := kernel.UUIDPtrFrom(params.BranchId)
	if err != nil {
		return err
	}

	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListActorsQuery(requesterID(ctx), role, branchID, limit)
	if err != nil {
		return err
	}

	views, err := s.listActorsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]servers.Actor, len(views))
	for i, view := range views {
		response[i] = toActorView(view)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetActor handles GET /api/v1/actors/{actorId}.
func (s *Server) GetActor(ctx echo.Context, actorId openapi_types.UUID) error {
	targetID, err := kernel.UUIDFrom(actorId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetActorQuery(targetID, requesterID(ctx))
	if err != nil {
		return err
	}

	view, err := s.getActorHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toActorView(view))
}

// UpdateActor handles PATCH /api/v1/actors/{actorId}.
func (s *Server) UpdateActor(ctx echo.Context, actorId openapi_types.UUID) error {
	var body servers.UpdateActorJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	targetID, err := kernel.UUIDFrom(actorId)
	if err != nil {
		return err
	}

	var role *actor.Role
	if body.Role != nil {
		parsed, parseErr := actor.ParseRole(string(*body.Role))
		if parseErr != nil {
			return parseErr
		}
		role = &parsed
	}

	branchID, err := kernel.UUIDPtrFrom(body.BranchId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateActorCommand(targetID, requesterID(ctx), body.Name, role, branchID)
	if err != nil {
		return err
	}

	updated, err := s.updateActorHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toActor(updated))
}

// CreateActor handles POST /api/v1/actors.
func (s *Server) CreateActor(ctx echo.Context) error {
	var body servers.CreateActorJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	role, err := actor.ParseRole(string(body.Role))
	if err != nil {
		return err
	}
	branchID, err := kernel.UUIDPtrFrom(body.BranchId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateActorCommand(kernel.NewUUID(), requesterID(ctx), body.Name, role, branchID)
	if err != nil {
		return err
	}

	created, err := s.createActorHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, toActor(created))
}

// DeleteActor handles DELETE /api/v1/actors/{actorId}.
func (s *Server) DeleteActor(ctx echo.Context, actorId openapi_types.UUID) error {
	actorID, err := kernel.UUIDFrom(actorId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteActorCommand(actorID, requesterID(ctx))
	if err != nil {
		return err
	}

	if err = s.deleteActorHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetBranchSummary handles GET /api/v1/branches/{branchId}/summary.
func (s *Server) GetBranchSummary(
	ctx echo.Context,
	branchId openapi_types.UUID,
	params servers.GetBranchSummaryParams,
) error {
	branchID, err := kernel.UUIDFrom(branchId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetBranchSummaryQuery(branchID, requesterID(ctx), deref(params.From), deref(params.To))
	if err != nil {
		return err
	}

	summary, err := s.getBranchSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toBranchSummary(summary))
}

// bindTransition accepts an empty body; notes are optional.
func bindTransition(ctx echo.Context) (servers.TransitionRequest, error) {
	var body servers.TransitionRequest
	if err := ctx.Bind(&body); err != nil {
		return body, echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return body, nil
}
