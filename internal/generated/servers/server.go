// Package servers holds the API types and the echo glue for openapi.yaml.
// Handlers implement ServerInterface; the wrapper binds path and query
// parameters before calling them.
//
// The file follows the layout oapi-codegen emits for the echo server but is
// maintained by hand: a change to openapi.yaml is mirrored here, and
// TestRoutesMatchDocument fails when the two drift apart.
package servers

import (
	_ "embed"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "BearerAuth.Scopes"
)

// Defines values for AdvanceResultOutcome.
const (
	ADVANCED                AdvanceResultOutcome = "ADVANCED"
	NEEDSDELIVERYASSIGNMENT AdvanceResultOutcome = "NEEDS_DELIVERY_ASSIGNMENT"
)

// Defines values for Role.
const (
	BRANCHADMIN Role = "BRANCH_ADMIN"
	CASHIER     Role = "CASHIER"
	DELIVERY    Role = "DELIVERY"
	OWNER       Role = "OWNER"
	USER        Role = "USER"
)

// Defines values for Status.
const (
	CANCELLED      Status = "CANCELLED"
	COMPLETED      Status = "COMPLETED"
	CONFIRMED      Status = "CONFIRMED"
	DELIVERED      Status = "DELIVERED"
	DELIVERING     Status = "DELIVERING"
	OUTFORDELIVERY Status = "OUT_FOR_DELIVERY"
	PENDING        Status = "PENDING"
	PREPARING      Status = "PREPARING"
	READY          Status = "READY"
)

// Actor defines model for Actor.
type Actor struct {
	BranchId *openapi_types.UUID `json:"branchId,omitempty"`
	Id       openapi_types.UUID  `json:"id"`
	Name     string              `json:"name"`
	Role     Role                `json:"role"`
}

// ActorUpdate defines model for ActorUpdate.
type ActorUpdate struct {
	BranchId *openapi_types.UUID `json:"branchId,omitempty"`
	Name     *string             `json:"name,omitempty"`
	Role     *Role               `json:"role,omitempty"`
}

// AdvanceResult defines model for AdvanceResult.
type AdvanceResult struct {
	Candidates *[]Actor             `json:"candidates,omitempty"`
	From       Status               `json:"from"`
	Outcome    AdvanceResultOutcome `json:"outcome"`
	Status     Status               `json:"status"`
}

// AdvanceResultOutcome defines model for AdvanceResult.Outcome.
type AdvanceResultOutcome string

// AssignDeliveryRequest defines model for AssignDeliveryRequest.
type AssignDeliveryRequest struct {
	Notes   *string            `json:"notes,omitempty"`
	StaffId openapi_types.UUID `json:"staffId"`
}

// BranchSummary defines model for BranchSummary.
type BranchSummary struct {
	Active         int                `json:"active"`
	BranchId       openapi_types.UUID `json:"branchId"`
	CompletedSales string             `json:"completedSales"`
	Counts         map[string]int     `json:"counts"`
	From           *time.Time         `json:"from,omitempty"`
	GeneratedAt    time.Time          `json:"generatedAt"`
	To             *time.Time         `json:"to,omitempty"`
	Total          int                `json:"total"`
}

// CreatedOrder defines model for CreatedOrder.
type CreatedOrder struct {
	Id     openapi_types.UUID `json:"id"`
	Number string             `json:"number"`
	Status Status             `json:"status"`
	Total  string             `json:"total"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewActor defines model for NewActor.
type NewActor struct {
	BranchId *openapi_types.UUID `json:"branchId,omitempty"`
	Name     string              `json:"name"`
	Role     Role                `json:"role"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	BranchId openapi_types.UUID `json:"branchId"`

	// CustomerId Defaults to the caller.
	CustomerId *openapi_types.UUID `json:"customerId,omitempty"`
	Items      []NewOrderItem      `json:"items"`
}

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	AddonId   *openapi_types.UUID `json:"addonId,omitempty"`
	ProductId openapi_types.UUID  `json:"productId"`
	Quantity  int                 `json:"quantity"`
	UnitPrice string              `json:"unitPrice"`
}

// Order defines model for Order.
type Order struct {
	BranchId        openapi_types.UUID  `json:"branchId"`
	Color           string              `json:"color"`
	CreatedAt       time.Time           `json:"createdAt"`
	CustomerId      openapi_types.UUID  `json:"customerId"`
	DeliveryStaffId *openapi_types.UUID `json:"deliveryStaffId,omitempty"`
	Id              openapi_types.UUID  `json:"id"`
	Number          string              `json:"number"`
	Status          Status              `json:"status"`
	Total           string              `json:"total"`
}

// OrderDetails defines model for OrderDetails.
type OrderDetails struct {
	History []StatusChange `json:"history"`
	Items   []OrderItem    `json:"items"`
	Order   Order          `json:"order"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	AddonId   *openapi_types.UUID `json:"addonId,omitempty"`
	LineTotal string              `json:"lineTotal"`
	ProductId openapi_types.UUID  `json:"productId"`
	Quantity  int                 `json:"quantity"`
	UnitPrice string              `json:"unitPrice"`
}

// Role defines model for Role.
type Role string

// Status defines model for Status.
type Status string

// StatusChange defines model for StatusChange.
type StatusChange struct {
	ActorId openapi_types.UUID `json:"actorId"`
	At      time.Time          `json:"at"`
	From    Status             `json:"from"`
	Notes   *string            `json:"notes,omitempty"`
	To      Status             `json:"to"`
}

// TransitionRequest defines model for TransitionRequest.
type TransitionRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// ListActorsParams defines parameters for ListActors.
type ListActorsParams struct {
	Role     *Role               `form:"role,omitempty" json:"role,omitempty"`
	BranchId *openapi_types.UUID `form:"branchId,omitempty" json:"branchId,omitempty"`
	Limit    *int                `form:"limit,omitempty" json:"limit,omitempty"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	BranchId *openapi_types.UUID `form:"branchId,omitempty" json:"branchId,omitempty"`
	Status   *Status             `form:"status,omitempty" json:"status,omitempty"`
	Limit    *int                `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetBranchSummaryParams defines parameters for GetBranchSummary.
type GetBranchSummaryParams struct {
	From *time.Time `form:"from,omitempty" json:"from,omitempty"`
	To   *time.Time `form:"to,omitempty" json:"to,omitempty"`
}

// CreateActorJSONRequestBody defines body for CreateActor for application/json ContentType.
type CreateActorJSONRequestBody = NewActor

// UpdateActorJSONRequestBody defines body for UpdateActor for application/json ContentType.
type UpdateActorJSONRequestBody = ActorUpdate

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// AdvanceOrderJSONRequestBody defines body for AdvanceOrder for application/json ContentType.
type AdvanceOrderJSONRequestBody = TransitionRequest

// AssignDeliveryJSONRequestBody defines body for AssignDelivery for application/json ContentType.
type AssignDeliveryJSONRequestBody = AssignDeliveryRequest

// CancelOrderJSONRequestBody defines body for CancelOrder for application/json ContentType.
type CancelOrderJSONRequestBody = TransitionRequest

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Actors the caller may view, ordered by name.
	// (GET /actors)
	ListActors(ctx echo.Context, params ListActorsParams) error
	// Add a staff member or customer.
	// (POST /actors)
	CreateActor(ctx echo.Context) error
	// Remove an actor.
	// (DELETE /actors/{actorId})
	DeleteActor(ctx echo.Context, actorId openapi_types.UUID) error
	// One actor record.
	// (GET /actors/{actorId})
	GetActor(ctx echo.Context, actorId openapi_types.UUID) error
	// Rename an actor or change its role or branch.
	// (PATCH /actors/{actorId})
	UpdateActor(ctx echo.Context, actorId openapi_types.UUID) error
	// Count a branch's orders per status.
	// (GET /branches/{branchId}/summary)
	GetBranchSummary(ctx echo.Context, branchId openapi_types.UUID, params GetBranchSummaryParams) error
	// List the orders visible to the caller, newest first.
	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// Place an order.
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// Delete an order.
	// (DELETE /orders/{orderId})
	DeleteOrder(ctx echo.Context, orderId OrderId) error
	// Get an order with its items and status history.
	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error
	// Move the order to its next status.
	// (POST /orders/{orderId}/advance)
	AdvanceOrder(ctx echo.Context, orderId OrderId) error
	// Assign delivery staff to a READY order and send it out.
	// (POST /orders/{orderId}/assign-delivery)
	AssignDelivery(ctx echo.Context, orderId OrderId) error
	// Cancel an order that has not left the kitchen.
	// (POST /orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId OrderId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListActors converts echo context to params.
func (w *ServerInterfaceWrapper) ListActors(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	var params ListActorsParams
	if err := runtime.BindQueryParameter("form", true, false, "role", ctx.QueryParams(), &params.Role); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter role: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "branchId", ctx.QueryParams(), &params.BranchId); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter branchId: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.ListActors(ctx, params)
}

// CreateActor converts echo context to params.
func (w *ServerInterfaceWrapper) CreateActor(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.CreateActor(ctx)
}

// DeleteActor converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteActor(ctx echo.Context) error {
	var actorId openapi_types.UUID
	if err := bindPathUUID(ctx, "actorId", &actorId); err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.DeleteActor(ctx, actorId)
}

// GetActor converts echo context to params.
func (w *ServerInterfaceWrapper) GetActor(ctx echo.Context) error {
	var actorId openapi_types.UUID
	if err := bindPathUUID(ctx, "actorId", &actorId); err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.GetActor(ctx, actorId)
}

// UpdateActor converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateActor(ctx echo.Context) error {
	var actorId openapi_types.UUID
	if err := bindPathUUID(ctx, "actorId", &actorId); err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.UpdateActor(ctx, actorId)
}

// GetBranchSummary converts echo context to params.
func (w *ServerInterfaceWrapper) GetBranchSummary(ctx echo.Context) error {
	var branchId openapi_types.UUID
	if err := bindPathUUID(ctx, "branchId", &branchId); err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	var params GetBranchSummaryParams
	if err := runtime.BindQueryParameter("form", true, false, "from", ctx.QueryParams(), &params.From); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter from: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "to", ctx.QueryParams(), &params.To); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter to: %s", err))
	}

	return w.Handler.GetBranchSummary(ctx, branchId, params)
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	var params ListOrdersParams
	if err := runtime.BindQueryParameter("form", true, false, "branchId", ctx.QueryParams(), &params.BranchId); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter branchId: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.CreateOrder(ctx)
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	var orderId OrderId
	if err := bindPathUUID(ctx, "orderId", &orderId); err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.DeleteOrder(ctx, orderId)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var orderId OrderId
	if err := bindPathUUID(ctx, "orderId", &orderId); err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.GetOrder(ctx, orderId)
}

// AdvanceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) AdvanceOrder(ctx echo.Context) error {
	var orderId OrderId
	if err := bindPathUUID(ctx, "orderId", &orderId); err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.AdvanceOrder(ctx, orderId)
}

// AssignDelivery converts echo context to params.
func (w *ServerInterfaceWrapper) AssignDelivery(ctx echo.Context) error {
	var orderId OrderId
	if err := bindPathUUID(ctx, "orderId", &orderId); err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.AssignDelivery(ctx, orderId)
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	var orderId OrderId
	if err := bindPathUUID(ctx, "orderId", &orderId); err != nil {
		return err
	}

	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.CancelOrder(ctx, orderId)
}

func bindPathUUID(ctx echo.Context, name string, dest *openapi_types.UUID) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group the handlers are
// registered on.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the handlers under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/actors", wrapper.ListActors)
	router.POST(baseURL+"/actors", wrapper.CreateActor)
	router.DELETE(baseURL+"/actors/:actorId", wrapper.DeleteActor)
	router.GET(baseURL+"/actors/:actorId", wrapper.GetActor)
	router.PATCH(baseURL+"/actors/:actorId", wrapper.UpdateActor)
	router.GET(baseURL+"/branches/:branchId/summary", wrapper.GetBranchSummary)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.DELETE(baseURL+"/orders/:orderId", wrapper.DeleteOrder)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/orders/:orderId/advance", wrapper.AdvanceOrder)
	router.POST(baseURL+"/orders/:orderId/assign-delivery", wrapper.AssignDelivery)
	router.POST(baseURL+"/orders/:orderId/cancel", wrapper.CancelOrder)
}

//go:embed openapi.yaml
var openAPIDocument []byte

var (
	swaggerOnce sync.Once
	swagger     *openapi3.T
	swaggerErr  error
)

// GetSwagger returns the parsed and validated OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	swaggerOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(openAPIDocument)
		if err != nil {
			swaggerErr = fmt.Errorf("error loading openapi document: %w", err)
			return
		}
		if err = doc.Validate(loader.Context); err != nil {
			swaggerErr = fmt.Errorf("error validating openapi document: %w", err)
			return
		}
		swagger = doc
	})
	return swagger, swaggerErr
}
