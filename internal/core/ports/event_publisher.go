package ports

import (
	"storefront/internal/core/domain/model/kernel"
)

// Event types delivered to branch subscribers.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderDeleted       = "order.deleted"
	EventBranchSummary      = "branch.summary"
)

// EventPublisher fans out committed changes to everyone watching a branch.
// Publish must not block; events for slow subscribers may be dropped.
type EventPublisher interface {
	Publish(branchID kernel.UUID, eventType string, payload any)
}

// OrderEvent is the payload of the order.* events.
type OrderEvent struct {
	OrderID         string  `json:"orderId"`
	Number          string  `json:"number"`
	BranchID        string  `json:"branchId"`
	From            string  `json:"from,omitempty"`
	Status          string  `json:"status"`
	Color           string  `json:"color,omitempty"`
	DeliveryStaffID *string `json:"deliveryStaffId,omitempty"`
	ActorID         string  `json:"actorId"`
	Notes           string  `json:"notes,omitempty"`
	At              string  `json:"at"`
}

// BranchSummaryEvent is the payload of branch.summary.
type BranchSummaryEvent struct {
	BranchID       string         `json:"branchId"`
	Counts         map[string]int `json:"counts"`
	Active         int            `json:"active"`
	Total          int            `json:"total"`
	CompletedSales string         `json:"completedSales"`
	From           string         `json:"from"`
	To             string         `json:"to"`
	GeneratedAt    string         `json:"generatedAt"`
}
