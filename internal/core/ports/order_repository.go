// Package ports defines the contracts between the storefront core and its
// adapters: repositories, the unit of work and the event publisher.
package ports

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// ErrOrderNumberTaken is returned by OrderRepository.Add when another order
// of the same branch already holds the number.
var ErrOrderNumberTaken = errors.New("order number is already taken")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a newly placed order with its items.
	// Returns ErrOrderNumberTaken when the number collides within the branch.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable part of an order: status and delivery staff.
	// Both are written in one statement.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	// Concurrent commands on the same order serialize on it.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order together with its items and history.
	Delete(ctx context.Context, id kernel.UUID) error

	// NextNumber proposes the next human-readable number for the branch.
	NextNumber(ctx context.Context, branchID kernel.UUID) (string, error)

	// AddStatusChange appends an entry to the order's status history.
	AddStatusChange(ctx context.Context, change order.StatusChange) error
}
