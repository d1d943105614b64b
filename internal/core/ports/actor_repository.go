package ports

import (
	"context"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
)

// ActorRepository defines the persistence contract for actors. It also serves
// as the staff directory of the lifecycle controller.
type ActorRepository interface {
	Add(ctx context.Context, aggregate *actor.Actor) error

	// Get returns an error wrapping errs.ErrObjectNotFound for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error)

	// Update overwrites name, role and branch of a stored actor.
	Update(ctx context.Context, aggregate *actor.Actor) error

	Delete(ctx context.Context, id kernel.UUID) error

	// GetDeliveryStaff lists the DELIVERY actors of a branch ordered by name.
	GetDeliveryStaff(ctx context.Context, branchID kernel.UUID) ([]*actor.Actor, error)
}
