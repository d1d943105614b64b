package commands

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

func orderEvent(o *order.Order, from order.Status, actorID kernel.UUID, notes string, at time.Time) ports.OrderEvent {
	event := ports.OrderEvent{
		OrderID:  o.ID().String(),
		Number:   o.Number(),
		BranchID: o.BranchID().String(),
		Status:   o.Status().String(),
		Color:    o.Status().Color(),
		ActorID:  actorID.String(),
		Notes:    notes,
		At:       at.UTC().Format(time.RFC3339),
	}
	if from != order.Unknown {
		event.From = from.String()
	}
	if staff := o.DeliveryStaffID(); staff != nil {
		id := staff.String()
		event.DeliveryStaffID = &id
	}
	return event
}

// persistTransition writes the new status of o and appends its history entry.
func persistTransition(
	ctx context.Context,
	repo ports.OrderRepository,
	o *order.Order,
	from order.Status,
	actorID kernel.UUID,
	notes string,
	at time.Time,
) error {
	if err := repo.Update(ctx, o); err != nil {
		return err
	}

	change, err := order.NewStatusChange(o.ID(), from, o.Status(), actorID, notes, at)
	if err != nil {
		return err
	}
	return repo.AddStatusChange(ctx, change)
}
