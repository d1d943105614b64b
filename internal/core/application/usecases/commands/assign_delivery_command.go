package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand completes the READY -> OUT_FOR_DELIVERY step with
// the delivery staff member picked from the advance candidates.
type AssignDeliveryCommand struct {
	orderID kernel.UUID
	actorID kernel.UUID
	staffID kernel.UUID
	notes   string

	guard guard.ConstructorGuard
}

func NewAssignDeliveryCommand(orderID, actorID, staffID kernel.UUID, notes string) (AssignDeliveryCommand, error) {
	cmd := AssignDeliveryCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		validateID("orderID", orderID),
		validateID("actorID", actorID),
		validateID("deliveryStaffID", staffID),
		validateNotes(notes),
	); err != nil {
		return AssignDeliveryCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actorID = actorID
	cmd.staffID = staffID
	cmd.notes = notes
	return cmd, nil
}

func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

func (c AssignDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c AssignDeliveryCommand) StaffID() kernel.UUID {
	return c.staffID
}

func (c AssignDeliveryCommand) Notes() string {
	return c.notes
}
