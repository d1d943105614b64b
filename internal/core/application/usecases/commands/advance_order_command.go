package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand asks to move an order one step forward on behalf of
// the requesting actor.
//
// Example:
//
//	cmd, err := NewAdvanceOrderCommand(orderID, actorID, "kitchen started")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	if result.Outcome() == lifecycle.NeedsDeliveryAssignment {
//	    // pick one of result.Candidates() and send AssignDeliveryCommand
//	}
type AdvanceOrderCommand struct {
	orderID kernel.UUID
	actorID kernel.UUID
	notes   string

	guard guard.ConstructorGuard
}

func NewAdvanceOrderCommand(orderID, actorID kernel.UUID, notes string) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		validateID("orderID", orderID),
		validateID("actorID", actorID),
		validateNotes(notes),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actorID = actorID
	cmd.notes = notes
	return cmd, nil
}

func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AdvanceOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c AdvanceOrderCommand) Notes() string {
	return c.notes
}

func validateID(name string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return nil
}

func validateNotes(notes string) error {
	if len(notes) > order.MaxNotesLength {
		return errs.NewValueIsOutOfRangeError("notes length", len(notes), 0, order.MaxNotesLength)
	}
	return nil
}
