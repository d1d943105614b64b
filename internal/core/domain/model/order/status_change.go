package order

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// MaxNotesLength bounds the free-text note staff can attach to a transition.
const MaxNotesLength = 500

var ErrStatusChangeIsNotConstructed = errors.New("StatusChange must be created via NewStatusChange constructor")

// StatusChange is one entry of an order's append-only status history.
type StatusChange struct {
	orderID kernel.UUID
	from    Status
	to      Status
	actorID kernel.UUID
	notes   string
	at      time.Time

	guard.ConstructorGuard
}

func NewStatusChange(orderID kernel.UUID, from, to Status, actorID kernel.UUID, notes string, at time.Time) (StatusChange, error) {
	notes = strings.TrimSpace(notes)

	var errList []error
	if err := orderID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("orderID", err))
	}
	if err := actorID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("actorID", err))
	}
	if err := from.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := to.Validate(); err != nil {
		errList = append(errList, err)
	}
	if len(notes) > MaxNotesLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError("notes length", len(notes), 0, MaxNotesLength))
	}
	if err := errors.Join(errList...); err != nil {
		return StatusChange{}, err
	}

	return StatusChange{
		orderID:          orderID,
		from:             from,
		to:               to,
		actorID:          actorID,
		notes:            notes,
		at:               at.UTC(),
		ConstructorGuard: guard.NewConstructorGuard(),
	}, nil
}

func (c StatusChange) Validate() error {
	return c.ConstructorGuard.Validate(ErrStatusChangeIsNotConstructed)
}

func (c StatusChange) OrderID() kernel.UUID {
	return c.orderID
}

func (c StatusChange) From() Status {
	return c.from
}

func (c StatusChange) To() Status {
	return c.to
}

func (c StatusChange) ActorID() kernel.UUID {
	return c.actorID
}

func (c StatusChange) Notes() string {
	return c.notes
}

func (c StatusChange) At() time.Time {
	return c.at
}
