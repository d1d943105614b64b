package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/actor"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services/access"
	"storefront/internal/pkg/errs"
)

// StaffDirectory looks up actors. Get returns an error wrapping
// errs.ErrObjectNotFound for unknown ids.
type StaffDirectory interface {
	Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error)
	GetDeliveryStaff(ctx context.Context, branchID kernel.UUID) ([]*actor.Actor, error)
}

// Controller combines the access policy with the order status table. It
// mutates the order it is given; persisting the result is the caller's job.
type Controller struct {
	policy *access.Policy
}

func NewController(policy *access.Policy) (*Controller, error) {
	if policy == nil {
		return nil, errs.NewValueIsRequiredError("policy")
	}
	return &Controller{policy: policy}, nil
}

func (c *Controller) Policy() *access.Policy {
	return c.policy
}

// RequestAdvance moves o one step forward on behalf of a.
//
// When the next step is OUT_FOR_DELIVERY the order is left untouched and the
// result carries the branch's delivery staff to choose from; the caller then
// finishes with AssignDeliveryAndAdvance.
func (c *Controller) RequestAdvance(
	ctx context.Context,
	o *order.Order,
	a *actor.Actor,
	staff StaffDirectory,
) (AdvanceResult, error) {
	if err := c.authorize(o, a, access.Advance); err != nil {
		return AdvanceResult{}, err
	}

	from := o.Status()
	next, ok := from.Next()
	if !ok {
		return AdvanceResult{}, fmt.Errorf("%w: %s", ErrAlreadyTerminal, from)
	}

	if next == order.OutForDelivery {
		candidates, err := staff.GetDeliveryStaff(ctx, o.BranchID())
		if err != nil {
			return AdvanceResult{}, err
		}
		return needsAssignment(from, candidates), nil
	}

	if _, err := o.Advance(); err != nil {
		return AdvanceResult{}, err
	}
	return advanced(from, next), nil
}

// AssignDeliveryAndAdvance attaches staffID to a READY order and moves it to
// OUT_FOR_DELIVERY in one step.
func (c *Controller) AssignDeliveryAndAdvance(
	ctx context.Context,
	o *order.Order,
	a *actor.Actor,
	staff StaffDirectory,
	staffID kernel.UUID,
) (AdvanceResult, error) {
	if err := c.authorize(o, a, access.Advance); err != nil {
		return AdvanceResult{}, err
	}

	from := o.Status()
	if from != order.Ready {
		return AdvanceResult{}, fmt.Errorf("%w: expected %s, got %s", ErrStaleOrderState, order.Ready, from)
	}

	member, err := staff.Get(ctx, staffID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return AdvanceResult{}, fmt.Errorf("%w: %s not found", ErrInvalidDeliveryStaff, staffID)
		}
		return AdvanceResult{}, err
	}
	if member.Role() != actor.Delivery {
		return AdvanceResult{}, fmt.Errorf("%w: %s has role %s", ErrInvalidDeliveryStaff, staffID, member.Role())
	}
	if !member.BelongsTo(o.BranchID()) {
		return AdvanceResult{}, fmt.Errorf("%w: %s is not staff of branch %s", ErrInvalidDeliveryStaff, staffID, o.BranchID())
	}

	if err := o.AssignDelivery(member.ID()); err != nil {
		return AdvanceResult{}, err
	}
	return advanced(from, o.Status()), nil
}

// RequestCancel cancels o on behalf of a.
func (c *Controller) RequestCancel(o *order.Order, a *actor.Actor) error {
	if err := c.authorize(o, a, access.Cancel); err != nil {
		return err
	}

	if !o.Status().CanCancel() {
		return fmt.Errorf("%w: %s", ErrNotCancellable, o.Status())
	}
	return o.Cancel()
}

// Authorize checks a against the policy and turns a denial into
// ErrForbidden or ErrUnknownRoleOrScope.
func (c *Controller) Authorize(a *actor.Actor, r access.Resource, act access.Action) error {
	if d := c.policy.Evaluate(a, r, act); !d.Allowed {
		return denied(act, d)
	}
	return nil
}

func (c *Controller) authorize(o *order.Order, a *actor.Actor, act access.Action) error {
	return c.Authorize(a, access.OrderResource(o), act)
}
