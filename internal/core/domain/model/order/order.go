package order

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when checking out an empty cart.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")
)

// Order is the aggregate root of the storefront's order lifecycle. It is
// placed by a customer against a single branch and then moved forward by
// branch staff until it is completed or cancelled.
//
// Order follows these invariants:
//   - id, number, branch and items never change after placement
//   - total is the sum of item line totals at placement time
//   - a delivery staff member is attached exactly when the order leaves READY,
//     in the same step that moves it to OUT_FOR_DELIVERY
//   - COMPLETED and CANCELLED accept no further transitions
type Order struct {
	id         kernel.UUID
	number     string
	branchID   kernel.UUID
	customerID kernel.UUID

	// deliveryStaffID is nil until the order is dispatched
	deliveryStaffID *kernel.UUID

	items     []Item
	total     kernel.Money
	status    Status
	createdAt time.Time

	guard.ConstructorGuard
}

// NewOrder places a new order in PENDING status.
//
// Parameters:
//   - id: unique identifier of the order
//   - number: human-readable order number, unique within the branch
//   - branchID: the branch that fulfils the order
//   - customerID: the actor who placed it
//   - items: at least one line item
//
// The total is computed from the items.
func NewOrder(id kernel.UUID, number string, branchID, customerID kernel.UUID, items []Item) (*Order, error) {
	o := &Order{
		status:           Pending,
		createdAt:        time.Now().UTC(),
		ConstructorGuard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setBranchID(branchID),
		o.setCustomerID(customerID),
		o.setItems(items, true),
	); err != nil {
		return nil, err
	}

	o.total = kernel.Zero()
	for _, item := range o.items {
		o.total = o.total.Add(item.LineTotal())
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage. Items may be empty for list
// projections that do not load them; the stored total is kept as is.
func RestoreOrder(
	id kernel.UUID,
	number string,
	branchID, customerID kernel.UUID,
	deliveryStaffID *kernel.UUID,
	items []Item,
	total kernel.Money,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:        createdAt,
		ConstructorGuard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setBranchID(branchID),
		o.setCustomerID(customerID),
		o.setItems(items, false),
		o.setTotal(total),
		o.setStatus(status, deliveryStaffID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.ConstructorGuard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() string {
	return o.number
}

func (o *Order) BranchID() kernel.UUID {
	return o.branchID
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DeliveryStaffID returns the assigned delivery staff member, nil before dispatch.
func (o *Order) DeliveryStaffID() *kernel.UUID {
	return o.deliveryStaffID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Advance moves the order one step along the forward path and returns the
// new status.
//
// It refuses:
//   - terminal orders (there is no next state)
//   - READY orders, which must go through AssignDelivery
func (o *Order) Advance() (Status, error) {
	next, ok := o.status.Next()
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s has no next status", o.status),
		)
	}
	if next == OutForDelivery {
		return Unknown, errs.NewValueIsRequiredErrorWithCause(
			"deliveryStaffID",
			fmt.Errorf("%s -> %s needs a delivery assignment", o.status, next),
		)
	}

	o.status = next
	return next, nil
}

// AssignDelivery attaches the delivery staff member and moves a READY order
// to OUT_FOR_DELIVERY. Either both fields change or neither does.
//
// Branch membership and role of the staff member are checked by the caller,
// which has access to the staff directory.
func (o *Order) AssignDelivery(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryStaffID", err)
	}
	if o.status != Ready {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign delivery", o.status),
		)
	}

	o.deliveryStaffID = &staffID
	o.status = OutForDelivery
	return nil
}

// Cancel moves the order to CANCELLED while it is still cancellable.
func (o *Order) Cancel() error {
	if !o.status.CanCancel() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", o.status),
		)
	}

	o.status = Cancelled
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}

func (o *Order) setBranchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("branchID", err)
	}
	o.branchID = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setItems(items []Item, required bool) error {
	if required && len(items) == 0 {
		return ErrOrderHasNoItems
	}

	var errList []error
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			errList = append(errList, fmt.Errorf("item %d: %w", idx, err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("total", err)
	}
	o.total = total
	return nil
}

func (o *Order) setStatus(status Status, deliveryStaffID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if deliveryStaffID != nil {
		if err := deliveryStaffID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("deliveryStaffID", err)
		}
	}
	if err := status.ValidateCanHaveDeliveryStaff(deliveryStaffID != nil); err != nil {
		return err
	}

	o.status = status
	if deliveryStaffID != nil {
		staff := *deliveryStaffID
		o.deliveryStaffID = &staff
	}
	return nil
}
