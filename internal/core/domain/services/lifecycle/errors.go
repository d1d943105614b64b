package lifecycle

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/services/access"
)

var (
	ErrForbidden            = errors.New("action is forbidden")
	ErrAlreadyTerminal      = errors.New("order is in a terminal status")
	ErrNotCancellable       = errors.New("order can no longer be cancelled")
	ErrInvalidDeliveryStaff = errors.New("delivery staff is invalid for this order")
	ErrStaleOrderState      = errors.New("order status changed since it was read")
	ErrUnknownRoleOrScope   = errors.New("unknown role or scope")
)

// denied turns a negative access decision into an error.
func denied(act access.Action, d access.Decision) error {
	if d.Reason == access.ReasonUnknownRoleOrScope {
		return fmt.Errorf("%w: %s", ErrUnknownRoleOrScope, act)
	}
	return fmt.Errorf("%w: %s: %s", ErrForbidden, act, d.Reason)
}
