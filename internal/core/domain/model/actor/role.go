package actor

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// Role is the authorization role of an actor.
type Role int

const (
	UnknownRole Role = iota
	Owner
	BranchAdmin
	Cashier
	Delivery
	User
)

var roleStrings = map[Role]string{
	Owner:       "OWNER",
	BranchAdmin: "BRANCH_ADMIN",
	Cashier:     "CASHIER",
	Delivery:    "DELIVERY",
	User:        "USER",
}

// AllRoles returns the valid roles, most privileged first.
func AllRoles() []Role {
	return []Role{Owner, BranchAdmin, Cashier, Delivery, User}
}

func ParseRole(s string) (Role, error) {
	needle := strings.ToUpper(strings.TrimSpace(s))
	for role, str := range roleStrings {
		if str == needle {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) Validate() error {
	if _, ok := roleStrings[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := roleStrings[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// IsStaff reports whether the role belongs to a single branch.
// BRANCH_ADMIN, CASHIER and DELIVERY are staff; OWNER and USER are not.
func (r Role) IsStaff() bool {
	return r == BranchAdmin || r == Cashier || r == Delivery
}
