package actor

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const MaxNameLength = 100

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is anyone who acts on the storefront: the owner, branch staff or a
// customer. Staff roles are bound to exactly one branch; OWNER and USER are
// bound to none.
type Actor struct {
	id       kernel.UUID
	name     string
	role     Role
	branchID *kernel.UUID

	guard.ConstructorGuard
}

// NewActor validates the role/branch pairing and returns the actor.
func NewActor(id kernel.UUID, name string, role Role, branchID *kernel.UUID) (*Actor, error) {
	a := &Actor{ConstructorGuard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setRole(role, branchID),
	); err != nil {
		return nil, err
	}
	return a, nil
}

// RestoreActor rebuilds an actor from storage with the same checks as NewActor.
func RestoreActor(id kernel.UUID, name string, role Role, branchID *kernel.UUID) (*Actor, error) {
	return NewActor(id, name, role, branchID)
}

// Amend returns a copy of the actor with the given fields replaced; nil keeps
// the current value. A staff role keeps the current branch unless another is
// given, and a branchless role drops it. The pairing rules of NewActor apply.
func (a *Actor) Amend(name *string, role *Role, branchID *kernel.UUID) (*Actor, error) {
	newName, newRole := a.name, a.role
	if name != nil {
		newName = *name
	}
	if role != nil {
		newRole = *role
	}

	newBranch := branchID
	if newBranch == nil && newRole.IsStaff() {
		newBranch = a.branchID
	}
	return NewActor(a.id, newName, newRole, newBranch)
}

func (a *Actor) Validate() error {
	if a == nil {
		return ErrActorIsNotConstructed
	}
	return a.ConstructorGuard.Validate(ErrActorIsNotConstructed)
}

func (a *Actor) ID() kernel.UUID {
	return a.id
}

func (a *Actor) Name() string {
	return a.name
}

func (a *Actor) Role() Role {
	return a.role
}

// BranchID is set for staff roles only.
func (a *Actor) BranchID() *kernel.UUID {
	return a.branchID
}

// BelongsTo reports whether the actor is staff of the given branch.
func (a *Actor) BelongsTo(branchID kernel.UUID) bool {
	return a.branchID != nil && a.branchID.IsEqual(branchID)
}

func (a *Actor) IsEqual(other *Actor) bool {
	return other != nil && a.id.IsEqual(other.id)
}

func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Actor) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if len(name) > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", len(name), 1, MaxNameLength)
	}
	a.name = name
	return nil
}

func (a *Actor) setRole(role Role, branchID *kernel.UUID) error {
	if err := role.Validate(); err != nil {
		return err
	}

	switch {
	case role.IsStaff() && branchID == nil:
		return errs.NewValueIsRequiredErrorWithCause(
			"branchID",
			fmt.Errorf("%s must belong to a branch", role),
		)
	case !role.IsStaff() && branchID != nil:
		return errs.NewValueIsInvalidErrorWithCause(
			"branchID",
			fmt.Errorf("%s cannot belong to a branch", role),
		)
	}

	if branchID != nil {
		if err := branchID.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("branchID", err)
		}
		branch := *branchID
		a.branchID = &branch
	}

	a.role = role
	return nil
}
