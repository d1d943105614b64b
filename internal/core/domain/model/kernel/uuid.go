package kernel

import (
	"fmt"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating the nil UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID or parsed from a valid value")

// UUID identifies orders, actors, branches and catalog items.
// The zero value is the nil UUID and does not validate.
type UUID struct {
	id uuid.UUID
}

// NewUUID returns a random (version 4) UUID.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses the textual form, e.g. "550e8400-e29b-41d4-a716-446655440000".
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("UUID", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from its 16-byte binary form. The nil UUID is rejected.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, errs.NewValueIsInvalidErrorWithCause("UUID", err)
	}

	result := UUID{id: id}
	if err = result.Validate(); err != nil {
		return UUID{}, err
	}
	return result, nil
}

// UUIDFrom wraps an already parsed google UUID, as stored by the persistence
// and transport layers.
func UUIDFrom(id uuid.UUID) (UUID, error) {
	result := UUID{id: id}
	if err := result.Validate(); err != nil {
		return UUID{}, err
	}
	return result, nil
}

// UUIDPtrFrom converts an optional column or field. A nil pointer stays nil.
func UUIDPtrFrom(id *uuid.UUID) (*UUID, error) {
	if id == nil {
		return nil, nil
	}
	result, err := UUIDFrom(*id)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (u UUID) String() string {
	return u.id.String()
}

// Raw exposes the underlying google UUID for adapters (gorm columns, JSON DTOs).
func (u UUID) Raw() uuid.UUID {
	return u.id
}

// RawPtr is Raw for optional references.
func RawPtr(u *UUID) *uuid.UUID {
	if u == nil {
		return nil
	}
	raw := u.id
	return &raw
}

func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// IsEqualPtr compares two optional references; two nils are equal.
func IsEqualPtr(a, b *UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.IsEqual(*b)
}

func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// MustUUID parses s and panics on failure. Intended for tests and seed data.
func MustUUID(s string) UUID {
	id, err := UUIDFromString(s)
	if err != nil {
		panic(fmt.Sprintf("kernel: bad UUID %q: %v", s, err))
	}
	return id
}
