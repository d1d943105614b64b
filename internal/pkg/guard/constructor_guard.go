// Package guard holds ConstructorGuard, a marker that distinguishes values
// built by their constructor from zero values.
package guard

import "errors"

// ErrNotConstructed is returned by Validate when no specific error is given.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in aggregates, value objects and commands.
// Its zero value fails Validate.
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrNotConstructed when nil) unless the
// guard came from NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrNotConstructed
	}
	return validationError
}
