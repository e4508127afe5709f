// Package guard marks value objects and commands as properly constructed:
// a zero-value struct fails Validate until it is created through its
// designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero values.
// Embed it in a struct and set it with NewConstructorGuard inside the
// constructor; Validate then rejects any instance created by direct struct
// initialization.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero-value
// instances it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
