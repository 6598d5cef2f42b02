// Package guard provides a defensive programming primitive that ensures
// value objects, commands, and queries are only created through their
// designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by Validate
// when a nil validation error is passed. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was created through its
// constructor or as a zero value. Embedding a ConstructorGuard in a struct
// and calling Validate before use prevents accidental use of uninitialized
// objects and keeps domain invariants intact.
//
// The guard maintains an internal flag that is only set when the object is
// created through NewConstructorGuard; any zero-value struct fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of the guarded object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was properly constructed.
// Returns nil for constructed objects. Zero-value guards return the
// provided validationError, or ErrDefaultConstructorGuard when it is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
