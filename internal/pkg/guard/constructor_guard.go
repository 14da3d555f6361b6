// Package guard provides a construction marker for value objects and
// entities. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable: only objects built through their constructor pass
// validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error, so validation always fails with a meaningful
// message for zero-value objects.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation; NewConstructorGuard produces a passing guard.
//
// Example usage:
//
//	var ErrRatingNotConstructed = errors.New("Rating must be created via NewRating")
//
//	type Rating struct {
//	    value int
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRating(value int) (Rating, error) {
//	    if value < 1 || value > 5 {
//	        return Rating{}, errors.New("rating must be between 1 and 5")
//	    }
//	    return Rating{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r Rating) Validate() error {
//	    return r.guard.Validate(ErrRatingNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its holder as properly
// constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns notConstructedErr, or ErrDefaultConstructorGuard when the caller
// passes nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructedErr
}
