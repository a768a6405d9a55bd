// Package guard detects value objects and entities that were created as zero
// values instead of through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in domain types whose zero value is invalid.
// Constructors set it with NewConstructorGuard; Validate reports whether that happened.
//
// Value objects such as uom.Unit and the application queries carry a guard so
// that a struct literal, or a zero value read from a map, fails as soon as it
// is used instead of flowing through the weight computation with empty fields.
//
// Example usage:
//
//	var ErrUnitIsNotConstructed = errors.New("Unit must be created via NewUnit")
//
//	type Unit struct {
//	    symbol string
//	    factor decimal.Decimal
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewUnit(symbol string, factor decimal.Decimal) (Unit, error) {
//	    if symbol == "" {
//	        return Unit{}, errs.NewValueIsRequiredError("symbol")
//	    }
//	    return Unit{symbol: symbol, factor: factor, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (u Unit) Validate() error {
//	    return u.guard.Validate(ErrUnitIsNotConstructed)
//	}
//
// Aggregates with pointer receivers (product.Product, sale.Sale) use a plain
// isConstructed flag instead, so a nil pointer can be reported as well.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing object as constructed. Call it only
// from the object's constructor, after every field passed validation.
//
//	return GetUnitQuery{symbol: symbol, guard: guard.NewConstructorGuard()}, nil
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
//
// Example:
//
//	func (q GetUnitQuery) Validate() error {
//	    return q.guard.Validate(ErrGetUnitQueryIsNotConstructed)
//	}
//
//	var q GetUnitQuery
//	err := q.Validate() // ErrGetUnitQueryIsNotConstructed
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
