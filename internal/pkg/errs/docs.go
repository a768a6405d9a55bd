// Package errs provides the typed validation and lookup errors shared by the
// sale weight service.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - New...Error and New...ErrorWithCause constructors
//   - Unwrap returning the sentinel
//
// Domain packages define their own business errors (such as a product with no
// configured weight) on top of these.
package errs
