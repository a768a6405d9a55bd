package services

import (
	"errors"
	"fmt"
)

// ErrMissingWeight is the sentinel wrapped by every MissingWeightError.
var ErrMissingWeight = errors.New("weight is missing")

// MissingWeightError reports a physical product shipped in a positive quantity
// without a configured weight. It is a data-entry problem: retrying will not
// help until the product is fixed.
type MissingWeightError struct {
	ProductName string
}

// NewMissingWeightError reports the product by its display name.
func NewMissingWeightError(productName string) *MissingWeightError {
	return &MissingWeightError{ProductName: productName}
}

func (e *MissingWeightError) Error() string {
	return fmt.Sprintf("%s: product %s", ErrMissingWeight, e.ProductName)
}

func (e *MissingWeightError) Unwrap() error {
	return ErrMissingWeight
}

// Message is the text shown to the person who has to fix the product.
func (e *MissingWeightError) Message() string {
	return "Weight is missing on the product " + e.ProductName
}
