package uom

import (
	"fmt"

	"saleweight/internal/pkg/errs"
)

// Category groups units that can be converted into one another.
type Category string

const (
	CategoryUnit   Category = "unit"
	CategoryWeight Category = "weight"
	CategoryLength Category = "length"
	CategoryVolume Category = "volume"
)

func getValidCategories() map[Category]struct{} {
	return map[Category]struct{}{
		CategoryUnit:   {},
		CategoryWeight: {},
		CategoryLength: {},
		CategoryVolume: {},
	}
}

func (c Category) Validate() error {
	if _, ok := getValidCategories()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid", fmt.Errorf("%q is not a valid category", string(c)))
	}
	return nil
}

func (c Category) String() string {
	return string(c)
}
