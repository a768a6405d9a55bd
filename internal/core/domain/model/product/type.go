package product

import (
	"fmt"
	"strings"

	"saleweight/internal/pkg/errs"
)

// Type classifies a product. Only goods and assets are shipped; services
// never carry weight.
type Type int

const (
	// UnknownType is the zero value and is never valid.
	UnknownType Type = iota

	Goods

	Assets

	Service
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		UnknownType: "unknown",
		Goods:       "goods",
		Assets:      "assets",
		Service:     "service",
	}
}

// ParseType maps "goods", "assets" or "service" (case-insensitive) to a Type.
func ParseType(s string) (Type, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for t, str := range getTypeStrings() {
		if t != UnknownType && str == normalized {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%q is not a valid product type", s))
}

func (t Type) Validate() error {
	if t == UnknownType {
		return errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%d is not a valid product type", t))
	}
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("type is invalid", fmt.Errorf("%d is not a valid product type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// IsService reports whether the product is an intangible service.
func (t Type) IsService() bool {
	return t == Service
}
