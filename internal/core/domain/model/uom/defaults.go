package uom

import "github.com/shopspring/decimal"

// Symbols of the units shipped with the service.
const (
	SymbolUnit       = "u"
	SymbolDozen      = "dozen"
	SymbolKilogram   = "kg"
	SymbolGram       = "g"
	SymbolMilligram  = "mg"
	SymbolTonne      = "t"
	SymbolPound      = "lb"
	SymbolOunce      = "oz"
	SymbolMeter      = "m"
	SymbolCentimeter = "cm"
	SymbolLiter      = "l"
)

// DefaultUnits returns the standard unit catalog. Factors are relative to the
// base unit of each category: u, kg, m and l.
func DefaultUnits() []Unit {
	return []Unit{
		mustUnit(SymbolUnit, "Unit", CategoryUnit, "1", "1"),
		mustUnit(SymbolDozen, "Dozen", CategoryUnit, "12", "1"),
		mustUnit(SymbolKilogram, "Kilogram", CategoryWeight, "1", "0.01"),
		mustUnit(SymbolGram, "Gram", CategoryWeight, "0.001", "1"),
		mustUnit(SymbolMilligram, "Milligram", CategoryWeight, "0.000001", "1"),
		mustUnit(SymbolTonne, "Tonne", CategoryWeight, "1000", "0.001"),
		mustUnit(SymbolPound, "Pound", CategoryWeight, "0.45359237", "0.01"),
		mustUnit(SymbolOunce, "Ounce", CategoryWeight, "0.028349523125", "0.01"),
		mustUnit(SymbolMeter, "Meter", CategoryLength, "1", "0.01"),
		mustUnit(SymbolCentimeter, "Centimeter", CategoryLength, "0.01", "1"),
		mustUnit(SymbolLiter, "Liter", CategoryVolume, "1", "0.01"),
	}
}

func mustUnit(symbol, name string, category Category, factor, rounding string) Unit {
	u, err := NewUnit(symbol, name, category, decimal.RequireFromString(factor), decimal.RequireFromString(rounding))
	if err != nil {
		panic(err)
	}
	return u
}
