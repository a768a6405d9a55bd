// Package uom models units of measure and the conversion between them.
//
// Units belong to a category (unit, weight, length, volume) and carry a factor:
// the size of the unit expressed in the category's base unit. Converting
// between two units of the same category multiplies by the source factor and
// divides by the target factor, in exact decimal arithmetic. Units are
// compared by symbol: two units with the same symbol are the same unit.
package uom
