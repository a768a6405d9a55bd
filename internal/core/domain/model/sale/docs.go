// Package sale provides the Sale aggregate and its lines, reduced to what a
// carrier needs to know: which product ships, in what quantity and unit, and
// the weight unit the sale reports its package weight in.
//
// Key business rules:
//   - A line may have no product (comment or section lines)
//   - A line with a product counts its quantity in a unit of the product's
//     default unit category
//   - Quantities may be zero or negative (returns); such lines do not ship
//   - A sale reports its package weight in a single weight unit
package sale
