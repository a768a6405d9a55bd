// Package product provides the Product entity as seen by shipping: its type,
// the unit its quantities are counted in and, for physical goods, the weight
// of one default unit.
//
// Key business rules:
//   - Products must have an identifier, a name, a valid type and a default unit
//   - A weight, when configured, is non-negative and comes with a weight-category unit
//   - A weight of zero is treated as not configured
package product
