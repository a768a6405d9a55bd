// Package kernel provides the value objects shared across the sale weight domain:
//   - UUID: identifier of products and sales
//   - Weight: a non-negative shipping weight, rounded up to whole carrier units
//     and displayed with two decimal digits
//
// Both are immutable and safe for concurrent use.
package kernel
