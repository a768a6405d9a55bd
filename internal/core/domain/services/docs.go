// Package services provides the domain services that weigh sales for carriers.
//
// The package includes:
//   - LineWeightCalculator: the shipping weight of a single sale line in a
//     carrier weight unit
//   - SaleWeightAggregator: the package weight of a whole sale, the sum of its
//     line weights in the sale's weight unit
//   - MissingWeightError: raised when a shipped product has no weight configured
//
// Both services are stateless and safe for concurrent use.
package services
