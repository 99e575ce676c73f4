// Package kernel provides shared value objects for the pipeyard domain.
//
// The package includes:
//   - UUID: An immutable identifier value object wrapping github.com/google/uuid
//   - Quantity: An amount of pipe (joints, length in feet, weight in pounds)
//     where missing figures are zero rather than errors
//
// Kernel types carry no behavior specific to any one aggregate; they exist
// so that requests, loads and shipments agree on identity and measurement.
package kernel
