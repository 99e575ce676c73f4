// Package services provides domain services that derive read models
// across multiple domain entities in the storage facility. It implements
// logic that spans a request and its trucking loads and therefore does
// not belong to a single aggregate root.
//
// The package includes:
//   - LogisticsAggregator: reduces a request's loads to per-direction
//     aggregate states and a customer-facing status label
//   - WorkflowCalculator: derives the facility workflow stage from a
//     request, its loads, and current inventory totals
//   - ProgressSummarizer: computes planned versus completed joint counts
//
// All services are pure derivations over in-memory aggregates; nothing
// here touches persistence.
package services
