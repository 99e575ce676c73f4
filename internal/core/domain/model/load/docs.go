// Package load provides the TruckingLoad aggregate: one truck's movement
// of pipe into or out of the storage yard.
//
// The package includes:
//   - TruckingLoad: The aggregate root carrying direction, the
//     per-(request, direction) sequence number, planned and completed
//     quantities and the owned documents
//   - Status: The load lifecycle state machine with ValidateTransition
//   - Direction: Inbound (delivery into storage) or Outbound (pickup)
//   - Document: An uploaded file (manifest, proof of delivery) with an
//     optional parsed quantity payload
//
// Key business rules:
//   - Status follows New -> Approved -> InTransit -> Completed, with
//     New -> Rejected as the only other exit; Completed and Rejected are
//     terminal
//   - Sequence numbers are strictly positive, gapless ascending per
//     request and direction, and never reused
//   - Loads are created in the New status; approval is always an explicit
//     external action
package load
