// Package request provides the StorageRequest aggregate: one customer
// project asking the facility to store pipe.
//
// The package includes:
//   - StorageRequest: The aggregate root carrying customer identity, the
//     project-level quantity estimate and the review status
//   - Status: The review lifecycle Draft -> Pending -> Approved/Rejected,
//     with Approved -> Completed once all pipe has shipped back out
//
// Key business rules:
//   - A request must identify its company and contact
//   - Only Pending requests can be approved or rejected
//   - Rejected and Completed are terminal
//   - The logistics engine reads request status but never mutates it;
//     review is an explicit external action
package request
