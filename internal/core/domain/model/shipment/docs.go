// Package shipment provides the booking records that back a trucking
// load: the Shipment itself, the trucks hauling it and the dock slot
// reserved for it.
//
// The package includes:
//   - Shipment: The booking for one delivery or pickup event, carrying
//     trucking method, contact and estimate fields plus the after-hours
//     surcharge state
//   - ShipmentTruck: A single truck within a shipment (non-critical
//     metadata)
//   - DockAppointment: A reserved time window at the facility, Pending
//     until confirmed when booked after hours
//
// These records are written optimistically during provisioning, before
// the trucking load exists, and are cross-linked to the load once it
// commits. The load is the source of truth; everything here supports it.
package shipment
