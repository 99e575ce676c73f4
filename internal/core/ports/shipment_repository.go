package ports

import (
	"context"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// provisioning: the shipment record, its truck, and its dock appointment.
//
// Delete methods exist for saga compensation. They are idempotent:
// deleting a record that is already gone is not an error.
type ShipmentRepository interface {
	// AddShipment persists a new shipment record.
	AddShipment(ctx context.Context, aggregate *shipment.Shipment) error

	// AddTruck persists a new shipment truck record.
	AddTruck(ctx context.Context, truck *shipment.ShipmentTruck) error

	// AddAppointment persists a new dock appointment.
	// Fails when the shipment already has one.
	AddAppointment(ctx context.Context, appointment *shipment.DockAppointment) error

	// GetAppointmentByShipment retrieves the shipment's dock appointment.
	// Returns errs.ObjectNotFoundError when none exists.
	GetAppointmentByShipment(ctx context.Context, shipmentID kernel.UUID) (*shipment.DockAppointment, error)

	// DeleteShipment removes a shipment record.
	DeleteShipment(ctx context.Context, id kernel.UUID) error

	// DeleteTruck removes a shipment truck record.
	DeleteTruck(ctx context.Context, id kernel.UUID) error

	// DeleteAppointment removes a dock appointment.
	DeleteAppointment(ctx context.Context, id kernel.UUID) error

	// LinkShipmentToLoad stamps the created load's identifier onto the
	// shipment record.
	LinkShipmentToLoad(ctx context.Context, shipmentID kernel.UUID, loadID kernel.UUID) error

	// LinkTruckToLoad stamps the created load's identifier onto the truck
	// record.
	LinkTruckToLoad(ctx context.Context, truckID kernel.UUID, loadID kernel.UUID) error

	// LinkAppointmentToLoad stamps the created load's identifier onto the
	// dock appointment.
	LinkAppointmentToLoad(ctx context.Context, appointmentID kernel.UUID, loadID kernel.UUID) error
}
