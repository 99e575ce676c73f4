package shipmentrepo

import (
	"context"
	"errors"

	"pipeyard/internal/adapters/out/postgres/pgerr"
	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/shipment"
	"pipeyard/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
//
// The scheduling schema is optional: yards that run without the
// provisioning tables get SchemaMissingError from every write, which
// the booking saga turns into a degraded booking.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// AddShipment saves a new shipment record.
func (r *GormShipmentRepository) AddShipment(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := shipmentFromDomain(aggregate)
	return pgerr.WrapSchemaMissing("shipments", r.db.WithContext(ctx).Create(&dto).Error)
}

// AddTruck saves a new shipment truck record.
func (r *GormShipmentRepository) AddTruck(ctx context.Context, truck *shipment.ShipmentTruck) error {
	if err := truck.Validate(); err != nil {
		return err
	}

	dto := truckFromDomain(truck)
	return pgerr.WrapSchemaMissing("shipment_trucks", r.db.WithContext(ctx).Create(&dto).Error)
}

// AddAppointment saves a new dock appointment. The unique index on
// shipment_id rejects a second appointment for the same shipment.
func (r *GormShipmentRepository) AddAppointment(ctx context.Context, appointment *shipment.DockAppointment) error {
	if err := appointment.Validate(); err != nil {
		return err
	}

	dto := appointmentFromDomain(appointment)
	return pgerr.WrapSchemaMissing("dock_appointments", r.db.WithContext(ctx).Create(&dto).Error)
}

// GetAppointmentByShipment retrieves the shipment's dock appointment.
func (r *GormShipmentRepository) GetAppointmentByShipment(
	ctx context.Context,
	shipmentID kernel.UUID,
) (*shipment.DockAppointment, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, err
	}

	var dto AppointmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "shipment_id = ?", shipmentID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dockAppointment", shipmentID.String())
		}
		return nil, pgerr.WrapSchemaMissing("dock_appointments", err)
	}

	return appointmentToDomain(dto)
}

// DeleteShipment removes a shipment record. Idempotent.
func (r *GormShipmentRepository) DeleteShipment(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return pgerr.WrapSchemaMissing("shipments",
		r.db.WithContext(ctx).Delete(&ShipmentDTO{}, "id = ?", id.Bytes()).Error)
}

// DeleteTruck removes a shipment truck record. Idempotent.
func (r *GormShipmentRepository) DeleteTruck(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return pgerr.WrapSchemaMissing("shipment_trucks",
		r.db.WithContext(ctx).Delete(&TruckDTO{}, "id = ?", id.Bytes()).Error)
}

// DeleteAppointment removes a dock appointment. Idempotent.
func (r *GormShipmentRepository) DeleteAppointment(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return pgerr.WrapSchemaMissing("dock_appointments",
		r.db.WithContext(ctx).Delete(&AppointmentDTO{}, "id = ?", id.Bytes()).Error)
}

// LinkShipmentToLoad stamps the load identifier onto the shipment record.
func (r *GormShipmentRepository) LinkShipmentToLoad(ctx context.Context, shipmentID kernel.UUID, loadID kernel.UUID) error {
	return r.link(ctx, &ShipmentDTO{}, "shipments", shipmentID, loadID)
}

// LinkTruckToLoad stamps the load identifier onto the truck record.
func (r *GormShipmentRepository) LinkTruckToLoad(ctx context.Context, truckID kernel.UUID, loadID kernel.UUID) error {
	return r.link(ctx, &TruckDTO{}, "shipment_trucks", truckID, loadID)
}

// LinkAppointmentToLoad stamps the load identifier onto the appointment.
func (r *GormShipmentRepository) LinkAppointmentToLoad(ctx context.Context, appointmentID kernel.UUID, loadID kernel.UUID) error {
	return r.link(ctx, &AppointmentDTO{}, "dock_appointments", appointmentID, loadID)
}

func (r *GormShipmentRepository) link(ctx context.Context, model any, relation string, id kernel.UUID, loadID kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := loadID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(model).
		Where("id = ?", id.Bytes()).
		Update("load_id", loadID.Bytes())
	if result.Error != nil {
		return pgerr.WrapSchemaMissing(relation, result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
