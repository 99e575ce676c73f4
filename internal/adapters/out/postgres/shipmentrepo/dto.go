// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment provisioning records: the shipment, its truck, and its dock
// appointment. Every statement is wrapped through pgerr so a missing
// scheduling schema surfaces as a SchemaMissingError the booking saga can
// degrade on.
package shipmentrepo

import (
	"time"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// records.
type ShipmentDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RequestID           uuid.UUID  `gorm:"type:uuid;index"`
	LoadID              *uuid.UUID `gorm:"type:uuid;index"`
	TruckingMethod      string     `gorm:"not null"`
	ContactName         string
	ContactPhone        string
	EstimatedQuantity   QuantityDTO `gorm:"embedded;embeddedPrefix:estimated_"`
	ScheduledFor        time.Time
	AfterHours          bool
	SurchargeApplicable bool
	SurchargeAmount     int
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// QuantityDTO represents an embedded pipe quantity measurement.
type QuantityDTO struct {
	Joints    int
	LengthFt  float64
	WeightLbs float64
}

// TruckDTO represents the database structure for persisting shipment
// truck records.
type TruckDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID  `gorm:"type:uuid;index"`
	LoadID      *uuid.UUID `gorm:"type:uuid;index"`
	CarrierName string     `gorm:"not null"`
	TruckNumber string
}

// TableName specifies the database table name for truck entities.
func (TruckDTO) TableName() string {
	return "shipment_trucks"
}

// AppointmentDTO represents the database structure for persisting dock
// appointments. The unique index on ShipmentID enforces one appointment
// per shipment.
type AppointmentDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ShipmentID  uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	LoadID      *uuid.UUID `gorm:"type:uuid;index"`
	ScheduledAt time.Time
	AfterHours  bool
	Status      int
}

// TableName specifies the database table name for appointment entities.
func (AppointmentDTO) TableName() string {
	return "dock_appointments"
}

func quantityFromDomain(q kernel.Quantity) QuantityDTO {
	return QuantityDTO{
		Joints:    q.Joints(),
		LengthFt:  q.LengthFt(),
		WeightLbs: q.WeightLbs(),
	}
}

func quantityToDomain(dto QuantityDTO) (kernel.Quantity, error) {
	return kernel.NewQuantity(dto.Joints, dto.LengthFt, dto.WeightLbs)
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func shipmentFromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:                  s.ID().Bytes(),
		RequestID:           s.RequestID().Bytes(),
		LoadID:              optionalUUID(s.LoadID()),
		TruckingMethod:      s.TruckingMethod(),
		ContactName:         s.ContactName(),
		ContactPhone:        s.ContactPhone(),
		EstimatedQuantity:   quantityFromDomain(s.EstimatedQuantity()),
		ScheduledFor:        s.ScheduledFor(),
		AfterHours:          s.AfterHours(),
		SurchargeApplicable: s.SurchargeApplicable(),
		SurchargeAmount:     s.SurchargeAmount(),
	}
}

func truckFromDomain(t *shipment.ShipmentTruck) TruckDTO {
	return TruckDTO{
		ID:          t.ID().Bytes(),
		ShipmentID:  t.ShipmentID().Bytes(),
		LoadID:      optionalUUID(t.LoadID()),
		CarrierName: t.CarrierName(),
		TruckNumber: t.TruckNumber(),
	}
}

func appointmentFromDomain(a *shipment.DockAppointment) AppointmentDTO {
	return AppointmentDTO{
		ID:          a.ID().Bytes(),
		ShipmentID:  a.ShipmentID().Bytes(),
		LoadID:      optionalUUID(a.LoadID()),
		ScheduledAt: a.ScheduledAt(),
		AfterHours:  a.AfterHours(),
		Status:      int(a.Status()),
	}
}

func appointmentToDomain(dto AppointmentDTO) (*shipment.DockAppointment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	var loadID *kernel.UUID
	if dto.LoadID != nil {
		lID, loadErr := kernel.UUIDFromBytes((*dto.LoadID)[:])
		if loadErr != nil {
			return nil, loadErr
		}
		loadID = &lID
	}

	return shipment.RestoreDockAppointment(
		id,
		shipmentID,
		loadID,
		dto.ScheduledAt,
		dto.AfterHours,
		shipment.AppointmentStatus(dto.Status),
	)
}
