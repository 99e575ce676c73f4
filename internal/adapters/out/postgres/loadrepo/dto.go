// Package loadrepo provides data transfer objects and mapping functions for
// trucking load persistence, including the load's documents. The unique index
// on (request, direction, sequence) is what makes sequence allocation safe
// under concurrent bookings: the second insert into the same slot fails.
package loadrepo

import (
	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/load"

	"github.com/google/uuid"
)

// LoadDTO represents the database structure for persisting trucking load
// aggregates.
type LoadDTO struct {
	ID                uuid.UUID   `gorm:"type:uuid;primaryKey"`
	RequestID         uuid.UUID   `gorm:"type:uuid;index;uniqueIndex:idx_load_slot"`
	Direction         int         `gorm:"uniqueIndex:idx_load_slot"`
	SequenceNumber    int         `gorm:"uniqueIndex:idx_load_slot"`
	Status            int         `gorm:"index"`
	PlannedQuantity   QuantityDTO `gorm:"embedded;embeddedPrefix:planned_"`
	CompletedQuantity QuantityDTO `gorm:"embedded;embeddedPrefix:completed_"`
}

// TableName specifies the database table name for load entities.
func (LoadDTO) TableName() string {
	return "trucking_loads"
}

// QuantityDTO represents an embedded pipe quantity measurement.
type QuantityDTO struct {
	Joints    int
	LengthFt  float64
	WeightLbs float64
}

// DocumentDTO represents the database structure for persisting load
// documents. LoadID is nullable: documents uploaded before the load is
// booked stay unattached until the booking saga claims them.
type DocumentDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RequestID       uuid.UUID  `gorm:"type:uuid;index"`
	LoadID          *uuid.UUID `gorm:"type:uuid;index"`
	Path            string     `gorm:"not null"`
	Kind            int
	ParsedJoints    *int
	ParsedLengthFt  *float64
	ParsedWeightLbs *float64
}

// TableName specifies the database table name for document entities.
func (DocumentDTO) TableName() string {
	return "load_documents"
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

// fromDomain converts a load domain aggregate to its database
// representation. Documents are persisted separately.
func fromDomain(ld *load.TruckingLoad) LoadDTO {
	return LoadDTO{
		ID:                ld.ID().Bytes(),
		RequestID:         ld.RequestID().Bytes(),
		Direction:         int(ld.Direction()),
		SequenceNumber:    ld.SequenceNumber(),
		Status:            int(ld.Status()),
		PlannedQuantity:   quantityFromDomain(ld.PlannedQuantity()),
		CompletedQuantity: quantityFromDomain(ld.CompletedQuantity()),
	}
}

// toDomain converts a database DTO and its documents to a load domain
// aggregate.
func toDomain(dto LoadDTO, docs []DocumentDTO) (*load.TruckingLoad, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	planned, err := quantityToDomain(dto.PlannedQuantity)
	if err != nil {
		return nil, err
	}

	completed, err := quantityToDomain(dto.CompletedQuantity)
	if err != nil {
		return nil, err
	}

	documents := make([]*load.Document, 0, len(docs))
	for _, docDTO := range docs {
		doc, docErr := documentToDomain(docDTO)
		if docErr != nil {
			return nil, docErr
		}
		documents = append(documents, doc)
	}

	return load.RestoreTruckingLoad(
		id,
		requestID,
		load.Direction(dto.Direction),
		dto.SequenceNumber,
		load.Status(dto.Status),
		planned,
		completed,
		documents,
	)
}

// documentFromDomain converts a document entity to its database
// representation.
func documentFromDomain(doc *load.Document) DocumentDTO {
	var loadID *uuid.UUID
	if id := doc.LoadID(); id != nil {
		raw := id.Bytes()
		loadID = &raw
	}

	dto := DocumentDTO{
		ID:        doc.ID().Bytes(),
		RequestID: doc.RequestID().Bytes(),
		LoadID:    loadID,
		Path:      doc.Path(),
		Kind:      int(doc.Kind()),
	}

	if q := doc.ParsedQuantity(); q != nil {
		joints := q.Joints()
		lengthFt := q.LengthFt()
		weightLbs := q.WeightLbs()
		dto.ParsedJoints = &joints
		dto.ParsedLengthFt = &lengthFt
		dto.ParsedWeightLbs = &weightLbs
	}

	return dto
}

// documentToDomain converts a database DTO to a document entity.
func documentToDomain(dto DocumentDTO) (*load.Document, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
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

	var parsed *kernel.Quantity
	if dto.ParsedJoints != nil {
		var lengthFt, weightLbs float64
		if dto.ParsedLengthFt != nil {
			lengthFt = *dto.ParsedLengthFt
		}
		if dto.ParsedWeightLbs != nil {
			weightLbs = *dto.ParsedWeightLbs
		}

		q, qErr := kernel.NewQuantity(*dto.ParsedJoints, lengthFt, weightLbs)
		if qErr != nil {
			return nil, qErr
		}
		parsed = &q
	}

	return load.RestoreDocument(
		id,
		requestID,
		loadID,
		dto.Path,
		load.DocumentKind(dto.Kind),
		parsed,
	)
}
