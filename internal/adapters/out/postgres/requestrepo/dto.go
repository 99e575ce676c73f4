// Package requestrepo provides data transfer objects and mapping functions
// for storage request persistence. It implements the repository pattern for
// the request aggregate, handling the conversion between domain entities and
// database representations.
package requestrepo

import (
	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting storage
// request aggregates.
type RequestDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyName       string    `gorm:"not null"`
	ContactName       string    `gorm:"not null"`
	ContactPhone      string
	EstimatedQuantity QuantityDTO `gorm:"embedded;embeddedPrefix:estimated_"`
	Status            int         `gorm:"index"`
}

// TableName specifies the database table name for request entities.
func (RequestDTO) TableName() string {
	return "storage_requests"
}

// QuantityDTO represents an embedded pipe quantity measurement.
type QuantityDTO struct {
	Joints    int
	LengthFt  float64
	WeightLbs float64
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

// fromDomain converts a request domain aggregate to its database
// representation.
func fromDomain(req *request.StorageRequest) RequestDTO {
	return RequestDTO{
		ID:                req.ID().Bytes(),
		CompanyName:       req.CompanyName(),
		ContactName:       req.ContactName(),
		ContactPhone:      req.ContactPhone(),
		EstimatedQuantity: quantityFromDomain(req.EstimatedQuantity()),
		Status:            int(req.Status()),
	}
}

// toDomain converts a database DTO to a request domain aggregate.
func toDomain(dto RequestDTO) (*request.StorageRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	estimated, err := quantityToDomain(dto.EstimatedQuantity)
	if err != nil {
		return nil, err
	}

	return request.RestoreStorageRequest(
		id,
		dto.CompanyName,
		dto.ContactName,
		dto.ContactPhone,
		estimated,
		request.Status(dto.Status),
	)
}
