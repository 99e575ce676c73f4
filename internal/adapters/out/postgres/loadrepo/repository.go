package loadrepo

import (
	"context"
	"errors"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/load"
	"pipeyard/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLoadRepository implements LoadRepository using GORM.
type GormLoadRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLoadRepository creates a new GORM load repository.
func NewGormLoadRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadRepository {
	return &GormLoadRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new trucking load to the database. The unique slot index
// rejects the insert when the sequence number is already taken.
func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.TruckingLoad) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing trucking load to the database.
func (r *GormLoadRepository) Update(ctx context.Context, aggregate *load.TruckingLoad) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LoadDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a trucking load by ID with its documents.
func (r *GormLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.TruckingLoad, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("truckingLoad", id.String())
		}
		return nil, err
	}

	var docs []DocumentDTO
	if err := r.db.WithContext(ctx).Find(&docs, "load_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, docs)
}

// GetByRequest retrieves all loads for a request, both directions,
// ordered by direction then sequence number.
func (r *GormLoadRepository) GetByRequest(ctx context.Context, requestID kernel.UUID) ([]*load.TruckingLoad, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LoadDTO
	err := r.db.WithContext(ctx).
		Order("direction, sequence_number").
		Find(&dtos, "request_id = ?", requestID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	var docs []DocumentDTO
	if err = r.db.WithContext(ctx).Find(&docs, "request_id = ?", requestID.Bytes()).Error; err != nil {
		return nil, err
	}

	docsByLoad := make(map[uuid.UUID][]DocumentDTO, len(dtos))
	for _, doc := range docs {
		if doc.LoadID == nil {
			continue
		}
		docsByLoad[*doc.LoadID] = append(docsByLoad[*doc.LoadID], doc)
	}

	loads := make([]*load.TruckingLoad, 0, len(dtos))
	for _, dto := range dtos {
		ld, convErr := toDomain(dto, docsByLoad[dto.ID])
		if convErr != nil {
			return nil, convErr
		}
		loads = append(loads, ld)
	}

	return loads, nil
}

// NextSequence returns max(sequence)+1 for the request and direction.
func (r *GormLoadRepository) NextSequence(ctx context.Context, requestID kernel.UUID, direction load.Direction) (int, error) {
	if err := requestID.Validate(); err != nil {
		return 0, err
	}

	var next int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(sequence_number), 0) + 1
		FROM trucking_loads
		WHERE request_id = ? AND direction = ?
	`, requestID.Bytes(), int(direction)).Scan(&next).Error
	if err != nil {
		return 0, err
	}

	return next, nil
}

// ExistsAtSequence reports whether a load occupies the sequence slot.
func (r *GormLoadRepository) ExistsAtSequence(
	ctx context.Context,
	requestID kernel.UUID,
	direction load.Direction,
	sequence int,
) (bool, error) {
	if err := requestID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&LoadDTO{}).
		Where("request_id = ? AND direction = ? AND sequence_number = ?", requestID.Bytes(), int(direction), sequence).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// AddDocument saves a new document record.
func (r *GormLoadRepository) AddDocument(ctx context.Context, doc *load.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	dto := documentFromDomain(doc)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateDocument saves changes to an existing document record.
func (r *GormLoadRepository) UpdateDocument(ctx context.Context, doc *load.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	dto := documentFromDomain(doc)
	result := r.db.WithContext(ctx).Model(&DocumentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// GetUnparsedDocuments retrieves manifests that have no parsed quantity
// yet, across all requests.
func (r *GormLoadRepository) GetUnparsedDocuments(ctx context.Context) ([]*load.Document, error) {
	var dtos []DocumentDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "kind = ? AND parsed_joints IS NULL", int(load.Manifest)).Error
	if err != nil {
		return nil, err
	}

	docs := make([]*load.Document, 0, len(dtos))
	for _, dto := range dtos {
		doc, convErr := documentToDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// AttachPendingDocuments links the request's unattached documents to the
// load and returns how many were linked.
func (r *GormLoadRepository) AttachPendingDocuments(
	ctx context.Context,
	requestID kernel.UUID,
	loadID kernel.UUID,
) (int, error) {
	if err := requestID.Validate(); err != nil {
		return 0, err
	}
	if err := loadID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Model(&DocumentDTO{}).
		Where("request_id = ? AND load_id IS NULL", requestID.Bytes()).
		Update("load_id", loadID.Bytes())
	if result.Error != nil {
		return 0, result.Error
	}

	return int(result.RowsAffected), nil
}
