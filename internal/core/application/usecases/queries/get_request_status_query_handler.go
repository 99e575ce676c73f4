package queries

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/load"
	"pipeyard/internal/core/domain/model/request"
	"pipeyard/internal/core/domain/services"
	"pipeyard/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRequestStatusQueryHandler builds the status projection straight from
// the database. It restores the aggregates and runs the domain services
// over them, so the read path reports exactly what the write path enforces.
type GetRequestStatusQueryHandler struct {
	db         *gorm.DB
	aggregator services.LogisticsAggregator
	calculator *services.WorkflowCalculator
}

// NewGetRequestStatusQueryHandler creates a handler for status projection queries.
// Requires a GORM database connection for query execution.
func NewGetRequestStatusQueryHandler(db *gorm.DB, logger *slog.Logger) GetRequestStatusQueryHandler {
	return GetRequestStatusQueryHandler{
		db:         db,
		aggregator: services.NewLogisticsAggregator(),
		calculator: services.NewWorkflowCalculator(logger),
	}
}

// Handle executes the query and returns the projection for the request.
// Returns ObjectNotFoundError when the request does not exist.
func (h GetRequestStatusQueryHandler) Handle(
	ctx context.Context,
	query GetRequestStatusQuery,
) (GetRequestStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRequestStatusQueryResponse{}, err
	}

	req, err := fetchRequest(ctx, h.db, query.RequestID())
	if err != nil {
		return GetRequestStatusQueryResponse{}, err
	}

	loads, err := fetchLoads(ctx, h.db, query.RequestID())
	if err != nil {
		return GetRequestStatusQueryResponse{}, err
	}

	inbound := h.aggregator.Progress(loads, load.Inbound, req.EstimatedQuantity())
	outbound := h.aggregator.Progress(loads, load.Outbound, req.EstimatedQuantity())

	inStorage := inbound.CompletedJoints - outbound.CompletedJoints
	if inStorage < 0 {
		inStorage = 0
	}

	workflow := h.calculator.Calculate(services.WorkflowInput{
		Request: req,
		Loads:   loads,
		Inventory: services.InventoryTotals{
			JointsInStorage: inStorage,
			JointsRemaining: inStorage,
		},
	})

	return GetRequestStatusQueryResponse{
		RequestID:       req.ID(),
		CompanyName:     req.CompanyName(),
		CustomerStatus:  h.aggregator.CustomerStatus(req, loads),
		Workflow:        workflow,
		Inbound:         inbound,
		Outbound:        outbound,
		JointsInStorage: inStorage,
	}, nil
}

// fetchRequest reads and restores one storage request aggregate.
func fetchRequest(ctx context.Context, db *gorm.DB, requestID kernel.UUID) (*request.StorageRequest, error) {
	row := db.WithContext(ctx).Raw(`
		SELECT
			id,
			company_name,
			contact_name,
			contact_phone,
			estimated_joints,
			estimated_length_ft,
			estimated_weight_lbs,
			status
		FROM storage_requests
		WHERE id = ?
	`, requestID.Bytes()).Row()

	var (
		id              uuid.UUID
		companyName     string
		contactName     string
		contactPhone    sql.NullString
		estimatedJoints int
		estimatedLength float64
		estimatedWeight float64
		status          int
	)
	err := row.Scan(&id, &companyName, &contactName, &contactPhone,
		&estimatedJoints, &estimatedLength, &estimatedWeight, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("storageRequest", requestID.String())
	}
	if err != nil {
		return nil, err
	}

	restoredID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	estimate, err := kernel.NewQuantity(estimatedJoints, estimatedLength, estimatedWeight)
	if err != nil {
		return nil, err
	}

	return request.RestoreStorageRequest(
		restoredID, companyName, contactName, contactPhone.String, estimate, request.Status(status))
}

// fetchLoads reads and restores the request's loads with their documents.
func fetchLoads(ctx context.Context, db *gorm.DB, requestID kernel.UUID) ([]*load.TruckingLoad, error) {
	documents, err := fetchDocumentsByLoad(ctx, db, requestID)
	if err != nil {
		return nil, err
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			direction,
			sequence_number,
			status,
			planned_joints,
			planned_length_ft,
			planned_weight_lbs,
			completed_joints,
			completed_length_ft,
			completed_weight_lbs
		FROM trucking_loads
		WHERE request_id = ?
		ORDER BY direction, sequence_number
	`, requestID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loads := make([]*load.TruckingLoad, 0)
	for rows.Next() {
		var (
			id              uuid.UUID
			direction       int
			sequenceNumber  int
			status          int
			plannedJoints   int
			plannedLength   float64
			plannedWeight   float64
			completedJoints int
			completedLength float64
			completedWeight float64
		)
		err = rows.Scan(&id, &direction, &sequenceNumber, &status,
			&plannedJoints, &plannedLength, &plannedWeight,
			&completedJoints, &completedLength, &completedWeight)
		if err != nil {
			return nil, err
		}

		loadID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		planned, qErr := kernel.NewQuantity(plannedJoints, plannedLength, plannedWeight)
		if qErr != nil {
			return nil, qErr
		}
		completed, qErr := kernel.NewQuantity(completedJoints, completedLength, completedWeight)
		if qErr != nil {
			return nil, qErr
		}

		restored, restErr := load.RestoreTruckingLoad(
			loadID,
			requestID,
			load.Direction(direction),
			sequenceNumber,
			load.Status(status),
			planned,
			completed,
			documents[loadID],
		)
		if restErr != nil {
			return nil, restErr
		}
		loads = append(loads, restored)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loads, nil
}

// fetchDocumentsByLoad reads the request's attached documents grouped by load.
// Unattached documents are skipped; they belong to no load yet.
func fetchDocumentsByLoad(
	ctx context.Context,
	db *gorm.DB,
	requestID kernel.UUID,
) (map[kernel.UUID][]*load.Document, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			load_id,
			path,
			kind,
			parsed_joints,
			parsed_length_ft,
			parsed_weight_lbs
		FROM load_documents
		WHERE request_id = ? AND load_id IS NOT NULL
	`, requestID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documents := make(map[kernel.UUID][]*load.Document)
	for rows.Next() {
		var (
			id           uuid.UUID
			loadID       uuid.UUID
			path         string
			kind         int
			parsedJoints sql.NullInt64
			parsedLength sql.NullFloat64
			parsedWeight sql.NullFloat64
		)
		err = rows.Scan(&id, &loadID, &path, &kind, &parsedJoints, &parsedLength, &parsedWeight)
		if err != nil {
			return nil, err
		}

		docID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		restoredLoadID, idErr := kernel.UUIDFromBytes(loadID[:])
		if idErr != nil {
			return nil, idErr
		}

		doc, docErr := load.NewDocument(docID, requestID, &restoredLoadID, path, load.DocumentKind(kind))
		if docErr != nil {
			return nil, docErr
		}

		if parsedJoints.Valid {
			parsed, qErr := kernel.NewQuantity(
				int(parsedJoints.Int64), parsedLength.Float64, parsedWeight.Float64)
			if qErr != nil {
				return nil, qErr
			}
			doc.SetParsedQuantity(parsed)
		}

		documents[restoredLoadID] = append(documents[restoredLoadID], doc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return documents, nil
}
