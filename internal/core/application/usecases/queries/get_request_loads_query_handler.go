package queries

import (
	"context"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/load"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRequestLoadsQueryHandler lists a request's scheduled loads from the
// database. Document counts come from a correlated subquery so the whole
// listing is a single round trip.
type GetRequestLoadsQueryHandler struct {
	db *gorm.DB
}

// NewGetRequestLoadsQueryHandler creates a handler for load listing queries.
// Requires a GORM database connection for query execution.
func NewGetRequestLoadsQueryHandler(db *gorm.DB) GetRequestLoadsQueryHandler {
	return GetRequestLoadsQueryHandler{db: db}
}

// Handle executes the query to list the request's loads.
// Returns inbound loads first, each direction ordered by sequence number.
// A request with no loads yields an empty slice, not an error.
func (h GetRequestLoadsQueryHandler) Handle(
	ctx context.Context,
	query GetRequestLoadsQuery,
) ([]GetRequestLoadsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loads := make([]GetRequestLoadsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.direction,
			l.sequence_number,
			l.status,
			l.planned_joints,
			l.completed_joints,
			(SELECT COUNT(*) FROM load_documents d WHERE d.load_id = l.id) AS document_count
		FROM trucking_loads l
		WHERE l.request_id = ?
		ORDER BY l.direction, l.sequence_number
	`, query.RequestID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id              uuid.UUID
			direction       int
			sequenceNumber  int
			status          int
			plannedJoints   int
			completedJoints int
			documentCount   int
		)
		err = rows.Scan(&id, &direction, &sequenceNumber, &status,
			&plannedJoints, &completedJoints, &documentCount)
		if err != nil {
			return nil, err
		}

		loadID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		loads = append(loads, GetRequestLoadsQueryResponse{
			ID:              loadID,
			Direction:       load.Direction(direction).String(),
			SequenceNumber:  sequenceNumber,
			Status:          load.Status(status).String(),
			PlannedJoints:   plannedJoints,
			CompletedJoints: completedJoints,
			DocumentCount:   documentCount,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loads, nil
}
