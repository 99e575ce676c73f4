package services_test

import (
	"testing"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/load"
	"pipeyard/internal/core/domain/model/request"
	"pipeyard/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joints(t *testing.T, n int) kernel.Quantity {
	t.Helper()

	q, err := kernel.JointsQuantity(n)
	require.NoError(t, err)
	return q
}

func makeLoad(t *testing.T, requestID kernel.UUID, direction load.Direction, seq int, status load.Status) *load.TruckingLoad {
	t.Helper()

	ld, err := load.RestoreTruckingLoad(
		kernel.NewUUID(),
		requestID,
		direction,
		seq,
		status,
		joints(t, 100),
		kernel.Quantity{},
		nil,
	)
	require.NoError(t, err)
	return ld
}

func makeRequest(t *testing.T, status request.Status) *request.StorageRequest {
	t.Helper()

	req, err := request.RestoreStorageRequest(
		kernel.NewUUID(),
		"Permian Basin Tubulars",
		"Dale Hooper",
		"432-555-0147",
		joints(t, 400),
		status,
	)
	require.NoError(t, err)
	return req
}

func TestLogisticsAggregator_Reduce(t *testing.T) {
	aggregator := services.NewLogisticsAggregator()
	requestID := kernel.NewUUID()

	t.Run("should return None for no loads", func(t *testing.T) {
		state := aggregator.Reduce(nil, load.Inbound)
		assert.Equal(t, services.AggregateNone, state)
	})

	t.Run("should return Approved when loads are New and Approved", func(t *testing.T) {
		loads := []*load.TruckingLoad{
			makeLoad(t, requestID, load.Inbound, 1, load.New),
			makeLoad(t, requestID, load.Inbound, 2, load.Approved),
		}

		state := aggregator.Reduce(loads, load.Inbound)

		assert.Equal(t, services.AggregateApproved, state)
	})

	t.Run("should return InProgress when loads are InTransit and Completed", func(t *testing.T) {
		loads := []*load.TruckingLoad{
			makeLoad(t, requestID, load.Inbound, 1, load.InTransit),
			makeLoad(t, requestID, load.Inbound, 2, load.Completed),
		}

		state := aggregator.Reduce(loads, load.Inbound)

		assert.Equal(t, services.AggregateInProgress, state)
	})

	t.Run("should return Pending when only New loads exist", func(t *testing.T) {
		loads := []*load.TruckingLoad{
			makeLoad(t, requestID, load.Inbound, 1, load.New),
		}

		state := aggregator.Reduce(loads, load.Inbound)

		assert.Equal(t, services.AggregatePending, state)
	})

	t.Run("should return Completed when all non-rejected loads completed", func(t *testing.T) {
		loads := []*load.TruckingLoad{
			makeLoad(t, requestID, load.Inbound, 1, load.Completed),
			makeLoad(t, requestID, load.Inbound, 2, load.Rejected),
			makeLoad(t, requestID, load.Inbound, 3, load.Completed),
		}

		state := aggregator.Reduce(loads, load.Inbound)

		assert.Equal(t, services.AggregateCompleted, state)
	})

	t.Run("should return None when every load is rejected", func(t *testing.T) {
		loads := []*load.TruckingLoad{
			makeLoad(t, requestID, load.Inbound, 1, load.Rejected),
			makeLoad(t, requestID, load.Inbound, 2, load.Rejected),
		}

		state := aggregator.Reduce(loads, load.Inbound)

		assert.Equal(t, services.AggregateNone, state)
	})

	t.Run("should ignore loads of the other direction", func(t *testing.T) {
		loads := []*load.TruckingLoad{
			makeLoad(t, requestID, load.Outbound, 1, load.InTransit),
			makeLoad(t, requestID, load.Inbound, 1, load.New),
		}

		state := aggregator.Reduce(loads, load.Inbound)

		assert.Equal(t, services.AggregatePending, state)
	})

	t.Run("should ignore nil loads", func(t *testing.T) {
		loads := []*load.TruckingLoad{
			nil,
			makeLoad(t, requestID, load.Inbound, 1, load.Approved),
		}

		state := aggregator.Reduce(loads, load.Inbound)

		assert.Equal(t, services.AggregateApproved, state)
	})
}

func TestLogisticsAggregator_CustomerStatus(t *testing.T) {
	aggregator := services.NewLogisticsAggregator()
	requestID := kernel.NewUUID()

	t.Run("should prefer outbound over inbound", func(t *testing.T) {
		req := makeRequest(t, request.Approved)
		loads := []*load.TruckingLoad{
			makeLoad(t, requestID, load.Inbound, 1, load.Completed),
			makeLoad(t, requestID, load.Outbound, 1, load.InTransit),
		}

		status := aggregator.CustomerStatus(req, loads)

		assert.Equal(t, "Pickup Load #1 In Transit", status)
	})

	t.Run("should use latest sequence number in the label", func(t *testing.T) {
		req := makeRequest(t, request.Approved)
		loads := []*load.TruckingLoad{
			makeLoad(t, requestID, load.Inbound, 3, load.New),
			makeLoad(t, requestID, load.Inbound, 1, load.Completed),
			makeLoad(t, requestID, load.Inbound, 2, load.Completed),
		}

		status := aggregator.CustomerStatus(req, loads)

		assert.Equal(t, "Delivery Load #3 Scheduled", status)
	})

	t.Run("should report all deliveries complete", func(t *testing.T) {
		req := makeRequest(t, request.Approved)
		loads := []*load.TruckingLoad{
			makeLoad(t, requestID, load.Inbound, 1, load.Completed),
			makeLoad(t, requestID, load.Inbound, 2, load.Completed),
		}

		status := aggregator.CustomerStatus(req, loads)

		assert.Equal(t, "All Deliveries Complete", status)
	})

	t.Run("should report all pickups complete", func(t *testing.T) {
		req := makeRequest(t, request.Approved)
		loads := []*load.TruckingLoad{
			makeLoad(t, requestID, load.Inbound, 1, load.Completed),
			makeLoad(t, requestID, load.Outbound, 1, load.Completed),
		}

		status := aggregator.CustomerStatus(req, loads)

		assert.Equal(t, "All Pickups Complete", status)
	})

	t.Run("should fall back to request status when no loads exist", func(t *testing.T) {
		req := makeRequest(t, request.Pending)

		status := aggregator.CustomerStatus(req, nil)

		assert.Equal(t, "Pending Approval", status)
	})

	t.Run("should fall back to request status when all loads rejected", func(t *testing.T) {
		req := makeRequest(t, request.Approved)
		loads := []*load.TruckingLoad{
			makeLoad(t, requestID, load.Inbound, 1, load.Rejected),
		}

		status := aggregator.CustomerStatus(req, loads)

		assert.Equal(t, "Approved", status)
	})

	t.Run("should report unknown for nil request without loads", func(t *testing.T) {
		status := aggregator.CustomerStatus(nil, nil)

		assert.Equal(t, "Unknown", status)
	})
}

func TestLogisticsAggregator_LatestLoad(t *testing.T) {
	aggregator := services.NewLogisticsAggregator()
	requestID := kernel.NewUUID()

	t.Run("should return load with highest sequence", func(t *testing.T) {
		load1 := makeLoad(t, requestID, load.Inbound, 1, load.Completed)
		load2 := makeLoad(t, requestID, load.Inbound, 2, load.New)
		loads := []*load.TruckingLoad{load2, load1}

		latest := aggregator.LatestLoad(loads, load.Inbound)

		require.NotNil(t, latest)
		assert.Equal(t, 2, latest.SequenceNumber())
	})

	t.Run("should not reorder the input slice", func(t *testing.T) {
		load2 := makeLoad(t, requestID, load.Inbound, 2, load.New)
		load1 := makeLoad(t, requestID, load.Inbound, 1, load.Completed)
		loads := []*load.TruckingLoad{load2, load1}

		aggregator.LatestLoad(loads, load.Inbound)

		assert.Equal(t, 2, loads[0].SequenceNumber())
		assert.Equal(t, 1, loads[1].SequenceNumber())
	})

	t.Run("should return nil when direction has no loads", func(t *testing.T) {
		loads := []*load.TruckingLoad{
			makeLoad(t, requestID, load.Inbound, 1, load.New),
		}

		latest := aggregator.LatestLoad(loads, load.Outbound)

		assert.Nil(t, latest)
	})
}
