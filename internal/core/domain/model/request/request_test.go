package request_test

import (
	"testing"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest(t *testing.T) *request.StorageRequest {
	t.Helper()
	estimate, err := kernel.JointsQuantity(500)
	require.NoError(t, err)

	req, err := request.NewStorageRequest(
		kernel.NewUUID(), "Acme Drilling", "Dana Wells", "555-0101", estimate)
	require.NoError(t, err)
	return req
}

func TestNewStorageRequest(t *testing.T) {
	t.Run("creates pending request", func(t *testing.T) {
		req := validRequest(t)

		assert.Equal(t, request.Pending, req.Status())
		assert.Equal(t, "Acme Drilling", req.CompanyName())
		assert.Equal(t, 500, req.EstimatedQuantity().Joints())
		require.NoError(t, req.Validate())
	})

	t.Run("requires a valid id", func(t *testing.T) {
		_, err := request.NewStorageRequest(kernel.UUID{}, "Acme", "Dana", "", kernel.Quantity{})
		require.Error(t, err)
	})

	t.Run("requires company name", func(t *testing.T) {
		_, err := request.NewStorageRequest(kernel.NewUUID(), "", "Dana", "", kernel.Quantity{})
		require.Error(t, err)
	})

	t.Run("requires contact name", func(t *testing.T) {
		_, err := request.NewStorageRequest(kernel.NewUUID(), "Acme", "", "", kernel.Quantity{})
		require.Error(t, err)
	})

	t.Run("zero estimate is allowed", func(t *testing.T) {
		req, err := request.NewStorageRequest(kernel.NewUUID(), "Acme", "Dana", "", kernel.Quantity{})
		require.NoError(t, err)
		assert.True(t, req.EstimatedQuantity().IsZero())
	})
}

func TestRestoreStorageRequest(t *testing.T) {
	t.Run("restores with explicit status", func(t *testing.T) {
		req, err := request.RestoreStorageRequest(
			kernel.NewUUID(), "Acme", "Dana", "", kernel.Quantity{}, request.Approved)

		require.NoError(t, err)
		assert.Equal(t, request.Approved, req.Status())
	})

	t.Run("rejects invalid status", func(t *testing.T) {
		_, err := request.RestoreStorageRequest(
			kernel.NewUUID(), "Acme", "Dana", "", kernel.Quantity{}, request.Unknown)
		require.Error(t, err)
	})
}

func TestStorageRequest_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var req request.StorageRequest
		require.ErrorIs(t, req.Validate(), request.ErrStorageRequestIsNotConstructed)
	})

	t.Run("nil fails validation", func(t *testing.T) {
		var req *request.StorageRequest
		require.ErrorIs(t, req.Validate(), request.ErrStorageRequestIsNotConstructed)
	})
}

func TestStorageRequest_Review(t *testing.T) {
	t.Run("approve pending", func(t *testing.T) {
		req := validRequest(t)
		require.NoError(t, req.Approve())
		assert.Equal(t, request.Approved, req.Status())
	})

	t.Run("reject pending", func(t *testing.T) {
		req := validRequest(t)
		require.NoError(t, req.Reject())
		assert.Equal(t, request.Rejected, req.Status())
	})

	t.Run("cannot approve twice", func(t *testing.T) {
		req := validRequest(t)
		require.NoError(t, req.Approve())
		require.Error(t, req.Approve())
	})

	t.Run("complete after approval", func(t *testing.T) {
		req := validRequest(t)
		require.NoError(t, req.Approve())
		require.NoError(t, req.Complete())
		assert.Equal(t, request.Completed, req.Status())
	})

	t.Run("cannot complete unapproved", func(t *testing.T) {
		req := validRequest(t)
		require.Error(t, req.Complete())
	})
}
