package commands_test

import (
	"testing"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/request"

	"github.com/stretchr/testify/require"
)

func testQuantity(t *testing.T, joints int) kernel.Quantity {
	t.Helper()

	q, err := kernel.JointsQuantity(joints)
	require.NoError(t, err)
	return q
}

func testRequest(t *testing.T, status request.Status) *request.StorageRequest {
	t.Helper()

	req, err := request.RestoreStorageRequest(
		kernel.NewUUID(),
		"Lone Star Pipe & Supply",
		"Rosa Delgado",
		"915-555-0182",
		testQuantity(t, 400),
		status,
	)
	require.NoError(t, err)
	return req
}
