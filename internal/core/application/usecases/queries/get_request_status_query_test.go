package queries_test

import (
	"testing"

	"pipeyard/internal/core/application/usecases/queries"
	"pipeyard/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetRequestStatusQuery_Valid(t *testing.T) {
	query, err := queries.NewGetRequestStatusQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetRequestStatusQuery_EmptyRequestID(t *testing.T) {
	_, err := queries.NewGetRequestStatusQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetRequestStatusQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetRequestStatusQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetRequestStatusQueryIsNotConstructed)
}
