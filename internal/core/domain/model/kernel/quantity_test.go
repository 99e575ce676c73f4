package kernel_test

import (
	"testing"

	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	t.Run("creates quantity with all figures", func(t *testing.T) {
		q, err := kernel.NewQuantity(120, 4800, 96000)

		require.NoError(t, err)
		assert.Equal(t, 120, q.Joints())
		assert.InDelta(t, 4800, q.LengthFt(), 0.001)
		assert.InDelta(t, 96000, q.WeightLbs(), 0.001)
		assert.False(t, q.IsZero())
	})

	t.Run("zero value is a valid nothing quantity", func(t *testing.T) {
		var q kernel.Quantity

		assert.True(t, q.IsZero())
		assert.Equal(t, 0, q.Joints())
	})

	t.Run("rejects negative joints", func(t *testing.T) {
		_, err := kernel.NewQuantity(-1, 0, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative length", func(t *testing.T) {
		_, err := kernel.NewQuantity(0, -10, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative weight", func(t *testing.T) {
		_, err := kernel.NewQuantity(0, 0, -0.5)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestJointsQuantity(t *testing.T) {
	q, err := kernel.JointsQuantity(42)

	require.NoError(t, err)
	assert.Equal(t, 42, q.Joints())
	assert.Zero(t, q.LengthFt())
	assert.Zero(t, q.WeightLbs())
}

func TestQuantity_Add(t *testing.T) {
	a, _ := kernel.NewQuantity(10, 400, 8000)
	b, _ := kernel.NewQuantity(5, 200, 4000)

	sum := a.Add(b)

	assert.Equal(t, 15, sum.Joints())
	assert.InDelta(t, 600, sum.LengthFt(), 0.001)
	assert.InDelta(t, 12000, sum.WeightLbs(), 0.001)

	// operands untouched
	assert.Equal(t, 10, a.Joints())
	assert.Equal(t, 5, b.Joints())
}

func TestQuantity_IsEqual(t *testing.T) {
	a, _ := kernel.JointsQuantity(7)
	b, _ := kernel.JointsQuantity(7)
	c, _ := kernel.JointsQuantity(8)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
