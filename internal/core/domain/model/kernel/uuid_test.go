package kernel_test

import (
	"testing"

	"pipeyard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("creates_valid_uuid", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NotEmpty(t, id.String())
		assert.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("creates_unique_uuids", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	const raw = "7f1c2a90-4b3d-4e61-9d5a-0c8e2b41f773"

	t.Run("parses_canonical_form", func(t *testing.T) {
		id, err := kernel.UUIDFromString(raw)

		require.NoError(t, err)
		assert.Equal(t, raw, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("rejects_malformed_input", func(t *testing.T) {
		for _, input := range []string{
			"",
			"not-a-uuid",
			"7f1c2a90-4b3d-4e61-9d5a",
			"7f1c2a90-4b3d-4e61-9d5a-0c8e2b41f773-extra",
			"zz1c2a90-4b3d-4e61-9d5a-0c8e2b41f773",
		} {
			_, err := kernel.UUIDFromString(input)
			require.Error(t, err, "input %q", input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("parses_sixteen_bytes", func(t *testing.T) {
		raw := []byte{
			0x7f, 0x1c, 0x2a, 0x90, 0x4b, 0x3d, 0x4e, 0x61,
			0x9d, 0x5a, 0x0c, 0x8e, 0x2b, 0x41, 0xf7, 0x73,
		}
		id, err := kernel.UUIDFromBytes(raw)

		require.NoError(t, err)
		assert.Equal(t, "7f1c2a90-4b3d-4e61-9d5a-0c8e2b41f773", id.String())
	})

	t.Run("rejects_wrong_length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x7f, 0x1c, 0x2a})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("rejects_nil_uuid_bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, err)
	})
}

func TestUUID_Bytes(t *testing.T) {
	t.Run("exposes_underlying_uuid", func(t *testing.T) {
		id := kernel.NewUUID()
		raw := id.Bytes()

		assert.IsType(t, uuid.UUID{}, raw)
		assert.Equal(t, id.String(), raw.String())
	})

	t.Run("returned_value_is_a_copy", func(t *testing.T) {
		id := kernel.NewUUID()
		before := id.String()

		raw := id.Bytes()
		for i := range raw {
			raw[i] = 0xFF
		}

		assert.Equal(t, before, id.String())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("equal_for_same_value", func(t *testing.T) {
		id1, err := kernel.UUIDFromString("7f1c2a90-4b3d-4e61-9d5a-0c8e2b41f773")
		require.NoError(t, err)
		id2, err := kernel.UUIDFromString("7f1c2a90-4b3d-4e61-9d5a-0c8e2b41f773")
		require.NoError(t, err)

		assert.True(t, id1.IsEqual(id2))
		assert.True(t, id2.IsEqual(id1))
	})

	t.Run("not_equal_for_different_values", func(t *testing.T) {
		assert.False(t, kernel.NewUUID().IsEqual(kernel.NewUUID()))
	})

	t.Run("zero_values_compare_equal", func(t *testing.T) {
		var id1, id2 kernel.UUID

		assert.True(t, id1.IsEqual(id2))
		assert.False(t, id1.IsEqual(kernel.NewUUID()))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("valid_for_constructed_uuid", func(t *testing.T) {
		assert.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("invalid_for_zero_value", func(t *testing.T) {
		var id kernel.UUID

		assert.Equal(t, kernel.ErrUUIDIsNotConstructed, id.Validate())
	})
}

func TestUUID_AsIdentity(t *testing.T) {
	type loadRef struct {
		ID kernel.UUID
	}

	t.Run("usable_as_struct_field", func(t *testing.T) {
		ref := loadRef{ID: kernel.NewUUID()}

		assert.NoError(t, ref.ID.Validate())
	})

	t.Run("zero_field_fails_validation", func(t *testing.T) {
		var ref loadRef

		assert.Error(t, ref.ID.Validate())
	})

	t.Run("usable_as_map_key", func(t *testing.T) {
		a := kernel.NewUUID()
		b := kernel.NewUUID()
		byID := map[kernel.UUID]int{a: 1, b: 2}

		assert.Equal(t, 1, byID[a])
		assert.Equal(t, 2, byID[b])
	})
}
