package errs_test

import (
	"errors"
	"testing"

	"pipeyard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("requestId", "7f1c2a90")

		assert.Equal(t, "requestId", err.ParamName)
		assert.Equal(t, "7f1c2a90", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 7f1c2a90", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("loadId", "7f1c2a90", cause)

		assert.Equal(t, "loadId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: loadId, ID is: 7f1c2a90 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("truckingMethod")

		assert.Equal(t, "truckingMethod", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: truckingMethod", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown carrier")
		err := errs.NewValueIsInvalidErrorWithCause("carrierName", cause)

		assert.Equal(t, "carrierName", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: carrierName (cause: unknown carrier)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("sequenceNumber", 0, 1, 99)

		assert.Equal(t, "sequenceNumber", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 99, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 0 is sequenceNumber, min value is 1, max value is 99", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("joints", -5, 0, 1000, cause)

		assert.Equal(t, "joints", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is joints, min value is 0, max value is 1000 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("values_are_sanitized", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "first\nsecond", 0, 10)

		assert.Contains(t, err.Error(), "first second")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("companyName")

		assert.Equal(t, "companyName", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: companyName", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("contactName", cause)

		assert.Equal(t, "contactName", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: contactName (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSchemaMissingError(t *testing.T) {
	t.Run("NewSchemaMissingError", func(t *testing.T) {
		cause := errors.New(`pq: relation "shipments" does not exist`)
		err := errs.NewSchemaMissingError("shipments", cause)

		assert.Equal(t, "shipments", err.Relation)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			`backing schema is missing: relation is: shipments (cause: pq: relation "shipments" does not exist)`,
			err.Error())
		assert.Equal(t, errs.ErrSchemaMissing, err.Unwrap())
	})

	t.Run("without_relation", func(t *testing.T) {
		err := errs.NewSchemaMissingError("", nil)

		assert.Equal(t, "backing schema is missing", err.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is_matches_sentinels", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("requestId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("direction"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("joints", -1, 0, 100), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("companyName"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewSchemaMissingError("dock_appointments", nil), errs.ErrSchemaMissing)
	})

	t.Run("errors.As_recovers_typed_error", func(t *testing.T) {
		var notFound *errs.ObjectNotFoundError
		err := error(errs.NewObjectNotFoundError("loadId", "abc"))

		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "loadId", notFound.ParamName)
	})
}
