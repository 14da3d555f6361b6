package errs_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	t.Run("NewObjectAlreadyExistsError", func(t *testing.T) {
		err := errs.NewObjectAlreadyExistsError("order", "456")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "456", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object already exists: 456", err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})

	t.Run("NewObjectAlreadyExistsErrorWithCause", func(t *testing.T) {
		cause := errors.New("duplicate key")
		err := errs.NewObjectAlreadyExistsErrorWithCause("order", "456", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object already exists: param is: order, ID is: 456 (cause: duplicate key)",
			err.Error())
		assert.Equal(t, errs.ErrObjectAlreadyExists, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("rating")

		assert.Equal(t, "rating", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: rating", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("rating", cause)

		assert.Equal(t, "rating", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: rating (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 7, 1, 5)

		assert.Equal(t, "rating", err.ParamName)
		assert.Equal(t, 7, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 5, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 7 is rating, min value is 1, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("zone", -5, 0, 100, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is zone, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("vendorId")

		assert.Equal(t, "vendorId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: vendorId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("vendorId", cause)

		assert.Equal(t, "vendorId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: vendorId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestVersionConflictError(t *testing.T) {
	t.Run("NewVersionConflictError", func(t *testing.T) {
		err := errs.NewVersionConflictError("delivery", "789", 3)

		assert.Equal(t, "delivery", err.ParamName)
		assert.Equal(t, "789", err.ID)
		assert.Equal(t, int64(3), err.Version)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version conflict: 789 at version 3", err.Error())
		assert.Equal(t, errs.ErrVersionConflict, err.Unwrap())
	})

	t.Run("NewVersionConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("zero rows affected")
		err := errs.NewVersionConflictErrorWithCause("delivery", "789", 3, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"version conflict: param is: delivery, ID is: 789, stale version is 3 (cause: zero rows affected)",
			err.Error())
		assert.Equal(t, errs.ErrVersionConflict, err.Unwrap())
	})
}

func TestMicroserviceCommunicationError(t *testing.T) {
	t.Run("NewMicroserviceCommunicationError", func(t *testing.T) {
		err := errs.NewMicroserviceCommunicationError("users")

		assert.Equal(t, "users", err.ServiceName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "microservice communication failed: users", err.Error())
		assert.Equal(t, errs.ErrMicroserviceCommunication, err.Unwrap())
	})

	t.Run("NewMicroserviceCommunicationErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.NewMicroserviceCommunicationErrorWithCause("orders", cause)

		assert.Equal(t, "orders", err.ServiceName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "microservice communication failed: orders (cause: connection refused)", err.Error())
		assert.Equal(t, errs.ErrMicroserviceCommunication, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrObjectAlreadyExists)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrVersionConflict)
		require.Error(t, errs.ErrMicroserviceCommunication)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "version conflict", errs.ErrVersionConflict.Error())
		assert.Equal(t, "microservice communication failed", errs.ErrMicroserviceCommunication.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewObjectAlreadyExistsError("order", "456"), errs.ErrObjectAlreadyExists)
		require.ErrorIs(t, errs.NewValueIsInvalidError("rating"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("rating", 7, 1, 5), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("vendorId"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewVersionConflictError("delivery", "789", 1), errs.ErrVersionConflict)
		require.ErrorIs(t, errs.NewMicroserviceCommunicationError("users"), errs.ErrMicroserviceCommunication)
	})
}
