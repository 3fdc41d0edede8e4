package errs_test

import (
	"errors"
	"testing"

	"repairshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("clientId", "123")

		assert.Equal(t, "clientId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("clientId", "123", cause)

		assert.Equal(t, "clientId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: clientId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		assert.Equal(t, "object not found: 456", errs.NewObjectNotFoundError("orderId", 456).Error())
		assert.Equal(t, "object not found: 7", errs.NewObjectNotFoundError("orderId", int64(7)).Error())
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 456 (cause: gone)",
			errs.NewObjectNotFoundErrorWithCause("orderId", 456, errors.New("gone")).Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("name", cause)

		assert.Equal(t, "name", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: name (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("EN REPARACION", "RETIRADA")

		assert.Equal(t, "EN REPARACION", err.From)
		assert.Equal(t, "RETIRADA", err.To)
		assert.Equal(t, "invalid transition: from EN REPARACION to RETIRADA", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("order is not finished")
		err := errs.NewInvalidTransitionErrorWithCause("SUSPENDIDA", "RETIRADA", cause)

		assert.Equal(t,
			"invalid transition: from SUSPENDIDA to RETIRADA (cause: order is not finished)",
			err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})
}

func TestDuplicateEntityError(t *testing.T) {
	t.Run("NewDuplicateEntityError", func(t *testing.T) {
		err := errs.NewDuplicateEntityError("equipment", "SN-001")

		assert.Equal(t, "equipment", err.Entity)
		assert.Equal(t, "SN-001", err.Key)
		assert.Equal(t, "duplicate entity: equipment SN-001", err.Error())
		assert.Equal(t, errs.ErrDuplicateEntity, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewDuplicateEntityErrorWithCause("fault", "no\nenciende", errors.New("unique"))

		assert.Contains(t, err.Error(), "no enciende")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "duplicate entity", errs.ErrDuplicateEntity.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "7"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("phone"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewInvalidTransitionError("a", "b"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewDuplicateEntityError("client", "x"), errs.ErrDuplicateEntity)
	})

	t.Run("errors.As works through joined errors", func(t *testing.T) {
		wrapped := errors.Join(errors.New("context"), errs.NewInvalidTransitionError("TERMINADA", "SUSPENDIDA"))

		var target *errs.InvalidTransitionError
		require.ErrorAs(t, wrapped, &target)
		assert.Equal(t, "TERMINADA", target.From)
	})
}
