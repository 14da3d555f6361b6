package order_test

import (
	"fmt"
	"testing"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Pending,
		order.Accepted,
		order.Rejected,
		order.Preparing,
		order.GivenToCourier,
		order.OnTransit,
		order.Delivered,
	}
}

func allowedTransitions() map[order.Status][]order.Status {
	return map[order.Status][]order.Status{
		order.Pending:        {order.Accepted, order.Rejected},
		order.Accepted:       {order.Preparing},
		order.Preparing:      {order.GivenToCourier},
		order.GivenToCourier: {order.OnTransit},
		order.OnTransit:      {order.Delivered},
	}
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse every wire representation", func(t *testing.T) {
		for _, status := range allStatuses() {
			parsed, err := order.ParseStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should fail on unknown strings", func(t *testing.T) {
		for _, value := range []string{"", "pending", "SHIPPED", "UNKNOWN"} {
			_, err := order.ParseStatus(value)

			require.Error(t, err, value)
			require.ErrorIs(t, err, order.ErrInvalidStatusValue)
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow exactly the enumerated transitions", func(t *testing.T) {
		allowed := allowedTransitions()

		for _, from := range allStatuses() {
			permitted := make(map[order.Status]bool)
			for _, to := range allowed[from] {
				permitted[to] = true
			}

			for _, to := range allStatuses() {
				name := fmt.Sprintf("%s->%s", from, to)
				next, err := from.TransitionTo(to)

				if permitted[to] {
					require.NoError(t, err, name)
					assert.Equal(t, to, next, name)
				} else {
					require.Error(t, err, name)
					require.ErrorIs(t, err, order.ErrIllegalTransition, name)
				}
			}
		}
	})

	t.Run("should name the rejected pair in the error", func(t *testing.T) {
		_, err := order.Rejected.TransitionTo(order.Accepted)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "REJECTED")
		assert.Contains(t, err.Error(), "ACCEPTED")
	})

	t.Run("should reject transition to an invalid target", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.StatusUnknown)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidStatusValue)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("rejected and delivered are terminal", func(t *testing.T) {
		assert.True(t, order.Rejected.IsTerminal())
		assert.True(t, order.Delivered.IsTerminal())
	})

	t.Run("active statuses are not terminal", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.Accepted, order.Preparing, order.GivenToCourier, order.OnTransit,
		} {
			assert.False(t, status.IsTerminal(), status.String())
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept every defined status", func(t *testing.T) {
		for _, status := range allStatuses() {
			require.NoError(t, status.Validate())
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		require.Error(t, order.StatusUnknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should use the wire names", func(t *testing.T) {
		assert.Equal(t, "PENDING", order.Pending.String())
		assert.Equal(t, "GIVEN_TO_COURIER", order.GivenToCourier.String())
		assert.Equal(t, "UNKNOWN", order.Status(42).String())
	})
}
