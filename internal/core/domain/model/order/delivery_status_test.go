package order_test

import (
	"fmt"
	"testing"

	"github.com/Cientista-Avogadro/docampo/internal/core/domain/model/order"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.DeliveryStatus{
			order.DeliveryPending,
			order.DeliveryAccepted,
			order.DeliveryInProgress,
			order.DeliveryDelivered,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject DeliveryUnknown", func(t *testing.T) {
		err := order.DeliveryUnknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "delivery status is invalid")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.DeliveryStatus{
			order.DeliveryStatus(-1),
			order.DeliveryStatus(5),
			order.DeliveryStatus(100),
		}

		for _, status := range invalidStatuses {
			require.Error(t, status.Validate())
		}
	})
}

func TestDeliveryStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.DeliveryStatus
			expected string
		}{
			{order.DeliveryPending, "pending"},
			{order.DeliveryAccepted, "accepted"},
			{order.DeliveryInProgress, "in_progress"},
			{order.DeliveryDelivered, "delivered"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "unknown", order.DeliveryUnknown.String())
		assert.Equal(t, "unknown", order.DeliveryStatus(42).String())
	})
}

func TestDeliveryStatus_Accept(t *testing.T) {
	t.Run("should accept from Pending", func(t *testing.T) {
		newStatus, err := order.DeliveryPending.Accept()

		require.NoError(t, err)
		assert.Equal(t, order.DeliveryAccepted, newStatus)
	})

	t.Run("should reject from other statuses", func(t *testing.T) {
		invalidSources := []order.DeliveryStatus{
			order.DeliveryAccepted,
			order.DeliveryInProgress,
			order.DeliveryDelivered,
			order.DeliveryUnknown,
		}

		for _, status := range invalidSources {
			t.Run(fmt.Sprintf("should reject from %s", status.String()), func(t *testing.T) {
				_, err := status.Accept()

				require.ErrorIs(t, err, errs.ErrIllegalTransition)
			})
		}
	})
}

func TestDeliveryStatus_Start(t *testing.T) {
	t.Run("should start from Accepted", func(t *testing.T) {
		newStatus, err := order.DeliveryAccepted.Start()

		require.NoError(t, err)
		assert.Equal(t, order.DeliveryInProgress, newStatus)
	})

	t.Run("should reject from other statuses", func(t *testing.T) {
		invalidSources := []order.DeliveryStatus{
			order.DeliveryPending,
			order.DeliveryInProgress,
			order.DeliveryDelivered,
		}

		for _, status := range invalidSources {
			t.Run(fmt.Sprintf("should reject from %s", status.String()), func(t *testing.T) {
				_, err := status.Start()

				require.ErrorIs(t, err, errs.ErrIllegalTransition)
			})
		}
	})
}

func TestDeliveryStatus_Complete(t *testing.T) {
	t.Run("should complete from InProgress", func(t *testing.T) {
		newStatus, err := order.DeliveryInProgress.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.DeliveryDelivered, newStatus)
	})

	t.Run("should reject from other statuses", func(t *testing.T) {
		invalidSources := []order.DeliveryStatus{
			order.DeliveryPending,
			order.DeliveryAccepted,
			order.DeliveryDelivered,
		}

		for _, status := range invalidSources {
			t.Run(fmt.Sprintf("should reject from %s", status.String()), func(t *testing.T) {
				_, err := status.Complete()

				require.ErrorIs(t, err, errs.ErrIllegalTransition)
			})
		}
	})
}

func TestPaymentMethod(t *testing.T) {
	t.Run("should parse valid payment methods", func(t *testing.T) {
		testCases := []struct {
			value    string
			expected order.PaymentMethod
		}{
			{"card", order.PaymentMethodCard},
			{"bank_transfer", order.PaymentMethodBankTransfer},
			{"cash_on_delivery", order.PaymentMethodCashOnDelivery},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should parse %s", tc.value), func(t *testing.T) {
				method, err := order.PaymentMethodFromString(tc.value)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, method)
				assert.Equal(t, tc.value, method.String())
				require.NoError(t, method.Validate())
			})
		}
	})

	t.Run("should reject unknown payment method names", func(t *testing.T) {
		_, err := order.PaymentMethodFromString("crypto")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject PaymentMethodUnknown", func(t *testing.T) {
		require.Error(t, order.PaymentMethodUnknown.Validate())
		assert.Equal(t, "unknown", order.PaymentMethodUnknown.String())
	})
}
