package order

import (
	"fmt"

	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
)

// PaymentMethod represents how the buyer chose to pay at checkout.
// It is recorded on the order and never changes afterwards.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	// This value (0) helps catch uninitialized PaymentMethod values.
	PaymentMethodUnknown PaymentMethod = iota

	// PaymentMethodCard is payment by debit or credit card.
	PaymentMethodCard

	// PaymentMethodBankTransfer is payment by bank transfer.
	PaymentMethodBankTransfer

	// PaymentMethodCashOnDelivery is payment in cash when the goods arrive.
	PaymentMethodCashOnDelivery
)

// getPaymentMethodStrings returns a map of PaymentMethod values to their
// string representations. All methods are included for string conversion.
func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown:        "unknown",
		PaymentMethodCard:           "card",
		PaymentMethodBankTransfer:   "bank_transfer",
		PaymentMethodCashOnDelivery: "cash_on_delivery",
	}
}

// getValidPaymentMethodStrings returns a map of only valid PaymentMethod values.
func getValidPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentMethodUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		PaymentMethodCard:           "card",
		PaymentMethodBankTransfer:   "bank_transfer",
		PaymentMethodCashOnDelivery: "cash_on_delivery",
	}
}

// PaymentMethodFromString parses a persisted or user-supplied payment method name.
//
// Returns:
//   - The matching PaymentMethod for "card", "bank_transfer", or "cash_on_delivery"
//   - An error for any other input
func PaymentMethodFromString(value string) (PaymentMethod, error) {
	for method, str := range getValidPaymentMethodStrings() {
		if str == value {
			return method, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q is not a valid payment method", value),
	)
}

// Validate checks if the PaymentMethod value is valid.
//
// Valid methods are: Card, BankTransfer, CashOnDelivery.
// PaymentMethodUnknown (0) and any other values are invalid.
func (p PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", p),
		)
	}
	return nil
}

// String returns the persisted name of the payment method.
// This method implements the fmt.Stringer interface and is safe
// to call on any PaymentMethod value, including invalid ones.
func (p PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[p]; ok {
		return str
	}
	return "unknown"
}
