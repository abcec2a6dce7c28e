package kernel

import (
	"fmt"
	"math"

	"github.com/Cientista-Avogadro/docampo/internal/pkg/errs"
	"github.com/Cientista-Avogadro/docampo/internal/pkg/guard"
)

// moneyEpsilon bounds the drift allowed between a stored amount and a
// recomputed one before they are considered different values.
const moneyEpsilon = 1e-9

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money values must be created using NewMoney or ZeroMoney to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or ZeroMoney constructors")

// Money represents a non-negative currency amount.
// Money is an immutable value object; arithmetic methods return new instances
// and never mutate the receiver. The zero value of Money is invalid and will
// fail validation - use constructors to create instances.
//
// Rounding policy: amounts are kept at full precision through arithmetic and
// rounded to 2 decimal places, half away from zero, only where the domain
// demands it (see Percent). Display-layer rounding never feeds back into
// stored amounts.
//
// Example:
//
//	subtotal, err := kernel.NewMoney(40.42)
//	if err != nil {
//	    // Handle validation error
//	}
//	commission := subtotal.Percent(0.10) // 4.04
type Money struct { //nolint:recvcheck //using for validation
	amount float64
	guard  guard.ConstructorGuard
}

// NewMoney creates a new Money value with the specified amount.
// The amount must be finite and non-negative.
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if the amount is negative, NaN, or infinite
func NewMoney(amount float64) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}

	return m, nil
}

// ZeroMoney returns a valid Money value of zero amount.
// Used for orders without a delivery leg, whose commission is always zero.
func ZeroMoney() Money {
	return Money{
		amount: 0,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate checks if the Money value is properly constructed.
// Returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the raw currency amount.
func (m Money) Amount() float64 {
	return m.amount
}

// Add returns the sum of the receiver and other as a new Money value.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount + other.amount,
		guard:  guard.NewConstructorGuard(),
	}
}

// MulQuantity returns the receiver multiplied by a unit count as a new Money value.
// Used to derive a line total from a unit price.
func (m Money) MulQuantity(quantity int) Money {
	return Money{
		amount: m.amount * float64(quantity),
		guard:  guard.NewConstructorGuard(),
	}
}

// Percent returns the given fraction of the receiver, rounded to 2 decimal
// places half away from zero. The rounding is applied exactly once here so
// that derived amounts such as commissions stay stable after creation.
//
// Example:
//
//	subtotal, _ := kernel.NewMoney(40.42)
//	fee := subtotal.Percent(0.10) // 4.04
func (m Money) Percent(rate float64) Money {
	return Money{
		amount: math.Round(m.amount*rate*100) / 100,
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual compares two Money values within the rounding epsilon.
// Amounts closer than the epsilon are considered the same value.
func (m Money) IsEqual(other Money) bool {
	return math.Abs(m.amount-other.amount) < moneyEpsilon
}

// String returns the amount formatted with 2 decimal places.
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}

// setAmount validates and sets the amount.
// This is a private method used only during construction.
func (m *Money) setAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%.2f is negative", amount))
	}
	m.amount = amount
	return nil
}
