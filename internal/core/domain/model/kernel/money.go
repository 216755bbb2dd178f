package kernel

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// DefaultCurrency is used when a caller supplies no currency.
const DefaultCurrency = "usd"

var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney")

// Money is an amount in the smallest currency unit (cents for usd).
// All arithmetic is integer-only.
type Money struct { //nolint:recvcheck //using for validation
	amount   int64
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney rejects negative amounts and currencies that are not three-letter ISO 4217 codes.
func NewMoney(amount int64, currency string) (Money, error) {
	if currency == "" {
		currency = DefaultCurrency
	}
	currency = strings.ToLower(currency)
	if len(currency) != 3 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency", fmt.Errorf("%q is not an ISO 4217 code", currency))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0, "unbounded")
	}
	return Money{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}, nil
}

// ZeroMoney returns an empty amount in currency.
func ZeroMoney(currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{currency: strings.ToLower(currency), guard: guard.NewConstructorGuard()}
}

// RestoreMoney rebuilds a persisted amount without range checks; balances
// derived from it may legitimately be negative.
func RestoreMoney(amount int64, currency string) Money {
	return Money{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Currency() string {
	return m.currency
}

func (m Money) Add(other Money) Money {
	return RestoreMoney(m.amount+other.amount, m.currency)
}

func (m Money) Sub(other Money) Money {
	return RestoreMoney(m.amount-other.amount, m.currency)
}

func (m Money) Multiply(qty int64) Money {
	return RestoreMoney(m.amount*qty, m.currency)
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

func (m Money) IsPositive() bool {
	return m.amount > 0
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount > other.amount
}

func (m Money) SameCurrency(other Money) bool {
	return m.currency == other.currency
}

// String formats two-decimal currencies, e.g. "12.34 usd".
func (m Money) String() string {
	sign := ""
	amount := m.amount
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, amount/100, amount%100, m.currency)
}
