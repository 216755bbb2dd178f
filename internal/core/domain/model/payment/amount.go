package payment

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAmountIsNotConstructed = errors.New("Amount must be created via NewAmount constructor")

// AmountParams carries minor currency units. A nil Total is derived as
// Subtotal + Tax - Discount.
type AmountParams struct {
	Subtotal int64
	Tax      int64
	Discount int64
	Total    *int64
	Currency string
}

// Amount is the billed sum of a payment. Total is fixed at creation and is
// never recomputed from its parts.
type Amount struct { //nolint:recvcheck //using for validation
	subtotal kernel.Money
	tax      kernel.Money
	discount kernel.Money
	total    kernel.Money
	guard    guard.ConstructorGuard
}

func NewAmount(p AmountParams) (Amount, error) {
	subtotal, errSubtotal := kernel.NewMoney(p.Subtotal, p.Currency)
	tax, errTax := kernel.NewMoney(p.Tax, p.Currency)
	discount, errDiscount := kernel.NewMoney(p.Discount, p.Currency)
	if err := errors.Join(
		wrapField("amount.subtotal", errSubtotal),
		wrapField("amount.tax", errTax),
		wrapField("amount.discount", errDiscount),
	); err != nil {
		return Amount{}, err
	}

	totalValue := p.Subtotal + p.Tax - p.Discount
	if p.Total != nil {
		totalValue = *p.Total
	}
	if totalValue <= 0 {
		return Amount{}, errs.NewValueIsOutOfRangeError("amount.total", totalValue, 1, "unbounded")
	}

	return Amount{
		subtotal: subtotal,
		tax:      tax,
		discount: discount,
		total:    kernel.RestoreMoney(totalValue, subtotal.Currency()),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// RestoreAmount rebuilds a persisted amount.
func RestoreAmount(subtotal, tax, discount, total int64, currency string) Amount {
	return Amount{
		subtotal: kernel.RestoreMoney(subtotal, currency),
		tax:      kernel.RestoreMoney(tax, currency),
		discount: kernel.RestoreMoney(discount, currency),
		total:    kernel.RestoreMoney(total, currency),
		guard:    guard.NewConstructorGuard(),
	}
}

func (a Amount) Validate() error {
	return a.guard.Validate(ErrAmountIsNotConstructed)
}

func (a Amount) Subtotal() kernel.Money { return a.subtotal }
func (a Amount) Tax() kernel.Money      { return a.tax }
func (a Amount) Discount() kernel.Money { return a.discount }
func (a Amount) Total() kernel.Money    { return a.total }
func (a Amount) Currency() string       { return a.total.Currency() }

func wrapField(field string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", field, err)
}
