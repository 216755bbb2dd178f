package payment

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

type ChargeType string

const (
	ChargeBaseRate          ChargeType = "base_rate"
	ChargeWeightSurcharge   ChargeType = "weight_surcharge"
	ChargeDistanceSurcharge ChargeType = "distance_surcharge"
	ChargeFuelSurcharge     ChargeType = "fuel_surcharge"
	ChargeInsurance         ChargeType = "insurance"
	ChargeHandling          ChargeType = "handling"
	ChargeExpressFee        ChargeType = "express_fee"
	ChargeTax               ChargeType = "tax"
	ChargeOther             ChargeType = "other"
)

func (t ChargeType) Validate() error {
	switch t {
	case ChargeBaseRate, ChargeWeightSurcharge, ChargeDistanceSurcharge, ChargeFuelSurcharge,
		ChargeInsurance, ChargeHandling, ChargeExpressFee, ChargeTax, ChargeOther:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("chargeType", fmt.Errorf("%q is not a valid charge type", string(t)))
}

// Charge is one informational line of the bill. Charges need not sum to the
// payment total.
type Charge struct {
	Type        ChargeType
	Description string
	Amount      kernel.Money
	Quantity    int
	Rate        kernel.Money
}

// NewCharge validates a charge line; a zero quantity means one.
func NewCharge(index int, chargeType ChargeType, description string, amount, rate int64, quantity int, currency string) (Charge, error) {
	field := func(name string) string { return fmt.Sprintf("charges[%d].%s", index, name) }

	var errList []error
	if err := chargeType.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(field("type"), err))
	}
	amountMoney, err := kernel.NewMoney(amount, currency)
	if err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(field("amount"), err))
	}
	rateMoney, err := kernel.NewMoney(rate, currency)
	if err != nil {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(field("rate"), err))
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError(field("quantity"), quantity, 1, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return Charge{}, err
	}

	return Charge{
		Type:        chargeType,
		Description: strings.TrimSpace(description),
		Amount:      amountMoney,
		Quantity:    quantity,
		Rate:        rateMoney,
	}, nil
}
