package payment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

type Method string

const (
	MethodCard         Method = "card"
	MethodBankTransfer Method = "bank_transfer"
	MethodCash         Method = "cash"
	MethodWallet       Method = "wallet"
)

func (m Method) Validate() error {
	switch m {
	case MethodCard, MethodBankTransfer, MethodCash, MethodWallet:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("method", fmt.Errorf("%q is not a valid payment method", string(m)))
}
