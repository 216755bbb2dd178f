package commands

import (
	"errors"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/pkg/guard"
)

var ErrRegisterClientCommandIsNotConstructed = errors.New(
	"RegisterClientCommand must be created via NewRegisterClientCommand constructor",
)

// RegisterClientInput is the public sign-up form of a client. BillingTerms
// is optional.
type RegisterClientInput struct {
	Email        string
	Password     string
	CompanyName  string
	ContactName  string
	Phone        string
	BillingTerms payment.Terms
}

type RegisterClientCommand struct { //nolint:recvcheck //using for validation
	input RegisterClientInput
	email string

	guard guard.ConstructorGuard
}

func NewRegisterClientCommand(in RegisterClientInput) (RegisterClientCommand, error) {
	email, emailErr := identity.NormalizeEmail(in.Email)
	var termsErr error
	if in.BillingTerms != "" {
		termsErr = in.BillingTerms.Validate()
	}
	if err := errors.Join(emailErr, validatePassword(in.Password), termsErr); err != nil {
		return RegisterClientCommand{}, err
	}
	return RegisterClientCommand{
		input: in,
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterClientCommand) Validate() error {
	return c.guard.Validate(ErrRegisterClientCommandIsNotConstructed)
}

func (c RegisterClientCommand) Email() string    { return c.email }
func (c RegisterClientCommand) Password() string { return c.input.Password }

func (c RegisterClientCommand) Params(passwordHash string) identity.ClientParams {
	return identity.ClientParams{
		Email:        c.email,
		PasswordHash: passwordHash,
		CompanyName:  c.input.CompanyName,
		ContactName:  c.input.ContactName,
		Phone:        c.input.Phone,
		BillingTerms: c.input.BillingTerms,
	}
}
