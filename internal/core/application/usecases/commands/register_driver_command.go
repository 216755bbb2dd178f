package commands

import (
	"errors"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverInput is the public sign-up form of a driver.
type RegisterDriverInput struct {
	Email         string
	Password      string
	FirstName     string
	LastName      string
	Phone         string
	LicenseNumber string
	Vehicle       identity.Vehicle
}

// RegisterDriverCommand creates a driver awaiting approval and KYC.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	input RegisterDriverInput
	email string

	guard guard.ConstructorGuard
}

func NewRegisterDriverCommand(in RegisterDriverInput) (RegisterDriverCommand, error) {
	email, emailErr := identity.NormalizeEmail(in.Email)
	if err := errors.Join(emailErr, validatePassword(in.Password)); err != nil {
		return RegisterDriverCommand{}, err
	}
	return RegisterDriverCommand{
		input: in,
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) Email() string    { return c.email }
func (c RegisterDriverCommand) Password() string { return c.input.Password }

func (c RegisterDriverCommand) Params(passwordHash string) identity.DriverParams {
	return identity.DriverParams{
		Email:         c.email,
		PasswordHash:  passwordHash,
		FirstName:     c.input.FirstName,
		LastName:      c.input.LastName,
		Phone:         c.input.Phone,
		LicenseNumber: c.input.LicenseNumber,
		Vehicle:       c.input.Vehicle,
	}
}
