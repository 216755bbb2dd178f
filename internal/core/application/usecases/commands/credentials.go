package commands

import (
	"unicode/utf8"

	"logistics/internal/pkg/errs"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

func validatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n == 0 {
		return errs.NewValueIsRequiredError("password")
	}
	if n < MinPasswordLength || n > MaxPasswordLength {
		return errs.NewValueIsOutOfRangeError("password", n, MinPasswordLength, MaxPasswordLength)
	}
	return nil
}
