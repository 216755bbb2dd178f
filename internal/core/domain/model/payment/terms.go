package payment

import (
	"fmt"
	"time"

	"logistics/internal/pkg/errs"
)

// Terms sets how many days after creation a payment falls due.
type Terms string

const (
	TermsDueOnReceipt Terms = "due_on_receipt"
	TermsNet15        Terms = "net_15"
	TermsNet30        Terms = "net_30"
	TermsNet45        Terms = "net_45"
	TermsNet60        Terms = "net_60"

	DefaultTerms = TermsNet30
)

var termDays = map[Terms]int{
	TermsDueOnReceipt: 0,
	TermsNet15:        15,
	TermsNet30:        30,
	TermsNet45:        45,
	TermsNet60:        60,
}

func (t Terms) Validate() error {
	if _, ok := termDays[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("terms", fmt.Errorf("%q is not a valid payment term", string(t)))
	}
	return nil
}

func (t Terms) Days() int {
	return termDays[t]
}

// DueDate is from plus the number of days of the term.
func (t Terms) DueDate(from time.Time) time.Time {
	return from.AddDate(0, 0, t.Days())
}

// ResolveTerms picks the first non-empty of explicit, the client's billing
// terms and DefaultTerms.
func ResolveTerms(explicit, clientDefault Terms) Terms {
	switch {
	case explicit != "":
		return explicit
	case clientDefault != "":
		return clientDefault
	default:
		return DefaultTerms
	}
}
