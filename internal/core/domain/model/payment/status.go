package payment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status is the settlement state of a payment. Unlike shipments there is no
// adjacency table: an admin may set any of the settable statuses at any time,
// while refunded and partially_refunded are derived from completed refunds.
type Status int

const (
	Unknown Status = iota
	Pending
	Processing
	Completed
	Failed
	Cancelled
	Refunded
	PartiallyRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:           "unknown",
		Pending:           "pending",
		Processing:        "processing",
		Completed:         "completed",
		Failed:            "failed",
		Cancelled:         "cancelled",
		Refunded:          "refunded",
		PartiallyRefunded: "partially_refunded",
	}
}

func ParseStatus(s string) (Status, error) {
	for st, str := range getStatusStrings() {
		if st != Unknown && str == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid payment status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > PartiallyRefunded {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsSettable reports whether s may be set directly through UpdateStatus.
func (s Status) IsSettable() bool {
	switch s {
	case Processing, Completed, Failed, Cancelled:
		return true
	default:
		return false
	}
}

// IsOpen reports whether money is still expected for the payment.
func (s Status) IsOpen() bool {
	return s == Pending || s == Processing
}
