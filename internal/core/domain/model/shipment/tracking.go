package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"

	"go.jetify.com/typeid/v2"
)

const trackingPrefix = "trk"

// TrackingNumber is a public, globally unique shipment reference of the form
// "trk_<26 base32 chars>". The suffix encodes a UUIDv7, so numbers are
// time-ordered with a random tail.
type TrackingNumber struct {
	value string
}

func NewTrackingNumber() (TrackingNumber, error) {
	tid, err := typeid.Generate(trackingPrefix)
	if err != nil {
		return TrackingNumber{}, fmt.Errorf("generate tracking number: %w", err)
	}
	return TrackingNumber{value: tid.String()}, nil
}

func ParseTrackingNumber(s string) (TrackingNumber, error) {
	tid, err := typeid.Parse(s)
	if err != nil {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause("trackingNumber", err)
	}
	if tid.Prefix() != trackingPrefix {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber", fmt.Errorf("expected prefix %q, got %q", trackingPrefix, tid.Prefix()))
	}
	return TrackingNumber{value: tid.String()}, nil
}

func (t TrackingNumber) String() string {
	return t.value
}

func (t TrackingNumber) IsZero() bool {
	return t.value == ""
}
