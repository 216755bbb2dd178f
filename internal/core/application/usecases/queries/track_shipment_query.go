package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrTrackShipmentQueryIsNotConstructed = errors.New(
	"TrackShipmentQuery must be created via NewTrackShipmentQuery constructor",
)

// TrackShipmentQuery is the public lookup by tracking number. It needs no
// principal.
type TrackShipmentQuery struct {
	trackingNumber shipment.TrackingNumber
	guard          guard.ConstructorGuard
}

func NewTrackShipmentQuery(trackingNumber string) (TrackShipmentQuery, error) {
	tn, err := shipment.ParseTrackingNumber(trackingNumber)
	if err != nil {
		return TrackShipmentQuery{}, err
	}
	return TrackShipmentQuery{trackingNumber: tn, guard: guard.NewConstructorGuard()}, nil
}

func (q TrackShipmentQuery) Validate() error {
	return q.guard.Validate(ErrTrackShipmentQueryIsNotConstructed)
}

// TrackShipmentQueryResponse is the public snapshot. It never names actors,
// parties or amounts.
type TrackShipmentQueryResponse struct {
	TrackingNumber     string          `json:"trackingNumber"`
	Status             string          `json:"status"`
	ServiceType        string          `json:"serviceType"`
	PickupDate         time.Time       `json:"pickupDate"`
	DeliveryDate       time.Time       `json:"deliveryDate"`
	ActualPickupDate   *time.Time      `json:"actualPickupDate,omitempty"`
	ActualDeliveryDate *time.Time      `json:"actualDeliveryDate,omitempty"`
	Timeline           []TrackingEvent `json:"timeline"`
}

type TrackingEvent struct {
	Status    string    `json:"status"`
	At        time.Time `json:"at"`
	Notes     string    `json:"notes,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}

func newTrackingSnapshot(s *shipment.Shipment) TrackShipmentQueryResponse {
	timeline := s.Timeline()
	events := make([]TrackingEvent, 0, len(timeline))
	for _, e := range timeline {
		ev := TrackingEvent{
			Status: e.Status().String(),
			At:     e.At(),
			Notes:  e.Notes(),
		}
		if loc := e.Location(); loc != nil {
			lat, lng := loc.Lat(), loc.Lng()
			ev.Latitude, ev.Longitude = &lat, &lng
		}
		events = append(events, ev)
	}

	return TrackShipmentQueryResponse{
		TrackingNumber:     s.TrackingNumber().String(),
		Status:             s.Status().String(),
		ServiceType:        string(s.ServiceType()),
		PickupDate:         s.PickupDate(),
		DeliveryDate:       s.DeliveryDate(),
		ActualPickupDate:   s.ActualPickupDate(),
		ActualDeliveryDate: s.ActualDeliveryDate(),
		Timeline:           events,
	}
}
