package shipment

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment was not created
	// through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	ErrItemsAreRequired         = errs.NewValueIsRequiredError("items")
)

// CreateParams is the validated input of NewShipment.
type CreateParams struct {
	ClientID            kernel.UUID
	Items               []Item
	PickupAddress       kernel.Address
	DeliveryAddress     kernel.Address
	PickupDate          time.Time
	DeliveryDate        time.Time
	ServiceType         ServiceType
	SpecialInstructions string
	CreatedBy           kernel.Actor
}

// Shipment is the aggregate root for one contracted movement of goods.
//
// Invariants:
//   - id, tracking number and client never change after creation
//   - the timeline is never empty and its first entry is pending
//   - Status() is always the status of the latest timeline entry
//   - totalWeight and totalValue are computed once, at creation
//   - status changes only along the adjacency table in Status
//   - driver is set only by AssignDriver, together with the assigned entry
type Shipment struct {
	kernel.EventRecorder

	id             kernel.UUID
	trackingNumber TrackingNumber
	clientID       kernel.UUID
	driverID       *kernel.UUID

	items       []Item
	totalWeight float64
	totalValue  kernel.Money

	pickupAddress   kernel.Address
	deliveryAddress kernel.Address

	serviceType         ServiceType
	specialInstructions string

	pickupDate         time.Time
	deliveryDate       time.Time
	actualPickupDate   *time.Time
	actualDeliveryDate *time.Time

	timeline     kernel.OrderedLog[TimelineEntry]
	issues       kernel.OrderedLog[Issue]
	documents    kernel.OrderedLog[Document]
	cancellation *Cancellation
	rating       *Rating

	createdAt time.Time
	updatedAt time.Time
	version   int64

	isConstructed bool
}

// NewShipment validates the request and creates a shipment whose timeline
// holds exactly one pending entry.
//
// Validation, all reported together:
//   - at least one item, each built by NewItem
//   - pickup and delivery addresses built by NewAddress
//   - pickup date not before the start of the current UTC day
//   - delivery date strictly after the pickup date
func NewShipment(p CreateParams, now time.Time) (*Shipment, error) {
	now = now.UTC()

	if err := errors.Join(
		validateClient(p.ClientID),
		validateItems(p.Items),
		validateAddress("pickupAddress", p.PickupAddress),
		validateAddress("deliveryAddress", p.DeliveryAddress),
		validateSchedule(p.PickupDate, p.DeliveryDate, now),
		validateServiceType(p.ServiceType),
		validateCreator(p.CreatedBy),
	); err != nil {
		return nil, err
	}

	tracking, err := NewTrackingNumber()
	if err != nil {
		return nil, err
	}

	serviceType := p.ServiceType
	if serviceType == "" {
		serviceType = ServiceStandard
	}

	items := make([]Item, len(p.Items))
	copy(items, p.Items)

	s := &Shipment{
		id:                  kernel.NewUUID(),
		trackingNumber:      tracking,
		clientID:            p.ClientID,
		items:               items,
		pickupAddress:       p.PickupAddress,
		deliveryAddress:     p.DeliveryAddress,
		serviceType:         serviceType,
		specialInstructions: strings.TrimSpace(p.SpecialInstructions),
		pickupDate:          p.PickupDate.UTC(),
		deliveryDate:        p.DeliveryDate.UTC(),
		timeline:            kernel.NewOrderedLog[TimelineEntry](0),
		issues:              kernel.NewOrderedLog[Issue](0),
		documents:           kernel.NewOrderedLog[Document](0),
		createdAt:           now,
		updatedAt:           now,
		isConstructed:       true,
	}
	s.totalWeight, s.totalValue = computeTotals(items)
	s.timeline.Append(newTimelineEntry(Pending, now, nil, "Shipment created", p.CreatedBy))

	s.Record(CreatedEvent{
		ShipmentID:     s.id,
		TrackingNumber: s.trackingNumber.String(),
		ClientID:       s.clientID.String(),
		At:             now,
	})

	return s, nil
}

// RestoreParams is the persisted form of a shipment.
type RestoreParams struct {
	ID                  kernel.UUID
	TrackingNumber      TrackingNumber
	ClientID            kernel.UUID
	DriverID            *kernel.UUID
	Items               []Item
	TotalWeight         float64
	TotalValue          kernel.Money
	PickupAddress       kernel.Address
	DeliveryAddress     kernel.Address
	ServiceType         ServiceType
	SpecialInstructions string
	PickupDate          time.Time
	DeliveryDate        time.Time
	ActualPickupDate    *time.Time
	ActualDeliveryDate  *time.Time
	Timeline            []TimelineEntry
	Issues              []Issue
	Documents           []Document
	Cancellation        *Cancellation
	Rating              *Rating
	CreatedAt           time.Time
	UpdatedAt           time.Time
	Version             int64
}

// RestoreShipment rebuilds a shipment from storage. Business rules that apply
// only at creation (dates in the future) are not re-checked.
func RestoreShipment(p RestoreParams) (*Shipment, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.ClientID.Validate(),
		validateItems(p.Items),
	); err != nil {
		return nil, err
	}
	if p.TrackingNumber.IsZero() {
		return nil, errs.NewValueIsRequiredError("trackingNumber")
	}
	if len(p.Timeline) == 0 {
		return nil, errs.NewValueIsRequiredError("timeline")
	}
	if p.Timeline[0].Status() != Pending {
		return nil, errs.NewValueIsInvalidErrorWithCause("timeline",
			fmt.Errorf("first entry is %s, expected %s", p.Timeline[0].Status(), Pending))
	}

	return &Shipment{
		id:                  p.ID,
		trackingNumber:      p.TrackingNumber,
		clientID:            p.ClientID,
		driverID:            p.DriverID,
		items:               p.Items,
		totalWeight:         p.TotalWeight,
		totalValue:          p.TotalValue,
		pickupAddress:       p.PickupAddress,
		deliveryAddress:     p.DeliveryAddress,
		serviceType:         p.ServiceType,
		specialInstructions: p.SpecialInstructions,
		pickupDate:          p.PickupDate,
		deliveryDate:        p.DeliveryDate,
		actualPickupDate:    p.ActualPickupDate,
		actualDeliveryDate:  p.ActualDeliveryDate,
		timeline:            kernel.RestoreOrderedLog(p.Timeline, 0),
		issues:              kernel.RestoreOrderedLog(p.Issues, 0),
		documents:           kernel.RestoreOrderedLog(p.Documents, 0),
		cancellation:        p.Cancellation,
		rating:              p.Rating,
		createdAt:           p.CreatedAt,
		updatedAt:           p.UpdatedAt,
		version:             p.Version,
		isConstructed:       true,
	}, nil
}

func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) ID() kernel.UUID                 { return s.id }
func (s *Shipment) TrackingNumber() TrackingNumber  { return s.trackingNumber }
func (s *Shipment) ClientID() kernel.UUID           { return s.clientID }
func (s *Shipment) TotalWeight() float64            { return s.totalWeight }
func (s *Shipment) TotalValue() kernel.Money        { return s.totalValue }
func (s *Shipment) PickupAddress() kernel.Address   { return s.pickupAddress }
func (s *Shipment) DeliveryAddress() kernel.Address { return s.deliveryAddress }
func (s *Shipment) ServiceType() ServiceType        { return s.serviceType }
func (s *Shipment) SpecialInstructions() string     { return s.specialInstructions }
func (s *Shipment) PickupDate() time.Time           { return s.pickupDate }
func (s *Shipment) DeliveryDate() time.Time         { return s.deliveryDate }
func (s *Shipment) ActualPickupDate() *time.Time    { return s.actualPickupDate }
func (s *Shipment) ActualDeliveryDate() *time.Time  { return s.actualDeliveryDate }
func (s *Shipment) Cancellation() *Cancellation     { return s.cancellation }
func (s *Shipment) Rating() *Rating                 { return s.rating }
func (s *Shipment) CreatedAt() time.Time            { return s.createdAt }
func (s *Shipment) UpdatedAt() time.Time            { return s.updatedAt }
func (s *Shipment) Version() int64                  { return s.version }
func (s *Shipment) Items() []Item                   { return append([]Item(nil), s.items...) }
func (s *Shipment) Timeline() []TimelineEntry       { return s.timeline.Entries() }
func (s *Shipment) Issues() []Issue                 { return s.issues.Entries() }
func (s *Shipment) Documents() []Document           { return s.documents.Entries() }
func (s *Shipment) IncrementVersion()               { s.version++ }

// DriverID returns nil until a driver is assigned.
func (s *Shipment) DriverID() *kernel.UUID {
	if s.driverID == nil {
		return nil
	}
	id := *s.driverID
	return &id
}

// Status is the status of the latest timeline entry.
func (s *Shipment) Status() Status {
	return s.CurrentStatusInfo().Status()
}

// CurrentStatusInfo returns the latest timeline entry.
func (s *Shipment) CurrentStatusInfo() TimelineEntry {
	latest, _ := s.timeline.Latest()
	return latest
}

// EstimatedTransitDays is the requested delivery date minus the requested
// pickup date, rounded up to whole days.
func (s *Shipment) EstimatedTransitDays() int {
	hours := s.deliveryDate.Sub(s.pickupDate).Hours()
	return int(math.Ceil(hours / 24))
}

// IsOwnedBy reports whether clientID created the shipment.
func (s *Shipment) IsOwnedBy(clientID kernel.UUID) bool {
	return s.clientID.IsEqual(clientID)
}

// IsAssignedTo reports whether driverID is the assigned driver.
func (s *Shipment) IsAssignedTo(driverID kernel.UUID) bool {
	return s.driverID != nil && s.driverID.IsEqual(driverID)
}

// Transition moves the shipment to status `to` when the adjacency table
// allows it and appends exactly one timeline entry. Moving to picked stamps
// the actual pickup date; moving to delivered stamps the actual delivery
// date. On error nothing changes.
//
// Whether actor may transition this shipment at all is decided by the
// access gateway, not here.
func (s *Shipment) Transition(
	to Status,
	actor kernel.Actor,
	notes string,
	location *kernel.Coordinates,
	now time.Time,
) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return err
		}
	}

	from := s.Status()
	if _, err := from.Transition(to); err != nil {
		return err
	}
	if to == Assigned {
		return errs.NewInvalidStateError("driver", "unassigned", "assigned through driver assignment")
	}

	s.appendStatus(from, to, actor, notes, location, now)
	return nil
}

// AssignDriver sets the driver reference and transitions pending -> assigned
// as one step. Driver eligibility is checked by the caller.
func (s *Shipment) AssignDriver(driverID kernel.UUID, driverName string, actor kernel.Actor, now time.Time) error {
	if err := errors.Join(driverID.Validate(), actor.Validate()); err != nil {
		return err
	}

	from := s.Status()
	if from != Pending {
		return errs.NewInvalidStateError("shipment", from.String(), Pending.String())
	}
	if _, err := from.Transition(Assigned); err != nil {
		return err
	}

	id := driverID
	s.driverID = &id

	note := fmt.Sprintf("Assigned to driver %s (%s)", driverName, driverID)
	if strings.TrimSpace(driverName) == "" {
		note = fmt.Sprintf("Assigned to driver %s", driverID)
	}
	s.appendStatus(from, Assigned, actor, note, nil, now)

	s.Record(DriverAssignedEvent{
		ShipmentID:     s.id,
		TrackingNumber: s.trackingNumber.String(),
		DriverID:       driverID.String(),
		At:             now.UTC(),
	})
	return nil
}

// Cancel transitions to cancelled and fills the cancellation slot.
func (s *Shipment) Cancel(reason CancellationReason, notes string, actor kernel.Actor, now time.Time) error {
	if err := errors.Join(reason.Validate(), actor.Validate()); err != nil {
		return err
	}
	from := s.Status()
	if _, err := from.Transition(Cancelled); err != nil {
		return err
	}

	timelineNote := "Cancelled: " + string(reason)
	if notes = strings.TrimSpace(notes); notes != "" {
		timelineNote += " - " + notes
	}
	s.appendStatus(from, Cancelled, actor, timelineNote, nil, now)
	s.cancellation = &Cancellation{
		Reason:      reason,
		Notes:       notes,
		CancelledBy: actor,
		CancelledAt: now.UTC(),
	}
	return nil
}

// ReportIssue appends an issue. It does not change the status.
func (s *Shipment) ReportIssue(issueType IssueType, description string, actor kernel.Actor, now time.Time) (Issue, error) {
	var errList []error
	errList = append(errList, issueType.Validate(), actor.Validate())
	if strings.TrimSpace(description) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("description"))
	}
	if err := errors.Join(errList...); err != nil {
		return Issue{}, err
	}

	issue := Issue{
		ID:          kernel.NewUUID(),
		Type:        issueType,
		Description: strings.TrimSpace(description),
		ReportedBy:  actor,
		ReportedAt:  now.UTC(),
	}
	s.issues.Append(issue)
	s.updatedAt = now.UTC()
	return issue, nil
}

// Rate fills the rating slot. Only the owning client may rate, only once,
// and only after delivery.
func (s *Shipment) Rate(score int, comment string, clientID kernel.UUID, now time.Time) error {
	if score < MinRatingScore || score > MaxRatingScore {
		return errs.NewValueIsOutOfRangeError("score", score, MinRatingScore, MaxRatingScore)
	}
	if !s.IsOwnedBy(clientID) {
		return errs.NewForbiddenError("shipments", "rate")
	}
	if st := s.Status(); st != Delivered {
		return errs.NewInvalidStateError("shipment", st.String(), Delivered.String())
	}
	if s.rating != nil {
		return errs.NewInvalidStateError("rating", "set", "unset")
	}

	s.rating = &Rating{
		Score:   score,
		Comment: strings.TrimSpace(comment),
		RatedBy: clientID,
		RatedAt: now.UTC(),
	}
	s.updatedAt = now.UTC()
	return nil
}

// AttachDocument appends a reference to an already stored file.
func (s *Shipment) AttachDocument(doc Document) error {
	var errList []error
	errList = append(errList, doc.Kind.Validate(), doc.UploadedBy.Validate())
	if strings.TrimSpace(doc.URL) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("url"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	if doc.ID.IsZero() {
		doc.ID = kernel.NewUUID()
	}
	doc.UploadedAt = doc.UploadedAt.UTC()

	s.documents.Append(doc)
	s.updatedAt = doc.UploadedAt
	return nil
}

func (s *Shipment) appendStatus(
	from, to Status,
	actor kernel.Actor,
	notes string,
	location *kernel.Coordinates,
	now time.Time,
) {
	now = now.UTC()
	s.timeline.Append(newTimelineEntry(to, now, location, strings.TrimSpace(notes), actor))
	s.updatedAt = now

	switch to {
	case Picked:
		s.actualPickupDate = &now
	case Delivered:
		s.actualDeliveryDate = &now
	default:
	}

	s.Record(StatusChangedEvent{
		ShipmentID:     s.id,
		TrackingNumber: s.trackingNumber.String(),
		From:           from.String(),
		To:             to.String(),
		Actor:          actor.String(),
		At:             now,
	})
}

func computeTotals(items []Item) (float64, kernel.Money) {
	currency := kernel.DefaultCurrency
	if len(items) > 0 {
		currency = items[0].Value().Currency()
	}
	weight := 0.0
	value := kernel.ZeroMoney(currency)
	for _, item := range items {
		weight += item.TotalWeightKg()
		value = value.Add(item.TotalValue())
	}
	return math.Round(weight*1000) / 1000, value
}

func validateClient(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	return nil
}

func validateItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	var errList []error
	currency := ""
	for i, item := range items {
		if err := item.Validate(); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err))
			continue
		}
		if currency == "" {
			currency = item.Value().Currency()
		} else if item.Value().Currency() != currency {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d].value", i), fmt.Errorf("currency %s differs from %s", item.Value().Currency(), currency)))
		}
	}
	return errors.Join(errList...)
}

func validateAddress(field string, a kernel.Address) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(field, err)
	}
	return nil
}

func validateSchedule(pickup, delivery, now time.Time) error {
	var errList []error
	if pickup.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("pickupDate"))
	} else if startOfDay := now.Truncate(24 * time.Hour); pickup.Before(startOfDay) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("pickupDate",
			fmt.Errorf("%s is in the past", pickup.UTC().Format(time.RFC3339))))
	}
	if delivery.IsZero() {
		errList = append(errList, errs.NewValueIsRequiredError("deliveryDate"))
	} else if !pickup.IsZero() && !delivery.After(pickup) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("deliveryDate",
			fmt.Errorf("%s is not after pickup date %s",
				delivery.UTC().Format(time.RFC3339), pickup.UTC().Format(time.RFC3339))))
	}
	return errors.Join(errList...)
}

func validateServiceType(t ServiceType) error {
	if t == "" {
		return nil
	}
	return t.Validate()
}

func validateCreator(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("createdBy", err)
	}
	return nil
}
