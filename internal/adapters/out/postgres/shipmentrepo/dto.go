// Package shipmentrepo persists shipment aggregates. A shipment is one row;
// the manifest and the append-only logs are jsonb columns, and the current
// status is denormalized into its own column for list queries.
package shipmentrepo

import (
	"errors"
	"time"

	"logistics/internal/adapters/out/postgres/columns"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

type ShipmentDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber      string     `gorm:"uniqueIndex;not null"`
	ClientID            uuid.UUID  `gorm:"type:uuid;index;not null"`
	DriverID            *uuid.UUID `gorm:"type:uuid;index"`
	Status              string     `gorm:"index;not null"`
	ServiceType         string     `gorm:"not null"`
	SpecialInstructions string
	TotalWeight         float64
	TotalValue          columns.MoneyDTO   `gorm:"embedded;embeddedPrefix:total_value_"`
	PickupAddress       columns.AddressDTO `gorm:"type:jsonb;serializer:json"`
	DeliveryAddress     columns.AddressDTO `gorm:"type:jsonb;serializer:json"`
	PickupDate          time.Time          `gorm:"not null"`
	DeliveryDate        time.Time          `gorm:"not null"`
	ActualPickupDate    *time.Time
	ActualDeliveryDate  *time.Time
	Items               []ItemDTO          `gorm:"type:jsonb;serializer:json"`
	Timeline            []TimelineEntryDTO `gorm:"type:jsonb;serializer:json"`
	Issues              []IssueDTO         `gorm:"type:jsonb;serializer:json"`
	Documents           []DocumentDTO      `gorm:"type:jsonb;serializer:json"`
	Cancellation        *CancellationDTO   `gorm:"type:jsonb;serializer:json"`
	Rating              *RatingDTO         `gorm:"type:jsonb;serializer:json"`
	CreatedAt           time.Time          `gorm:"index"`
	UpdatedAt           time.Time
	Version             int64 `gorm:"not null;default:0"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

type ItemDTO struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Quantity    int              `json:"quantity"`
	WeightKg    float64          `json:"weightKg"`
	Value       columns.MoneyDTO `json:"value"`
	Category    string           `json:"category"`
	Fragile     bool             `json:"fragile"`
}

type TimelineEntryDTO struct {
	Status   string                  `json:"status"`
	At       time.Time               `json:"at"`
	Location *columns.CoordinatesDTO `json:"location,omitempty"`
	Notes    string                  `json:"notes,omitempty"`
	Actor    columns.ActorDTO        `json:"actor"`
}

type IssueDTO struct {
	ID          string           `json:"id"`
	Type        string           `json:"type"`
	Description string           `json:"description"`
	ReportedBy  columns.ActorDTO `json:"reportedBy"`
	ReportedAt  time.Time        `json:"reportedAt"`
}

type DocumentDTO struct {
	ID          string           `json:"id"`
	Kind        string           `json:"kind"`
	URL         string           `json:"url"`
	Filename    string           `json:"filename"`
	ContentType string           `json:"contentType"`
	SizeBytes   int64            `json:"sizeBytes"`
	UploadedBy  columns.ActorDTO `json:"uploadedBy"`
	UploadedAt  time.Time        `json:"uploadedAt"`
}

type CancellationDTO struct {
	Reason      string           `json:"reason"`
	Notes       string           `json:"notes,omitempty"`
	CancelledBy columns.ActorDTO `json:"cancelledBy"`
	CancelledAt time.Time        `json:"cancelledAt"`
}

type RatingDTO struct {
	Score   int       `json:"score"`
	Comment string    `json:"comment,omitempty"`
	RatedBy string    `json:"ratedBy"`
	RatedAt time.Time `json:"ratedAt"`
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	items := make([]ItemDTO, 0, len(s.Items()))
	for _, it := range s.Items() {
		items = append(items, ItemDTO{
			Name:        it.Name(),
			Description: it.Description(),
			Quantity:    it.Quantity(),
			WeightKg:    it.WeightKg(),
			Value:       columns.MoneyFromDomain(it.Value()),
			Category:    string(it.Category()),
			Fragile:     it.Fragile(),
		})
	}

	timeline := make([]TimelineEntryDTO, 0, len(s.Timeline()))
	for _, e := range s.Timeline() {
		timeline = append(timeline, TimelineEntryDTO{
			Status:   e.Status().String(),
			At:       e.At(),
			Location: columns.CoordinatesFromDomain(e.Location()),
			Notes:    e.Notes(),
			Actor:    columns.ActorFromDomain(e.Actor()),
		})
	}

	issues := make([]IssueDTO, 0, len(s.Issues()))
	for _, is := range s.Issues() {
		issues = append(issues, IssueDTO{
			ID:          is.ID.String(),
			Type:        string(is.Type),
			Description: is.Description,
			ReportedBy:  columns.ActorFromDomain(is.ReportedBy),
			ReportedAt:  is.ReportedAt,
		})
	}

	docs := make([]DocumentDTO, 0, len(s.Documents()))
	for _, d := range s.Documents() {
		docs = append(docs, DocumentDTO{
			ID:          d.ID.String(),
			Kind:        string(d.Kind),
			URL:         d.URL,
			Filename:    d.Filename,
			ContentType: d.ContentType,
			SizeBytes:   d.SizeBytes,
			UploadedBy:  columns.ActorFromDomain(d.UploadedBy),
			UploadedAt:  d.UploadedAt,
		})
	}

	var cancellation *CancellationDTO
	if c := s.Cancellation(); c != nil {
		cancellation = &CancellationDTO{
			Reason:      string(c.Reason),
			Notes:       c.Notes,
			CancelledBy: columns.ActorFromDomain(c.CancelledBy),
			CancelledAt: c.CancelledAt,
		}
	}

	var rating *RatingDTO
	if r := s.Rating(); r != nil {
		rating = &RatingDTO{
			Score:   r.Score,
			Comment: r.Comment,
			RatedBy: r.RatedBy.String(),
			RatedAt: r.RatedAt,
		}
	}

	return ShipmentDTO{
		ID:                  s.ID().Bytes(),
		TrackingNumber:      s.TrackingNumber().String(),
		ClientID:            s.ClientID().Bytes(),
		DriverID:            columns.UUIDPtr(s.DriverID()),
		Status:              s.Status().String(),
		ServiceType:         string(s.ServiceType()),
		SpecialInstructions: s.SpecialInstructions(),
		TotalWeight:         s.TotalWeight(),
		TotalValue:          columns.MoneyFromDomain(s.TotalValue()),
		PickupAddress:       columns.AddressFromDomain(s.PickupAddress()),
		DeliveryAddress:     columns.AddressFromDomain(s.DeliveryAddress()),
		PickupDate:          s.PickupDate(),
		DeliveryDate:        s.DeliveryDate(),
		ActualPickupDate:    s.ActualPickupDate(),
		ActualDeliveryDate:  s.ActualDeliveryDate(),
		Items:               items,
		Timeline:            timeline,
		Issues:              issues,
		Documents:           docs,
		Cancellation:        cancellation,
		Rating:              rating,
		CreatedAt:           s.CreatedAt(),
		UpdatedAt:           s.UpdatedAt(),
		Version:             s.Version(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, idErr := columns.KernelUUID(dto.ID)
	clientID, clientErr := columns.KernelUUID(dto.ClientID)
	driverID, driverErr := columns.KernelUUIDPtr(dto.DriverID)
	tracking, trackingErr := shipment.ParseTrackingNumber(dto.TrackingNumber)
	pickup, pickupErr := dto.PickupAddress.ToDomain("pickupAddress")
	delivery, deliveryErr := dto.DeliveryAddress.ToDomain("deliveryAddress")
	if err := errors.Join(idErr, clientErr, driverErr, trackingErr, pickupErr, deliveryErr); err != nil {
		return nil, err
	}

	items := make([]shipment.Item, 0, len(dto.Items))
	for i, it := range dto.Items {
		item, err := shipment.NewItem(i, shipment.ItemParams{
			Name:        it.Name,
			Description: it.Description,
			Quantity:    it.Quantity,
			WeightKg:    it.WeightKg,
			Value:       it.Value.ToDomain(),
			Category:    shipment.Category(it.Category),
			Fragile:     it.Fragile,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	timeline := make([]shipment.TimelineEntry, 0, len(dto.Timeline))
	for _, e := range dto.Timeline {
		status, err := shipment.ParseStatus(e.Status)
		if err != nil {
			return nil, err
		}
		location, err := e.Location.ToDomain()
		if err != nil {
			return nil, err
		}
		actor, err := e.Actor.ToDomain()
		if err != nil {
			return nil, err
		}
		timeline = append(timeline, shipment.RestoreTimelineEntry(status, e.At, location, e.Notes, actor))
	}

	issues := make([]shipment.Issue, 0, len(dto.Issues))
	for _, is := range dto.Issues {
		issueID, err := kernel.UUIDFromString(is.ID)
		if err != nil {
			return nil, err
		}
		actor, err := is.ReportedBy.ToDomain()
		if err != nil {
			return nil, err
		}
		issues = append(issues, shipment.Issue{
			ID:          issueID,
			Type:        shipment.IssueType(is.Type),
			Description: is.Description,
			ReportedBy:  actor,
			ReportedAt:  is.ReportedAt,
		})
	}

	docs := make([]shipment.Document, 0, len(dto.Documents))
	for _, d := range dto.Documents {
		docID, err := kernel.UUIDFromString(d.ID)
		if err != nil {
			return nil, err
		}
		actor, err := d.UploadedBy.ToDomain()
		if err != nil {
			return nil, err
		}
		docs = append(docs, shipment.Document{
			ID:          docID,
			Kind:        shipment.DocumentKind(d.Kind),
			URL:         d.URL,
			Filename:    d.Filename,
			ContentType: d.ContentType,
			SizeBytes:   d.SizeBytes,
			UploadedBy:  actor,
			UploadedAt:  d.UploadedAt,
		})
	}

	var cancellation *shipment.Cancellation
	if c := dto.Cancellation; c != nil {
		actor, err := c.CancelledBy.ToDomain()
		if err != nil {
			return nil, err
		}
		cancellation = &shipment.Cancellation{
			Reason:      shipment.CancellationReason(c.Reason),
			Notes:       c.Notes,
			CancelledBy: actor,
			CancelledAt: c.CancelledAt,
		}
	}

	var rating *shipment.Rating
	if r := dto.Rating; r != nil {
		ratedBy, err := kernel.UUIDFromString(r.RatedBy)
		if err != nil {
			return nil, err
		}
		rating = &shipment.Rating{Score: r.Score, Comment: r.Comment, RatedBy: ratedBy, RatedAt: r.RatedAt}
	}

	return shipment.RestoreShipment(shipment.RestoreParams{
		ID:                  id,
		TrackingNumber:      tracking,
		ClientID:            clientID,
		DriverID:            driverID,
		Items:               items,
		TotalWeight:         dto.TotalWeight,
		TotalValue:          dto.TotalValue.ToDomain(),
		PickupAddress:       pickup,
		DeliveryAddress:     delivery,
		ServiceType:         shipment.ServiceType(dto.ServiceType),
		SpecialInstructions: dto.SpecialInstructions,
		PickupDate:          dto.PickupDate,
		DeliveryDate:        dto.DeliveryDate,
		ActualPickupDate:    dto.ActualPickupDate,
		ActualDeliveryDate:  dto.ActualDeliveryDate,
		Timeline:            timeline,
		Issues:              issues,
		Documents:           docs,
		Cancellation:        cancellation,
		Rating:              rating,
		CreatedAt:           dto.CreatedAt,
		UpdatedAt:           dto.UpdatedAt,
		Version:             dto.Version,
	})
}
