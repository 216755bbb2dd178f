package http

import (
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/payment"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Request side

func fromAPIUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func fromAPIUUIDPtr(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	u, err := fromAPIUUID(*id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func fromAPIAddress(a servers.Address) (kernel.AddressParams, error) {
	p := kernel.AddressParams{
		Street:       a.Street,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
		ContactName:  deref(a.ContactName),
		ContactPhone: deref(a.ContactPhone),
	}
	coords, err := fromAPICoordinates(a.Latitude, a.Longitude)
	if err != nil {
		return kernel.AddressParams{}, err
	}
	p.Coordinates = coords
	return p, nil
}

// fromAPICoordinates yields nil unless both halves are present.
func fromAPICoordinates(lat, lng *float64) (*kernel.Coordinates, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}
	c, err := kernel.NewCoordinates(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func fromAPIItems(items []servers.ShipmentItem) ([]shipment.ItemParams, error) {
	out := make([]shipment.ItemParams, 0, len(items))
	for _, it := range items {
		value, err := kernel.NewMoney(it.Value.Amount, it.Value.Currency)
		if err != nil {
			return nil, err
		}
		out = append(out, shipment.ItemParams{
			Name:        it.Name,
			Description: deref(it.Description),
			Quantity:    it.Quantity,
			WeightKg:    it.WeightKg,
			Value:       value,
			Category:    shipment.Category(it.Category),
			Fragile:     deref(it.Fragile),
		})
	}
	return out, nil
}

func fromAPICharges(charges *[]servers.ChargeInput) []commands.ChargeInput {
	if charges == nil {
		return nil
	}
	out := make([]commands.ChargeInput, 0, len(*charges))
	for _, c := range *charges {
		out = append(out, commands.ChargeInput{
			Type:        payment.ChargeType(c.Type),
			Description: deref(c.Description),
			Amount:      c.Amount,
			Quantity:    deref(c.Quantity),
			Rate:        deref(c.Rate),
		})
	}
	return out
}

// Response side

func toAPIUUID(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

func toAPIUUIDPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	u := toAPIUUID(*id)
	return &u
}

func toAPIMoney(m kernel.Money) servers.Money {
	return servers.Money{Amount: m.Amount(), Currency: m.Currency()}
}

func toAPIActor(a kernel.Actor) servers.Actor {
	out := servers.Actor{Kind: servers.ActorKind(a.Kind().String())}
	if id, ok := a.ID(); ok {
		out.Id = toAPIUUIDPtr(&id)
	}
	return out
}

func toAPIAddress(a kernel.Address) servers.Address {
	out := servers.Address{
		Street:       a.Street(),
		City:         a.City(),
		State:        a.State(),
		PostalCode:   a.PostalCode(),
		Country:      a.Country(),
		ContactName:  optional(a.ContactName()),
		ContactPhone: optional(a.ContactPhone()),
	}
	if c := a.Coordinates(); c != nil {
		lat, lng := c.Lat(), c.Lng()
		out.Latitude, out.Longitude = &lat, &lng
	}
	return out
}

func toAPIShipment(s *shipment.Shipment) servers.Shipment {
	items := s.Items()
	apiItems := make([]servers.ShipmentItem, 0, len(items))
	for _, it := range items {
		fragile := it.Fragile()
		apiItems = append(apiItems, servers.ShipmentItem{
			Name:        it.Name(),
			Description: optional(it.Description()),
			Quantity:    it.Quantity(),
			WeightKg:    it.WeightKg(),
			Value:       toAPIMoney(it.Value()),
			Category:    servers.ItemCategory(it.Category()),
			Fragile:     &fragile,
		})
	}

	timeline := s.Timeline()
	apiTimeline := make([]servers.ShipmentTimelineEntry, 0, len(timeline))
	for _, e := range timeline {
		entry := servers.ShipmentTimelineEntry{
			Status: servers.ShipmentStatus(e.Status().String()),
			At:     e.At(),
			Notes:  optional(e.Notes()),
			Actor:  toAPIActor(e.Actor()),
		}
		if loc := e.Location(); loc != nil {
			lat, lng := loc.Lat(), loc.Lng()
			entry.Latitude, entry.Longitude = &lat, &lng
		}
		apiTimeline = append(apiTimeline, entry)
	}

	issues := s.Issues()
	apiIssues := make([]servers.ShipmentIssue, 0, len(issues))
	for _, i := range issues {
		apiIssues = append(apiIssues, toAPIIssue(i))
	}

	docs := s.Documents()
	apiDocs := make([]servers.ShipmentDocument, 0, len(docs))
	for _, d := range docs {
		apiDocs = append(apiDocs, toAPIDocument(d))
	}

	out := servers.Shipment{
		Id:                   toAPIUUID(s.ID()),
		TrackingNumber:       s.TrackingNumber().String(),
		ClientId:             toAPIUUID(s.ClientID()),
		DriverId:             toAPIUUIDPtr(s.DriverID()),
		Status:               servers.ShipmentStatus(s.Status().String()),
		ServiceType:          servers.ServiceType(s.ServiceType()),
		Items:                apiItems,
		PickupAddress:        toAPIAddress(s.PickupAddress()),
		DeliveryAddress:      toAPIAddress(s.DeliveryAddress()),
		PickupDate:           s.PickupDate(),
		DeliveryDate:         s.DeliveryDate(),
		ActualPickupDate:     s.ActualPickupDate(),
		ActualDeliveryDate:   s.ActualDeliveryDate(),
		TotalWeight:          s.TotalWeight(),
		TotalValue:           toAPIMoney(s.TotalValue()),
		SpecialInstructions:  optional(s.SpecialInstructions()),
		Timeline:             apiTimeline,
		Issues:               apiIssues,
		Documents:            apiDocs,
		EstimatedTransitDays: s.EstimatedTransitDays(),
		CreatedAt:            s.CreatedAt(),
		UpdatedAt:            s.UpdatedAt(),
		Version:              s.Version(),
	}
	if c := s.Cancellation(); c != nil {
		out.Cancellation = &servers.ShipmentCancellation{
			Reason:      string(c.Reason),
			Notes:       optional(c.Notes),
			CancelledBy: toAPIActor(c.CancelledBy),
			CancelledAt: c.CancelledAt,
		}
	}
	if r := s.Rating(); r != nil {
		out.Rating = &servers.ShipmentRating{
			Score:   r.Score,
			Comment: optional(r.Comment),
			RatedBy: toAPIUUID(r.RatedBy),
			RatedAt: r.RatedAt,
		}
	}
	return out
}

func toAPIIssue(i shipment.Issue) servers.ShipmentIssue {
	return servers.ShipmentIssue{
		Id:          toAPIUUID(i.ID),
		Type:        string(i.Type),
		Description: i.Description,
		ReportedBy:  toAPIActor(i.ReportedBy),
		ReportedAt:  i.ReportedAt,
	}
}

func toAPIDocument(d shipment.Document) servers.ShipmentDocument {
	return servers.ShipmentDocument{
		Id:          toAPIUUID(d.ID),
		Kind:        string(d.Kind),
		Url:         d.URL,
		Filename:    d.Filename,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		UploadedBy:  toAPIActor(d.UploadedBy),
		UploadedAt:  d.UploadedAt,
	}
}

func toAPIShipmentPage(page queries.ListShipmentsQueryResponse, limit, offset int) servers.ShipmentPage {
	items := make([]servers.ShipmentSummary, 0, len(page.Items))
	for _, s := range page.Items {
		items = append(items, servers.ShipmentSummary{
			Id:             toAPIUUID(s.ID),
			TrackingNumber: s.TrackingNumber,
			ClientId:       toAPIUUID(s.ClientID),
			DriverId:       toAPIUUIDPtr(s.DriverID),
			Status:         servers.ShipmentStatus(s.Status.String()),
			ServiceType:    servers.ServiceType(s.ServiceType),
			TotalValue:     toAPIMoney(s.TotalValue),
			TotalWeight:    s.TotalWeight,
			PickupCity:     s.PickupCity,
			DeliveryCity:   s.DeliveryCity,
			PickupDate:     s.PickupDate,
			DeliveryDate:   s.DeliveryDate,
			CreatedAt:      s.CreatedAt,
		})
	}
	return servers.ShipmentPage{Items: items, Total: page.Total, Limit: limit, Offset: offset}
}

func toAPITrackingSnapshot(r queries.TrackShipmentQueryResponse) servers.TrackingSnapshot {
	events := make([]servers.TrackingEvent, 0, len(r.Timeline))
	for _, e := range r.Timeline {
		events = append(events, servers.TrackingEvent{
			Status:    servers.ShipmentStatus(e.Status),
			At:        e.At,
			Notes:     optional(e.Notes),
			Latitude:  e.Latitude,
			Longitude: e.Longitude,
		})
	}
	return servers.TrackingSnapshot{
		TrackingNumber:     r.TrackingNumber,
		Status:             servers.ShipmentStatus(r.Status),
		ServiceType:        servers.ServiceType(r.ServiceType),
		PickupDate:         r.PickupDate,
		DeliveryDate:       r.DeliveryDate,
		ActualPickupDate:   r.ActualPickupDate,
		ActualDeliveryDate: r.ActualDeliveryDate,
		Timeline:           events,
	}
}

func toAPIPayment(p *payment.Payment) servers.Payment {
	amount := p.Amount()

	charges := p.Charges()
	apiCharges := make([]servers.Charge, 0, len(charges))
	for _, c := range charges {
		apiCharges = append(apiCharges, servers.Charge{
			Type:        string(c.Type),
			Description: optional(c.Description),
			Amount:      toAPIMoney(c.Amount),
			Quantity:    c.Quantity,
			Rate:        toAPIMoney(c.Rate),
		})
	}

	timeline := p.Timeline()
	apiTimeline := make([]servers.PaymentTimelineEntry, 0, len(timeline))
	for _, e := range timeline {
		entry := servers.PaymentTimelineEntry{
			Status: servers.PaymentStatus(e.Status().String()),
			At:     e.At(),
			Notes:  optional(e.Notes()),
			Actor:  toAPIActor(e.Actor()),
		}
		if m := e.PartialAmount(); m != nil {
			money := toAPIMoney(*m)
			entry.PartialAmount = &money
		}
		apiTimeline = append(apiTimeline, entry)
	}

	refunds := p.Refunds()
	apiRefunds := make([]servers.Refund, 0, len(refunds))
	for _, r := range refunds {
		apiRefunds = append(apiRefunds, toAPIRefund(r))
	}

	partials := p.PartialPayments()
	apiPartials := make([]servers.PartialPayment, 0, len(partials))
	for _, pp := range partials {
		apiPartials = append(apiPartials, servers.PartialPayment{
			Id:            pp.ID,
			Amount:        toAPIMoney(pp.Amount),
			Method:        string(pp.Method),
			Status:        string(pp.Status),
			TransactionId: optional(pp.TransactionID),
			RecordedBy:    toAPIActor(pp.RecordedBy),
			PaidAt:        pp.PaidAt,
		})
	}

	return servers.Payment{
		Id:         toAPIUUID(p.ID()),
		ShipmentId: toAPIUUID(p.ShipmentID()),
		ClientId:   toAPIUUID(p.ClientID()),
		Amount: servers.PaymentAmount{
			Subtotal: amount.Subtotal().Amount(),
			Tax:      amount.Tax().Amount(),
			Discount: amount.Discount().Amount(),
			Total:    amount.Total().Amount(),
			Currency: amount.Currency(),
		},
		Charges:          apiCharges,
		Method:           servers.PaymentMethod(p.Method()),
		Terms:            servers.PaymentTerms(p.Terms()),
		Status:           servers.PaymentStatus(p.Status().String()),
		DueDate:          p.DueDate(),
		PaidDate:         p.PaidDate(),
		Notes:            optional(p.Notes()),
		Timeline:         apiTimeline,
		Refunds:          apiRefunds,
		PartialPayments:  apiPartials,
		TotalRefunded:    toAPIMoney(p.TotalRefunded()),
		RemainingBalance: toAPIMoney(p.RemainingBalance()),
		CreatedAt:        p.CreatedAt(),
		UpdatedAt:        p.UpdatedAt(),
		Version:          p.Version(),
	}
}

func toAPIRefund(r payment.Refund) servers.Refund {
	return servers.Refund{
		Id:                   r.ID,
		Amount:               toAPIMoney(r.Amount),
		Reason:               string(r.Reason),
		Method:               string(r.Method),
		Notes:                optional(r.Notes),
		Status:               string(r.Status),
		ProcessedBy:          toAPIActor(r.ProcessedBy),
		GatewayTransactionId: optional(r.GatewayTransactionID),
		RequestedAt:          r.RequestedAt,
		CompletedAt:          r.CompletedAt,
	}
}

func toAPIOverdue(o queries.ListOverduePaymentsQueryResponse) servers.OverduePayment {
	return servers.OverduePayment{
		PaymentId:        toAPIUUID(o.Payment.ID()),
		ShipmentId:       toAPIUUID(o.Payment.ShipmentID()),
		ClientId:         toAPIUUID(o.Payment.ClientID()),
		Status:           servers.PaymentStatus(o.Payment.Status().String()),
		DueDate:          o.Payment.DueDate(),
		RemainingBalance: toAPIMoney(o.Payment.RemainingBalance()),
		DaysOverdue:      o.DaysOverdue,
	}
}

func toAPIDriver(d *identity.Driver) servers.Driver {
	v := d.Vehicle()
	docs := d.Documents()
	return servers.Driver{
		Id:            toAPIUUID(d.ID()),
		Email:         d.Email(),
		FirstName:     d.FirstName(),
		LastName:      d.LastName(),
		Phone:         d.Phone(),
		LicenseNumber: d.LicenseNumber(),
		Vehicle: servers.Vehicle{
			Type:        v.Type,
			PlateNumber: v.PlateNumber,
			CapacityKg:  v.CapacityKg,
		},
		Status:    string(d.Status()),
		KycStatus: string(d.KYCStatus()),
		KycNotes:  optional(d.KYCNotes()),
		Documents: servers.DriverDocuments{
			License:             docs.License,
			VehicleRegistration: docs.VehicleRegistration,
			Insurance:           docs.Insurance,
			IdentityProof:       docs.IdentityProof,
		},
		CreatedAt: d.CreatedAt(),
	}
}

func toAPIEligibleDriver(d queries.ListEligibleDriversQueryResponse) servers.EligibleDriver {
	return servers.EligibleDriver{
		Id:           toAPIUUID(d.ID),
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		Phone:        d.Phone,
		VehicleType:  d.VehicleType,
		VehiclePlate: d.VehiclePlate,
		CapacityKg:   d.CapacityKg,
	}
}

func toAPIClient(c *identity.Client) servers.Client {
	return servers.Client{
		Id:           toAPIUUID(c.ID()),
		Email:        c.Email(),
		CompanyName:  c.CompanyName(),
		ContactName:  c.ContactName(),
		Phone:        c.Phone(),
		BillingTerms: optional(string(c.BillingTerms())),
		Status:       string(c.Status()),
		CreatedAt:    c.CreatedAt(),
	}
}

func toAPIAdmin(a *identity.Admin) servers.Admin {
	return servers.Admin{
		Id:          toAPIUUID(a.ID()),
		Email:       a.Email(),
		Name:        a.Name(),
		Role:        string(a.Role()),
		Permissions: servers.PermissionMap(a.Permissions().Map()),
		Status:      string(a.Status()),
		CreatedAt:   a.CreatedAt(),
	}
}

func toAPIPrincipal(p identity.Principal) servers.Principal {
	out := servers.Principal{
		Id:   toAPIUUID(p.ID),
		Type: servers.PrincipalType(p.Type),
	}
	if p.IsAdmin() {
		out.AdminRole = optional(string(p.AdminRole))
		perms := servers.PermissionMap(p.Permissions.Map())
		out.Permissions = &perms
	}
	return out
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
