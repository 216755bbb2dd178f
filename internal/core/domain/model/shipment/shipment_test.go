package shipment_test

import (
	"strings"
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipment(t *testing.T) {
	t.Run("computes totals and writes the initial pending entry", func(t *testing.T) {
		p := validCreateParams(t)

		s, err := shipment.NewShipment(p, testNow)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.InDelta(t, 10.0, s.TotalWeight(), 1e-9)
		assert.Equal(t, int64(3000), s.TotalValue().Amount())
		assert.Equal(t, shipment.Pending, s.Status())
		require.Len(t, s.Timeline(), 1)
		assert.Equal(t, shipment.Pending, s.Timeline()[0].Status())
		assert.Equal(t, p.CreatedBy, s.Timeline()[0].Actor())
		assert.Nil(t, s.DriverID())
		assert.Equal(t, shipment.ServiceStandard, s.ServiceType())
		assert.Equal(t, 3, s.EstimatedTransitDays())
		assert.True(t, strings.HasPrefix(s.TrackingNumber().String(), "trk_"))
		assert.True(t, s.IsOwnedBy(p.ClientID))

		events := s.DomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, shipment.EventCreated, events[0].EventName())
	})

	t.Run("generates unique identifiers", func(t *testing.T) {
		a := newTestShipment(t)
		b := newTestShipment(t)

		assert.False(t, a.ID().IsEqual(b.ID()))
		assert.NotEqual(t, a.TrackingNumber(), b.TrackingNumber())
	})

	t.Run("accepts a pickup later today", func(t *testing.T) {
		p := validCreateParams(t)
		p.PickupDate = testNow.Add(-time.Hour)

		_, err := shipment.NewShipment(p, testNow)

		require.NoError(t, err)
	})

	tests := []struct {
		name    string
		mutate  func(p *shipment.CreateParams)
		contain string
	}{
		{"no items", func(p *shipment.CreateParams) { p.Items = nil }, "items"},
		{"pickup in the past", func(p *shipment.CreateParams) { p.PickupDate = testNow.Add(-48 * time.Hour) }, "pickupDate"},
		{"delivery equals pickup", func(p *shipment.CreateParams) { p.DeliveryDate = p.PickupDate }, "deliveryDate"},
		{"delivery before pickup", func(p *shipment.CreateParams) { p.DeliveryDate = p.PickupDate.Add(-time.Hour) }, "deliveryDate"},
		{"missing pickup address", func(p *shipment.CreateParams) { p.PickupAddress = kernel.Address{} }, "pickupAddress"},
		{"missing client", func(p *shipment.CreateParams) { p.ClientID = kernel.UUID{} }, "clientId"},
		{"unknown service type", func(p *shipment.CreateParams) { p.ServiceType = "teleport" }, "serviceType"},
		{"unconstructed item", func(p *shipment.CreateParams) { p.Items = []shipment.Item{{}} }, "items[0]"},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			p := validCreateParams(t)
			tt.mutate(&p)

			s, err := shipment.NewShipment(p, testNow)

			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, errs.IsValidation(err), err.Error())
			assert.Contains(t, err.Error(), tt.contain)
		})
	}
}

func TestNewItem(t *testing.T) {
	value, _ := kernel.NewMoney(100, "usd")

	t.Run("valid", func(t *testing.T) {
		item, err := shipment.NewItem(0, shipment.ItemParams{
			Name: "Laptop", Quantity: 3, WeightKg: 2.5, Value: value, Category: shipment.CategoryElectronics, Fragile: true,
		})

		require.NoError(t, err)
		assert.InDelta(t, 7.5, item.TotalWeightKg(), 1e-9)
		assert.Equal(t, int64(300), item.TotalValue().Amount())
		assert.True(t, item.Fragile())
	})

	t.Run("reports every violated constraint", func(t *testing.T) {
		_, err := shipment.NewItem(2, shipment.ItemParams{
			Name: " ", Quantity: 0, WeightKg: 0.05, Value: value, Category: "weapons",
		})

		require.Error(t, err)
		for _, field := range []string{"items[2].name", "items[2].quantity", "items[2].weight", "items[2].category"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("minimum weight is accepted", func(t *testing.T) {
		_, err := shipment.NewItem(0, shipment.ItemParams{
			Name: "Letter", Quantity: 1, WeightKg: shipment.MinItemWeightKg, Value: value, Category: shipment.CategoryDocuments,
		})
		require.NoError(t, err)
	})
}

func TestShipment_Transition(t *testing.T) {
	driver := kernel.DriverActor(kernel.NewUUID())

	t.Run("allowed transitions append exactly one entry", func(t *testing.T) {
		for _, from := range shipment.AllStatuses() {
			for _, to := range from.Next() {
				if to == shipment.Assigned {
					continue
				}
				s := shipmentIn(t, from)
				before := len(s.Timeline())

				err := s.Transition(to, driver, "moving on", nil, testNow.Add(10*time.Hour))

				require.NoError(t, err, "%s -> %s", from, to)
				assert.Len(t, s.Timeline(), before+1)
				assert.Equal(t, to, s.Status())
				assert.Equal(t, to, s.CurrentStatusInfo().Status())
				assert.Equal(t, "moving on", s.CurrentStatusInfo().Notes())
			}
		}
	})

	t.Run("disallowed transitions leave the timeline unchanged", func(t *testing.T) {
		for _, from := range shipment.AllStatuses() {
			for _, to := range shipment.AllStatuses() {
				if from.CanTransitionTo(to) {
					continue
				}
				s := shipmentIn(t, from)
				before := s.Timeline()

				err := s.Transition(to, driver, "", nil, testNow.Add(10*time.Hour))

				require.ErrorIs(t, err, errs.ErrInvalidTransition, "%s -> %s", from, to)
				assert.Equal(t, before, s.Timeline())
				assert.Equal(t, from, s.Status())
			}
		}
	})

	t.Run("delivered to in_transit is rejected", func(t *testing.T) {
		s := shipmentIn(t, shipment.Delivered)

		err := s.Transition(shipment.InTransit, driver, "", nil, testNow)

		var transitionErr *errs.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "delivered", transitionErr.From)
		assert.Equal(t, "in_transit", transitionErr.To)
	})

	t.Run("assigned is reachable only through driver assignment", func(t *testing.T) {
		s := newTestShipment(t)

		err := s.Transition(shipment.Assigned, kernel.AdminActor(kernel.NewUUID()), "", nil, testNow)

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Len(t, s.Timeline(), 1)
		assert.Nil(t, s.DriverID())
	})

	t.Run("picked and delivered stamp actual dates", func(t *testing.T) {
		s := shipmentIn(t, shipment.Assigned)
		pickedAt := testNow.Add(30 * time.Hour)
		deliveredAt := testNow.Add(60 * time.Hour)

		require.NoError(t, s.Transition(shipment.Picked, driver, "", nil, pickedAt))
		require.NotNil(t, s.ActualPickupDate())
		assert.Equal(t, pickedAt, *s.ActualPickupDate())
		assert.Nil(t, s.ActualDeliveryDate())

		require.NoError(t, s.Transition(shipment.Processing, driver, "", nil, pickedAt))
		require.NoError(t, s.Transition(shipment.InTransit, driver, "", nil, pickedAt))
		require.NoError(t, s.Transition(shipment.Delivered, driver, "", nil, deliveredAt))
		require.NotNil(t, s.ActualDeliveryDate())
		assert.Equal(t, deliveredAt, *s.ActualDeliveryDate())
	})

	t.Run("records location on the entry", func(t *testing.T) {
		s := shipmentIn(t, shipment.Assigned)
		loc, _ := kernel.NewCoordinates(52.37, 4.89)

		require.NoError(t, s.Transition(shipment.Picked, driver, "", &loc, testNow))

		require.NotNil(t, s.CurrentStatusInfo().Location())
		assert.InDelta(t, 52.37, s.CurrentStatusInfo().Location().Lat(), 1e-9)
	})

	t.Run("rejects missing actor", func(t *testing.T) {
		s := shipmentIn(t, shipment.Assigned)

		err := s.Transition(shipment.Picked, kernel.Actor{}, "", nil, testNow)

		require.Error(t, err)
		assert.Equal(t, shipment.Assigned, s.Status())
	})
}

func TestShipment_AssignDriver(t *testing.T) {
	admin := kernel.AdminActor(kernel.NewUUID())

	t.Run("sets driver and status in one step", func(t *testing.T) {
		s := newTestShipment(t)
		driverID := kernel.NewUUID()

		err := s.AssignDriver(driverID, "Ada Driver", admin, testNow)

		require.NoError(t, err)
		require.NotNil(t, s.DriverID())
		assert.True(t, s.DriverID().IsEqual(driverID))
		assert.True(t, s.IsAssignedTo(driverID))
		assert.Equal(t, shipment.Assigned, s.Status())
		require.Len(t, s.Timeline(), 2)
		assert.Contains(t, s.CurrentStatusInfo().Notes(), "Ada Driver")
		assert.Contains(t, s.CurrentStatusInfo().Notes(), driverID.String())

		var names []string
		for _, e := range s.DomainEvents() {
			names = append(names, e.EventName())
		}
		assert.Contains(t, names, shipment.EventDriverAssigned)
		assert.Contains(t, names, shipment.EventStatusChanged)
	})

	t.Run("fails on a non-pending shipment without mutation", func(t *testing.T) {
		for _, st := range shipment.AllStatuses() {
			if st == shipment.Pending {
				continue
			}
			s := shipmentIn(t, st)
			driverBefore := s.DriverID()
			timelineBefore := s.Timeline()

			err := s.AssignDriver(kernel.NewUUID(), "Late", admin, testNow)

			require.ErrorIs(t, err, errs.ErrInvalidState, st.String())
			assert.Equal(t, driverBefore, s.DriverID())
			assert.Equal(t, timelineBefore, s.Timeline())
		}
	})

	t.Run("rejects a zero driver id", func(t *testing.T) {
		s := newTestShipment(t)

		err := s.AssignDriver(kernel.UUID{}, "", admin, testNow)

		require.Error(t, err)
		assert.Nil(t, s.DriverID())
		assert.Equal(t, shipment.Pending, s.Status())
	})
}

func TestShipment_Cancel(t *testing.T) {
	t.Run("client cancels a pending shipment", func(t *testing.T) {
		s := newTestShipment(t)
		client := kernel.ClientActor(s.ClientID())

		err := s.Cancel(shipment.CancelCustomerRequest, "changed my mind", client, testNow)

		require.NoError(t, err)
		assert.Equal(t, shipment.Cancelled, s.Status())
		require.NotNil(t, s.Cancellation())
		assert.Equal(t, shipment.CancelCustomerRequest, s.Cancellation().Reason)
		assert.Equal(t, client, s.Cancellation().CancelledBy)
		assert.Contains(t, s.CurrentStatusInfo().Notes(), "changed my mind")
	})

	t.Run("cannot cancel once picked", func(t *testing.T) {
		s := shipmentIn(t, shipment.Picked)

		err := s.Cancel(shipment.CancelOther, "", kernel.AdminActor(kernel.NewUUID()), testNow)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Nil(t, s.Cancellation())
	})

	t.Run("cannot cancel twice", func(t *testing.T) {
		s := shipmentIn(t, shipment.Cancelled)

		err := s.Cancel(shipment.CancelDuplicate, "", kernel.AdminActor(kernel.NewUUID()), testNow)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("rejects unknown reason", func(t *testing.T) {
		s := newTestShipment(t)

		err := s.Cancel("bored", "", kernel.ClientActor(s.ClientID()), testNow)

		require.True(t, errs.IsValidation(err))
		assert.Equal(t, shipment.Pending, s.Status())
	})
}

func TestShipment_Rate(t *testing.T) {
	t.Run("owning client rates a delivered shipment once", func(t *testing.T) {
		s := shipmentIn(t, shipment.Delivered)

		require.NoError(t, s.Rate(5, "great", s.ClientID(), testNow))
		require.NotNil(t, s.Rating())
		assert.Equal(t, 5, s.Rating().Score)

		err := s.Rate(4, "", s.ClientID(), testNow)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, 5, s.Rating().Score)
	})

	t.Run("not delivered yet", func(t *testing.T) {
		s := shipmentIn(t, shipment.InTransit)

		require.ErrorIs(t, s.Rate(3, "", s.ClientID(), testNow), errs.ErrInvalidState)
	})

	t.Run("other client", func(t *testing.T) {
		s := shipmentIn(t, shipment.Delivered)

		require.ErrorIs(t, s.Rate(3, "", kernel.NewUUID(), testNow), errs.ErrForbidden)
	})

	t.Run("score out of range", func(t *testing.T) {
		s := shipmentIn(t, shipment.Delivered)

		require.ErrorIs(t, s.Rate(6, "", s.ClientID(), testNow), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, s.Rate(0, "", s.ClientID(), testNow), errs.ErrValueIsOutOfRange)
	})
}

func TestShipment_IssuesAndDocuments(t *testing.T) {
	s := shipmentIn(t, shipment.InTransit)
	driver := kernel.DriverActor(*s.DriverID())

	issue, err := s.ReportIssue(shipment.IssueDelayed, "traffic jam", driver, testNow)
	require.NoError(t, err)
	assert.False(t, issue.ID.IsZero())
	require.Len(t, s.Issues(), 1)
	assert.Equal(t, shipment.InTransit, s.Status())

	_, err = s.ReportIssue(shipment.IssueDamaged, "", driver, testNow)
	require.True(t, errs.IsValidation(err))
	assert.Len(t, s.Issues(), 1)

	err = s.AttachDocument(shipment.Document{
		Kind:        shipment.DocumentPhoto,
		URL:         "http://blobs/abc.jpg",
		Filename:    "abc.jpg",
		ContentType: "image/jpeg",
		SizeBytes:   2048,
		UploadedBy:  driver,
		UploadedAt:  testNow,
	})
	require.NoError(t, err)
	require.Len(t, s.Documents(), 1)
	assert.False(t, s.Documents()[0].ID.IsZero())

	err = s.AttachDocument(shipment.Document{Kind: shipment.DocumentPhoto, UploadedBy: driver})
	require.Error(t, err)
	assert.Len(t, s.Documents(), 1)
}

func TestShipment_StatusAlwaysMatchesLatestEntry(t *testing.T) {
	s := newTestShipment(t)
	admin := kernel.AdminActor(kernel.NewUUID())
	driverID := kernel.NewUUID()
	driver := kernel.DriverActor(driverID)

	steps := []func() error{
		func() error { return s.AssignDriver(driverID, "D", admin, testNow) },
		func() error { return s.Transition(shipment.Delivered, driver, "", nil, testNow) },
		func() error { return s.Transition(shipment.Picked, driver, "", nil, testNow) },
		func() error { return s.Transition(shipment.Failed, driver, "", nil, testNow) },
		func() error { return s.Transition(shipment.Processing, admin, "", nil, testNow) },
		func() error { return s.Transition(shipment.InTransit, driver, "", nil, testNow) },
		func() error { return s.Transition(shipment.Returned, driver, "", nil, testNow) },
		func() error { return s.Transition(shipment.OutForDelivery, driver, "", nil, testNow) },
		func() error { return s.Transition(shipment.Returned, driver, "", nil, testNow) },
	}
	for _, step := range steps {
		_ = step()
		timeline := s.Timeline()
		require.NotEmpty(t, timeline)
		assert.Equal(t, timeline[len(timeline)-1].Status(), s.Status())
	}
	assert.Equal(t, shipment.Returned, s.Status())
	assert.True(t, s.Status().IsTerminal())
}

func TestRestoreShipment(t *testing.T) {
	base := newTestShipment(t)

	t.Run("rejects an empty timeline", func(t *testing.T) {
		_, err := shipment.RestoreShipment(shipment.RestoreParams{
			ID: base.ID(), TrackingNumber: base.TrackingNumber(), ClientID: base.ClientID(), Items: base.Items(),
		})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects a timeline not starting with pending", func(t *testing.T) {
		_, err := shipment.RestoreShipment(shipment.RestoreParams{
			ID: base.ID(), TrackingNumber: base.TrackingNumber(), ClientID: base.ClientID(), Items: base.Items(),
			Timeline: []shipment.TimelineEntry{
				shipment.RestoreTimelineEntry(shipment.Assigned, testNow, nil, "", kernel.SystemActor()),
			},
		})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTrackingNumber(t *testing.T) {
	tn, err := shipment.NewTrackingNumber()
	require.NoError(t, err)

	parsed, err := shipment.ParseTrackingNumber(tn.String())
	require.NoError(t, err)
	assert.Equal(t, tn, parsed)

	_, err = shipment.ParseTrackingNumber("not-a-tracking-number")
	require.True(t, errs.IsValidation(err))

	_, err = shipment.ParseTrackingNumber("pay_01h455vb4pex5vsknk084sn02q")
	require.True(t, errs.IsValidation(err))
}
