package commands

import (
	"errors"
	"strings"
	"time"

	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentInput is the raw request of a client, or of an admin acting
// on behalf of a client.
type CreateShipmentInput struct {
	ClientID            kernel.UUID
	Items               []shipment.ItemParams
	PickupAddress       kernel.AddressParams
	DeliveryAddress     kernel.AddressParams
	PickupDate          time.Time
	DeliveryDate        time.Time
	ServiceType         shipment.ServiceType
	SpecialInstructions string
}

// CreateShipmentCommand requests a new shipment in pending status.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(principal, CreateShipmentInput{
//	    ClientID:        principal.ID,
//	    Items:           []shipment.ItemParams{{Name: "Box", Quantity: 2, WeightKg: 5, Value: value, Category: shipment.CategoryOther}},
//	    PickupAddress:   pickup,
//	    DeliveryAddress: delivery,
//	    PickupDate:      tomorrow,
//	    DeliveryDate:    tomorrow.AddDate(0, 0, 3),
//	})
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	principal identity.Principal

	clientID            kernel.UUID
	items               []shipment.Item
	pickupAddress       kernel.Address
	deliveryAddress     kernel.Address
	pickupDate          time.Time
	deliveryDate        time.Time
	serviceType         shipment.ServiceType
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand validates the shape of the request. Date rules
// that depend on the current time are checked by the aggregate.
func NewCreateShipmentCommand(principal identity.Principal, in CreateShipmentInput) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		pickupDate:          in.PickupDate,
		deliveryDate:        in.DeliveryDate,
		serviceType:         in.ServiceType,
		specialInstructions: strings.TrimSpace(in.SpecialInstructions),
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPrincipal(principal),
		cmd.setClientID(principal, in.ClientID),
		cmd.setItems(in.Items),
		cmd.setAddresses(in.PickupAddress, in.DeliveryAddress),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) Principal() identity.Principal { return c.principal }
func (c CreateShipmentCommand) ClientID() kernel.UUID         { return c.clientID }
func (c CreateShipmentCommand) ActivityTarget() string        { return c.clientID.String() }

// Params converts the command into the aggregate's creation input.
func (c CreateShipmentCommand) Params() shipment.CreateParams {
	return shipment.CreateParams{
		ClientID:            c.clientID,
		Items:               c.items,
		PickupAddress:       c.pickupAddress,
		DeliveryAddress:     c.deliveryAddress,
		PickupDate:          c.pickupDate,
		DeliveryDate:        c.deliveryDate,
		ServiceType:         c.serviceType,
		SpecialInstructions: c.specialInstructions,
		CreatedBy:           c.principal.Actor(),
	}
}

func (c *CreateShipmentCommand) setPrincipal(p identity.Principal) error {
	if err := validatePrincipal(p); err != nil {
		return err
	}
	c.principal = p
	return nil
}

// A client always creates for itself, whatever the request names.
func (c *CreateShipmentCommand) setClientID(p identity.Principal, clientID kernel.UUID) error {
	if p.Type == identity.PrincipalClient {
		c.clientID = p.ID
		return nil
	}
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *CreateShipmentCommand) setItems(params []shipment.ItemParams) error {
	if len(params) == 0 {
		return shipment.ErrItemsAreRequired
	}
	var errList []error
	items := make([]shipment.Item, 0, len(params))
	for i, p := range params {
		item, err := shipment.NewItem(i, p)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	c.items = items
	return nil
}

func (c *CreateShipmentCommand) setAddresses(pickup, delivery kernel.AddressParams) error {
	p, pErr := kernel.NewAddress("pickupAddress", pickup)
	d, dErr := kernel.NewAddress("deliveryAddress", delivery)
	if err := errors.Join(pErr, dErr); err != nil {
		return err
	}
	c.pickupAddress = p
	c.deliveryAddress = d
	return nil
}
