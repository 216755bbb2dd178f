// Package columns holds the column and jsonb shapes shared by the
// repositories: actors, money, addresses and coordinates.
package columns

import (
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ActorDTO is the tagged actor as stored inside jsonb documents. ID is empty
// for the system actor.
type ActorDTO struct {
	Kind string `json:"kind"`
	ID   string `json:"id,omitempty"`
}

func ActorFromDomain(a kernel.Actor) ActorDTO {
	dto := ActorDTO{Kind: a.Kind().String()}
	if id, ok := a.ID(); ok {
		dto.ID = id.String()
	}
	return dto
}

func (d ActorDTO) ToDomain() (kernel.Actor, error) {
	return kernel.RestoreActor(d.Kind, d.ID)
}

// MoneyDTO stores minor units together with the ISO currency code.
type MoneyDTO struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

func MoneyFromDomain(m kernel.Money) MoneyDTO {
	return MoneyDTO{Amount: m.Amount(), Currency: m.Currency()}
}

func (d MoneyDTO) ToDomain() kernel.Money {
	return kernel.RestoreMoney(d.Amount, d.Currency)
}

type CoordinatesDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func CoordinatesFromDomain(c *kernel.Coordinates) *CoordinatesDTO {
	if c == nil {
		return nil
	}
	return &CoordinatesDTO{Lat: c.Lat(), Lng: c.Lng()}
}

func (d *CoordinatesDTO) ToDomain() (*kernel.Coordinates, error) {
	if d == nil {
		return nil, nil
	}
	c, err := kernel.NewCoordinates(d.Lat, d.Lng)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

type AddressDTO struct {
	Street       string          `json:"street"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	PostalCode   string          `json:"postalCode"`
	Country      string          `json:"country"`
	ContactName  string          `json:"contactName,omitempty"`
	ContactPhone string          `json:"contactPhone,omitempty"`
	Coordinates  *CoordinatesDTO `json:"coordinates,omitempty"`
}

func AddressFromDomain(a kernel.Address) AddressDTO {
	return AddressDTO{
		Street:       a.Street(),
		City:         a.City(),
		State:        a.State(),
		PostalCode:   a.PostalCode(),
		Country:      a.Country(),
		ContactName:  a.ContactName(),
		ContactPhone: a.ContactPhone(),
		Coordinates:  CoordinatesFromDomain(a.Coordinates()),
	}
}

// ToDomain re-validates the address; field names the address in errors.
func (d AddressDTO) ToDomain(field string) (kernel.Address, error) {
	coords, err := d.Coordinates.ToDomain()
	if err != nil {
		return kernel.Address{}, err
	}
	return kernel.NewAddress(field, kernel.AddressParams{
		Street:       d.Street,
		City:         d.City,
		State:        d.State,
		PostalCode:   d.PostalCode,
		Country:      d.Country,
		ContactName:  d.ContactName,
		ContactPhone: d.ContactPhone,
		Coordinates:  coords,
	})
}

// UUIDPtr converts an optional kernel id into its column form.
func UUIDPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// KernelUUIDPtr is the inverse of UUIDPtr.
func KernelUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	k, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func KernelUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}
