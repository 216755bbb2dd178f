package kernel

import (
	"errors"
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

var (
	ErrAddressIsNotConstructed     = errs.NewValueIsRequiredError("address must be created via NewAddress")
	ErrCoordinatesIsNotConstructed = errs.NewValueIsRequiredError("coordinates must be created via NewCoordinates")
)

// Coordinates is a WGS84 point attached to an address or a timeline entry.
type Coordinates struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

func NewCoordinates(lat, lng float64) (Coordinates, error) {
	var errList []error
	if lat < LatitudeMin || lat > LatitudeMax {
		errList = append(errList, errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax))
	}
	if lng < LongitudeMin || lng > LongitudeMax {
		errList = append(errList, errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax))
	}
	if err := errors.Join(errList...); err != nil {
		return Coordinates{}, err
	}
	return Coordinates{lat: lat, lng: lng, guard: guard.NewConstructorGuard()}, nil
}

func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesIsNotConstructed)
}

func (c Coordinates) Lat() float64 {
	return c.lat
}

func (c Coordinates) Lng() float64 {
	return c.lng
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%.6f,%.6f)", c.lat, c.lng)
}

// AddressParams carries raw address input; Coordinates is optional.
type AddressParams struct {
	Street       string
	City         string
	State        string
	PostalCode   string
	Country      string
	ContactName  string
	ContactPhone string
	Coordinates  *Coordinates
}

// Address is a full postal address. Street, city, state, postal code and
// country are required; contact details and coordinates are optional.
type Address struct { //nolint:recvcheck //using for validation
	street       string
	city         string
	state        string
	postalCode   string
	country      string
	contactName  string
	contactPhone string
	coordinates  *Coordinates
	guard        guard.ConstructorGuard
}

// NewAddress reports every missing field at once, each prefixed with field,
// e.g. "pickupAddress.city".
func NewAddress(field string, p AddressParams) (Address, error) {
	required := []struct {
		name  string
		value string
	}{
		{"street", p.Street},
		{"city", p.City},
		{"state", p.State},
		{"postalCode", p.PostalCode},
		{"country", p.Country},
	}

	var errList []error
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errList = append(errList, errs.NewValueIsRequiredError(field+"."+r.name))
		}
	}
	if p.Coordinates != nil {
		if err := p.Coordinates.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return Address{}, err
	}

	return Address{
		street:       strings.TrimSpace(p.Street),
		city:         strings.TrimSpace(p.City),
		state:        strings.TrimSpace(p.State),
		postalCode:   strings.TrimSpace(p.PostalCode),
		country:      strings.TrimSpace(p.Country),
		contactName:  strings.TrimSpace(p.ContactName),
		contactPhone: strings.TrimSpace(p.ContactPhone),
		coordinates:  p.Coordinates,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Street() string       { return a.street }
func (a Address) City() string         { return a.city }
func (a Address) State() string        { return a.state }
func (a Address) PostalCode() string   { return a.postalCode }
func (a Address) Country() string      { return a.country }
func (a Address) ContactName() string  { return a.contactName }
func (a Address) ContactPhone() string { return a.contactPhone }

// Coordinates returns nil when the address was not geocoded.
func (a Address) Coordinates() *Coordinates {
	return a.coordinates
}

// Params returns the raw form of a, used by persistence adapters.
func (a Address) Params() AddressParams {
	return AddressParams{
		Street:       a.street,
		City:         a.city,
		State:        a.state,
		PostalCode:   a.postalCode,
		Country:      a.country,
		ContactName:  a.contactName,
		ContactPhone: a.contactPhone,
		Coordinates:  a.coordinates,
	}
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s, %s", a.street, a.city, a.state, a.postalCode, a.country)
}
