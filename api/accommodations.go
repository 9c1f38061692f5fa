package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
)

// AccommodationType enumerates the listing categories the backend accepts.
// Values are the display strings the backend stores verbatim.
type AccommodationType string

const (
	TypeApartment  AccommodationType = "Appartement"
	TypeHouse      AccommodationType = "Maison"
	TypeChalet     AccommodationType = "Chalet"
	TypeCabin      AccommodationType = "Cabane"
	TypeTinyHouse  AccommodationType = "Tiny house"
	TypeYurtTipi   AccommodationType = "Yourte/Tipi"
	TypeCaravan    AccommodationType = "Roulotte"
	TypeTroglodyte AccommodationType = "Troglodyte"
	TypeLighthouse AccommodationType = "Phare/Refuge"
)

// ConnectivityType describes mobile-network coverage at the listing. EchoAway
// curates low-connectivity getaways, so this is a first-class field.
type ConnectivityType string

const (
	ConnectivityNone  ConnectivityType = "Zone blanche"
	ConnectivityPoor  ConnectivityType = "Zone grise"
	ConnectivityOther ConnectivityType = "Autre"
)

var accommodationTypes = map[AccommodationType]struct{}{
	TypeApartment: {}, TypeHouse: {}, TypeChalet: {}, TypeCabin: {},
	TypeTinyHouse: {}, TypeYurtTipi: {}, TypeCaravan: {}, TypeTroglodyte: {},
	TypeLighthouse: {},
}

var connectivityTypes = map[ConnectivityType]struct{}{
	ConnectivityNone: {}, ConnectivityPoor: {}, ConnectivityOther: {},
}

// ValidAccommodationType reports whether t is a known listing category.
func ValidAccommodationType(t AccommodationType) bool {
	_, ok := accommodationTypes[t]
	return ok
}

// ValidConnectivityType reports whether t is a known coverage class.
func ValidConnectivityType(t ConnectivityType) bool {
	_, ok := connectivityTypes[t]
	return ok
}

// Accommodation is the full listing entity, metadata included.
type Accommodation struct {
	ID               int               `json:"id"`
	Title            string            `json:"title"`
	HostID           int               `json:"hostId"`
	Address          string            `json:"address"`
	PostalCode       string            `json:"postalCode"`
	City             string            `json:"city"`
	Type             AccommodationType `json:"type"`
	NumberOfBeds     int               `json:"numberOfBeds"`
	Connectivity     ConnectivityType  `json:"connectivity"`
	PriceMinPerNight float64           `json:"priceMinPerNight"`
	PriceMaxPerNight float64           `json:"priceMaxPerNight"`
	BookingLink      string            `json:"bookingLink,omitempty"`
	PhoneNumber      string            `json:"phoneNumber,omitempty"`
	Description      string            `json:"description"`
	CreatedAt        string            `json:"createdAt,omitempty"`
	UpdatedAt        string            `json:"updatedAt,omitempty"`
}

// AccommodationDraft is the create/update payload, without server-assigned
// metadata. HostID is optional: the backend derives it from the bearer token.
type AccommodationDraft struct {
	Title            string            `json:"title"`
	HostID           int               `json:"hostId,omitempty"`
	Address          string            `json:"address"`
	PostalCode       string            `json:"postalCode"`
	City             string            `json:"city"`
	Type             AccommodationType `json:"type"`
	NumberOfBeds     int               `json:"numberOfBeds"`
	Connectivity     ConnectivityType  `json:"connectivity"`
	PriceMinPerNight float64           `json:"priceMinPerNight"`
	PriceMaxPerNight float64           `json:"priceMaxPerNight"`
	BookingLink      string            `json:"bookingLink,omitempty"`
	PhoneNumber      string            `json:"phoneNumber,omitempty"`
	Description      string            `json:"description"`
}

// Field limits mirror the backend entity constraints.
const (
	maxTitleLength       = 100
	maxAddressLength     = 200
	maxCityLength        = 100
	maxDescriptionLength = 1000
	minBeds              = 1
	maxBeds              = 20
)

var (
	postalCodePattern  = regexp.MustCompile(`^\d{5}$`)
	bookingLinkPattern = regexp.MustCompile(`^https?://.+`)
	phonePattern       = regexp.MustCompile(`^(?:\+33|0)[1-9][0-9]{8}$`)
)

// Validate checks the draft against the backend's field constraints, so
// obviously bad payloads fail before a round-trip. The backend remains the
// authority; this is a convenience mirror of its rules.
func (d AccommodationDraft) Validate() error {
	switch {
	case d.Title == "":
		return errors.New("title is required")
	case len(d.Title) > maxTitleLength:
		return fmt.Errorf("title exceeds %d characters", maxTitleLength)
	case d.Address == "":
		return errors.New("address is required")
	case len(d.Address) > maxAddressLength:
		return fmt.Errorf("address exceeds %d characters", maxAddressLength)
	case d.City == "":
		return errors.New("city is required")
	case len(d.City) > maxCityLength:
		return fmt.Errorf("city exceeds %d characters", maxCityLength)
	case d.Description == "":
		return errors.New("description is required")
	case len(d.Description) > maxDescriptionLength:
		return fmt.Errorf("description exceeds %d characters", maxDescriptionLength)
	}

	if !postalCodePattern.MatchString(d.PostalCode) {
		return fmt.Errorf("postal code %q is not a five-digit code", d.PostalCode)
	}
	if !ValidAccommodationType(d.Type) {
		return fmt.Errorf("unknown accommodation type %q", d.Type)
	}
	if !ValidConnectivityType(d.Connectivity) {
		return fmt.Errorf("unknown connectivity type %q", d.Connectivity)
	}
	if d.NumberOfBeds < minBeds || d.NumberOfBeds > maxBeds {
		return fmt.Errorf("number of beds must be between %d and %d", minBeds, maxBeds)
	}
	if d.PriceMinPerNight < 0 || d.PriceMaxPerNight < 0 {
		return errors.New("prices must not be negative")
	}
	if d.PriceMaxPerNight < d.PriceMinPerNight {
		return errors.New("maximum price is below minimum price")
	}
	if d.BookingLink != "" && !bookingLinkPattern.MatchString(d.BookingLink) {
		return fmt.Errorf("booking link %q is not an http(s) URL", d.BookingLink)
	}
	if d.PhoneNumber != "" && !phonePattern.MatchString(d.PhoneNumber) {
		return fmt.Errorf("phone number %q is not a valid French number", d.PhoneNumber)
	}
	return nil
}

// ListAccommodations fetches all listings. Public, no auth.
func (c *Client) ListAccommodations(ctx context.Context) ([]Accommodation, error) {
	var out []Accommodation
	if err := c.do(ctx, http.MethodGet, "/accommodations", false, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAccommodation fetches one listing by id. Public, no auth.
func (c *Client) GetAccommodation(ctx context.Context, id int) (*Accommodation, error) {
	var out Accommodation
	if err := c.do(ctx, http.MethodGet, "/accommodations/"+strconv.Itoa(id), false, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAccommodation creates a listing. Requires a bearer token.
func (c *Client) CreateAccommodation(ctx context.Context, draft AccommodationDraft) (*Accommodation, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	var out Accommodation
	if err := c.do(ctx, http.MethodPost, "/accommodations", true, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAccommodation replaces a listing. Requires a bearer token.
func (c *Client) UpdateAccommodation(ctx context.Context, id int, draft AccommodationDraft) (*Accommodation, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	var out Accommodation
	if err := c.do(ctx, http.MethodPut, "/accommodations/"+strconv.Itoa(id), true, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAccommodation removes a listing. The backend answers 204; the empty
// body is a successful result. Requires a bearer token.
func (c *Client) DeleteAccommodation(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/accommodations/"+strconv.Itoa(id), true, nil, nil)
}
