package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDestinationName   = errors.New("destination name cannot be empty")
	ErrDestinationNameTooLong = errors.New("destination name is too long (max 255 characters)")
	ErrNegativePrice          = errors.New("unit price cannot be negative")
	ErrNegativeCapacity       = errors.New("available capacity cannot be negative")
)

const (
	MaxDestinationNameLength = 255
)

type Destination struct {
	id              uuid.UUID
	name            string
	description     string
	imageURL        string
	unitPrice       float64
	departureDate   *time.Time
	availableCount  int32
	categoryID      *uuid.UUID
	paymentMethodID *uuid.UUID
}

func NewDestination(
	id uuid.UUID,
	name, description, imageURL string,
	unitPrice float64,
	departureDate *time.Time,
	availableCount int32,
	categoryID, paymentMethodID *uuid.UUID,
) (*Destination, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyDestinationName
	}
	if len(name) > MaxDestinationNameLength {
		return nil, ErrDestinationNameTooLong
	}
	if unitPrice < 0 {
		return nil, ErrNegativePrice
	}
	if availableCount < 0 {
		return nil, ErrNegativeCapacity
	}

	return &Destination{
		id:              id,
		name:            name,
		description:     strings.TrimSpace(description),
		imageURL:        imageURL,
		unitPrice:       unitPrice,
		departureDate:   departureDate,
		availableCount:  availableCount,
		categoryID:      categoryID,
		paymentMethodID: paymentMethodID,
	}, nil
}

func (d *Destination) ID() uuid.UUID               { return d.id }
func (d *Destination) Name() string                { return d.name }
func (d *Destination) Description() string         { return d.description }
func (d *Destination) ImageURL() string            { return d.imageURL }
func (d *Destination) UnitPrice() float64          { return d.unitPrice }
func (d *Destination) DepartureDate() *time.Time   { return d.departureDate }
func (d *Destination) AvailableCount() int32       { return d.availableCount }
func (d *Destination) CategoryID() *uuid.UUID      { return d.categoryID }
func (d *Destination) PaymentMethodID() *uuid.UUID { return d.paymentMethodID }

// TotalFor computes the price of a cart line referencing this destination.
// The total is derived, never stored: the destination's current price is the
// source of truth.
func (d *Destination) TotalFor(quantity int32) float64 {
	return d.unitPrice * float64(quantity)
}
