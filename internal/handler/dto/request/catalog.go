package request

import (
	"time"

	"tripcart/internal/domain/catalog"

	"github.com/google/uuid"
)

type DestinationRequest struct {
	Name            string     `json:"name" binding:"required"`
	Description     string     `json:"description"`
	ImageURL        string     `json:"image_url"`
	UnitPrice       float64    `json:"unit_price" binding:"required"`
	DepartureDate   *time.Time `json:"departure_date,omitempty"`
	AvailableCount  int32      `json:"available_count"`
	CategoryID      *uuid.UUID `json:"category_id,omitempty"`
	PaymentMethodID *uuid.UUID `json:"payment_method_id,omitempty"`
}

func (r DestinationRequest) ToDomain(id uuid.UUID) (*catalog.Destination, error) {
	return catalog.NewDestination(
		id,
		r.Name,
		r.Description,
		r.ImageURL,
		r.UnitPrice,
		r.DepartureDate,
		r.AvailableCount,
		r.CategoryID,
		r.PaymentMethodID,
	)
}

type AboutEntryRequest struct {
	FullName string  `json:"full_name" binding:"required"`
	GitHub   *string `json:"github,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
}
