package response

import (
	"time"

	"tripcart/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CartLineResponse struct {
	ID                uuid.UUID  `json:"id"`
	DestinationID     uuid.UUID  `json:"destination_id"`
	DestinationName   string     `json:"destination_name"`
	PaymentMethodID   *uuid.UUID `json:"payment_method_id,omitempty"`
	Quantity          int32      `json:"quantity"`
	Status            string     `json:"status"`
	ExternalReference *string    `json:"external_reference,omitempty"`
	PreferenceID      *string    `json:"preference_id,omitempty"`
	PaymentID         *string    `json:"payment_id,omitempty"`
	DepartureDate     *time.Time `json:"departure_date,omitempty"`
	UnitPrice         float64    `json:"unit_price"`
	Total             float64    `json:"total"`
	CreatedAt         time.Time  `json:"created_at"`
	StatusUpdatedAt   time.Time  `json:"status_updated_at"`
	PurchasedAt       *time.Time `json:"purchased_at,omitempty"`
}

func FromCartLine(rm *readmodel.CartLineRM) *CartLineResponse {
	var resp CartLineResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromCartLineList(rms []*readmodel.CartLineRM) []*CartLineResponse {
	result := make([]*CartLineResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromCartLine(rm))
	}
	return result
}
