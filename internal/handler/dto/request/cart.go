package request

import (
	"time"

	"github.com/google/uuid"
)

type AddCartLineRequest struct {
	DestinationID   uuid.UUID  `json:"destination_id" binding:"required"`
	PaymentMethodID *uuid.UUID `json:"payment_method_id,omitempty"`
	Quantity        *int32     `json:"quantity,omitempty"`
	DepartureDate   *time.Time `json:"departure_date,omitempty"`
}

// EffectiveQuantity defaults to a single seat when the client omits it.
func (r AddCartLineRequest) EffectiveQuantity() int32 {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

type UpdateQuantityRequest struct {
	Quantity int32 `json:"quantity" binding:"required"`
}

type UpdateDepartureDateRequest struct {
	DepartureDate *time.Time `json:"departure_date" binding:"required"`
}
