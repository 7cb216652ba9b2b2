package request

import (
	"encoding/json"

	"github.com/google/uuid"
)

// CheckoutItem mirrors the frontend cart payload; the Spanish field names are
// the wire contract the storefront already speaks.
type CheckoutItem struct {
	DestinationID uuid.UUID `json:"id_destino" binding:"required"`
	Quantity      int32     `json:"cantidadComprada" binding:"required"`
}

// CreateCheckoutRequest still carries the legacy user_id field older clients
// send; the authenticated token user is authoritative and the field is
// ignored server-side.
type CreateCheckoutRequest struct {
	Items  []CheckoutItem `json:"items" binding:"required"`
	UserID *uuid.UUID     `json:"user_id,omitempty"`
}

// WebhookNotification is the gateway's delivery envelope: a topic and the
// resource id to look up.
type WebhookNotification struct {
	Topic string     `json:"topic"`
	ID    FlexibleID `json:"id"`
}

// FlexibleID accepts both the string and numeric forms the gateway uses for
// resource ids, normalizing to a string.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexibleID(n.String())
	return nil
}

func (f FlexibleID) String() string {
	return string(f)
}
