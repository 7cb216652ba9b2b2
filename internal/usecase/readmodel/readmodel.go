// Package readmodel holds the flat row views returned by repositories and
// exposed (via response DTOs) to clients.
package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type AuthorizedUserRM struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type ProfileRM struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Address    *string   `json:"address,omitempty"`
	Location   *string   `json:"location,omitempty"`
	Telephone  *string   `json:"telephone,omitempty"`
	DocumentID *string   `json:"document_id,omitempty"`
}

type DestinationRM struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	ImageURL        string     `json:"image_url"`
	UnitPrice       float64    `json:"unit_price"`
	DepartureDate   *time.Time `json:"departure_date,omitempty"`
	AvailableCount  int32      `json:"available_count"`
	CategoryID      *uuid.UUID `json:"category_id,omitempty"`
	PaymentMethodID *uuid.UUID `json:"payment_method_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type PaymentMethodRM struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type AboutEntryRM struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	GitHub   *string   `json:"github,omitempty"`
	LinkedIn *string   `json:"linkedin,omitempty"`
	ImageURL *string   `json:"image_url,omitempty"`
}

// CartLineRM joins a ledger row with its destination for display; Total is
// recomputed from the destination's current price on every read.
type CartLineRM struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
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
