package response

import (
	"time"

	"tripcart/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DestinationResponse struct {
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

type PaymentMethodResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type AboutEntryResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	GitHub   *string   `json:"github,omitempty"`
	LinkedIn *string   `json:"linkedin,omitempty"`
	ImageURL *string   `json:"image_url,omitempty"`
}

func FromDestination(rm *readmodel.DestinationRM) *DestinationResponse {
	var resp DestinationResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromDestinationList(rms []*readmodel.DestinationRM) []*DestinationResponse {
	result := make([]*DestinationResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromDestination(rm))
	}
	return result
}

func FromPaymentMethod(rm *readmodel.PaymentMethodRM) *PaymentMethodResponse {
	return &PaymentMethodResponse{ID: rm.ID, Name: rm.Name}
}

func FromPaymentMethodList(rms []*readmodel.PaymentMethodRM) []*PaymentMethodResponse {
	result := make([]*PaymentMethodResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromPaymentMethod(rm))
	}
	return result
}

func FromAboutEntry(rm *readmodel.AboutEntryRM) *AboutEntryResponse {
	var resp AboutEntryResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromAboutEntryList(rms []*readmodel.AboutEntryRM) []*AboutEntryResponse {
	result := make([]*AboutEntryResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromAboutEntry(rm))
	}
	return result
}
