package response

import (
	"tripcart/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProfileResponse struct {
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

func FromProfile(rm *readmodel.ProfileRM) *ProfileResponse {
	var resp ProfileResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromProfileList(rms []*readmodel.ProfileRM) []*ProfileResponse {
	result := make([]*ProfileResponse, 0, len(rms))
	for _, rm := range rms {
		result = append(result, FromProfile(rm))
	}
	return result
}
