package request

// UpdateProfileRequest is a partial update: nil fields are left untouched.
// Only contact fields are user-editable; email and names live on the user row.
type UpdateProfileRequest struct {
	Address    *string `json:"address,omitempty"`
	Telephone  *string `json:"telephone,omitempty"`
	DocumentID *string `json:"document_id,omitempty"`
}

func (r UpdateProfileRequest) IsEmpty() bool {
	return r.Address == nil && r.Telephone == nil && r.DocumentID == nil
}
