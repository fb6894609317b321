package author

// AuthorResponse is the read shape embedded in book views and returned
// by the authors endpoints.
type AuthorResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListFilter holds pagination for the authors listing.
type ListFilter struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// ToResponse converts an Author entity to its response DTO.
func (a Author) ToResponse() AuthorResponse {
	return AuthorResponse{ID: a.ID, Name: a.Name}
}
