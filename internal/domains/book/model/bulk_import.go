package model

// ImportRecord is one row of a bulk import file, before validation.
type ImportRecord struct {
	Title         string `json:"title"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"published_year"`
	Author        string `json:"author"`
}

func (r ImportRecord) ToCreateRequest() CreateBookRequest {
	return CreateBookRequest{
		Title:         r.Title,
		Genre:         r.Genre,
		PublishedYear: r.PublishedYear,
		Author:        r.Author,
	}
}

// ImportRowError reports why a single record was skipped.
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// ImportResult summarizes a bulk import run. Failed rows are skipped,
// successful rows are committed independently.
type ImportResult struct {
	TotalRows   int              `json:"total_rows"`
	SuccessRows int              `json:"success_rows"`
	FailedRows  int              `json:"failed_rows"`
	Errors      []ImportRowError `json:"errors,omitempty"`
}
