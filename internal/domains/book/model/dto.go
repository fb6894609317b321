package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateBookRequest carries a new book. The author is referenced by name and
// resolved to a row when the book is written.
type CreateBookRequest struct {
	Title         string `json:"title"`
	Genre         string `json:"genre"`
	PublishedYear int    `json:"published_year"`
	Author        string `json:"author"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.Genre, validation.Required),
		validation.Field(&r.PublishedYear, validation.Required, validation.Min(MinPublishedYear), validation.Max(MaxPublishedYear)),
		validation.Field(&r.Author, validation.Required, validation.Length(1, 255)),
	)
}

// UpdateBookRequest carries a partial update. Nil fields are left untouched.
type UpdateBookRequest struct {
	Title         *string `json:"title"`
	Genre         *string `json:"genre"`
	PublishedYear *int    `json:"published_year"`
	Author        *string `json:"author"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 500)),
		validation.Field(&r.PublishedYear, validation.Min(MinPublishedYear), validation.Max(MaxPublishedYear)),
		validation.Field(&r.Author, validation.NilOrNotEmpty, validation.Length(1, 255)),
	)
}

func (r UpdateBookRequest) IsEmpty() bool {
	return r.Title == nil && r.Genre == nil && r.PublishedYear == nil && r.Author == nil
}

// Pagination defaults and ceiling for the book listing.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListBooksRequest holds query filters, sorting and pagination for the
// book listing endpoint. Nil filters are omitted from the query.
// Page and PageSize are pointers so an absent parameter gets a default
// while an explicit zero stays visible and is rejected.
type ListBooksRequest struct {
	Title    *string `form:"title"`
	AuthorID *int64  `form:"author_id"`
	Genre    *string `form:"genre"`
	MinYear  *int    `form:"min_year"`
	MaxYear  *int    `form:"max_year"`

	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      *int   `form:"page"`
	PageSize  *int   `form:"page_size"`
}

// Normalize fills defaults for omitted sort and pagination values and
// clamps an oversized page size. Explicit values, valid or not, are
// left alone for validation.
func (r *ListBooksRequest) Normalize() {
	if r.SortBy == "" {
		r.SortBy = "title"
	}
	if r.SortOrder == "" {
		r.SortOrder = "asc"
	}
	if r.Page == nil {
		page := DefaultPage
		r.Page = &page
	}
	if r.PageSize == nil {
		size := DefaultPageSize
		r.PageSize = &size
	}
	if *r.PageSize > MaxPageSize {
		size := MaxPageSize
		r.PageSize = &size
	}
}

// Descending reports whether results should be sorted in descending order.
// Anything other than "desc" (case-insensitive) sorts ascending.
func (r ListBooksRequest) Descending() bool {
	return strings.EqualFold(r.SortOrder, "desc")
}

// Offset assumes Normalize has run.
func (r ListBooksRequest) Offset() int {
	return (*r.Page - 1) * *r.PageSize
}
