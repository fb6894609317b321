package model

import (
	"errors"
	"net/http"

	"github.com/boychukmk/library/internal/domains/author"
)

var (
	ErrBookNotFound      = errors.New("book not found")
	ErrInvalidBookID     = errors.New("invalid book id")
	ErrEmptyTitle        = errors.New("title must not be empty")
	ErrInvalidGenre      = errors.New("unsupported genre")
	ErrInvalidYear       = errors.New("published year out of range")
	ErrNothingToUpdate   = errors.New("no fields to update")
	ErrInvalidSortField  = errors.New("invalid sort field")
	ErrInvalidPagination = errors.New("page and page size must be positive")
	ErrUnsupportedFormat = errors.New("unsupported import format")
	ErrMalformedPayload  = errors.New("malformed import payload")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrInvalidBookID):
		return "INVALID_BOOK_ID"
	case errors.Is(err, ErrEmptyTitle):
		return "EMPTY_TITLE"
	case errors.Is(err, ErrInvalidGenre):
		return "INVALID_GENRE"
	case errors.Is(err, ErrInvalidYear):
		return "INVALID_YEAR"
	case errors.Is(err, ErrNothingToUpdate):
		return "NOTHING_TO_UPDATE"
	case errors.Is(err, ErrInvalidSortField):
		return "INVALID_SORT_FIELD"
	case errors.Is(err, ErrInvalidPagination):
		return "INVALID_PAGINATION"
	case errors.Is(err, ErrUnsupportedFormat):
		return "UNSUPPORTED_FORMAT"
	case errors.Is(err, ErrMalformedPayload):
		return "MALFORMED_PAYLOAD"
	case errors.Is(err, author.ErrEmptyName):
		return "EMPTY_AUTHOR_NAME"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidBookID),
		errors.Is(err, ErrEmptyTitle),
		errors.Is(err, ErrInvalidGenre),
		errors.Is(err, ErrInvalidYear),
		errors.Is(err, ErrNothingToUpdate),
		errors.Is(err, ErrInvalidSortField),
		errors.Is(err, ErrInvalidPagination),
		errors.Is(err, ErrUnsupportedFormat),
		errors.Is(err, ErrMalformedPayload),
		errors.Is(err, author.ErrEmptyName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
