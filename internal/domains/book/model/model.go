package model

import "github.com/boychukmk/library/internal/domains/author"

// Year bounds accepted for a book's publication year.
const (
	MinPublishedYear = 1800
	MaxPublishedYear = 2025
)

// SupportedGenres is the closed set of genres a book may carry.
var SupportedGenres = map[string]struct{}{
	"Fiction":     {},
	"Non-Fiction": {},
	"Science":     {},
	"History":     {},
	"Mystery":     {},
	"Fantasy":     {},
}

// SortableFields maps accepted sort keys to their SQL columns.
var SortableFields = map[string]string{
	"title":          "b.title",
	"genre":          "b.genre",
	"published_year": "b.published_year",
}

func IsSupportedGenre(genre string) bool {
	_, ok := SupportedGenres[genre]
	return ok
}

// Book is the persisted row shape.
type Book struct {
	ID            int64  `db:"id" json:"id"`
	Title         string `db:"title" json:"title"`
	Genre         string `db:"genre" json:"genre"`
	PublishedYear int    `db:"published_year" json:"published_year"`
	AuthorID      int64  `db:"author_id" json:"author_id"`
}

// BookView is a book joined with its author, as returned by reads and writes.
type BookView struct {
	ID            int64                 `json:"id"`
	Title         string                `json:"title"`
	Genre         string                `json:"genre"`
	PublishedYear int                   `json:"published_year"`
	Author        author.AuthorResponse `json:"author"`
}
