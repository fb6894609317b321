package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookRequest_Validate(t *testing.T) {
	req := CreateBookRequest{
		Title:         "The Left Hand of Darkness",
		Genre:         "Fiction",
		PublishedYear: 1969,
		Author:        "Ursula K. Le Guin",
	}

	require.NoError(t, req.Validate())
}

func TestCreateBookRequest_Validate_MissingTitle(t *testing.T) {
	req := CreateBookRequest{
		Genre:         "Fiction",
		PublishedYear: 1969,
		Author:        "Ursula K. Le Guin",
	}

	assert.Error(t, req.Validate())
}

func TestCreateBookRequest_Validate_YearOutOfRange(t *testing.T) {
	req := CreateBookRequest{
		Title:         "Too Old",
		Genre:         "History",
		PublishedYear: 1700,
		Author:        "Somebody",
	}

	assert.Error(t, req.Validate())
}

func TestUpdateBookRequest_IsEmpty(t *testing.T) {
	assert.True(t, UpdateBookRequest{}.IsEmpty())

	title := "New Title"
	assert.False(t, UpdateBookRequest{Title: &title}.IsEmpty())
}

func pageInt(i int) *int { return &i }

func TestListBooksRequest_Normalize_Defaults(t *testing.T) {
	var req ListBooksRequest
	req.Normalize()

	assert.Equal(t, "title", req.SortBy)
	assert.Equal(t, "asc", req.SortOrder)
	assert.Equal(t, DefaultPage, *req.Page)
	assert.Equal(t, DefaultPageSize, *req.PageSize)
}

func TestListBooksRequest_Normalize_KeepsExplicitValues(t *testing.T) {
	req := ListBooksRequest{SortBy: "genre", SortOrder: "desc", Page: pageInt(3), PageSize: pageInt(25)}
	req.Normalize()

	assert.Equal(t, "genre", req.SortBy)
	assert.Equal(t, "desc", req.SortOrder)
	assert.Equal(t, 3, *req.Page)
	assert.Equal(t, 25, *req.PageSize)
}

func TestListBooksRequest_Normalize_KeepsExplicitZero(t *testing.T) {
	// an explicit zero is not an omitted value and must survive for
	// validation to reject
	req := ListBooksRequest{Page: pageInt(0), PageSize: pageInt(0)}
	req.Normalize()

	assert.Equal(t, 0, *req.Page)
	assert.Equal(t, 0, *req.PageSize)
}

func TestListBooksRequest_Normalize_ClampsPageSize(t *testing.T) {
	req := ListBooksRequest{PageSize: pageInt(10000)}
	req.Normalize()

	assert.Equal(t, MaxPageSize, *req.PageSize)
}

func TestListBooksRequest_Descending(t *testing.T) {
	assert.True(t, ListBooksRequest{SortOrder: "desc"}.Descending())
	assert.True(t, ListBooksRequest{SortOrder: "DESC"}.Descending())
	assert.False(t, ListBooksRequest{SortOrder: "asc"}.Descending())
	// anything that is not "desc" sorts ascending
	assert.False(t, ListBooksRequest{SortOrder: "bogus"}.Descending())
}

func TestListBooksRequest_Offset(t *testing.T) {
	req := ListBooksRequest{Page: pageInt(3), PageSize: pageInt(10)}
	assert.Equal(t, 20, req.Offset())

	req = ListBooksRequest{Page: pageInt(1), PageSize: pageInt(50)}
	assert.Equal(t, 0, req.Offset())
}

func TestIsSupportedGenre(t *testing.T) {
	for genre := range SupportedGenres {
		assert.True(t, IsSupportedGenre(genre))
	}

	assert.False(t, IsSupportedGenre("Romance"))
	assert.False(t, IsSupportedGenre("fiction")) // genres are case sensitive
	assert.False(t, IsSupportedGenre(""))
}
