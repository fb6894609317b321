package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boychukmk/library/internal/domains/book/model"
)

// fakeCreator records every create and fails the titles listed in failOn.
type fakeCreator struct {
	created []model.CreateBookRequest
	failOn  map[string]error
}

func (f *fakeCreator) Create(ctx context.Context, req model.CreateBookRequest) (*model.BookView, error) {
	if err, ok := f.failOn[req.Title]; ok {
		return nil, err
	}
	f.created = append(f.created, req)
	return &model.BookView{ID: int64(len(f.created)), Title: req.Title}, nil
}

func (f *fakeCreator) GetByID(ctx context.Context, id int64) (*model.BookView, error) {
	return nil, model.ErrBookNotFound
}

func (f *fakeCreator) Update(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.BookView, error) {
	return nil, model.ErrBookNotFound
}

func (f *fakeCreator) Delete(ctx context.Context, id int64) error {
	return model.ErrBookNotFound
}

func (f *fakeCreator) List(ctx context.Context, req model.ListBooksRequest) ([]model.BookView, error) {
	return nil, nil
}

func TestImport_JSON(t *testing.T) {
	books := &fakeCreator{}
	svc := NewImportService(books)

	payload := `[
		{"title": "Dune", "genre": "Science", "published_year": 1965, "author": "Frank Herbert"},
		{"title": "Emma", "genre": "Fiction", "published_year": 1815, "author": "Jane Austen"}
	]`

	result, err := svc.Import(context.Background(), "books.json", strings.NewReader(payload))

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 2, result.SuccessRows)
	assert.Equal(t, 0, result.FailedRows)
	assert.Empty(t, result.Errors)
	assert.Len(t, books.created, 2)
}

func TestImport_JSON_SkipsFailedRows(t *testing.T) {
	books := &fakeCreator{failOn: map[string]error{"Bad Book": model.ErrInvalidGenre}}
	svc := NewImportService(books)

	payload := `[
		{"title": "Good Book", "genre": "Fiction", "published_year": 1990, "author": "A"},
		{"title": "Bad Book", "genre": "Nope", "published_year": 1990, "author": "B"},
		{"title": "Another Good One", "genre": "Mystery", "published_year": 2000, "author": "C"}
	]`

	result, err := svc.Import(context.Background(), "books.json", strings.NewReader(payload))

	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 2, result.SuccessRows)
	assert.Equal(t, 1, result.FailedRows)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 2, result.Errors[0].Row)
	assert.Len(t, books.created, 2)
}

func TestImport_JSON_Malformed(t *testing.T) {
	svc := NewImportService(&fakeCreator{})

	_, err := svc.Import(context.Background(), "books.json", strings.NewReader(`{"not": "a list"}`))
	assert.ErrorIs(t, err, model.ErrMalformedPayload)
}

func TestImport_CSV(t *testing.T) {
	books := &fakeCreator{}
	svc := NewImportService(books)

	payload := "title,genre,published_year,author\n" +
		"Dune,Science,1965,Frank Herbert\n" +
		"Emma,Fiction,1815,Jane Austen\n"

	result, err := svc.Import(context.Background(), "books.csv", strings.NewReader(payload))

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 2, result.SuccessRows)
	require.Len(t, books.created, 2)
	assert.Equal(t, "Dune", books.created[0].Title)
	assert.Equal(t, 1965, books.created[0].PublishedYear)
}

func TestImport_CSV_ColumnsInAnyOrder(t *testing.T) {
	books := &fakeCreator{}
	svc := NewImportService(books)

	payload := "author,published_year,title,genre\n" +
		"Frank Herbert,1965,Dune,Science\n"

	result, err := svc.Import(context.Background(), "books.csv", strings.NewReader(payload))

	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessRows)
	require.Len(t, books.created, 1)
	assert.Equal(t, "Dune", books.created[0].Title)
	assert.Equal(t, "Frank Herbert", books.created[0].Author)
}

func TestImport_CSV_BadYearRowIsReported(t *testing.T) {
	books := &fakeCreator{}
	svc := NewImportService(books)

	payload := "title,genre,published_year,author\n" +
		"Dune,Science,not-a-year,Frank Herbert\n" +
		"Emma,Fiction,1815,Jane Austen\n"

	result, err := svc.Import(context.Background(), "books.csv", strings.NewReader(payload))

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 1, result.SuccessRows)
	assert.Equal(t, 1, result.FailedRows)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, 1, result.Errors[0].Row)
}

func TestImport_CSV_MissingColumn(t *testing.T) {
	svc := NewImportService(&fakeCreator{})

	payload := "title,genre,author\nDune,Science,Frank Herbert\n"

	_, err := svc.Import(context.Background(), "books.csv", strings.NewReader(payload))
	assert.ErrorIs(t, err, model.ErrMalformedPayload)
}

func TestImport_UnsupportedExtension(t *testing.T) {
	svc := NewImportService(&fakeCreator{})

	_, err := svc.Import(context.Background(), "books.xml", strings.NewReader("<books/>"))
	assert.ErrorIs(t, err, model.ErrUnsupportedFormat)

	_, err = svc.Import(context.Background(), "books", strings.NewReader(""))
	assert.ErrorIs(t, err, model.ErrUnsupportedFormat)
}

func TestImport_ExtensionIsCaseInsensitive(t *testing.T) {
	books := &fakeCreator{}
	svc := NewImportService(books)

	payload := `[{"title": "Dune", "genre": "Science", "published_year": 1965, "author": "Frank Herbert"}]`

	result, err := svc.Import(context.Background(), "BOOKS.JSON", strings.NewReader(payload))

	require.NoError(t, err)
	assert.Equal(t, 1, result.SuccessRows)
}
