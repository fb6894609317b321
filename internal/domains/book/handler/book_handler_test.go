package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/boychukmk/library/internal/domains/author"
	"github.com/boychukmk/library/internal/domains/book/model"
)

type stubBookService struct {
	view *model.BookView
	list []model.BookView
	err  error
}

func (s *stubBookService) Create(ctx context.Context, req model.CreateBookRequest) (*model.BookView, error) {
	return s.view, s.err
}

func (s *stubBookService) GetByID(ctx context.Context, id int64) (*model.BookView, error) {
	return s.view, s.err
}

func (s *stubBookService) Update(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.BookView, error) {
	return s.view, s.err
}

func (s *stubBookService) Delete(ctx context.Context, id int64) error {
	return s.err
}

func (s *stubBookService) List(ctx context.Context, req model.ListBooksRequest) ([]model.BookView, error) {
	return s.list, s.err
}

func setupBookRouter(svc *stubBookService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewBookHandler(svc)
	router := gin.New()
	router.GET("/books", h.List)
	router.GET("/books/:id", h.GetByID)
	router.POST("/books", h.Create)
	router.PUT("/books/:id", h.Update)
	router.DELETE("/books/:id", h.Delete)
	return router
}

func doRequest(router *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func TestBookHandler_Create(t *testing.T) {
	svc := &stubBookService{view: &model.BookView{
		ID: 1, Title: "Dune", Genre: "Science", PublishedYear: 1965,
		Author: author.AuthorResponse{ID: 1, Name: "Frank Herbert"},
	}}
	router := setupBookRouter(svc)

	body := `{"title":"Dune","genre":"Science","published_year":1965,"author":"Frank Herbert"}`
	w := doRequest(router, http.MethodPost, "/books", strings.NewReader(body))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"Dune"`)
}

func TestBookHandler_Create_InvalidBody(t *testing.T) {
	router := setupBookRouter(&stubBookService{})

	w := doRequest(router, http.MethodPost, "/books", strings.NewReader("not json"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookHandler_Create_MissingFields(t *testing.T) {
	router := setupBookRouter(&stubBookService{})

	w := doRequest(router, http.MethodPost, "/books", strings.NewReader(`{"title":"Dune"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestBookHandler_Create_UnsupportedGenre(t *testing.T) {
	svc := &stubBookService{err: model.ErrInvalidGenre}
	router := setupBookRouter(svc)

	body := `{"title":"Dune","genre":"Romance","published_year":1965,"author":"Frank Herbert"}`
	w := doRequest(router, http.MethodPost, "/books", strings.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_GENRE")
}

func TestBookHandler_GetByID_NotFound(t *testing.T) {
	svc := &stubBookService{err: model.ErrBookNotFound}
	router := setupBookRouter(svc)

	w := doRequest(router, http.MethodGet, "/books/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "BOOK_NOT_FOUND")
}

func TestBookHandler_GetByID_NonNumericID(t *testing.T) {
	router := setupBookRouter(&stubBookService{})

	w := doRequest(router, http.MethodGet, "/books/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookHandler_Update_NothingToUpdate(t *testing.T) {
	svc := &stubBookService{err: model.ErrNothingToUpdate}
	router := setupBookRouter(svc)

	w := doRequest(router, http.MethodPut, "/books/1", strings.NewReader(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "NOTHING_TO_UPDATE")
}

func TestBookHandler_Delete_NotFound(t *testing.T) {
	svc := &stubBookService{err: model.ErrBookNotFound}
	router := setupBookRouter(svc)

	w := doRequest(router, http.MethodDelete, "/books/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookHandler_List(t *testing.T) {
	svc := &stubBookService{list: []model.BookView{
		{ID: 1, Title: "Dune"},
		{ID: 2, Title: "Emma"},
	}}
	router := setupBookRouter(svc)

	w := doRequest(router, http.MethodGet, "/books?genre=Fiction&page=1&page_size=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Dune"`)
	assert.Contains(t, w.Body.String(), `"Emma"`)
}

func TestBookHandler_List_MetaReportsEffectivePageSize(t *testing.T) {
	svc := &stubBookService{list: []model.BookView{{ID: 1, Title: "Dune"}}}
	router := setupBookRouter(svc)

	w := doRequest(router, http.MethodGet, "/books?page_size=10000", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	// the service serves at most MaxPageSize rows; the meta must not
	// echo the raw requested value
	assert.Contains(t, w.Body.String(), `"page_size":100`)

	w = doRequest(router, http.MethodGet, "/books", nil)
	assert.Contains(t, w.Body.String(), `"page_size":10`)
	assert.Contains(t, w.Body.String(), `"page":1`)
}

func TestBookHandler_List_InvalidSortField(t *testing.T) {
	svc := &stubBookService{err: model.ErrInvalidSortField}
	router := setupBookRouter(svc)

	w := doRequest(router, http.MethodGet, "/books?sort_by=id", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_SORT_FIELD")
}
