package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/boychukmk/library/internal/domains/author"
	"github.com/boychukmk/library/internal/domains/book/model"
	"github.com/boychukmk/library/internal/domains/book/repository"
	"github.com/boychukmk/library/pkg/logger"
)

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{repo: repo}
}

func (s *bookService) Create(ctx context.Context, req model.CreateBookRequest) (*model.BookView, error) {
	normalized, err := normalizeCreate(req)
	if err != nil {
		return nil, err
	}

	view, err := s.repo.Create(ctx, normalized)
	if err != nil {
		return nil, err
	}

	logger.Info("book created", map[string]interface{}{
		"book_id":   view.ID,
		"author_id": view.Author.ID,
	})

	return view, nil
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*model.BookView, error) {
	if id <= 0 {
		return nil, model.ErrInvalidBookID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) Update(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.BookView, error) {
	if id <= 0 {
		return nil, model.ErrInvalidBookID
	}
	if req.IsEmpty() {
		return nil, model.ErrNothingToUpdate
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, model.ErrEmptyTitle
		}
		req.Title = &title
	}
	if req.Genre != nil && !model.IsSupportedGenre(*req.Genre) {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidGenre, *req.Genre)
	}
	if req.PublishedYear != nil {
		if y := *req.PublishedYear; y < model.MinPublishedYear || y > model.MaxPublishedYear {
			return nil, fmt.Errorf("%w: %d", model.ErrInvalidYear, y)
		}
	}
	if req.Author != nil {
		name := strings.TrimSpace(*req.Author)
		if name == "" {
			return nil, author.ErrEmptyName
		}
		req.Author = &name
	}

	return s.repo.Update(ctx, id, req)
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return model.ErrInvalidBookID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("book deleted", map[string]interface{}{"book_id": id})
	return nil
}

func (s *bookService) List(ctx context.Context, req model.ListBooksRequest) ([]model.BookView, error) {
	req.Normalize()

	if *req.Page < 1 || *req.PageSize < 1 {
		return nil, model.ErrInvalidPagination
	}
	if _, ok := model.SortableFields[req.SortBy]; !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidSortField, req.SortBy)
	}

	return s.repo.List(ctx, req)
}

// normalizeCreate trims the text fields and checks every domain rule,
// returning the first violation. Both the HTTP create path and the bulk
// importer go through this.
func normalizeCreate(req model.CreateBookRequest) (model.CreateBookRequest, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)

	if req.Title == "" {
		return req, model.ErrEmptyTitle
	}
	if !model.IsSupportedGenre(req.Genre) {
		return req, fmt.Errorf("%w: %q", model.ErrInvalidGenre, req.Genre)
	}
	if req.PublishedYear < model.MinPublishedYear || req.PublishedYear > model.MaxPublishedYear {
		return req, fmt.Errorf("%w: %d", model.ErrInvalidYear, req.PublishedYear)
	}
	if req.Author == "" {
		return req, author.ErrEmptyName
	}

	return req, nil
}
