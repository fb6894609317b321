package service

import (
	"context"

	"github.com/boychukmk/library/internal/domains/author"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type authorService struct {
	repo author.Repository
}

// NewAuthorService creates the author service.
func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	if id <= 0 {
		return nil, author.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) List(ctx context.Context, filter author.ListFilter) ([]author.Author, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, filter)
}
