package repository

import (
	"context"

	"github.com/boychukmk/library/internal/domains/book/model"
)

// BookRepository persists books and reads them joined with their author.
type BookRepository interface {
	Create(ctx context.Context, req model.CreateBookRequest) (*model.BookView, error)
	GetByID(ctx context.Context, id int64) (*model.BookView, error)
	Update(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.BookView, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, req model.ListBooksRequest) ([]model.BookView, error)
}
