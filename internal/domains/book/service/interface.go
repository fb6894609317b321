package service

import (
	"context"
	"io"

	"github.com/boychukmk/library/internal/domains/book/model"
)

// BookService holds the business rules for the book catalog. All input
// validation happens here, before any repository call.
type BookService interface {
	Create(ctx context.Context, req model.CreateBookRequest) (*model.BookView, error)
	GetByID(ctx context.Context, id int64) (*model.BookView, error)
	Update(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.BookView, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, req model.ListBooksRequest) ([]model.BookView, error)
}

// ImportService loads books in bulk from an uploaded JSON or CSV file.
type ImportService interface {
	Import(ctx context.Context, filename string, r io.Reader) (*model.ImportResult, error)
}
