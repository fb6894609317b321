package author

import "context"

// Service defines the read-only author surface. Author creation happens
// implicitly through the resolver during book writes.
type Service interface {
	// GetByID returns ErrAuthorNotFound if no such author exists.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// List returns authors ordered by name.
	// Defaults: limit 20, max 100, offset 0.
	List(ctx context.Context, filter ListFilter) ([]Author, error)
}
