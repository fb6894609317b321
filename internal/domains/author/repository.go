package author

import (
	"context"

	"github.com/boychukmk/library/pkg/database"
)

// Repository defines author data access.
//
// Resolve takes a database.Querier so it can run against the pool on its
// own or inside a caller's transaction: the book write pipeline resolves
// the author and inserts the book in one transaction scope.
type Repository interface {
	// Resolve finds an author by exact name, creating it if absent.
	// The name is trimmed first; an empty result fails with ErrEmptyName.
	// Concurrent resolutions of the same new name are arbitrated by the
	// unique constraint on authors.name, never by application logic.
	Resolve(ctx context.Context, q database.Querier, name string) (*Author, error)

	// GetByID returns ErrAuthorNotFound if no such author exists.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// List returns authors ordered by name.
	List(ctx context.Context, filter ListFilter) ([]Author, error)
}
