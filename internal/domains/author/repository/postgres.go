package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boychukmk/library/internal/domains/author"
	"github.com/boychukmk/library/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates the author repository backed by pgx.
func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

// Resolve finds or creates an author by name. Insert-first with
// ON CONFLICT DO NOTHING: when the insert returns no row a committed
// author with that name already exists, so the re-select must succeed.
func (r *postgresRepository) Resolve(ctx context.Context, q database.Querier, name string) (*author.Author, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, author.ErrEmptyName
	}

	insert := `
        INSERT INTO authors (name)
        VALUES ($1)
        ON CONFLICT (name) DO NOTHING
        RETURNING id, name
    `

	var a author.Author
	err := q.QueryRow(ctx, insert, name).Scan(&a.ID, &a.Name)
	if err == nil {
		return &a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	// Lost the race (or the author predates us): the row is there.
	query := `SELECT id, name FROM authors WHERE name = $1`
	if err := q.QueryRow(ctx, query, name).Scan(&a.ID, &a.Name); err != nil {
		return nil, fmt.Errorf("failed to resolve author: %w", err)
	}

	return &a, nil
}

// GetByID retrieves an author by id.
func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	query := `SELECT id, name FROM authors WHERE id = $1`

	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

// List retrieves authors ordered by name.
func (r *postgresRepository) List(ctx context.Context, filter author.ListFilter) ([]author.Author, error) {
	query := `SELECT id, name FROM authors ORDER BY name ASC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}
