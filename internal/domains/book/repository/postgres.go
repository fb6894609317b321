package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/boychukmk/library/internal/domains/author"
	"github.com/boychukmk/library/internal/domains/book/model"
	"github.com/boychukmk/library/internal/shared/utils"
	"github.com/boychukmk/library/pkg/database"
)

const selectBookView = `
	SELECT b.id, b.title, b.genre, b.published_year, a.id, a.name
	FROM books b
	INNER JOIN authors a ON a.id = b.author_id`

type postgresRepository struct {
	pool    *pgxpool.Pool
	authors author.Repository
}

func NewPostgresRepository(pool *pgxpool.Pool, authors author.Repository) BookRepository {
	return &postgresRepository{
		pool:    pool,
		authors: authors,
	}
}

// Create resolves the author and inserts the book in one transaction, so a
// freshly created author never outlives a failed book insert.
func (r *postgresRepository) Create(ctx context.Context, req model.CreateBookRequest) (*model.BookView, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.BookView, error) {
		a, err := r.authors.Resolve(ctx, tx, req.Author)
		if err != nil {
			return nil, err
		}

		view := &model.BookView{
			Title:         req.Title,
			Genre:         req.Genre,
			PublishedYear: req.PublishedYear,
			Author:        a.ToResponse(),
		}

		err = tx.QueryRow(ctx,
			`INSERT INTO books (title, genre, published_year, author_id)
			 VALUES ($1, $2, $3, $4)
			 RETURNING id`,
			req.Title, req.Genre, req.PublishedYear, a.ID,
		).Scan(&view.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert book: %w", err)
		}

		return view, nil
	})
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.BookView, error) {
	var view model.BookView

	err := r.pool.QueryRow(ctx, selectBookView+` WHERE b.id = $1`, id).Scan(
		&view.ID, &view.Title, &view.Genre, &view.PublishedYear,
		&view.Author.ID, &view.Author.Name,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return &view, nil
}

// Update applies only the fields set in req. When the author name changes it
// is resolved inside the same transaction as the row update.
func (r *postgresRepository) Update(ctx context.Context, id int64, req model.UpdateBookRequest) (*model.BookView, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.BookView, error) {
		setClauses := []string{}
		args := []any{}
		argIndex := 1

		if req.Title != nil {
			setClauses = append(setClauses, fmt.Sprintf("title = $%d", argIndex))
			args = append(args, *req.Title)
			argIndex++
		}
		if req.Genre != nil {
			setClauses = append(setClauses, fmt.Sprintf("genre = $%d", argIndex))
			args = append(args, *req.Genre)
			argIndex++
		}
		if req.PublishedYear != nil {
			setClauses = append(setClauses, fmt.Sprintf("published_year = $%d", argIndex))
			args = append(args, *req.PublishedYear)
			argIndex++
		}
		if req.Author != nil {
			a, err := r.authors.Resolve(ctx, tx, *req.Author)
			if err != nil {
				return nil, err
			}
			setClauses = append(setClauses, fmt.Sprintf("author_id = $%d", argIndex))
			args = append(args, a.ID)
			argIndex++
		}

		if len(setClauses) == 0 {
			return nil, model.ErrNothingToUpdate
		}

		args = append(args, id)
		query := fmt.Sprintf(
			`UPDATE books SET %s WHERE id = $%d
			 RETURNING id, title, genre, published_year, author_id,
			 (SELECT name FROM authors WHERE authors.id = books.author_id)`,
			utils.JoinWithComma(setClauses), argIndex,
		)

		var view model.BookView
		err := tx.QueryRow(ctx, query, args...).Scan(
			&view.ID, &view.Title, &view.Genre, &view.PublishedYear,
			&view.Author.ID, &view.Author.Name,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to update book: %w", err)
		}

		return &view, nil
	})
}

// Delete removes the book row only. The author row stays even when this was
// its last book.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context, req model.ListBooksRequest) ([]model.BookView, error) {
	clauses, args := buildWhereClause(req)

	query := selectBookView
	if len(clauses) > 0 {
		query += " WHERE " + utils.JoinWithAnd(clauses)
	}

	column, ok := model.SortableFields[req.SortBy]
	if !ok {
		return nil, model.ErrInvalidSortField
	}
	direction := "ASC"
	if req.Descending() {
		direction = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", column, direction)

	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, *req.PageSize, req.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	books := make([]model.BookView, 0)
	for rows.Next() {
		var view model.BookView
		if err := rows.Scan(
			&view.ID, &view.Title, &view.Genre, &view.PublishedYear,
			&view.Author.ID, &view.Author.Name,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		books = append(books, view)
	}

	return books, rows.Err()
}

// buildWhereClause turns set filters into predicates with positional args.
// Unset filters contribute nothing.
func buildWhereClause(req model.ListBooksRequest) ([]string, []any) {
	clauses := []string{}
	args := []any{}
	argIndex := 1

	if req.Title != nil {
		clauses = append(clauses, fmt.Sprintf("b.title = $%d", argIndex))
		args = append(args, *req.Title)
		argIndex++
	}
	if req.AuthorID != nil {
		clauses = append(clauses, fmt.Sprintf("b.author_id = $%d", argIndex))
		args = append(args, *req.AuthorID)
		argIndex++
	}
	if req.Genre != nil {
		clauses = append(clauses, fmt.Sprintf("b.genre = $%d", argIndex))
		args = append(args, *req.Genre)
		argIndex++
	}
	if req.MinYear != nil {
		clauses = append(clauses, fmt.Sprintf("b.published_year >= $%d", argIndex))
		args = append(args, *req.MinYear)
		argIndex++
	}
	if req.MaxYear != nil {
		clauses = append(clauses, fmt.Sprintf("b.published_year <= $%d", argIndex))
		args = append(args, *req.MaxYear)
		argIndex++
	}

	return clauses, args
}
