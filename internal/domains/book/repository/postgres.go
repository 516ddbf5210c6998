package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"bookstore-backoffice/internal/domains/book/model"
	"bookstore-backoffice/internal/shared/utils"
)

const bookColumns = `id, isbn, title, author, description, price, stock,
	language, category, image, is_available, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, b *model.Book) error {
	query := `
		INSERT INTO books (
			isbn, title, author, description, price, stock,
			language, category, image, is_available
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		b.ISBN,
		b.Title,
		b.Author,
		b.Description,
		b.Price,
		b.Stock,
		b.Language,
		b.Category,
		b.Image,
		b.IsAvailable,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrISBNTaken
		}
		return fmt.Errorf("failed to create book: %w", err)
	}

	return nil
}

func (r *postgresRepository) Update(ctx context.Context, b *model.Book) error {
	query := `
		UPDATE books SET
			isbn = $1, title = $2, author = $3, description = $4,
			price = $5, stock = $6, language = $7, category = $8,
			image = $9, is_available = $10, updated_at = now()
		WHERE id = $11
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		b.ISBN,
		b.Title,
		b.Author,
		b.Description,
		b.Price,
		b.Stock,
		b.Language,
		b.Category,
		b.Image,
		b.IsAvailable,
		b.ID,
	).Scan(&b.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrBookNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.ErrISBNTaken
		}
		return fmt.Errorf("failed to update book: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE id = $1`, bookColumns)

	b, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}
	return b, nil
}

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

// GetByIDForUpdateTx locks the row for the rest of the transaction; the
// order workflow uses it when stock deduction is enabled.
func (r *postgresRepository) GetByIDForUpdateTx(ctx context.Context, tx pgx.Tx, id int64) (*model.Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE id = $1 FOR UPDATE`, bookColumns)

	b, err := scanBook(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book for update: %w", err)
	}
	return b, nil
}

func (r *postgresRepository) UpdateStockTx(ctx context.Context, tx pgx.Tx, id int64, stock int, available bool) error {
	tag, err := tx.Exec(ctx,
		`UPDATE books SET stock = $1, is_available = $2, updated_at = now() WHERE id = $3`,
		stock, available, id)
	if err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

func (r *postgresRepository) List(ctx context.Context, filter *model.BookFilter) ([]model.Book, int, error) {
	whereClause, args := buildWhereClause(filter)

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM books WHERE %s`, whereClause)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM books
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, bookColumns, whereClause, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	books, err := r.queryBooks(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]model.Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books ORDER BY created_at DESC`, bookColumns)
	return r.queryBooks(ctx, query)
}

func (r *postgresRepository) ListAvailable(ctx context.Context) ([]model.Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE is_available = true ORDER BY created_at DESC`, bookColumns)
	return r.queryBooks(ctx, query)
}

func (r *postgresRepository) ListFeatured(ctx context.Context, limit int) ([]model.Book, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM books
		WHERE is_available = true
		ORDER BY created_at DESC
		LIMIT $1
	`, bookColumns)
	return r.queryBooks(ctx, query, limit)
}

// Search matches a keyword against title, author and description,
// case-insensitively, over available books only.
func (r *postgresRepository) Search(ctx context.Context, keyword string) ([]model.Book, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM books
		WHERE is_available = true
		  AND (title ILIKE $1 OR author ILIKE $1 OR description ILIKE $1)
		ORDER BY created_at DESC
	`, bookColumns)
	return r.queryBooks(ctx, query, "%"+keyword+"%")
}

func (r *postgresRepository) ListByPriceRange(ctx context.Context, min, max decimal.Decimal) ([]model.Book, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM books
		WHERE is_available = true AND price BETWEEN $1 AND $2
		ORDER BY price ASC
	`, bookColumns)
	return r.queryBooks(ctx, query, min, max)
}

func (r *postgresRepository) UpdateImage(ctx context.Context, id int64, imageURL string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE books SET image = $1, updated_at = now() WHERE id = $2`,
		imageURL, id)
	if err != nil {
		return fmt.Errorf("failed to update book image: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

// =====================================================
// HELPERS
// =====================================================

// buildWhereClause constructs the WHERE clause for List dynamically.
func buildWhereClause(filter *model.BookFilter) (string, []interface{}) {
	conditions := []string{"true"}
	args := []interface{}{}
	argIndex := 1

	if filter.Keyword != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR author ILIKE $%d OR description ILIKE $%d)",
			argIndex, argIndex, argIndex))
		args = append(args, "%"+filter.Keyword+"%")
		argIndex++
	}

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, filter.Category)
		argIndex++
	}

	if filter.Language != "" {
		conditions = append(conditions, fmt.Sprintf("language = $%d", argIndex))
		args = append(args, filter.Language)
		argIndex++
	}

	if filter.AvailableOnly {
		conditions = append(conditions, "is_available = true")
	}

	if filter.PriceMin != nil {
		conditions = append(conditions, fmt.Sprintf("price >= $%d", argIndex))
		args = append(args, *filter.PriceMin)
		argIndex++
	}

	if filter.PriceMax != nil {
		conditions = append(conditions, fmt.Sprintf("price <= $%d", argIndex))
		args = append(args, *filter.PriceMax)
		argIndex++
	}

	return utils.JoinWithAnd(conditions), args
}

func (r *postgresRepository) queryBooks(ctx context.Context, query string, args ...interface{}) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("book query failed: %w", err)
	}
	defer rows.Close()

	books := make([]model.Book, 0)
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(
			&b.ID, &b.ISBN, &b.Title, &b.Author, &b.Description,
			&b.Price, &b.Stock, &b.Language, &b.Category, &b.Image,
			&b.IsAvailable, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("book scan failed: %w", err)
		}
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("book rows error: %w", err)
	}
	return books, nil
}

func scanBook(row pgx.Row) (*model.Book, error) {
	var b model.Book
	err := row.Scan(
		&b.ID, &b.ISBN, &b.Title, &b.Author, &b.Description,
		&b.Price, &b.Stock, &b.Language, &b.Category, &b.Image,
		&b.IsAvailable, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
