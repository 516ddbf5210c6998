package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore-backoffice/internal/domains/pack/model"
)

const packColumns = `id, name, description, price, image, is_active,
	is_featured, stock_quantity, category, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, p *model.Pack) error {
	query := `
		INSERT INTO packs (
			name, description, price, image, is_active,
			is_featured, stock_quantity, category
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		p.Name,
		p.Description,
		p.Price,
		p.Image,
		p.IsActive,
		p.IsFeatured,
		p.StockQuantity,
		p.Category,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create pack: %w", err)
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, p *model.Pack) error {
	query := `
		UPDATE packs SET
			name = $1, description = $2, price = $3, image = $4,
			is_featured = $5, stock_quantity = $6, category = $7,
			updated_at = now()
		WHERE id = $8
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		p.Name,
		p.Description,
		p.Price,
		p.Image,
		p.IsFeatured,
		p.StockQuantity,
		p.Category,
		p.ID,
	).Scan(&p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrPackNotFound
		}
		return fmt.Errorf("failed to update pack: %w", err)
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Pack, error) {
	query := fmt.Sprintf(`SELECT %s FROM packs WHERE id = $1`, packColumns)

	p, err := scanPack(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPackNotFound
		}
		return nil, fmt.Errorf("failed to get pack by id: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]model.Pack, error) {
	query := fmt.Sprintf(`SELECT %s FROM packs ORDER BY created_at DESC`, packColumns)
	return r.queryPacks(ctx, query)
}

func (r *postgresRepository) ListActive(ctx context.Context) ([]model.Pack, error) {
	query := fmt.Sprintf(`SELECT %s FROM packs WHERE is_active = true ORDER BY created_at DESC`, packColumns)
	return r.queryPacks(ctx, query)
}

func (r *postgresRepository) ListFeatured(ctx context.Context) ([]model.Pack, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM packs
		WHERE is_active = true AND is_featured = true
		ORDER BY created_at DESC
	`, packColumns)
	return r.queryPacks(ctx, query)
}

func (r *postgresRepository) ListByCategory(ctx context.Context, category string) ([]model.Pack, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM packs
		WHERE is_active = true AND category ILIKE $1
		ORDER BY created_at DESC
	`, packColumns)
	return r.queryPacks(ctx, query, category)
}

func (r *postgresRepository) ListCategories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT category FROM packs WHERE is_active = true ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("pack categories query failed: %w", err)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("pack category scan failed: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *postgresRepository) Search(ctx context.Context, keyword string) ([]model.Pack, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM packs
		WHERE is_active = true AND (name ILIKE $1 OR description ILIKE $1)
		ORDER BY created_at DESC
	`, packColumns)
	return r.queryPacks(ctx, query, "%"+keyword+"%")
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE packs SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate pack: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPackNotFound
	}
	return nil
}

func (r *postgresRepository) ToggleFeatured(ctx context.Context, id int64) (*model.Pack, error) {
	query := fmt.Sprintf(`
		UPDATE packs SET is_featured = NOT is_featured, updated_at = now()
		WHERE id = $1
		RETURNING %s
	`, packColumns)

	p, err := scanPack(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPackNotFound
		}
		return nil, fmt.Errorf("failed to toggle pack featured flag: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) queryPacks(ctx context.Context, query string, args ...interface{}) ([]model.Pack, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pack query failed: %w", err)
	}
	defer rows.Close()

	packs := make([]model.Pack, 0)
	for rows.Next() {
		var p model.Pack
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Image,
			&p.IsActive, &p.IsFeatured, &p.StockQuantity, &p.Category,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("pack scan failed: %w", err)
		}
		packs = append(packs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pack rows error: %w", err)
	}
	return packs, nil
}

func scanPack(row pgx.Row) (*model.Pack, error) {
	var p model.Pack
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Image,
		&p.IsActive, &p.IsFeatured, &p.StockQuantity, &p.Category,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
