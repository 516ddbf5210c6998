package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookstore-backoffice/internal/domains/customer/model"
	"bookstore-backoffice/internal/shared/utils"
)

const customerColumns = `id, first_name, last_name, email, phone_number,
	address, city, postal_code, country, is_active, created_at, updated_at`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, c *model.Customer) error {
	query := `
		INSERT INTO customers (
			first_name, last_name, email, phone_number,
			address, city, postal_code, country, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		c.FirstName,
		c.LastName,
		c.Email,
		c.PhoneNumber,
		c.Address,
		c.City,
		c.PostalCode,
		c.Country,
		c.IsActive,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		return mapUniqueViolation(err, "failed to create customer")
	}
	return nil
}

func (r *postgresRepository) Update(ctx context.Context, c *model.Customer) error {
	query := `
		UPDATE customers SET
			first_name = $1, last_name = $2, email = $3, phone_number = $4,
			address = $5, city = $6, postal_code = $7, country = $8,
			is_active = $9, updated_at = now()
		WHERE id = $10
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		c.FirstName,
		c.LastName,
		c.Email,
		c.PhoneNumber,
		c.Address,
		c.City,
		c.PostalCode,
		c.Country,
		c.IsActive,
		c.ID,
	).Scan(&c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrCustomerNotFound
		}
		return mapUniqueViolation(err, "failed to update customer")
	}
	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE id = $1`, customerColumns)

	c, err := scanCustomer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by id: %w", err)
	}
	return c, nil
}

// FindByEmail looks a customer up by exact (already lowercased) email.
// Returns nil, nil when there is no match.
func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*model.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE email = $1`, customerColumns)

	c, err := scanCustomer(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find customer by email: %w", err)
	}
	return c, nil
}

// FindByPhone returns nil, nil when there is no match.
func (r *postgresRepository) FindByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE phone_number = $1`, customerColumns)

	c, err := scanCustomer(r.pool.QueryRow(ctx, query, phone))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find customer by phone: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) List(ctx context.Context, filter *model.CustomerFilter) ([]model.Customer, int, error) {
	whereClause, args := buildCustomerWhere(filter)

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM customers WHERE %s`, whereClause)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM customers
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, customerColumns, whereClause, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	customers, err := r.queryCustomers(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *postgresRepository) ListActive(ctx context.Context) ([]model.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE is_active = true ORDER BY created_at DESC`, customerColumns)
	return r.queryCustomers(ctx, query)
}

// Search matches a keyword against name, email and phone.
func (r *postgresRepository) Search(ctx context.Context, keyword string) ([]model.Customer, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM customers
		WHERE first_name ILIKE $1 OR last_name ILIKE $1
		   OR email ILIKE $1 OR phone_number ILIKE $1
		ORDER BY created_at DESC
	`, customerColumns)
	return r.queryCustomers(ctx, query, "%"+keyword+"%")
}

func (r *postgresRepository) ListByCity(ctx context.Context, city string) ([]model.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE city ILIKE $1 ORDER BY created_at DESC`, customerColumns)
	return r.queryCustomers(ctx, query, city)
}

func (r *postgresRepository) ListByCountry(ctx context.Context, country string) ([]model.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE country ILIKE $1 ORDER BY created_at DESC`, customerColumns)
	return r.queryCustomers(ctx, query, country)
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE customers SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCustomerNotFound
	}
	return nil
}

func (r *postgresRepository) ToggleStatus(ctx context.Context, id int64) (*model.Customer, error) {
	query := fmt.Sprintf(`
		UPDATE customers SET is_active = NOT is_active, updated_at = now()
		WHERE id = $1
		RETURNING %s
	`, customerColumns)

	c, err := scanCustomer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to toggle customer status: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) PermanentDelete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCustomerNotFound
	}
	return nil
}

// =====================================================
// HELPERS
// =====================================================

func buildCustomerWhere(filter *model.CustomerFilter) (string, []interface{}) {
	conditions := []string{"true"}
	args := []interface{}{}
	argIndex := 1

	if filter.Keyword != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)",
			argIndex, argIndex, argIndex))
		args = append(args, "%"+filter.Keyword+"%")
		argIndex++
	}

	if filter.City != "" {
		conditions = append(conditions, fmt.Sprintf("city ILIKE $%d", argIndex))
		args = append(args, filter.City)
		argIndex++
	}

	if filter.Country != "" {
		conditions = append(conditions, fmt.Sprintf("country ILIKE $%d", argIndex))
		args = append(args, filter.Country)
		argIndex++
	}

	if filter.ActiveOnly {
		conditions = append(conditions, "is_active = true")
	}

	return utils.JoinWithAnd(conditions), args
}

// mapUniqueViolation translates a 23505 into the domain conflict error
// matching the violated constraint.
func mapUniqueViolation(err error, context string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "email"):
			return model.ErrEmailTaken
		case strings.Contains(pgErr.ConstraintName, "phone"):
			return model.ErrPhoneTaken
		}
	}
	return fmt.Errorf("%s: %w", context, err)
}

func (r *postgresRepository) queryCustomers(ctx context.Context, query string, args ...interface{}) ([]model.Customer, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("customer query failed: %w", err)
	}
	defer rows.Close()

	customers := make([]model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(
			&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber,
			&c.Address, &c.City, &c.PostalCode, &c.Country,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("customer scan failed: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("customer rows error: %w", err)
	}
	return customers, nil
}

func scanCustomer(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PhoneNumber,
		&c.Address, &c.City, &c.PostalCode, &c.Country,
		&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
