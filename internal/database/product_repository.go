package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kyle5427/web-data-management-system/internal/domain"
	apperrors "github.com/Kyle5427/web-data-management-system/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// productColumns must match the Scan order in scanProduct.
const productColumns = `id, name, description, price_cents`

// ProductRepository implements domain.ProductRepository backed by PostgreSQL.
// Insertion order falls out of the identity column.
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var product domain.Product
	err := row.Scan(&product.ID, &product.Name, &product.Description, &product.Price)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}
	return &product, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.ID, &product.Name, &product.Description, &product.Price); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return scanProduct(r.pool.QueryRow(ctx, `
		SELECT `+productColumns+` FROM products WHERE id = $1
	`, id))
}

func (r *ProductRepository) Create(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	if fields := input.Validate(); len(fields) > 0 {
		return nil, apperrors.ValidationError("invalid product", fields...)
	}

	return scanProduct(r.pool.QueryRow(ctx, `
		INSERT INTO products (name, description, price_cents)
		VALUES ($1, $2, $3)
		RETURNING `+productColumns+`
	`, input.Name, input.Description, int64(input.Price)))
}

func (r *ProductRepository) Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	// Lock the row so concurrent updates serialize; a missing id reports
	// not-found before the patch is validated.
	existing, err := scanProduct(tx.QueryRow(ctx, `
		SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE
	`, id))
	if err != nil {
		return nil, err
	}

	if fields := patch.Validate(); len(fields) > 0 {
		return nil, apperrors.ValidationError("invalid product", fields...)
	}

	merged := patch.Apply(*existing)
	updated, err := scanProduct(tx.QueryRow(ctx, `
		UPDATE products SET name = $1, description = $2, price_cents = $3
		WHERE id = $4
		RETURNING `+productColumns+`
	`, merged.Name, merged.Description, int64(merged.Price), id))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit update: %w", err)
	}
	return updated, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
