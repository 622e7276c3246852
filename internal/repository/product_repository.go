package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shop-catalog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// selectProduct joins products with their category so every returned product
// carries a fully resolved category reference.
const selectProduct = `
	SELECT p.id, p.name, p.brand, p.price, p.inventory, p.description,
	       p.created_at, p.updated_at, c.id, c.name
	FROM products p
	JOIN categories c ON c.id = p.category_id
`

// scanProduct scans a joined product+category row.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Brand, &p.Price, &p.Inventory, &p.Description,
		&p.CreatedAt, &p.UpdatedAt, &p.Category.ID, &p.Category.Name,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByID retrieves a single product with its category by ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := selectProduct + `WHERE p.id = $1`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return p, nil
}

// Insert persists a new product and returns it with the assigned ID.
func (r *productRepository) Insert(ctx context.Context, product *model.Product) (*model.Product, error) {
	query := `
		INSERT INTO products (name, brand, price, inventory, description, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id
	`

	saved := *product
	now := time.Now()
	saved.CreatedAt = now
	saved.UpdatedAt = now

	err := r.pool.QueryRow(ctx, query,
		product.Name, product.Brand, product.Price, product.Inventory,
		product.Description, product.Category.ID, now,
	).Scan(&saved.ID)
	if err != nil {
		r.logger.Error().Err(err).Str("product_name", product.Name).Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	return &saved, nil
}

// Update overwrites the mutable fields of an existing product.
func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	query := `
		UPDATE products
		SET name = $1, brand = $2, price = $3, inventory = $4, description = $5,
		    category_id = $6, updated_at = $7
		WHERE id = $8
	`

	tag, err := r.pool.Exec(ctx, query,
		product.Name, product.Brand, product.Price, product.Inventory,
		product.Description, product.Category.ID, time.Now(), product.ID,
	)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", product.ID).Msg("failed to update product")
		return fmt.Errorf("failed to update product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no product updated for id %d", product.ID)
	}

	return nil
}

// Delete removes a product by ID. Returns (false, nil) when absent.
func (r *productRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `
		DELETE FROM products
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// GetAll retrieves all products with their categories.
func (r *productRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := selectProduct + `ORDER BY p.name`
	return r.queryProducts(ctx, query)
}

// GetByCategoryName retrieves products belonging to the named category.
func (r *productRepository) GetByCategoryName(ctx context.Context, category string) ([]model.Product, error) {
	query := selectProduct + `WHERE c.name = $1 ORDER BY p.name`
	return r.queryProducts(ctx, query, category)
}

// GetByBrand retrieves products of the given brand.
func (r *productRepository) GetByBrand(ctx context.Context, brand string) ([]model.Product, error) {
	query := selectProduct + `WHERE p.brand = $1 ORDER BY p.name`
	return r.queryProducts(ctx, query, brand)
}

// GetByCategoryNameAndBrand retrieves products matching both filters.
func (r *productRepository) GetByCategoryNameAndBrand(ctx context.Context, category, brand string) ([]model.Product, error) {
	query := selectProduct + `WHERE c.name = $1 AND p.brand = $2 ORDER BY p.name`
	return r.queryProducts(ctx, query, category, brand)
}

// GetByName retrieves products with the given name.
func (r *productRepository) GetByName(ctx context.Context, name string) ([]model.Product, error) {
	query := selectProduct + `WHERE p.name = $1 ORDER BY p.name`
	return r.queryProducts(ctx, query, name)
}

// GetByBrandAndName retrieves products matching both filters.
func (r *productRepository) GetByBrandAndName(ctx context.Context, brand, name string) ([]model.Product, error) {
	query := selectProduct + `WHERE p.brand = $1 AND p.name = $2 ORDER BY p.name`
	return r.queryProducts(ctx, query, brand, name)
}

// CountByBrandAndName counts products matching both filters.
func (r *productRepository) CountByBrandAndName(ctx context.Context, brand, name string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM products
		WHERE brand = $1 AND name = $2
	`

	var count int64
	if err := r.pool.QueryRow(ctx, query, brand, name).Scan(&count); err != nil {
		r.logger.Error().Err(err).
			Str("brand", brand).
			Str("name", name).
			Msg("failed to count products")
		return 0, fmt.Errorf("failed to count products: %w", err)
	}

	return count, nil
}

// CountByCategoryID counts products referencing the given category.
func (r *productRepository) CountByCategoryID(ctx context.Context, categoryID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM products
		WHERE category_id = $1
	`

	var count int64
	if err := r.pool.QueryRow(ctx, query, categoryID).Scan(&count); err != nil {
		r.logger.Error().Err(err).Int64("category_id", categoryID).Msg("failed to count products by category")
		return 0, fmt.Errorf("failed to count products by category: %w", err)
	}

	return count, nil
}

// queryProducts runs a product select and scans all rows.
func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]model.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}
