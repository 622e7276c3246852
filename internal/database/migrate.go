package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema is the catalogue schema. Categories carry a unique name; products
// reference a category with ON DELETE RESTRICT so a referenced category can
// never be removed underneath them; images store the file bytes inline.
const Schema = `
	CREATE TABLE IF NOT EXISTS categories (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		brand VARCHAR(255) NOT NULL,
		price DECIMAL(10, 2) NOT NULL,
		inventory INTEGER NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		category_id BIGINT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_products_category_id ON products(category_id);
	CREATE INDEX IF NOT EXISTS idx_products_brand ON products(brand);
	CREATE INDEX IF NOT EXISTS idx_products_name ON products(name);

	CREATE TABLE IF NOT EXISTS images (
		id BIGSERIAL PRIMARY KEY,
		file_name VARCHAR(255) NOT NULL,
		file_type VARCHAR(100) NOT NULL,
		data BYTEA NOT NULL,
		product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_images_product_id ON images(product_id);
`

// Migrate applies the catalogue schema. Statements are idempotent, so it is
// safe to run on every startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Info().Msg("database schema applied")
	return nil
}
