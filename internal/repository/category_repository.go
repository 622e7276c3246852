package repository

import (
	"context"
	"errors"
	"fmt"

	"shop-catalog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// categoryRepository implements the CategoryRepository interface using PostgreSQL.
type categoryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(pool *pgxpool.Pool, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

// GetByID retrieves a single category by its ID.
func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		WHERE id = $1
	`

	var c model.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("category_id", id).Msg("category not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to query category")
		return nil, fmt.Errorf("failed to query category: %w", err)
	}

	return &c, nil
}

// GetByName retrieves a single category by its unique name.
func (r *categoryRepository) GetByName(ctx context.Context, name string) (*model.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		WHERE name = $1
	`

	var c model.Category
	err := r.pool.QueryRow(ctx, query, name).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("category_name", name).Msg("category not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("category_name", name).Msg("failed to query category by name")
		return nil, fmt.Errorf("failed to query category by name: %w", err)
	}

	return &c, nil
}

// ExistsByName reports whether a category with the given name exists.
func (r *categoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `
		SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		r.logger.Error().Err(err).Str("category_name", name).Msg("failed to check category existence")
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}

	return exists, nil
}

// Insert persists a new category and returns it with the assigned ID.
func (r *categoryRepository) Insert(ctx context.Context, category *model.Category) (*model.Category, error) {
	query := `
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING id
	`

	saved := *category
	if err := r.pool.QueryRow(ctx, query, category.Name).Scan(&saved.ID); err != nil {
		r.logger.Error().Err(err).Str("category_name", category.Name).Msg("failed to insert category")
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}

	return &saved, nil
}

// Update overwrites the name of an existing category.
func (r *categoryRepository) Update(ctx context.Context, category *model.Category) error {
	query := `
		UPDATE categories
		SET name = $1
		WHERE id = $2
	`

	tag, err := r.pool.Exec(ctx, query, category.Name, category.ID)
	if err != nil {
		r.logger.Error().Err(err).Int64("category_id", category.ID).Msg("failed to update category")
		return fmt.Errorf("failed to update category: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no category updated for id %d", category.ID)
	}

	return nil
}

// Delete removes a category by ID. Returns (false, nil) when absent.
func (r *categoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `
		DELETE FROM categories
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("category_id", id).Msg("failed to delete category")
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// GetAll retrieves all categories ordered by name.
func (r *categoryRepository) GetAll(ctx context.Context) ([]model.Category, error) {
	query := `
		SELECT id, name
		FROM categories
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []model.Category
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}
