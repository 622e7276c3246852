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

// imageRepository implements the ImageRepository interface using PostgreSQL.
type imageRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewImageRepository creates a new PostgreSQL-backed image repository.
func NewImageRepository(pool *pgxpool.Pool, logger zerolog.Logger) ImageRepository {
	return &imageRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "image").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *imageRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// GetByID retrieves a single image, including its bytes, by ID. The download
// URL is derived from the assigned id rather than stored.
func (r *imageRepository) GetByID(ctx context.Context, id int64) (*model.Image, error) {
	query := `
		SELECT id, file_name, file_type, data, product_id, created_at
		FROM images
		WHERE id = $1
	`

	var img model.Image
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&img.ID, &img.FileName, &img.FileType, &img.Data, &img.ProductID, &img.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int64("image_id", id).Msg("image not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("image_id", id).Msg("failed to query image")
		return nil, fmt.Errorf("failed to query image: %w", err)
	}

	img.DownloadURL = model.ImageDownloadPath(img.ID)
	return &img, nil
}

// InsertTx persists a new image within the provided transaction and returns
// the assigned ID.
func (r *imageRepository) InsertTx(ctx context.Context, tx pgx.Tx, image *model.Image) (int64, error) {
	query := `
		INSERT INTO images (file_name, file_type, data, product_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := tx.QueryRow(ctx, query,
		image.FileName, image.FileType, image.Data, image.ProductID, time.Now(),
	).Scan(&id)
	if err != nil {
		r.logger.Error().Err(err).
			Str("file_name", image.FileName).
			Int64("product_id", image.ProductID).
			Msg("failed to insert image")
		return 0, fmt.Errorf("failed to insert image: %w", err)
	}

	return id, nil
}

// Update overwrites the file name, type, and bytes of an existing image.
func (r *imageRepository) Update(ctx context.Context, image *model.Image) error {
	query := `
		UPDATE images
		SET file_name = $1, file_type = $2, data = $3
		WHERE id = $4
	`

	tag, err := r.pool.Exec(ctx, query, image.FileName, image.FileType, image.Data, image.ID)
	if err != nil {
		r.logger.Error().Err(err).Int64("image_id", image.ID).Msg("failed to update image")
		return fmt.Errorf("failed to update image: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no image updated for id %d", image.ID)
	}

	return nil
}

// Delete removes an image by ID. Returns (false, nil) when absent.
func (r *imageRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `
		DELETE FROM images
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("image_id", id).Msg("failed to delete image")
		return false, fmt.Errorf("failed to delete image: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
