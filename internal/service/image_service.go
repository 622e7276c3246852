package service

import (
	"context"
	"fmt"

	"shop-catalog/internal/model"
	"shop-catalog/internal/repository"

	"github.com/rs/zerolog"
)

// imageService implements ImageService.
type imageService struct {
	imageRepo      repository.ImageRepository
	productService ProductService
	logger         zerolog.Logger
}

// NewImageService creates a new image service. Product resolution goes
// through the product service so its not-found semantics propagate.
func NewImageService(
	imageRepo repository.ImageRepository,
	productService ProductService,
	logger zerolog.Logger,
) ImageService {
	return &imageService{
		imageRepo:      imageRepo,
		productService: productService,
		logger:         logger.With().Str("service", "image").Logger(),
	}
}

// GetByID retrieves a single image, including its bytes, by ID.
func (s *imageService) GetByID(ctx context.Context, id int64) (*model.Image, error) {
	image, err := s.imageRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("image_id", id).Msg("failed to get image by ID")
		return nil, fmt.Errorf("failed to get image: %w", err)
	}

	if image == nil {
		s.logger.Debug().Int64("image_id", id).Msg("image not found")
		return nil, model.ErrImageNotFound
	}

	return image, nil
}

// Save persists the uploaded files for a product. All inserts run within one
// transaction; a failure on any file rolls back the whole batch. Descriptors
// are returned in input order, each carrying a download URL derived from the
// assigned id.
func (s *imageService) Save(ctx context.Context, uploads []model.ImageUpload, productID int64) ([]model.ImageDescriptor, error) {
	if len(uploads) == 0 {
		return nil, model.ErrEmptyUpload
	}

	product, err := s.productService.GetByID(ctx, productID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("product_id", productID).Msg("product lookup failed for image save")
		return nil, err
	}

	tx, err := s.imageRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save images: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	descriptors := make([]model.ImageDescriptor, 0, len(uploads))
	for i, upload := range uploads {
		image := &model.Image{
			FileName:  upload.FileName,
			FileType:  upload.ContentType,
			Data:      upload.Data,
			ProductID: product.ID,
		}

		var id int64
		id, err = s.imageRepo.InsertTx(ctx, tx, image)
		if err != nil {
			s.logger.Error().Err(err).
				Int("upload_index", i).
				Str("file_name", upload.FileName).
				Msg("failed to insert image")
			return nil, fmt.Errorf("failed to save images: %w", err)
		}

		descriptors = append(descriptors, model.ImageDescriptor{
			ImageID:     id,
			ImageName:   upload.FileName,
			DownloadURL: model.ImageDownloadPath(id),
		})
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int64("product_id", productID).Msg("failed to commit image batch")
		return nil, fmt.Errorf("failed to save images: %w", err)
	}

	s.logger.Info().
		Int64("product_id", productID).
		Int("image_count", len(descriptors)).
		Msg("images saved")

	return descriptors, nil
}

// Update replaces the file name, type, and bytes of an existing image.
func (s *imageService) Update(ctx context.Context, upload *model.ImageUpload, id int64) error {
	if upload == nil {
		return model.NewDomainError(model.ErrCodeMissingField, "Image file is required")
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	existing.FileName = upload.FileName
	existing.FileType = upload.ContentType
	existing.Data = upload.Data

	if err := s.imageRepo.Update(ctx, existing); err != nil {
		s.logger.Error().Err(err).Int64("image_id", id).Msg("failed to update image")
		return fmt.Errorf("failed to update image: %w", err)
	}

	s.logger.Info().
		Int64("image_id", id).
		Str("file_name", existing.FileName).
		Msg("image updated")

	return nil
}

// DeleteByID removes an image.
func (s *imageService) DeleteByID(ctx context.Context, id int64) error {
	deleted, err := s.imageRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("image_id", id).Msg("failed to delete image")
		return fmt.Errorf("failed to delete image: %w", err)
	}

	if !deleted {
		s.logger.Debug().Int64("image_id", id).Msg("image not found")
		return model.ErrImageNotFound
	}

	s.logger.Info().Int64("image_id", id).Msg("image deleted")
	return nil
}
