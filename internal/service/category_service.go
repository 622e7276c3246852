package service

import (
	"context"
	"fmt"
	"strings"

	"shop-catalog/internal/model"
	"shop-catalog/internal/repository"

	"github.com/rs/zerolog"
)

// categoryService implements CategoryService.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	logger       zerolog.Logger
}

// NewCategoryService creates a new category service. The product repository
// backs the referential check on delete.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       logger.With().Str("service", "category").Logger(),
	}
}

// GetByID retrieves a single category by ID.
func (s *categoryService) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to get category by ID")
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if category == nil {
		s.logger.Debug().Int64("category_id", id).Msg("category not found")
		return nil, model.ErrCategoryNotFound
	}

	return category, nil
}

// GetByName retrieves a single category by its unique name.
func (s *categoryService) GetByName(ctx context.Context, name string) (*model.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, model.ErrCategoryNotFound
	}

	category, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("category_name", name).Msg("failed to get category by name")
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if category == nil {
		s.logger.Debug().Str("category_name", name).Msg("category not found")
		return nil, model.ErrCategoryNotFound
	}

	return category, nil
}

// Add creates a new category, enforcing name uniqueness.
func (s *categoryService) Add(ctx context.Context, req *model.CategoryRequest) (*model.Category, error) {
	if err := validateCategoryRequest(req); err != nil {
		return nil, err
	}

	exists, err := s.categoryRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		s.logger.Error().Err(err).Str("category_name", req.Name).Msg("failed to check category existence")
		return nil, fmt.Errorf("failed to add category: %w", err)
	}

	if exists {
		s.logger.Warn().Str("category_name", req.Name).Msg("category already exists")
		return nil, model.ErrCategoryExists
	}

	saved, err := s.categoryRepo.Insert(ctx, &model.Category{Name: req.Name})
	if err != nil {
		s.logger.Error().Err(err).Str("category_name", req.Name).Msg("failed to insert category")
		return nil, fmt.Errorf("failed to add category: %w", err)
	}

	s.logger.Info().
		Int64("category_id", saved.ID).
		Str("category_name", saved.Name).
		Msg("category created")

	return saved, nil
}

// Update renames an existing category.
func (s *categoryService) Update(ctx context.Context, req *model.CategoryRequest, id int64) (*model.Category, error) {
	if err := validateCategoryRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing.Name != req.Name {
		// The unique index would reject the rename anyway; checking here
		// turns the failure into the proper conflict error.
		taken, err := s.categoryRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			s.logger.Error().Err(err).Str("category_name", req.Name).Msg("failed to check category existence")
			return nil, fmt.Errorf("failed to update category: %w", err)
		}
		if taken {
			s.logger.Warn().
				Int64("category_id", id).
				Str("category_name", req.Name).
				Msg("category name already taken")
			return nil, model.ErrCategoryExists
		}
	}

	existing.Name = req.Name
	if err := s.categoryRepo.Update(ctx, existing); err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to update category")
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.logger.Info().
		Int64("category_id", id).
		Str("category_name", existing.Name).
		Msg("category updated")

	return existing, nil
}

// DeleteByID removes a category. Deletion is blocked while any product still
// references the category.
func (s *categoryService) DeleteByID(ctx context.Context, id int64) error {
	count, err := s.productRepo.CountByCategoryID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to count referencing products")
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if count > 0 {
		s.logger.Warn().
			Int64("category_id", id).
			Int64("product_count", count).
			Msg("category still referenced by products")
		return model.ErrCategoryInUse
	}

	deleted, err := s.categoryRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("category_id", id).Msg("failed to delete category")
		return fmt.Errorf("failed to delete category: %w", err)
	}

	if !deleted {
		s.logger.Debug().Int64("category_id", id).Msg("category not found")
		return model.ErrCategoryNotFound
	}

	s.logger.Info().Int64("category_id", id).Msg("category deleted")
	return nil
}

// GetAll retrieves all categories.
func (s *categoryService) GetAll(ctx context.Context) ([]model.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all categories")
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	s.logger.Debug().Int("count", len(categories)).Msg("retrieved categories")
	return categories, nil
}

// validateCategoryRequest validates the category request.
func validateCategoryRequest(req *model.CategoryRequest) error {
	if req == nil || strings.TrimSpace(req.Name) == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Category name is required")
	}
	return nil
}
