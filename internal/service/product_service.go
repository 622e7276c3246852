package service

import (
	"context"
	"fmt"
	"strings"

	"shop-catalog/internal/model"
	"shop-catalog/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	logger       zerolog.Logger
}

// NewProductService creates a new product service. The category repository
// backs the find-or-create resolution on add.
func NewProductService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	logger zerolog.Logger,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger.With().Str("service", "product").Logger(),
	}
}

// Add creates a new product. The named category is reused when it exists and
// created when it does not, so the saved product never lacks a category.
func (s *productService) Add(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	category, err := s.resolveOrCreateCategory(ctx, req.Category.Name)
	if err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        req.Name,
		Brand:       req.Brand,
		Price:       req.Price,
		Inventory:   req.Inventory,
		Description: req.Description,
		Category:    *category,
	}

	saved, err := s.productRepo.Insert(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("product_name", req.Name).Msg("failed to insert product")
		return nil, fmt.Errorf("failed to add product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", saved.ID).
		Str("product_name", saved.Name).
		Str("category_name", saved.Category.Name).
		Msg("product created")

	return saved, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Update overwrites an existing product. Unlike Add, the named category must
// already exist; a product is never left without a valid category reference.
func (s *productService) Update(ctx context.Context, req *model.ProductRequest, id int64) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category, err := s.categoryRepo.GetByName(ctx, req.Category.Name)
	if err != nil {
		s.logger.Error().Err(err).Str("category_name", req.Category.Name).Msg("failed to resolve category")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if category == nil {
		s.logger.Warn().
			Int64("product_id", id).
			Str("category_name", req.Category.Name).
			Msg("category not found for product update")
		return nil, model.ErrCategoryNotFound
	}

	existing.Name = req.Name
	existing.Brand = req.Brand
	existing.Price = req.Price
	existing.Inventory = req.Inventory
	existing.Description = req.Description
	existing.Category = *category

	if err := s.productRepo.Update(ctx, existing); err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", id).
		Str("product_name", existing.Name).
		Msg("product updated")

	return existing, nil
}

// DeleteByID removes a product.
func (s *productService) DeleteByID(ctx context.Context, id int64) error {
	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !deleted {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return model.ErrProductNotFound
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

// GetAll retrieves all products.
func (s *productService) GetAll(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get all products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().Int("count", len(products)).Msg("retrieved products")
	return products, nil
}

// GetByCategory retrieves products belonging to the named category. An empty
// result is not an error.
func (s *productService) GetByCategory(ctx context.Context, category string) ([]model.Product, error) {
	products, err := s.productRepo.GetByCategoryName(ctx, category)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("failed to get products by category")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetByBrand retrieves products of the given brand.
func (s *productService) GetByBrand(ctx context.Context, brand string) ([]model.Product, error) {
	products, err := s.productRepo.GetByBrand(ctx, brand)
	if err != nil {
		s.logger.Error().Err(err).Str("brand", brand).Msg("failed to get products by brand")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetByCategoryAndBrand retrieves products matching both filters.
func (s *productService) GetByCategoryAndBrand(ctx context.Context, category, brand string) ([]model.Product, error) {
	products, err := s.productRepo.GetByCategoryNameAndBrand(ctx, category, brand)
	if err != nil {
		s.logger.Error().Err(err).
			Str("category", category).
			Str("brand", brand).
			Msg("failed to get products by category and brand")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetByName retrieves products with the given name.
func (s *productService) GetByName(ctx context.Context, name string) ([]model.Product, error) {
	products, err := s.productRepo.GetByName(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("failed to get products by name")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetByBrandAndName retrieves products matching both filters.
func (s *productService) GetByBrandAndName(ctx context.Context, brand, name string) ([]model.Product, error) {
	products, err := s.productRepo.GetByBrandAndName(ctx, brand, name)
	if err != nil {
		s.logger.Error().Err(err).
			Str("brand", brand).
			Str("name", name).
			Msg("failed to get products by brand and name")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// CountByBrandAndName counts products matching both filters.
func (s *productService) CountByBrandAndName(ctx context.Context, brand, name string) (int64, error) {
	count, err := s.productRepo.CountByBrandAndName(ctx, brand, name)
	if err != nil {
		s.logger.Error().Err(err).
			Str("brand", brand).
			Str("name", name).
			Msg("failed to count products")
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// resolveOrCreateCategory returns the category with the given name, creating
// it when absent. Two products added with the same new category name end up
// referencing the same category record.
func (s *productService) resolveOrCreateCategory(ctx context.Context, name string) (*model.Category, error) {
	category, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Str("category_name", name).Msg("failed to resolve category")
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}

	if category != nil {
		return category, nil
	}

	saved, err := s.categoryRepo.Insert(ctx, &model.Category{Name: name})
	if err != nil {
		s.logger.Error().Err(err).Str("category_name", name).Msg("failed to create category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info().
		Int64("category_id", saved.ID).
		Str("category_name", saved.Name).
		Msg("category created for new product")

	return saved, nil
}

// validateProductRequest validates the product request.
func validateProductRequest(req *model.ProductRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeMissingField, "Product request is required")
	}

	if strings.TrimSpace(req.Name) == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Product name is required")
	}

	if strings.TrimSpace(req.Category.Name) == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Category name is required")
	}

	return nil
}
