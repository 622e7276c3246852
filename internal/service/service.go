package service

import (
	"context"

	"shop-catalog/internal/model"
)

// CategoryService defines operations for category management. All lookups
// fail with model.ErrCategoryNotFound when the category is absent.
type CategoryService interface {
	// GetByID retrieves a single category by ID.
	GetByID(ctx context.Context, id int64) (*model.Category, error)

	// GetByName retrieves a single category by its unique name.
	GetByName(ctx context.Context, name string) (*model.Category, error)

	// Add creates a new category. Fails with model.ErrCategoryExists when
	// the name is already taken.
	Add(ctx context.Context, req *model.CategoryRequest) (*model.Category, error)

	// Update renames an existing category.
	Update(ctx context.Context, req *model.CategoryRequest, id int64) (*model.Category, error)

	// DeleteByID removes a category. Fails with model.ErrCategoryInUse when
	// products still reference it.
	DeleteByID(ctx context.Context, id int64) error

	// GetAll retrieves all categories.
	GetAll(ctx context.Context) ([]model.Category, error)
}

// ProductService defines operations for product management.
type ProductService interface {
	// Add creates a new product, reusing or creating the named category.
	Add(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Update overwrites an existing product. The named category must already
	// exist; it is never created on update.
	Update(ctx context.Context, req *model.ProductRequest, id int64) (*model.Product, error)

	// DeleteByID removes a product.
	DeleteByID(ctx context.Context, id int64) error

	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByCategory retrieves products belonging to the named category.
	GetByCategory(ctx context.Context, category string) ([]model.Product, error)

	// GetByBrand retrieves products of the given brand.
	GetByBrand(ctx context.Context, brand string) ([]model.Product, error)

	// GetByCategoryAndBrand retrieves products matching both filters.
	GetByCategoryAndBrand(ctx context.Context, category, brand string) ([]model.Product, error)

	// GetByName retrieves products with the given name.
	GetByName(ctx context.Context, name string) ([]model.Product, error)

	// GetByBrandAndName retrieves products matching both filters.
	GetByBrandAndName(ctx context.Context, brand, name string) ([]model.Product, error)

	// CountByBrandAndName counts products matching both filters.
	CountByBrandAndName(ctx context.Context, brand, name string) (int64, error)
}

// ImageService defines operations for product image management.
type ImageService interface {
	// GetByID retrieves a single image, including its bytes, by ID.
	GetByID(ctx context.Context, id int64) (*model.Image, error)

	// Save persists the uploaded files for a product and returns one
	// descriptor per file, in input order. The whole batch is atomic.
	Save(ctx context.Context, uploads []model.ImageUpload, productID int64) ([]model.ImageDescriptor, error)

	// Update replaces the file name, type, and bytes of an existing image.
	Update(ctx context.Context, upload *model.ImageUpload, id int64) error

	// DeleteByID removes an image.
	DeleteByID(ctx context.Context, id int64) error
}
