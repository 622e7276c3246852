package repository

import (
	"context"

	"shop-catalog/internal/model"

	"github.com/jackc/pgx/v5"
)

// CategoryRepository defines the interface for category data access operations.
// Lookups return (nil, nil) when no row matches; callers decide whether that
// is an error.
type CategoryRepository interface {
	// GetByID retrieves a single category by its ID.
	GetByID(ctx context.Context, id int64) (*model.Category, error)

	// GetByName retrieves a single category by its unique name.
	GetByName(ctx context.Context, name string) (*model.Category, error)

	// ExistsByName reports whether a category with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Insert persists a new category and returns it with the assigned ID.
	Insert(ctx context.Context, category *model.Category) (*model.Category, error)

	// Update overwrites the name of an existing category.
	Update(ctx context.Context, category *model.Category) error

	// Delete removes a category by ID. Returns (false, nil) when absent.
	Delete(ctx context.Context, id int64) (bool, error)

	// GetAll retrieves all categories.
	GetAll(ctx context.Context) ([]model.Category, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetByID retrieves a single product with its category by ID.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Insert persists a new product and returns it with the assigned ID.
	Insert(ctx context.Context, product *model.Product) (*model.Product, error)

	// Update overwrites the mutable fields of an existing product.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product by ID. Returns (false, nil) when absent.
	Delete(ctx context.Context, id int64) (bool, error)

	// GetAll retrieves all products with their categories.
	GetAll(ctx context.Context) ([]model.Product, error)

	// GetByCategoryName retrieves products belonging to the named category.
	GetByCategoryName(ctx context.Context, category string) ([]model.Product, error)

	// GetByBrand retrieves products of the given brand.
	GetByBrand(ctx context.Context, brand string) ([]model.Product, error)

	// GetByCategoryNameAndBrand retrieves products matching both filters.
	GetByCategoryNameAndBrand(ctx context.Context, category, brand string) ([]model.Product, error)

	// GetByName retrieves products with the given name.
	GetByName(ctx context.Context, name string) ([]model.Product, error)

	// GetByBrandAndName retrieves products matching both filters.
	GetByBrandAndName(ctx context.Context, brand, name string) ([]model.Product, error)

	// CountByBrandAndName counts products matching both filters.
	CountByBrandAndName(ctx context.Context, brand, name string) (int64, error)

	// CountByCategoryID counts products referencing the given category.
	CountByCategoryID(ctx context.Context, categoryID int64) (int64, error)
}

// ImageRepository defines the interface for image data access operations.
type ImageRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// GetByID retrieves a single image, including its bytes, by ID.
	GetByID(ctx context.Context, id int64) (*model.Image, error)

	// InsertTx persists a new image within the provided transaction and
	// returns the assigned ID.
	InsertTx(ctx context.Context, tx pgx.Tx, image *model.Image) (int64, error)

	// Update overwrites the file name, type, and bytes of an existing image.
	Update(ctx context.Context, image *model.Image) error

	// Delete removes an image by ID. Returns (false, nil) when absent.
	Delete(ctx context.Context, id int64) (bool, error)
}
