package handler

import (
	"context"

	"shop-catalog/internal/model"

	"github.com/stretchr/testify/mock"
)

// MockCategoryService is a mock implementation of service.CategoryService.
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryService) GetByName(ctx context.Context, name string) (*model.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryService) Add(ctx context.Context, req *model.CategoryRequest) (*model.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryService) Update(ctx context.Context, req *model.CategoryRequest, id int64) (*model.Category, error) {
	args := m.Called(ctx, req, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCategoryService) GetAll(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Category), args.Error(1)
}

// MockProductService is a mock implementation of service.ProductService.
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) Add(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) Update(ctx context.Context, req *model.ProductRequest, id int64) (*model.Product, error) {
	args := m.Called(ctx, req, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductService) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductService) GetAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByCategory(ctx context.Context, category string) ([]model.Product, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByBrand(ctx context.Context, brand string) ([]model.Product, error) {
	args := m.Called(ctx, brand)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByCategoryAndBrand(ctx context.Context, category, brand string) ([]model.Product, error) {
	args := m.Called(ctx, category, brand)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByName(ctx context.Context, name string) ([]model.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) GetByBrandAndName(ctx context.Context, brand, name string) ([]model.Product, error) {
	args := m.Called(ctx, brand, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductService) CountByBrandAndName(ctx context.Context, brand, name string) (int64, error) {
	args := m.Called(ctx, brand, name)
	return args.Get(0).(int64), args.Error(1)
}

// MockImageService is a mock implementation of service.ImageService.
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) GetByID(ctx context.Context, id int64) (*model.Image, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Image), args.Error(1)
}

func (m *MockImageService) Save(ctx context.Context, uploads []model.ImageUpload, productID int64) ([]model.ImageDescriptor, error) {
	args := m.Called(ctx, uploads, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ImageDescriptor), args.Error(1)
}

func (m *MockImageService) Update(ctx context.Context, upload *model.ImageUpload, id int64) error {
	args := m.Called(ctx, upload, id)
	return args.Error(0)
}

func (m *MockImageService) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
