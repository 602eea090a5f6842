package controllers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"catalogo/internal/api"
	"catalogo/internal/models"
)

// MockProductAPI is a mock implementation of api.ProductAPI.
type MockProductAPI struct {
	mock.Mock
}

func (m *MockProductAPI) List(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductAPI) Get(ctx context.Context, id int) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductAPI) Create(ctx context.Context, payload models.ProductPayload, image *api.Upload) (*models.Product, error) {
	args := m.Called(ctx, payload, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductAPI) Update(ctx context.Context, id int, payload models.ProductPayload, image *api.Upload) (*models.Product, error) {
	args := m.Called(ctx, id, payload, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductAPI) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductAPI) ImageURL(raw string) string {
	args := m.Called(raw)
	return args.String(0)
}

// MockSupplierAPI is a mock implementation of api.SupplierAPI.
type MockSupplierAPI struct {
	mock.Mock
}

func (m *MockSupplierAPI) List(ctx context.Context) ([]models.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Supplier), args.Error(1)
}

func (m *MockSupplierAPI) Get(ctx context.Context, id int) (*models.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supplier), args.Error(1)
}

func (m *MockSupplierAPI) Create(ctx context.Context, payload models.SupplierPayload) (*models.Supplier, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supplier), args.Error(1)
}

func (m *MockSupplierAPI) Update(ctx context.Context, id int, payload models.SupplierPayload) (*models.Supplier, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supplier), args.Error(1)
}

func (m *MockSupplierAPI) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
