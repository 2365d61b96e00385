package material

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/concretemix/smartmix/internal/domain"
	"github.com/concretemix/smartmix/internal/repository"
)

// MockMaterialRepository implements repository.Material for testing
type MockMaterialRepository struct {
	mock.Mock
}

func (m *MockMaterialRepository) GetByID(ctx context.Context, id int64) (*domain.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialRepository) GetByCodeAndPlant(ctx context.Context, materialCode, plantCode string) (*domain.Material, error) {
	args := m.Called(ctx, materialCode, plantCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialRepository) Upsert(ctx context.Context, mat domain.Material) (*domain.Material, error) {
	args := m.Called(ctx, mat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialRepository) List(ctx context.Context, filter repository.MaterialFilter) ([]domain.Material, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Material), args.Get(1).(int64), args.Error(2)
}

func (m *MockMaterialRepository) GetCurrentPrice(ctx context.Context, materialID int64) (*domain.MaterialPrice, error) {
	args := m.Called(ctx, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaterialPrice), args.Error(1)
}

func (m *MockMaterialRepository) ListPrices(ctx context.Context, materialID int64) ([]domain.MaterialPrice, error) {
	args := m.Called(ctx, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaterialPrice), args.Error(1)
}

func (m *MockMaterialRepository) ReplaceCurrentPrice(ctx context.Context, p domain.MaterialPrice) (*domain.MaterialPrice, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaterialPrice), args.Error(1)
}
