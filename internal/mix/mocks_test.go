package mix

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/concretemix/smartmix/internal/domain"
	"github.com/concretemix/smartmix/internal/repository"
)

// MockMixRepository implements repository.Mix for testing
type MockMixRepository struct {
	mock.Mock
}

func (m *MockMixRepository) GetByID(ctx context.Context, id int64) (*domain.MixRecipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MixRecipe), args.Error(1)
}

func (m *MockMixRepository) ExistsByCode(ctx context.Context, recipeCode string) (bool, error) {
	args := m.Called(ctx, recipeCode)
	return args.Bool(0), args.Error(1)
}

func (m *MockMixRepository) List(ctx context.Context, filter repository.RecipeFilter) ([]domain.MixRecipe, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.MixRecipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockMixRepository) Create(ctx context.Context, r domain.MixRecipe) (*domain.MixRecipe, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MixRecipe), args.Error(1)
}

func (m *MockMixRepository) Update(ctx context.Context, r domain.MixRecipe) (*domain.MixRecipe, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MixRecipe), args.Error(1)
}

func (m *MockMixRepository) UpdateStatus(ctx context.Context, id int64, status domain.RecipeStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

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
