package task

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/concretemix/smartmix/internal/cost"
	"github.com/concretemix/smartmix/internal/domain"
	"github.com/concretemix/smartmix/internal/repository"
)

// MockTaskRepository implements repository.Task for testing
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id int64) (*domain.ProductionTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductionTask), args.Error(1)
}

func (m *MockTaskRepository) GetByTaskNo(ctx context.Context, taskNo string) (*domain.ProductionTask, error) {
	args := m.Called(ctx, taskNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductionTask), args.Error(1)
}

func (m *MockTaskRepository) ExistsByTaskNo(ctx context.Context, taskNo string) (bool, error) {
	args := m.Called(ctx, taskNo)
	return args.Bool(0), args.Error(1)
}

func (m *MockTaskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.ProductionTask, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.ProductionTask), args.Get(1).(int64), args.Error(2)
}

func (m *MockTaskRepository) Create(ctx context.Context, t domain.ProductionTask) (*domain.ProductionTask, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductionTask), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, t domain.ProductionTask) (*domain.ProductionTask, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductionTask), args.Error(1)
}

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

// MockCostService implements cost.Service for testing
type MockCostService struct {
	mock.Mock
}

func (m *MockCostService) Recommend(ctx context.Context, strengthGrade string, volume decimal.Decimal) (*cost.Result, error) {
	args := m.Called(ctx, strengthGrade, volume)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cost.Result), args.Error(1)
}

func (m *MockCostService) PriceRecipe(ctx context.Context, recipeID int64, volume decimal.Decimal) (*domain.CostRecommendation, error) {
	args := m.Called(ctx, recipeID, volume)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CostRecommendation), args.Error(1)
}
