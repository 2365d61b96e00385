package handler

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/concretemix/smartmix/internal/cost"
	"github.com/concretemix/smartmix/internal/domain"
	"github.com/concretemix/smartmix/internal/erp"
	"github.com/concretemix/smartmix/internal/material"
	"github.com/concretemix/smartmix/internal/mix"
	"github.com/concretemix/smartmix/internal/repository"
	"github.com/concretemix/smartmix/internal/task"
)

// MockCostService mocks cost.Service
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

// MockMaterialService mocks material.Service
type MockMaterialService struct {
	mock.Mock
}

func (m *MockMaterialService) GetMaterial(ctx context.Context, id int64) (*domain.Material, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Material), args.Error(1)
}

func (m *MockMaterialService) ListMaterials(ctx context.Context, filter repository.MaterialFilter) ([]domain.Material, int64, error) {
	args := m.Called(ctx, filter)
	var materials []domain.Material
	if args.Get(0) != nil {
		materials = args.Get(0).([]domain.Material)
	}
	return materials, args.Get(1).(int64), args.Error(2)
}

func (m *MockMaterialService) GetCurrentPrice(ctx context.Context, materialID int64) (*domain.MaterialPrice, error) {
	args := m.Called(ctx, materialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaterialPrice), args.Error(1)
}

func (m *MockMaterialService) ListPriceHistory(ctx context.Context, materialID int64) ([]domain.MaterialPrice, error) {
	args := m.Called(ctx, materialID)
	var prices []domain.MaterialPrice
	if args.Get(0) != nil {
		prices = args.Get(0).([]domain.MaterialPrice)
	}
	return prices, args.Error(1)
}

func (m *MockMaterialService) InvalidatePrice(materialID int64) {
	m.Called(materialID)
}

func (m *MockMaterialService) GetCacheStats() material.CacheStats {
	args := m.Called()
	return args.Get(0).(material.CacheStats)
}

// MockMixService mocks mix.Service
type MockMixService struct {
	mock.Mock
}

func (m *MockMixService) GetRecipe(ctx context.Context, id int64) (*domain.MixRecipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MixRecipe), args.Error(1)
}

func (m *MockMixService) ListRecipes(ctx context.Context, filter repository.RecipeFilter) ([]domain.MixRecipe, int64, error) {
	args := m.Called(ctx, filter)
	var recipes []domain.MixRecipe
	if args.Get(0) != nil {
		recipes = args.Get(0).([]domain.MixRecipe)
	}
	return recipes, args.Get(1).(int64), args.Error(2)
}

func (m *MockMixService) CreateRecipe(ctx context.Context, input mix.CreateRecipeInput) (*domain.MixRecipe, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MixRecipe), args.Error(1)
}

func (m *MockMixService) UpdateRecipe(ctx context.Context, id int64, input mix.UpdateRecipeInput) (*domain.MixRecipe, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MixRecipe), args.Error(1)
}

func (m *MockMixService) ApproveRecipe(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMixService) DisableRecipe(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMixService) CopyRecipe(ctx context.Context, id int64, newCode string) (*domain.MixRecipe, error) {
	args := m.Called(ctx, id, newCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MixRecipe), args.Error(1)
}

// MockTaskService mocks task.Service
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) GetTask(ctx context.Context, id int64) (*domain.ProductionTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductionTask), args.Error(1)
}

func (m *MockTaskService) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]domain.ProductionTask, int64, error) {
	args := m.Called(ctx, filter)
	var tasks []domain.ProductionTask
	if args.Get(0) != nil {
		tasks = args.Get(0).([]domain.ProductionTask)
	}
	return tasks, args.Get(1).(int64), args.Error(2)
}

func (m *MockTaskService) CreateTask(ctx context.Context, input task.CreateTaskInput) (*domain.ProductionTask, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductionTask), args.Error(1)
}

func (m *MockTaskService) SelectMix(ctx context.Context, taskID, mixRecipeID int64) (*domain.ProductionTask, error) {
	args := m.Called(ctx, taskID, mixRecipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductionTask), args.Error(1)
}

func (m *MockTaskService) StartTask(ctx context.Context, id int64) (*domain.ProductionTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductionTask), args.Error(1)
}

func (m *MockTaskService) CompleteTask(ctx context.Context, id int64) (*domain.ProductionTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductionTask), args.Error(1)
}

func (m *MockTaskService) CancelTask(ctx context.Context, id int64) (*domain.ProductionTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductionTask), args.Error(1)
}

// MockErpService mocks erp.Service
type MockErpService struct {
	mock.Mock
}

func (m *MockErpService) SyncMaterials(ctx context.Context, rows []erp.MaterialSyncInput, sourceIP string) (*domain.SyncResult, error) {
	args := m.Called(ctx, rows, sourceIP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncResult), args.Error(1)
}

func (m *MockErpService) SyncPrices(ctx context.Context, rows []erp.PriceSyncInput, sourceIP string) (*domain.SyncResult, error) {
	args := m.Called(ctx, rows, sourceIP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncResult), args.Error(1)
}

func (m *MockErpService) SyncTasks(ctx context.Context, rows []erp.TaskSyncInput, sourceIP string) (*domain.SyncResult, error) {
	args := m.Called(ctx, rows, sourceIP)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncResult), args.Error(1)
}

func (m *MockErpService) ListSyncLogs(ctx context.Context, limit int) ([]domain.SyncLog, error) {
	args := m.Called(ctx, limit)
	var logs []domain.SyncLog
	if args.Get(0) != nil {
		logs = args.Get(0).([]domain.SyncLog)
	}
	return logs, args.Error(1)
}
