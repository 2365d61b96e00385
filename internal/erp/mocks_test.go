package erp

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

// MockSyncLogRepository implements repository.SyncLog for testing
type MockSyncLogRepository struct {
	mock.Mock
}

func (m *MockSyncLogRepository) Create(ctx context.Context, l domain.SyncLog) (*domain.SyncLog, error) {
	args := m.Called(ctx, l)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SyncLog), args.Error(1)
}

func (m *MockSyncLogRepository) ListRecent(ctx context.Context, limit int) ([]domain.SyncLog, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SyncLog), args.Error(1)
}

// stubInvalidator records which material caches were dropped.
type stubInvalidator struct {
	invalidated []int64
}

func (s *stubInvalidator) InvalidatePrice(materialID int64) {
	s.invalidated = append(s.invalidated, materialID)
}
