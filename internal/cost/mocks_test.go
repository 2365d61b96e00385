package cost

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/concretemix/smartmix/internal/domain"
	"github.com/concretemix/smartmix/internal/repository"
)

// stubProvider implements repository.Cost over in-memory data. Recipes are
// returned in insertion order, matching provider order semantics.
type stubProvider struct {
	recipes []domain.MixRecipe
	prices  map[int64]*domain.MaterialPrice

	priceErrs map[int64]error // forced lookup failures per material

	findCalls  int
	priceCalls int
}

func (s *stubProvider) FindApprovedRecipesByGrade(_ context.Context, strengthGrade string) ([]domain.MixRecipe, error) {
	s.findCalls++
	var out []domain.MixRecipe
	for _, r := range s.recipes {
		if r.StrengthGrade == strengthGrade && r.Status == domain.RecipeStatusApproved {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubProvider) GetCurrentPrice(_ context.Context, materialID int64) (*domain.MaterialPrice, error) {
	s.priceCalls++
	if err, ok := s.priceErrs[materialID]; ok {
		return nil, err
	}
	return s.prices[materialID], nil
}

func (s *stubProvider) BeginSnapshot(_ context.Context) (repository.CostSnapshot, error) {
	return stubSnapshot{s}, nil
}

type stubSnapshot struct{ *stubProvider }

func (stubSnapshot) Close(_ context.Context) error { return nil }

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
