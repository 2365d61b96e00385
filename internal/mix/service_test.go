package mix

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/concretemix/smartmix/internal/domain"
)

func cementMaterial() *domain.Material {
	return &domain.Material{
		ID:           1,
		MaterialCode: "CEM-001",
		Description:  "Portland Cement 42.5",
		BaseUnit:     "KG",
		PlantCode:    domain.DefaultPlantCode,
	}
}

func pendingRecipe(id int64, code string) *domain.MixRecipe {
	return &domain.MixRecipe{
		ID:            id,
		RecipeCode:    code,
		StrengthGrade: "C30",
		Status:        domain.RecipeStatusPending,
		Items: []domain.MixRecipeItem{
			{MaterialID: 1, MaterialCode: "CEM-001", DosagePerM3: decimal.RequireFromString("300")},
		},
	}
}

func TestCreateRecipe_Success(t *testing.T) {
	repo := &MockMixRepository{}
	materialRepo := &MockMaterialRepository{}
	ctx := context.Background()

	materialRepo.On("GetByID", ctx, int64(1)).Return(cementMaterial(), nil)
	repo.On("ExistsByCode", ctx, "C30-NEW").Return(false, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(r domain.MixRecipe) bool {
		return r.RecipeCode == "C30-NEW" &&
			r.Status == domain.RecipeStatusPending &&
			len(r.Items) == 1 &&
			r.Items[0].MaterialCode == "CEM-001"
	})).Return(pendingRecipe(5, "C30-NEW"), nil)

	svc := NewService(repo, materialRepo)
	created, err := svc.CreateRecipe(ctx, CreateRecipeInput{
		RecipeCode:    "C30-NEW",
		StrengthGrade: "C30",
		Items:         []ItemInput{{MaterialID: 1, DosagePerM3: "300"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), created.ID)
	repo.AssertExpectations(t)
}

func TestCreateRecipe_DuplicateCode(t *testing.T) {
	repo := &MockMixRepository{}
	materialRepo := &MockMaterialRepository{}
	ctx := context.Background()

	materialRepo.On("GetByID", ctx, int64(1)).Return(cementMaterial(), nil)
	repo.On("ExistsByCode", ctx, "C30-DUP").Return(true, nil)

	svc := NewService(repo, materialRepo)
	_, err := svc.CreateRecipe(ctx, CreateRecipeInput{
		RecipeCode:    "C30-DUP",
		StrengthGrade: "C30",
		Items:         []ItemInput{{MaterialID: 1, DosagePerM3: "300"}},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)
}

func TestCreateRecipe_EmptyItems(t *testing.T) {
	svc := NewService(&MockMixRepository{}, &MockMaterialRepository{})

	_, err := svc.CreateRecipe(context.Background(), CreateRecipeInput{
		RecipeCode:    "C30-X",
		StrengthGrade: "C30",
	})
	assert.ErrorIs(t, err, ErrEmptyItems)
}

func TestCreateRecipe_UnknownMaterial(t *testing.T) {
	repo := &MockMixRepository{}
	materialRepo := &MockMaterialRepository{}
	ctx := context.Background()

	materialRepo.On("GetByID", ctx, int64(42)).Return(nil, nil)

	svc := NewService(repo, materialRepo)
	_, err := svc.CreateRecipe(ctx, CreateRecipeInput{
		RecipeCode:    "C30-X",
		StrengthGrade: "C30",
		Items:         []ItemInput{{MaterialID: 42, DosagePerM3: "300"}},
	})
	assert.ErrorIs(t, err, domain.ErrMaterialNotFound)
}

func TestCreateRecipe_NegativeDosage(t *testing.T) {
	svc := NewService(&MockMixRepository{}, &MockMaterialRepository{})

	_, err := svc.CreateRecipe(context.Background(), CreateRecipeInput{
		RecipeCode:    "C30-X",
		StrengthGrade: "C30",
		Items:         []ItemInput{{MaterialID: 1, DosagePerM3: "-5"}},
	})
	assert.ErrorIs(t, err, ErrInvalidDosage)
}

func TestUpdateRecipe_OnlyWhilePending(t *testing.T) {
	repo := &MockMixRepository{}
	ctx := context.Background()

	approved := pendingRecipe(3, "C30-A")
	approved.Status = domain.RecipeStatusApproved
	repo.On("GetByID", ctx, int64(3)).Return(approved, nil)

	svc := NewService(repo, &MockMaterialRepository{})
	_, err := svc.UpdateRecipe(ctx, 3, UpdateRecipeInput{
		Items: []ItemInput{{MaterialID: 1, DosagePerM3: "310"}},
	})
	assert.ErrorIs(t, err, domain.ErrRecipeNotPending)
}

func TestApproveRecipe_Success(t *testing.T) {
	repo := &MockMixRepository{}
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(3)).Return(pendingRecipe(3, "C30-A"), nil)
	repo.On("UpdateStatus", ctx, int64(3), domain.RecipeStatusApproved).Return(nil)

	svc := NewService(repo, &MockMaterialRepository{})
	require.NoError(t, svc.ApproveRecipe(ctx, 3))
	repo.AssertExpectations(t)
}

func TestApproveRecipe_NotPending(t *testing.T) {
	repo := &MockMixRepository{}
	ctx := context.Background()

	disabled := pendingRecipe(3, "C30-A")
	disabled.Status = domain.RecipeStatusDisabled
	repo.On("GetByID", ctx, int64(3)).Return(disabled, nil)

	svc := NewService(repo, &MockMaterialRepository{})
	assert.ErrorIs(t, svc.ApproveRecipe(ctx, 3), domain.ErrRecipeNotPending)
}

func TestDisableRecipe_FromAnyStatus(t *testing.T) {
	repo := &MockMixRepository{}
	ctx := context.Background()

	approved := pendingRecipe(3, "C30-A")
	approved.Status = domain.RecipeStatusApproved
	repo.On("GetByID", ctx, int64(3)).Return(approved, nil)
	repo.On("UpdateStatus", ctx, int64(3), domain.RecipeStatusDisabled).Return(nil)

	svc := NewService(repo, &MockMaterialRepository{})
	require.NoError(t, svc.DisableRecipe(ctx, 3))
	repo.AssertExpectations(t)
}

func TestCopyRecipe_GeneratesCode(t *testing.T) {
	repo := &MockMixRepository{}
	ctx := context.Background()

	source := pendingRecipe(3, "C30-A")
	source.Status = domain.RecipeStatusApproved
	repo.On("GetByID", ctx, int64(3)).Return(source, nil)

	fixed := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	wantCode := "C30-A-COPY-20260314150926"
	repo.On("ExistsByCode", ctx, wantCode).Return(false, nil)
	repo.On("Create", ctx, mock.MatchedBy(func(r domain.MixRecipe) bool {
		return r.RecipeCode == wantCode &&
			r.Status == domain.RecipeStatusPending &&
			len(r.Items) == len(source.Items)
	})).Return(pendingRecipe(9, wantCode), nil)

	svc := NewService(repo, &MockMaterialRepository{}).(*service)
	svc.now = func() time.Time { return fixed }

	created, err := svc.CopyRecipe(ctx, 3, "")
	require.NoError(t, err)
	assert.Equal(t, wantCode, created.RecipeCode)
	repo.AssertExpectations(t)
}

func TestCopyRecipe_ExplicitCodeConflict(t *testing.T) {
	repo := &MockMixRepository{}
	ctx := context.Background()

	repo.On("GetByID", ctx, int64(3)).Return(pendingRecipe(3, "C30-A"), nil)
	repo.On("ExistsByCode", ctx, "C30-B").Return(true, nil)

	svc := NewService(repo, &MockMaterialRepository{})
	_, err := svc.CopyRecipe(ctx, 3, "C30-B")
	assert.ErrorIs(t, err, domain.ErrDuplicateCode)
}
