package mix

import (
	"context"
	"fmt"
	"time"

	"github.com/concretemix/smartmix/internal/domain"
	"github.com/concretemix/smartmix/internal/logger"
	"github.com/concretemix/smartmix/internal/repository"
)

const copyCodeTimeFormat = "20060102150405"

// CreateRecipeInput carries the fields for a new recipe. Items must be
// non-empty; every material must exist.
type CreateRecipeInput struct {
	RecipeCode            string
	StrengthGrade         string
	Slump                 string
	TechnicalRequirements string
	Remarks               string
	Items                 []ItemInput
}

// UpdateRecipeInput carries the editable fields of a pending recipe. The
// recipe code and strength grade are fixed at creation.
type UpdateRecipeInput struct {
	Slump                 string
	TechnicalRequirements string
	Remarks               string
	Items                 []ItemInput
}

// ItemInput is one material line of a create or update request.
type ItemInput struct {
	MaterialID  int64
	DosagePerM3 string // decimal string, validated >= 0
	Remarks     string
}

// Service defines the interface for mix recipe operations
type Service interface {
	GetRecipe(ctx context.Context, id int64) (*domain.MixRecipe, error)
	ListRecipes(ctx context.Context, filter repository.RecipeFilter) ([]domain.MixRecipe, int64, error)
	CreateRecipe(ctx context.Context, input CreateRecipeInput) (*domain.MixRecipe, error)

	// UpdateRecipe replaces the editable fields and the item list of a
	// recipe. Only PENDING_APPROVAL recipes may be edited.
	UpdateRecipe(ctx context.Context, id int64, input UpdateRecipeInput) (*domain.MixRecipe, error)

	// ApproveRecipe moves a pending recipe to APPROVED, making it eligible
	// for costing.
	ApproveRecipe(ctx context.Context, id int64) error

	// DisableRecipe moves a recipe to DISABLED from any state.
	DisableRecipe(ctx context.Context, id int64) error

	// CopyRecipe clones a recipe and its items under newCode, or under
	// "<code>-COPY-<timestamp>" when newCode is empty. The copy starts
	// pending.
	CopyRecipe(ctx context.Context, id int64, newCode string) (*domain.MixRecipe, error)
}

type service struct {
	repo         repository.Mix
	materialRepo repository.Material
	now          func() time.Time
}

// NewService creates a new mix recipe service
func NewService(repo repository.Mix, materialRepo repository.Material) Service {
	return &service{repo: repo, materialRepo: materialRepo, now: time.Now}
}

func (s *service) GetRecipe(ctx context.Context, id int64) (*domain.MixRecipe, error) {
	recipe, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if recipe == nil {
		return nil, domain.ErrRecipeNotFound
	}
	return recipe, nil
}

func (s *service) ListRecipes(ctx context.Context, filter repository.RecipeFilter) ([]domain.MixRecipe, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, fmt.Errorf("%w: %s", domain.ErrInvalidStatus, filter.Status)
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Size < 1 {
		filter.Size = DefaultPageSize
	}
	if filter.Size > MaxPageSize {
		filter.Size = MaxPageSize
	}

	recipes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, total, nil
}

func (s *service) CreateRecipe(ctx context.Context, input CreateRecipeInput) (*domain.MixRecipe, error) {
	items, err := s.resolveItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByCode(ctx, input.RecipeCode)
	if err != nil {
		return nil, fmt.Errorf("failed to check recipe code: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateCode, input.RecipeCode)
	}

	recipe := domain.MixRecipe{
		RecipeCode:            input.RecipeCode,
		StrengthGrade:         input.StrengthGrade,
		Slump:                 input.Slump,
		TechnicalRequirements: input.TechnicalRequirements,
		Remarks:               input.Remarks,
		Status:                domain.RecipeStatusPending,
		Items:                 items,
	}

	created, err := s.repo.Create(ctx, recipe)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	logger.FromContext(ctx).Info("Recipe created",
		"recipe_code", created.RecipeCode, "strength_grade", created.StrengthGrade)
	return created, nil
}

func (s *service) UpdateRecipe(ctx context.Context, id int64, input UpdateRecipeInput) (*domain.MixRecipe, error) {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.Status != domain.RecipeStatusPending {
		return nil, domain.ErrRecipeNotPending
	}

	items, err := s.resolveItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	recipe.Slump = input.Slump
	recipe.TechnicalRequirements = input.TechnicalRequirements
	recipe.Remarks = input.Remarks
	recipe.Items = items

	updated, err := s.repo.Update(ctx, *recipe)
	if err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}
	return updated, nil
}

func (s *service) ApproveRecipe(ctx context.Context, id int64) error {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return err
	}
	if recipe.Status != domain.RecipeStatusPending {
		return domain.ErrRecipeNotPending
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.RecipeStatusApproved); err != nil {
		return fmt.Errorf("failed to approve recipe: %w", err)
	}

	logger.FromContext(ctx).Info("Recipe approved", "recipe_code", recipe.RecipeCode)
	return nil
}

func (s *service) DisableRecipe(ctx context.Context, id int64) error {
	recipe, err := s.GetRecipe(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateStatus(ctx, id, domain.RecipeStatusDisabled); err != nil {
		return fmt.Errorf("failed to disable recipe: %w", err)
	}

	logger.FromContext(ctx).Info("Recipe disabled", "recipe_code", recipe.RecipeCode)
	return nil
}

func (s *service) CopyRecipe(ctx context.Context, id int64, newCode string) (*domain.MixRecipe, error) {
	source, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	if newCode == "" {
		newCode = source.RecipeCode + "-COPY-" + s.now().Format(copyCodeTimeFormat)
	}

	exists, err := s.repo.ExistsByCode(ctx, newCode)
	if err != nil {
		return nil, fmt.Errorf("failed to check recipe code: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateCode, newCode)
	}

	items := make([]domain.MixRecipeItem, 0, len(source.Items))
	for _, item := range source.Items {
		items = append(items, domain.MixRecipeItem{
			MaterialID:   item.MaterialID,
			MaterialCode: item.MaterialCode,
			MaterialName: item.MaterialName,
			MaterialUnit: item.MaterialUnit,
			DosagePerM3:  item.DosagePerM3,
			Remarks:      item.Remarks,
		})
	}

	clone := domain.MixRecipe{
		RecipeCode:            newCode,
		StrengthGrade:         source.StrengthGrade,
		Slump:                 source.Slump,
		TechnicalRequirements: source.TechnicalRequirements,
		Remarks:               "Copied from " + source.RecipeCode,
		Status:                domain.RecipeStatusPending,
		Items:                 items,
	}

	created, err := s.repo.Create(ctx, clone)
	if err != nil {
		return nil, fmt.Errorf("failed to copy recipe: %w", err)
	}

	logger.FromContext(ctx).Info("Recipe copied",
		"source_code", source.RecipeCode, "recipe_code", created.RecipeCode)
	return created, nil
}

// resolveItems validates the item list and resolves each material's
// denormalized fields. An empty list or an unknown material is rejected.
func (s *service) resolveItems(ctx context.Context, inputs []ItemInput) ([]domain.MixRecipeItem, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyItems
	}

	items := make([]domain.MixRecipeItem, 0, len(inputs))
	for _, in := range inputs {
		dosage, err := parseDosage(in.DosagePerM3)
		if err != nil {
			return nil, err
		}

		material, err := s.materialRepo.GetByID(ctx, in.MaterialID)
		if err != nil {
			return nil, fmt.Errorf("failed to get material: %w", err)
		}
		if material == nil {
			return nil, fmt.Errorf("%w: %d", domain.ErrMaterialNotFound, in.MaterialID)
		}

		items = append(items, domain.MixRecipeItem{
			MaterialID:   material.ID,
			MaterialCode: material.MaterialCode,
			MaterialName: material.Description,
			MaterialUnit: material.BaseUnit,
			DosagePerM3:  dosage,
			Remarks:      in.Remarks,
		})
	}
	return items, nil
}
