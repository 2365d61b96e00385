package cost

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/concretemix/smartmix/internal/domain"
	"github.com/concretemix/smartmix/internal/logger"
	"github.com/concretemix/smartmix/internal/metrics"
	"github.com/concretemix/smartmix/internal/repository"
)

// Result carries the ranked recommendations plus per-recipe exclusions for
// the host's log and metrics sinks, and an advisory message when the list is
// empty.
type Result struct {
	Recommendations []domain.CostRecommendation `json:"recommendations"`
	Exclusions      []domain.RecipeExclusion    `json:"exclusions,omitempty"`
	Message         string                      `json:"message,omitempty"`
}

// Service defines the interface for cost optimization operations
type Service interface {
	// Recommend ranks all approved recipes for the grade by unit cost
	// ascending and marks the cheapest feasible one as best.
	Recommend(ctx context.Context, strengthGrade string, volume decimal.Decimal) (*Result, error)

	// PriceRecipe costs a single recipe at the given volume against current
	// prices. Returns domain.ErrPriceIncomplete when any line has no
	// resolvable price.
	PriceRecipe(ctx context.Context, recipeID int64, volume decimal.Decimal) (*domain.CostRecommendation, error)
}

type service struct {
	repo    repository.Cost
	mixRepo repository.Mix
}

// NewService creates a new cost optimization service
func NewService(repo repository.Cost, mixRepo repository.Mix) Service {
	return &service{repo: repo, mixRepo: mixRepo}
}

func (s *service) Recommend(ctx context.Context, strengthGrade string, volume decimal.Decimal) (*Result, error) {
	log := logger.FromContext(ctx)

	if volume.Sign() <= 0 {
		return nil, domain.ErrInvalidVolume
	}

	// All reads of one recommendation happen inside a single read snapshot so
	// a concurrent price replacement cannot be partially observed.
	snap, err := s.repo.BeginSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin read snapshot: %w", err)
	}
	defer func() { _ = snap.Close(ctx) }()

	recipes, err := snap.FindApprovedRecipesByGrade(ctx, strengthGrade)
	if err != nil {
		return nil, fmt.Errorf("failed to find approved recipes: %w", err)
	}

	result := &Result{Recommendations: []domain.CostRecommendation{}}

	if len(recipes) == 0 {
		result.Message = MsgNoEligibleRecipes
		return result, nil
	}

	for _, recipe := range recipes {
		rec, err := computeCost(ctx, snap, recipe, volume)
		if err != nil {
			// One bad recipe never aborts the batch.
			exclusion := domain.RecipeExclusion{
				MixRecipeID:   recipe.ID,
				MixRecipeCode: recipe.RecipeCode,
				Reason:        domain.ExclusionComputeError,
				Detail:        err.Error(),
			}
			if errors.Is(err, domain.ErrPriceIncomplete) {
				exclusion.Reason = domain.ExclusionPriceIncomplete
			} else {
				log.Warn("Recipe costing failed, skipping",
					"recipe_code", recipe.RecipeCode, "error", err)
			}
			result.Exclusions = append(result.Exclusions, exclusion)
			metrics.RecipesExcluded.WithLabelValues(exclusion.Reason).Inc()
			continue
		}
		result.Recommendations = append(result.Recommendations, *rec)
	}

	if len(result.Recommendations) == 0 {
		result.Message = MsgPricingIncomplete
		return result, nil
	}

	// Stable sort: recipes with equal unit cost keep provider order.
	sort.SliceStable(result.Recommendations, func(i, j int) bool {
		return result.Recommendations[i].UnitCost.LessThan(result.Recommendations[j].UnitCost)
	})
	result.Recommendations[0].Best = true

	metrics.RecommendationsComputed.Inc()
	log.Info("Cost recommendations computed",
		"strength_grade", strengthGrade,
		"candidates", len(recipes),
		"feasible", len(result.Recommendations))

	return result, nil
}

func (s *service) PriceRecipe(ctx context.Context, recipeID int64, volume decimal.Decimal) (*domain.CostRecommendation, error) {
	if volume.Sign() <= 0 {
		return nil, domain.ErrInvalidVolume
	}

	recipe, err := s.mixRepo.GetByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if recipe == nil {
		return nil, domain.ErrRecipeNotFound
	}

	return computeCost(ctx, s.repo, *recipe, volume)
}
