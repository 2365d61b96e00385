package repository

import (
	"context"

	"github.com/concretemix/smartmix/internal/domain"
)

// RecipeFilter narrows recipe list queries.
type RecipeFilter struct {
	StrengthGrade string
	Status        domain.RecipeStatus
	Page          int
	Size          int
}

// Mix defines the interface for mix recipe persistence. Reads return recipes
// with their items in stored order and material fields resolved.
type Mix interface {
	GetByID(ctx context.Context, id int64) (*domain.MixRecipe, error)
	ExistsByCode(ctx context.Context, recipeCode string) (bool, error)
	List(ctx context.Context, filter RecipeFilter) ([]domain.MixRecipe, int64, error)

	// Create persists the recipe and its items in one transaction.
	Create(ctx context.Context, r domain.MixRecipe) (*domain.MixRecipe, error)

	// Update rewrites the recipe's mutable fields and replaces its item list
	// wholesale, in one transaction.
	Update(ctx context.Context, r domain.MixRecipe) (*domain.MixRecipe, error)

	UpdateStatus(ctx context.Context, id int64, status domain.RecipeStatus) error
}
