package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Validation errors
	ErrMsgInvalidVolume = "volume must be positive"
	ErrMsgInvalidStatus = "invalid status"

	// Material errors
	ErrMsgMaterialNotFound = "material not found"
	ErrMsgPriceUnresolved  = "no current price"

	// Recipe errors
	ErrMsgRecipeNotFound    = "recipe not found"
	ErrMsgDuplicateCode     = "recipe code already exists"
	ErrMsgRecipeNotPending  = "recipe is not pending approval"
	ErrMsgRecipeNotApproved = "recipe is not approved"
	ErrMsgPriceIncomplete   = "recipe pricing is incomplete"

	// Task errors
	ErrMsgTaskNotFound    = "production task not found"
	ErrMsgDuplicateTaskNo = "task number already exists"

	// Auth errors
	ErrMsgInvalidToken = "invalid webhook token"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Validation errors
	ErrInvalidVolume = errors.New(ErrMsgInvalidVolume)
	ErrInvalidStatus = errors.New(ErrMsgInvalidStatus)

	// Material errors
	ErrMaterialNotFound = errors.New(ErrMsgMaterialNotFound)
	ErrPriceUnresolved  = errors.New(ErrMsgPriceUnresolved)

	// Recipe errors
	ErrRecipeNotFound    = errors.New(ErrMsgRecipeNotFound)
	ErrDuplicateCode     = errors.New(ErrMsgDuplicateCode)
	ErrRecipeNotPending  = errors.New(ErrMsgRecipeNotPending)
	ErrRecipeNotApproved = errors.New(ErrMsgRecipeNotApproved)
	ErrPriceIncomplete   = errors.New(ErrMsgPriceIncomplete)

	// Task errors
	ErrTaskNotFound    = errors.New(ErrMsgTaskNotFound)
	ErrDuplicateTaskNo = errors.New(ErrMsgDuplicateTaskNo)

	// Auth errors
	ErrInvalidToken = errors.New(ErrMsgInvalidToken)
)
