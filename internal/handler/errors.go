package handler

// Generic HTTP error messages for client responses. These intentionally do
// not expose internal error details. Handlers and tests reference these
// constants to stay consistent.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidIDParam    = "Invalid id parameter"
	ErrMsgInvalidDecimal    = "Invalid decimal value for %s"
	ErrMsgInvalidLimitParam = "Limit must be a positive integer"
	ErrMsgBodyMustBeArray   = "Request body must be a JSON array"
	ErrMsgEmptyBatch        = "At least one row is required"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Domain-mapped messages
	ErrMsgVolumeMustBePositive = "Volume must be a positive number"
	ErrMsgInvalidStatusError   = "Invalid status value"
	ErrMsgMaterialNotFoundErr  = "Material not found"
	ErrMsgRecipeNotFoundError  = "Recipe not found"
	ErrMsgTaskNotFoundError    = "Production task not found"
	ErrMsgDuplicateCodeError   = "Recipe code already exists"
	ErrMsgDuplicateTaskNoErr   = "Task number already exists"
	ErrMsgRecipeNotPendingErr  = "Only pending recipes can be edited or approved"
	ErrMsgRecipeNotApprovedErr = "Only approved recipes can be selected"
	ErrMsgPriceIncompleteError = "Recipe pricing is incomplete"
	ErrMsgNoCurrentPriceError  = "No current price for this material"
	ErrMsgInvalidTokenError    = "Invalid webhook token"
)
