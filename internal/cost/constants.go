package cost

// Advisory messages attached to empty recommendation lists. The distinction
// is informational only; both cases are a normal empty result, not an error.
const (
	MsgNoEligibleRecipes = "no approved recipes match the requested strength grade"
	MsgPricingIncomplete = "all candidate recipes have incomplete pricing"
)

// moneyScale is the number of decimal places every monetary figure is
// rounded to at each rounding boundary.
const moneyScale = 2
