package mix

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Pagination bounds for recipe listings
const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// ErrEmptyItems rejects recipes without material lines.
var ErrEmptyItems = errors.New("recipe must have at least one material item")

// ErrInvalidDosage rejects non-numeric or negative dosage values.
var ErrInvalidDosage = errors.New("dosage must be a non-negative decimal")

func parseDosage(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidDosage, s)
	}
	if d.Sign() < 0 {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrInvalidDosage, s)
	}
	return d, nil
}
