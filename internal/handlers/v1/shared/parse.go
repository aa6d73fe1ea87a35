package shared

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-reconciler/internal/statement"
)

// ParseID parses a UUID path or body value, reporting field in the 400.
func ParseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return id, nil
}

// ParseAmount parses a decimal amount with the same rules as statement rows:
// grouped thousands are accepted, decimal commas and sub-cent values are not.
func ParseAmount(field, raw string) (decimal.Decimal, error) {
	amount, err := statement.ParseNumber(raw)
	if err != nil {
		return decimal.Zero, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return amount, nil
}
