package shared

import (
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-reconciler/internal/service"
)

// ServiceError maps a service error to the matching HTTP status.
func ServiceError(msg string, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return huma.NewError(http.StatusBadRequest, msg, err)
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, msg, err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}
