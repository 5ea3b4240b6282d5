package http

import (
	"errors"
	"net/http"

	"github.com/light-bringer/storefront-service/internal/app/store/domain"
)

// mapDomainError converts domain errors to HTTP status codes. The
// error message itself is passed through: the domain already phrases
// failures as plain descriptive text naming the offending product.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrEmptyOrder),
		errors.Is(err, domain.ErrInvalidPercent),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, domain.ErrNegativeStock),
		errors.Is(err, domain.ErrInvalidMaxPerOrder):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrOutOfStock),
		errors.Is(err, domain.ErrProductInactive),
		errors.Is(err, domain.ErrExceedsPerOrderLimit):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}
