package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"storefront-engine/internal/storeerrors"
	"storefront-engine/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
// Permission failures get their own status so the UI can render a distinct
// "insufficient permission" state instead of a generic error.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, storeerrors.ErrPermissionDenied):
		return http.StatusForbidden, "insufficient permission"
	case errors.Is(err, storeerrors.ErrValidation), errors.Is(err, storeerrors.ErrInvalidLogin):
		return http.StatusBadRequest, "validation failed"
	case errors.Is(err, storeerrors.ErrNotFound), errors.Is(err, storeerrors.ErrBidNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, storeerrors.ErrOfferTooLow):
		return http.StatusConflict, "offer does not exceed current maximum"
	case errors.Is(err, storeerrors.ErrBidNotPending):
		return http.StatusConflict, "bid is no longer pending"
	case errors.Is(err, storeerrors.ErrBidNotCounter):
		return http.StatusConflict, "bid has no counter-offer to answer"
	case errors.Is(err, storeerrors.ErrBidInFlight):
		return http.StatusConflict, "another action on this bid is in flight"
	case errors.Is(err, storeerrors.ErrAuctionEnded):
		return http.StatusConflict, "auction has ended"
	case errors.Is(err, storeerrors.ErrNetwork), errors.Is(err, storeerrors.ErrBackendRejected):
		return http.StatusBadGateway, "marketplace backend unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
