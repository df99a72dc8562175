package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"ad-ledger/internal/aderrors"
	"ad-ledger/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	details := ValidationMessages(err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload", details...)
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// ValidationMessages turns validator errors into one readable line per field.
// Other errors (e.g. malformed JSON) yield nil.
func ValidationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fmt.Sprintf("'%s': %s", fe.Field(), fieldMessage(fe)))
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "oneof":
		return "should have value in: " + fe.Param()
	case "max", "lte":
		return "should be less or equal than " + fe.Param()
	case "min", "gte":
		return "should be greater or equal than " + fe.Param()
	}
	return "incorrect value passed"
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, aderrors.ErrInvalidParameters):
		return http.StatusBadRequest, "invalid parameters"
	case errors.Is(err, aderrors.ErrInvalidPayload):
		return http.StatusBadRequest, "invalid ad payload"
	case errors.Is(err, aderrors.ErrInvalidStatus):
		return http.StatusBadRequest, "invalid status"
	case errors.Is(err, aderrors.ErrOwnerHasNoAds):
		return http.StatusNotFound, "no ads found for owner"
	case errors.Is(err, aderrors.ErrNotFound):
		return http.StatusNotFound, "ad not found"
	case errors.Is(err, aderrors.ErrUnauthorized):
		return http.StatusForbidden, "not the owner of this ad"
	case errors.Is(err, aderrors.ErrSelfBid):
		return http.StatusForbidden, "owner cannot bid on own ad"
	case errors.Is(err, aderrors.ErrAdNotOpen):
		return http.StatusConflict, "ad is not open for bidding"
	case errors.Is(err, aderrors.ErrDuplicateBid):
		return http.StatusConflict, "bidder has already bid on this ad"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
