package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error payload shape the dashboard client reads:
// a human message under "error" and optional per-field details.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// HandleServiceError maps service-layer sentinel errors onto HTTP status
// codes and the client-facing error payload.
func HandleServiceError(c *gin.Context, err error) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "The given data was invalid.",
			Details: vErr.Details,
		})
		return
	}

	switch {
	case errors.Is(err, ErrValidation):
		RespondError(c, http.StatusUnprocessableEntity, "The given data was invalid.")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "Unauthenticated")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
	case errors.Is(err, ErrNotFound):
		RespondError(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, ErrInvalidTransition):
		RespondError(c, http.StatusConflict, "Action no longer valid for the current status")
	case errors.Is(err, ErrInsufficientBalance):
		RespondError(c, http.StatusUnprocessableEntity, "Claim exceeds your available points")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
