package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"resume-analytics/internal/shared/telemetry"
)

// ErrorBody defines the standardized error object.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse wraps the error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// FieldError names a request field that failed binding validation.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// Error aborts the request with the standard error envelope. The request
// line itself is logged by the logging middleware.
func Error(c *gin.Context, status int, code, message string, details any) {
	telemetry.Debug("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"request_id": c.GetString("requestId"),
	})
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// Validation responds 400 for a failed ShouldBind call. Struct tag
// failures are listed per field; malformed bodies get no details.
func Validation(c *gin.Context, message string, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		Error(c, http.StatusBadRequest, "validation_error", message, nil)
		return
	}
	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	Error(c, http.StatusBadRequest, "validation_error", message, fields)
}
