package handlers

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"

	"budget-ledger/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Handlers answer errors through SendError (client and pipeline errors) or
// SendSystemError (internal errors whose details must not reach the client).
// Domain errors are mapped to codes in the handler that produced them:
//    - SendError(c, errors.LedgerMissingColumn, errors.WithDetails(fields...))
//    - SendError(c, errors.ReportRunNotFound)
//    - SendDatabaseError(c, err) for run history failures
//    - SendValidationError(c, err) for rejected query parameters

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse wraps a payload with optional run metadata
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err and answers with a generic SYSTEM_001 response
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapSystemError(err, traceID)
	slog.Error("internal error", "trace_id", traceID, "path", c.Path(), "error", internalErr)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendDatabaseError logs err and answers with a generic SYSTEM_002 response
func SendDatabaseError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := errors.WrapDatabaseError(err, traceID)
	slog.Error("database error", "trace_id", traceID, "path", c.Path(), "error", internalErr)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendValidationError answers VALIDATION_001 with one detail per rejected field
func SendValidationError(c echo.Context, err error) error {
	errorResponse := errors.NewValidationErrorFromList(validationDetails(err), getTraceID(c))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

func validationDetails(err error) []string {
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		details = append(details, fmt.Sprintf("%s: must satisfy %s", fe.Field(), rule))
	}
	return details
}
