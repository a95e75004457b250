package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"budget-ledger/internal/dto"
	"budget-ledger/internal/errors"
	"budget-ledger/internal/ledger"
	"budget-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultSampleRows = 200

// DevHandler handles development-only endpoints.
// It is only registered when APP_ENV is development.
type DevHandler struct {
	generator services.LedgerGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(generator services.LedgerGeneratorInterface) *DevHandler {
	return &DevHandler{generator: generator}
}

// SampleLedger returns a synthetic ledger workbook that can be fed back into the upload endpoints
//
// Method: GET /api/v1/dev/sample-ledger
// Environment: Development only
//
// Query parameters:
//   - rows: number of ledger rows (default: 200, max: 5000)
//
// Success Response: 200 OK with an xlsx attachment
//
// Error Responses:
//   - 400: rows is not a number or out of range
//   - 500: the workbook could not be written
func (h *DevHandler) SampleLedger(c echo.Context) error {
	var req dto.SampleLedgerRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("rows must be an integer"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	}
	rows := req.Rows
	if rows == 0 {
		rows = defaultSampleRows
	}

	var buf bytes.Buffer
	if err := ledger.Write(&buf, h.generator.Generate(rows)); err != nil {
		return SendSystemError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="sample-ledger-%d.xlsx"`, rows))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
