package handlers

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"budget-ledger/internal/dto"
	"budget-ledger/internal/errors"
	"budget-ledger/internal/ledger"
	"budget-ledger/internal/models"
	"budget-ledger/internal/repositories"
	"budget-ledger/internal/services"
	"budget-ledger/internal/workbook"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	uploadField      = "file"
	defaultRunsLimit = 20
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportFileName   = "출력_연구비_집행관리.xlsx"
)

// ReportHandler serves ledger classification, report generation and run history
type ReportHandler struct {
	reportService  services.ReportServiceInterface
	yearlyService  services.YearlyBudgetServiceInterface
	loader         *ledger.Loader
	metrics        services.MetricsRecorderInterface
	maxUploadBytes int64
	previewRows    int
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	reportService services.ReportServiceInterface,
	yearlyService services.YearlyBudgetServiceInterface,
	loader *ledger.Loader,
	metrics services.MetricsRecorderInterface,
	maxUploadBytes int64,
	previewRows int,
) *ReportHandler {
	return &ReportHandler{
		reportService:  reportService,
		yearlyService:  yearlyService,
		loader:         loader,
		metrics:        metrics,
		maxUploadBytes: maxUploadBytes,
		previewRows:    previewRows,
	}
}

// ClassifyLedger splits an uploaded ledger into its tracks
// @Summary Classify a ledger
// @Tags Ledgers
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Ledger workbook (.xlsx)"
// @Param limit query int false "Preview rows per track" default(100)
// @Success 200 {object} dto.ClassifyResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_* or LEDGER_003"
// @Failure 413 {object} errors.ErrorResponse "LEDGER_005 - File too large"
// @Failure 415 {object} errors.ErrorResponse "LEDGER_004 - Unsupported file type"
// @Failure 422 {object} errors.ErrorResponse "LEDGER_001, LEDGER_002 or LEDGER_006"
// @Router /api/v1/ledgers/classify [post]
func (h *ReportHandler) ClassifyLedger(c echo.Context) error {
	var req dto.PreviewRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("limit must be an integer"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	}
	limit := req.Limit
	if limit == 0 {
		limit = h.previewRows
	}

	source, table, err := h.readUpload(c)
	if err != nil {
		return h.sendLedgerError(c, err)
	}

	result, err := h.reportService.Classify(table)
	if err != nil {
		return h.sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ClassifyResponse{
		SourceName:   source,
		Stats:        result.Stats,
		Columns:      table.Columns,
		Business:     dto.NewTrackPreview(result.Business, limit),
		Research:     dto.NewTrackPreview(result.Research, limit),
		Unclassified: dto.NewTrackPreview(result.Unclassified, limit),
	})
}

// GenerateReport builds the full report for an uploaded ledger and returns it as JSON
// @Summary Generate a report
// @Tags Reports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Ledger workbook (.xlsx)"
// @Success 200 {object} SuccessResponse
// @Failure 422 {object} errors.ErrorResponse "LEDGER_001 or LEDGER_002"
// @Failure 500 {object} errors.ErrorResponse "REPORT_001 - Report generation failed"
// @Router /api/v1/reports [post]
func (h *ReportHandler) GenerateReport(c echo.Context) error {
	source, table, err := h.readUpload(c)
	if err != nil {
		return h.sendLedgerError(c, err)
	}

	report, run, err := h.generate(c.Request().Context(), source, table)
	if err != nil {
		return h.sendLedgerError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: report,
		Meta: reportMeta(report, run),
	})
}

// ExportReport builds the full report for an uploaded ledger and returns the workbook
// @Summary Export a report workbook
// @Tags Reports
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param file formData file true "Ledger workbook (.xlsx)"
// @Success 200 {file} file
// @Failure 500 {object} errors.ErrorResponse "REPORT_004 - Workbook could not be rendered"
// @Router /api/v1/reports/export [post]
func (h *ReportHandler) ExportReport(c echo.Context) error {
	source, table, err := h.readUpload(c)
	if err != nil {
		return h.sendLedgerError(c, err)
	}

	report, run, err := h.generate(c.Request().Context(), source, table)
	if err != nil {
		return h.sendLedgerError(c, err)
	}

	content, err := render(h.reportService, report)
	if err != nil {
		slog.Error("failed to render report workbook", "report_id", report.ID, "error", err)
		return SendError(c, errors.ReportRenderFailed)
	}

	header := c.Response().Header()
	header.Set(echo.HeaderContentDisposition, fmt.Sprintf(
		"attachment; filename=%q; filename*=UTF-8''%s",
		"report.xlsx", url.PathEscape(exportFileName)))
	header.Set("X-Report-Status", reportMeta(report, run).Status)
	if run != nil {
		header.Set("X-Report-Run-ID", run.ID.String())
	}

	return c.Blob(http.StatusOK, xlsxContentType, content)
}

// ListRuns returns the report run history
// @Summary List report runs
// @Tags Reports
// @Produce json
// @Param status query string false "Filter by status" Enums(completed, degraded, failed)
// @Param origin query string false "Filter by origin" Enums(cli, http)
// @Param fiscal_year query string false "Filter by fiscal year"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Page size (max 100)" default(20)
// @Success 200 {object} dto.ListRunsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Run history query failed"
// @Failure 503 {object} errors.ErrorResponse "REPORT_005 - Run history disabled"
// @Router /api/v1/reports/runs [get]
func (h *ReportHandler) ListRuns(c echo.Context) error {
	var req dto.ListRunsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(req); err != nil {
		return SendValidationError(c, err)
	}
	if req.Limit == 0 {
		req.Limit = defaultRunsLimit
	}

	runs, total, err := h.reportService.ListRuns(req.Filters(), req.Offset, req.Limit)
	if err != nil {
		if stderrors.Is(err, services.ErrRunHistoryDisabled) {
			return SendError(c, errors.ReportHistoryDisabled)
		}
		return SendDatabaseError(c, err)
	}

	counts, err := h.reportService.RunStatusCounts()
	if err != nil {
		return SendDatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListRunsResponse{
		Runs:         runs,
		Total:        total,
		Offset:       req.Offset,
		Limit:        req.Limit,
		StatusCounts: counts,
	})
}

// GetRun returns a single report run
// @Summary Get a report run
// @Tags Reports
// @Produce json
// @Param id path string true "Run ID (UUID)"
// @Success 200 {object} models.ReportRun
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid run ID"
// @Failure 404 {object} errors.ErrorResponse "REPORT_003 - Run not found"
// @Router /api/v1/reports/runs/{id} [get]
func (h *ReportHandler) GetRun(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid run ID"))
	}

	run, err := h.reportService.GetRun(id)
	if err != nil {
		switch {
		case stderrors.Is(err, repositories.ErrReportRunNotFound):
			return SendError(c, errors.ReportRunNotFound)
		case stderrors.Is(err, services.ErrRunHistoryDisabled):
			return SendError(c, errors.ReportHistoryDisabled)
		}
		return SendDatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, run)
}

// YearlyBudgets returns the default budgets of every configured year
// @Summary Yearly budget comparison
// @Tags Budgets
// @Produce json
// @Success 200 {object} dto.YearlyBudgetsResponse
// @Router /api/v1/budgets/yearly [get]
func (h *ReportHandler) YearlyBudgets(c echo.Context) error {
	comparison := h.yearlyService.Comparison()

	return c.JSON(http.StatusOK, dto.YearlyBudgetsResponse{
		Years:  comparison.Years,
		Items:  comparison.Items,
		Totals: comparison.Totals,
		Rows:   comparison.Rows,
	})
}

// generate runs the pipeline and records the attempt. A failing history write is logged and ignored.
func (h *ReportHandler) generate(ctx context.Context, source string, table models.LedgerTable) (*models.Report, *models.ReportRun, error) {
	start := time.Now()
	report, genErr := h.reportService.Generate(ctx, source, table)

	run, err := h.reportService.RecordRun(source, models.ReportRunSourceHTTP, report, genErr, time.Since(start))
	if err != nil {
		slog.Warn("failed to record report run", "source", source, "error", err)
		run = nil
	}

	if genErr != nil {
		return nil, run, genErr
	}
	return report, run, nil
}

// readUpload loads the multipart ledger and records the upload outcome
func (h *ReportHandler) readUpload(c echo.Context) (string, models.LedgerTable, error) {
	source, size, table, err := h.loadUpload(c)
	if err != nil {
		h.recordUpload("rejected", size)
		return "", models.LedgerTable{}, err
	}

	h.recordUpload("accepted", size)
	slog.Debug("ledger uploaded",
		"source", source,
		"size", size,
		"rows", table.Len(),
		"client_ip", getClientIP(c))
	return source, table, nil
}

func (h *ReportHandler) loadUpload(c echo.Context) (string, int64, models.LedgerTable, error) {
	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		return "", 0, models.LedgerTable{}, errMissingUpload
	}
	size := fileHeader.Size
	if h.maxUploadBytes > 0 && size > h.maxUploadBytes {
		return "", size, models.LedgerTable{}, errUploadTooLarge
	}

	source := filepath.Base(fileHeader.Filename)
	if err := ledger.CheckExtension(source); err != nil {
		return "", size, models.LedgerTable{}, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", size, models.LedgerTable{}, fmt.Errorf("%w: %v", ledger.ErrUnreadableWorkbook, err)
	}
	defer file.Close()

	table, err := h.loader.Load(file)
	if err != nil {
		return "", size, models.LedgerTable{}, err
	}
	return source, size, table, nil
}

func (h *ReportHandler) recordUpload(status string, size int64) {
	if h.metrics == nil {
		return
	}
	h.metrics.IncrementCounter("ledger_upload", map[string]string{"status": status})
	if size > 0 {
		h.metrics.RecordGauge("ledger_upload_bytes", float64(size), nil)
	}
}

var (
	errMissingUpload  = stderrors.New("missing ledger upload")
	errUploadTooLarge = stderrors.New("ledger upload too large")
)

// sendLedgerError maps upload, loader and pipeline errors onto API error codes
func (h *ReportHandler) sendLedgerError(c echo.Context, err error) error {
	var validationErr *services.ValidationError
	switch {
	case stderrors.Is(err, errMissingUpload):
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("file: a ledger workbook is required"))
	case stderrors.Is(err, errUploadTooLarge):
		return SendError(c, errors.LedgerFileTooLarge, errors.WithDetails(fmt.Sprintf("maximum size is %d bytes", h.maxUploadBytes)))
	case stderrors.Is(err, ledger.ErrUnsupportedFileType):
		return SendError(c, errors.LedgerUnsupportedFileType, errors.WithDetails(err.Error()))
	case stderrors.Is(err, ledger.ErrSheetNotFound):
		return SendError(c, errors.LedgerSheetNotFound, errors.WithDetails(err.Error()))
	case stderrors.Is(err, ledger.ErrUnreadableWorkbook):
		return SendError(c, errors.LedgerUnreadableWorkbook)
	case stderrors.As(err, &validationErr):
		if validationErr.Field == "" {
			return SendError(c, errors.LedgerEmpty)
		}
		return SendError(c, errors.LedgerMissingColumn,
			errors.WithMessage(validationErr.Message),
			errors.WithDetails(validationErr.AvailableFields...))
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("request cancelled"))
	}

	slog.Error("report generation failed", "trace_id", getTraceID(c), "error", err)
	return SendError(c, errors.ReportGenerationFailed)
}

// render publishes the report into a fresh workbook and returns its bytes
func render(reportService services.ReportServiceInterface, report *models.Report) ([]byte, error) {
	writer, err := workbook.New()
	if err != nil {
		return nil, err
	}
	defer writer.Close()

	if err := reportService.Publish(report, writer); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func reportMeta(report *models.Report, run *models.ReportRun) dto.ReportMeta {
	meta := dto.ReportMeta{
		Status:   models.ReportRunStatusCompleted,
		Warnings: report.Warnings,
	}
	if report.Degraded() {
		meta.Status = models.ReportRunStatusDegraded
	}
	if run != nil {
		meta.RunID = &run.ID
	}
	return meta
}
