package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"budget-ledger/internal/dto"
	"budget-ledger/internal/ledger"
	"budget-ledger/internal/models"
	"budget-ledger/internal/repositories"
	"budget-ledger/internal/services"
	"budget-ledger/internal/services/service_mocks"
	"budget-ledger/internal/workbook"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	echo              *echo.Echo
	mockReportService *service_mocks.MockReportServiceInterface
	mockYearlyService *service_mocks.MockYearlyBudgetServiceInterface
	handler           *ReportHandler
	ledgerFile        []byte
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockReportService = service_mocks.NewMockReportServiceInterface(s.ctrl)
	s.mockYearlyService = service_mocks.NewMockYearlyBudgetServiceInterface(s.ctrl)
	s.handler = NewReportHandler(s.mockReportService, s.mockYearlyService, ledger.NewLoader(""), nil, 1<<20, 100)

	s.ledgerFile = s.ledgerWorkbook([][]string{
		{"25 차세대 회의비", "지급수수료", "10000"},
		{fmt.Sprintf("25 심층연구 B(위성항법)_%s", gofakeit.LastName()), "국내여비", "20000"},
		{"24 기타 경비", "회의비", "500"},
	})
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReportHandlerTestSuite) ledgerWorkbook(rows [][]string) []byte {
	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{"적요", "예산과목", "총지급액"}
	s.Require().NoError(f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		s.Require().NoError(f.SetSheetRow("Sheet1", cell, &values))
	}

	buf, err := f.WriteToBuffer()
	s.Require().NoError(err)
	return buf.Bytes()
}

func (s *ReportHandlerTestSuite) upload(target, filename string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if filename != "" {
		part, err := writer.CreateFormFile(uploadField, filename)
		s.Require().NoError(err)
		_, err = part.Write(content)
		s.Require().NoError(err)
	}
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *ReportHandlerTestSuite) get(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *ReportHandlerTestSuite) errorCode(rec *httptest.ResponseRecorder) ErrorResponse {
	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func (s *ReportHandlerTestSuite) classification(table models.LedgerTable) *models.ClassificationResult {
	return &models.ClassificationResult{
		Business:     table.Subset(table.Rows[:1]),
		Research:     table.Subset(table.Rows[1:2]),
		Unclassified: table.Subset(table.Rows[2:]),
		Stats: models.ClassificationStats{
			Total:             3,
			BusinessCount:     1,
			ResearchCount:     1,
			UnclassifiedCount: 1,
		},
	}
}

// ClassifyLedger

func (s *ReportHandlerTestSuite) TestClassifyLedger_Success() {
	c, rec := s.upload("/api/v1/ledgers/classify", "ledger.xlsx", s.ledgerFile)

	s.mockReportService.EXPECT().
		Classify(gomock.Any()).
		DoAndReturn(func(table models.LedgerTable) (*models.ClassificationResult, error) {
			s.Equal([]string{"적요", "예산과목", "총지급액"}, table.Columns)
			s.Equal(3, table.Len())
			return s.classification(table), nil
		})

	s.Require().NoError(s.handler.ClassifyLedger(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ClassifyResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("ledger.xlsx", response.SourceName)
	s.Equal(3, response.Stats.Total)
	s.Equal(1, response.Business.Total)
	s.Equal("지급수수료", response.Business.Rows[0]["예산과목"])
	s.Equal("24 기타 경비", response.Unclassified.Rows[0]["적요"])
}

func (s *ReportHandlerTestSuite) TestClassifyLedger_PreviewLimit() {
	rows := make([][]string, 0, 5)
	for i := 0; i < 5; i++ {
		rows = append(rows, []string{"25 차세대 회의", "회의비", fmt.Sprint(gofakeit.Number(1000, 9000))})
	}
	c, rec := s.upload("/api/v1/ledgers/classify?limit=2", "ledger.xlsx", s.ledgerWorkbook(rows))

	s.mockReportService.EXPECT().
		Classify(gomock.Any()).
		DoAndReturn(func(table models.LedgerTable) (*models.ClassificationResult, error) {
			return &models.ClassificationResult{
				Business:     table,
				Research:     table.Subset(nil),
				Unclassified: table.Subset(nil),
				Stats:        models.ClassificationStats{Total: 5, BusinessCount: 5},
			}, nil
		})

	s.Require().NoError(s.handler.ClassifyLedger(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ClassifyResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(5, response.Business.Total)
	s.Len(response.Business.Rows, 2)
	s.Empty(response.Research.Rows)
}

func (s *ReportHandlerTestSuite) TestClassifyLedger_LimitOutOfRange() {
	c, rec := s.upload("/api/v1/ledgers/classify?limit=20000", "ledger.xlsx", s.ledgerFile)

	s.Require().NoError(s.handler.ClassifyLedger(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_004", s.errorCode(rec).Error.Code)
}

func (s *ReportHandlerTestSuite) TestClassifyLedger_LimitNotANumber() {
	c, rec := s.upload("/api/v1/ledgers/classify?limit=many", "ledger.xlsx", s.ledgerFile)

	s.Require().NoError(s.handler.ClassifyLedger(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_003", s.errorCode(rec).Error.Code)
}

func (s *ReportHandlerTestSuite) TestClassifyLedger_UploadErrors() {
	testCases := []struct {
		name       string
		filename   string
		content    []byte
		maxBytes   int64
		wantStatus int
		wantCode   string
	}{
		{"missing file", "", nil, 1 << 20, http.StatusBadRequest, "VALIDATION_002"},
		{"csv upload", "ledger.csv", []byte("적요,예산과목\n"), 1 << 20, http.StatusUnsupportedMediaType, "LEDGER_004"},
		{"too large", "ledger.xlsx", s.ledgerFile, 16, http.StatusRequestEntityTooLarge, "LEDGER_005"},
		{"not a workbook", "ledger.xlsx", []byte("definitely not a zip"), 1 << 20, http.StatusBadRequest, "LEDGER_003"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			handler := NewReportHandler(s.mockReportService, s.mockYearlyService, ledger.NewLoader(""), nil, tc.maxBytes, 100)
			c, rec := s.upload("/api/v1/ledgers/classify", tc.filename, tc.content)

			s.Require().NoError(handler.ClassifyLedger(c))
			s.Equal(tc.wantStatus, rec.Code)
			s.Equal(tc.wantCode, s.errorCode(rec).Error.Code)
		})
	}
}

func (s *ReportHandlerTestSuite) TestClassifyLedger_SheetNotFound() {
	handler := NewReportHandler(s.mockReportService, s.mockYearlyService, ledger.NewLoader("원장"), nil, 1<<20, 100)
	c, rec := s.upload("/api/v1/ledgers/classify", "ledger.xlsx", s.ledgerFile)

	s.Require().NoError(handler.ClassifyLedger(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("LEDGER_006", s.errorCode(rec).Error.Code)
}

func (s *ReportHandlerTestSuite) TestClassifyLedger_MissingMemoColumn() {
	c, rec := s.upload("/api/v1/ledgers/classify", "ledger.xlsx", s.ledgerFile)

	s.mockReportService.EXPECT().
		Classify(gomock.Any()).
		Return(nil, &services.ValidationError{
			Message:         "memo field '비고' not found",
			Field:           "비고",
			AvailableFields: []string{"적요", "예산과목", "총지급액"},
		})

	s.Require().NoError(s.handler.ClassifyLedger(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)

	response := s.errorCode(rec)
	s.Equal("LEDGER_002", response.Error.Code)
	s.Equal("memo field '비고' not found", response.Error.Message)
	s.Equal([]string{"적요", "예산과목", "총지급액"}, response.Error.Details)
}

func (s *ReportHandlerTestSuite) TestClassifyLedger_EmptyLedger() {
	c, rec := s.upload("/api/v1/ledgers/classify", "ledger.xlsx", s.ledgerWorkbook(nil))

	s.mockReportService.EXPECT().
		Classify(gomock.Any()).
		Return(nil, &services.ValidationError{Message: "ledger contains no rows"})

	s.Require().NoError(s.handler.ClassifyLedger(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("LEDGER_001", s.errorCode(rec).Error.Code)
}

func (s *ReportHandlerTestSuite) TestClassifyLedger_RecordsUploadMetrics() {
	metrics := service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	handler := NewReportHandler(s.mockReportService, s.mockYearlyService, ledger.NewLoader(""), metrics, 1<<20, 100)

	metrics.EXPECT().IncrementCounter("ledger_upload", map[string]string{"status": "accepted"})
	metrics.EXPECT().RecordGauge("ledger_upload_bytes", float64(len(s.ledgerFile)), gomock.Nil())
	s.mockReportService.EXPECT().
		Classify(gomock.Any()).
		DoAndReturn(func(table models.LedgerTable) (*models.ClassificationResult, error) {
			return s.classification(table), nil
		})

	c, rec := s.upload("/api/v1/ledgers/classify", "ledger.xlsx", s.ledgerFile)
	s.Require().NoError(handler.ClassifyLedger(c))
	s.Equal(http.StatusOK, rec.Code)

	metrics.EXPECT().IncrementCounter("ledger_upload", map[string]string{"status": "rejected"})

	c, rec = s.upload("/api/v1/ledgers/classify", "", nil)
	s.Require().NoError(handler.ClassifyLedger(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

// GenerateReport

func (s *ReportHandlerTestSuite) TestGenerateReport_Success() {
	c, rec := s.upload("/api/v1/reports", "원장_2025.xlsx", s.ledgerFile)

	report := &models.Report{ID: uuid.New(), SourceName: "원장_2025.xlsx", FiscalYear: "2025"}
	report.AddWarning("totals", "missing columns 총지급액")
	run := &models.ReportRun{ID: uuid.New(), Status: models.ReportRunStatusDegraded}

	gomock.InOrder(
		s.mockReportService.EXPECT().
			Generate(gomock.Any(), "원장_2025.xlsx", gomock.Any()).
			Return(report, nil),
		s.mockReportService.EXPECT().
			RecordRun("원장_2025.xlsx", models.ReportRunSourceHTTP, report, nil, gomock.Any()).
			Return(run, nil),
	)

	s.Require().NoError(s.handler.GenerateReport(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Data models.Report  `json:"data"`
		Meta dto.ReportMeta `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(report.ID, response.Data.ID)
	s.Equal(models.ReportRunStatusDegraded, response.Meta.Status)
	s.Require().NotNil(response.Meta.RunID)
	s.Equal(run.ID, *response.Meta.RunID)
	s.Equal("missing columns 총지급액", response.Meta.Warnings["totals"])
}

func (s *ReportHandlerTestSuite) TestGenerateReport_HistoryFailureIsIgnored() {
	c, rec := s.upload("/api/v1/reports", "ledger.xlsx", s.ledgerFile)

	report := &models.Report{ID: uuid.New(), FiscalYear: "2025"}
	s.mockReportService.EXPECT().Generate(gomock.Any(), "ledger.xlsx", gomock.Any()).Return(report, nil)
	s.mockReportService.EXPECT().
		RecordRun("ledger.xlsx", models.ReportRunSourceHTTP, report, nil, gomock.Any()).
		Return(nil, errors.New("database is locked"))

	s.Require().NoError(s.handler.GenerateReport(c))
	s.Equal(http.StatusOK, rec.Code)

	var response struct {
		Meta dto.ReportMeta `json:"meta"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Nil(response.Meta.RunID)
	s.Equal(models.ReportRunStatusCompleted, response.Meta.Status)
}

func (s *ReportHandlerTestSuite) TestGenerateReport_ValidationErrorIsRecorded() {
	c, rec := s.upload("/api/v1/reports", "ledger.xlsx", s.ledgerFile)

	validationErr := &services.ValidationError{Message: "memo field '적요' not found", Field: "적요"}
	s.mockReportService.EXPECT().Generate(gomock.Any(), "ledger.xlsx", gomock.Any()).Return(nil, validationErr)
	s.mockReportService.EXPECT().
		RecordRun("ledger.xlsx", models.ReportRunSourceHTTP, gomock.Nil(), validationErr, gomock.Any()).
		Return(&models.ReportRun{ID: uuid.New(), Status: models.ReportRunStatusFailed}, nil)

	s.Require().NoError(s.handler.GenerateReport(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("LEDGER_002", s.errorCode(rec).Error.Code)
}

func (s *ReportHandlerTestSuite) TestGenerateReport_UnexpectedError() {
	c, rec := s.upload("/api/v1/reports", "ledger.xlsx", s.ledgerFile)

	s.mockReportService.EXPECT().
		Generate(gomock.Any(), "ledger.xlsx", gomock.Any()).
		Return(nil, errors.New("failed to build totals: boom"))
	s.mockReportService.EXPECT().
		RecordRun(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Any(), gomock.Any()).
		Return(&models.ReportRun{ID: uuid.New()}, nil)

	s.Require().NoError(s.handler.GenerateReport(c))
	s.Equal(http.StatusInternalServerError, rec.Code)

	response := s.errorCode(rec)
	s.Equal("REPORT_001", response.Error.Code)
	s.NotContains(response.Error.Message, "boom")
}

// ExportReport

func (s *ReportHandlerTestSuite) TestExportReport_Success() {
	c, rec := s.upload("/api/v1/reports/export", "ledger.xlsx", s.ledgerFile)

	report := &models.Report{ID: uuid.New(), FiscalYear: "2025"}
	run := &models.ReportRun{ID: uuid.New()}
	s.mockReportService.EXPECT().Generate(gomock.Any(), "ledger.xlsx", gomock.Any()).Return(report, nil)
	s.mockReportService.EXPECT().RecordRun(gomock.Any(), gomock.Any(), report, nil, gomock.Any()).Return(run, nil)
	s.mockReportService.EXPECT().
		Publish(report, gomock.Any()).
		DoAndReturn(func(_ *models.Report, sink services.ReportSink) error {
			return sink.WriteYearlyBudgets(models.YearlyBudgetComparison{
				Rows: []models.YearlyBudgetRow{{Year: "2025", Item: "회의비", Amount: decimal.NewFromInt(9500000)}},
			})
		})

	s.Require().NoError(s.handler.ExportReport(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(xlsxContentType, rec.Header().Get(echo.HeaderContentType))
	s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "attachment")
	s.Equal(run.ID.String(), rec.Header().Get("X-Report-Run-ID"))
	s.Equal(models.ReportRunStatusCompleted, rec.Header().Get("X-Report-Status"))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	s.Require().NoError(err)
	defer f.Close()

	s.Equal(workbook.SheetOrder, f.GetSheetList())
	item, err := f.GetCellValue(workbook.SheetYearlyBudgets, "B2")
	s.Require().NoError(err)
	s.Equal("회의비", item)
}

func (s *ReportHandlerTestSuite) TestExportReport_RenderFailure() {
	c, rec := s.upload("/api/v1/reports/export", "ledger.xlsx", s.ledgerFile)

	report := &models.Report{ID: uuid.New()}
	s.mockReportService.EXPECT().Generate(gomock.Any(), gomock.Any(), gomock.Any()).Return(report, nil)
	s.mockReportService.EXPECT().RecordRun(gomock.Any(), gomock.Any(), report, nil, gomock.Any()).Return(nil, nil)
	s.mockReportService.EXPECT().Publish(report, gomock.Any()).Return(errors.New("failed to write totals"))

	s.Require().NoError(s.handler.ExportReport(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("REPORT_004", s.errorCode(rec).Error.Code)
}

// ListRuns

func (s *ReportHandlerTestSuite) TestListRuns_Success() {
	c, rec := s.get("/api/v1/reports/runs?status=degraded&fiscal_year=2025&offset=10")

	runs := []models.ReportRun{
		{ID: uuid.New(), SourceName: "a.xlsx", Status: models.ReportRunStatusDegraded, FiscalYear: "2025"},
		{ID: uuid.New(), SourceName: "b.xlsx", Status: models.ReportRunStatusDegraded, FiscalYear: "2025"},
	}
	s.mockReportService.EXPECT().
		ListRuns(models.ReportRunFilters{Status: "degraded", FiscalYear: "2025"}, 10, defaultRunsLimit).
		Return(runs, int64(12), nil)
	s.mockReportService.EXPECT().
		RunStatusCounts().
		Return(map[string]int64{models.ReportRunStatusDegraded: 12, models.ReportRunStatusFailed: 3}, nil)

	s.Require().NoError(s.handler.ListRuns(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListRunsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Runs, 2)
	s.Equal(int64(12), response.Total)
	s.Equal(10, response.Offset)
	s.Equal(defaultRunsLimit, response.Limit)
	s.Equal(int64(3), response.StatusCounts[models.ReportRunStatusFailed])
}

func (s *ReportHandlerTestSuite) TestListRuns_InvalidQuery() {
	for _, query := range []string{"status=archived", "origin=cron", "fiscal_year=25", "limit=500", "offset=-1", "limit=abc"} {
		s.Run(query, func() {
			c, rec := s.get("/api/v1/reports/runs?" + query)

			s.Require().NoError(s.handler.ListRuns(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("VALIDATION_001", s.errorCode(rec).Error.Code)
		})
	}
}

func (s *ReportHandlerTestSuite) TestListRuns_InvalidQueryNamesField() {
	c, rec := s.get("/api/v1/reports/runs?limit=500&status=archived")

	s.Require().NoError(s.handler.ListRuns(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	response := s.errorCode(rec)
	s.ElementsMatch([]string{"status: must satisfy run_status", "limit: must satisfy lte=100"}, response.Error.Details)
}

func (s *ReportHandlerTestSuite) TestListRuns_HistoryDisabled() {
	c, rec := s.get("/api/v1/reports/runs")

	s.mockReportService.EXPECT().
		ListRuns(models.ReportRunFilters{}, 0, defaultRunsLimit).
		Return(nil, int64(0), services.ErrRunHistoryDisabled)

	s.Require().NoError(s.handler.ListRuns(c))
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("REPORT_005", s.errorCode(rec).Error.Code)
}

func (s *ReportHandlerTestSuite) TestListRuns_RepositoryError() {
	c, rec := s.get("/api/v1/reports/runs")

	s.mockReportService.EXPECT().
		ListRuns(gomock.Any(), 0, defaultRunsLimit).
		Return(nil, int64(0), errors.New("failed to count report runs: disk I/O error"))

	s.Require().NoError(s.handler.ListRuns(c))
	s.Equal(http.StatusInternalServerError, rec.Code)

	response := s.errorCode(rec)
	s.Equal("SYSTEM_002", response.Error.Code)
	s.NotContains(response.Error.Message, "disk")
}

func (s *ReportHandlerTestSuite) TestListRuns_CountError() {
	c, rec := s.get("/api/v1/reports/runs")

	s.mockReportService.EXPECT().ListRuns(gomock.Any(), 0, defaultRunsLimit).Return(nil, int64(0), nil)
	s.mockReportService.EXPECT().RunStatusCounts().Return(nil, errors.New("database is locked"))

	s.Require().NoError(s.handler.ListRuns(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_002", s.errorCode(rec).Error.Code)
}

// GetRun

func (s *ReportHandlerTestSuite) TestGetRun() {
	runID := uuid.New()

	testCases := []struct {
		name       string
		param      string
		setup      func()
		wantStatus int
		wantCode   string
	}{
		{
			name:  "found",
			param: runID.String(),
			setup: func() {
				s.mockReportService.EXPECT().GetRun(runID).Return(&models.ReportRun{ID: runID, SourceName: "ledger.xlsx"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid id",
			param:      "not-a-uuid",
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_003",
		},
		{
			name:  "not found",
			param: runID.String(),
			setup: func() {
				s.mockReportService.EXPECT().GetRun(runID).Return(nil, repositories.ErrReportRunNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "REPORT_003",
		},
		{
			name:  "history disabled",
			param: runID.String(),
			setup: func() {
				s.mockReportService.EXPECT().GetRun(runID).Return(nil, services.ErrRunHistoryDisabled)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "REPORT_005",
		},
		{
			name:  "database failure",
			param: runID.String(),
			setup: func() {
				s.mockReportService.EXPECT().GetRun(runID).Return(nil, errors.New("sql: database is closed"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "SYSTEM_002",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setup()
			c, rec := s.get("/api/v1/reports/runs/" + tc.param)
			c.SetParamNames("id")
			c.SetParamValues(tc.param)

			s.Require().NoError(s.handler.GetRun(c))
			s.Equal(tc.wantStatus, rec.Code)

			if tc.wantCode != "" {
				s.Equal(tc.wantCode, s.errorCode(rec).Error.Code)
				return
			}

			var run models.ReportRun
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &run))
			s.Equal(runID, run.ID)
		})
	}
}

// YearlyBudgets

func (s *ReportHandlerTestSuite) TestYearlyBudgets() {
	c, rec := s.get("/api/v1/budgets/yearly")

	s.mockYearlyService.EXPECT().Comparison().Return(models.YearlyBudgetComparison{
		Years: []string{"2024", "2025"},
		Items: []string{"회의비"},
		Rows: []models.YearlyBudgetRow{
			{Year: "2024", Item: "회의비", Amount: decimal.NewFromInt(9000000)},
			{Year: "2025", Item: "회의비", Amount: decimal.NewFromInt(9500000)},
		},
		Totals: map[string]decimal.Decimal{
			"2024": decimal.NewFromInt(9000000),
			"2025": decimal.NewFromInt(9500000),
		},
	})

	s.Require().NoError(s.handler.YearlyBudgets(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.YearlyBudgetsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal([]string{"2024", "2025"}, response.Years)
	s.Len(response.Rows, 2)
	s.True(response.Totals["2025"].Equal(decimal.NewFromInt(9500000)))
}
