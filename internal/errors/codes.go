package errors

// ErrorCode is a stable, machine-readable API error code
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Ledger input error codes (LEDGER_*)
const (
	LedgerEmpty               ErrorCode = "LEDGER_001"
	LedgerMissingColumn       ErrorCode = "LEDGER_002"
	LedgerUnreadableWorkbook  ErrorCode = "LEDGER_003"
	LedgerUnsupportedFileType ErrorCode = "LEDGER_004"
	LedgerFileTooLarge        ErrorCode = "LEDGER_005"
	LedgerSheetNotFound       ErrorCode = "LEDGER_006"
)

// Report error codes (REPORT_*)
const (
	ReportGenerationFailed    ErrorCode = "REPORT_001"
	ReportAggregationDegraded ErrorCode = "REPORT_002"
	ReportRunNotFound         ErrorCode = "REPORT_003"
	ReportRenderFailed        ErrorCode = "REPORT_004"
	ReportHistoryDisabled     ErrorCode = "REPORT_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemNotFound           ErrorCode = "SYSTEM_007"
)

var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	LedgerEmpty:               "The uploaded ledger contains no rows",
	LedgerMissingColumn:       "The uploaded ledger is missing a required column",
	LedgerUnreadableWorkbook:  "The uploaded file could not be read as a workbook",
	LedgerUnsupportedFileType: "Only .xlsx workbooks are supported",
	LedgerFileTooLarge:        "The uploaded file exceeds the maximum allowed size",
	LedgerSheetNotFound:       "The configured ledger sheet was not found in the workbook",

	ReportGenerationFailed:    "Report generation failed",
	ReportAggregationDegraded: "Part of the report could not be aggregated",
	ReportRunNotFound:         "Report run not found",
	ReportRenderFailed:        "The report workbook could not be rendered",
	ReportHistoryDisabled:     "Report run history is not available",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
}

// GetErrorMessage returns the default message for a code, or a generic one for unknown codes
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
