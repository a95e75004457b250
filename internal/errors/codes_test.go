package errors

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/suite"
)

type CodesTestSuite struct {
	suite.Suite
}

func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

var allCodes = []ErrorCode{
	ValidationGeneral,
	ValidationRequiredField,
	ValidationInvalidFormat,
	ValidationOutOfRange,
	LedgerEmpty,
	LedgerMissingColumn,
	LedgerUnreadableWorkbook,
	LedgerUnsupportedFileType,
	LedgerFileTooLarge,
	LedgerSheetNotFound,
	ReportGenerationFailed,
	ReportAggregationDegraded,
	ReportRunNotFound,
	ReportRenderFailed,
	ReportHistoryDisabled,
	SystemInternalError,
	SystemDatabaseError,
	SystemServiceUnavailable,
	SystemConfigurationError,
	SystemUnexpectedError,
	SystemRateLimitExceeded,
	SystemNotFound,
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{"validation general", ValidationGeneral, "Validation failed"},
		{"empty ledger", LedgerEmpty, "The uploaded ledger contains no rows"},
		{"unsupported file", LedgerUnsupportedFileType, "Only .xlsx workbooks are supported"},
		{"run not found", ReportRunNotFound, "Report run not found"},
		{"internal", SystemInternalError, "An unexpected error occurred. Please contact support with trace ID"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for _, code := range allCodes {
		s.True(IsValidErrorCode(code), "expected %s to be registered", code)
	}

	for _, code := range []ErrorCode{"", "AUTH_001", "LEDGER_999", "ledger_001"} {
		s.False(IsValidErrorCode(code), "expected %q to be unknown", code)
	}
}

func (s *CodesTestSuite) TestErrorCodes_UniqueAndWellFormed() {
	format := regexp.MustCompile(`^(VALIDATION|LEDGER|REPORT|SYSTEM)_\d{3}$`)
	seen := make(map[ErrorCode]bool, len(allCodes))

	for _, code := range allCodes {
		s.False(seen[code], "duplicate code %s", code)
		seen[code] = true
		s.Regexp(format, string(code))
	}
}

func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	s.Len(errorMessages, len(allCodes))
	for _, code := range allCodes {
		s.NotEmpty(errorMessages[code], "code %s has no message", code)
	}
}
