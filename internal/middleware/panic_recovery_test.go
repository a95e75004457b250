package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "budget-ledger/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) serveWithRecovery(traceID string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodPost, "/api/v1/reports", nil), rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	s.NotPanics(func() {
		s.NoError(PanicRecovery()(next)(c))
	})
	return rec
}

func (s *PanicRecoveryTestSuite) TestRecoversWithStandardBody() {
	rec := s.serveWithRecovery("trace-panic", func(c echo.Context) error {
		var rows []string
		_ = rows[3]
		return nil
	})

	s.Equal(http.StatusInternalServerError, rec.Code)

	var response apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SYSTEM_001", response.Error.Code)
	s.Equal("trace-panic", response.Error.TraceID)
	s.NotContains(rec.Body.String(), "index out of range")
}

func (s *PanicRecoveryTestSuite) TestPanicValues() {
	values := []interface{}{"string panic", errors.New("error panic"), 42, struct{ Sheet string }{"총액"}}

	for _, v := range values {
		rec := s.serveWithRecovery("", func(c echo.Context) error { panic(v) })

		s.Equal(http.StatusInternalServerError, rec.Code)
		s.Contains(rec.Body.String(), "unknown")
	}
}

func (s *PanicRecoveryTestSuite) TestCommittedResponseKept() {
	rec := s.serveWithRecovery("trace-late", func(c echo.Context) error {
		_ = c.Blob(http.StatusOK, "application/octet-stream", []byte("partial"))
		panic("after write")
	})

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("partial", rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestNormalFlow() {
	rec := s.serveWithRecovery("trace-ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestAbortHandlerIsRethrown() {
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	handler := PanicRecovery()(func(c echo.Context) error { panic(http.ErrAbortHandler) })

	s.PanicsWithValue(http.ErrAbortHandler, func() { _ = handler(c) })
}
