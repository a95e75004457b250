package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"budget-ledger/internal/models"

	"github.com/go-playground/validator/v10"
)

var fiscalYearPattern = regexp.MustCompile(`^20\d{2}$`)

// Validator wraps the go-playground validator with the ledger rules registered
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a validator with the fiscal_year, run_status and run_origin rules
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("fiscal_year", validateFiscalYear)
	_ = v.RegisterValidation("run_status", validateRunStatus)
	_ = v.RegisterValidation("run_origin", validateRunOrigin)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// validateFiscalYear accepts four-digit years of this century
func validateFiscalYear(fl validator.FieldLevel) bool {
	return fiscalYearPattern.MatchString(fl.Field().String())
}

func validateRunStatus(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case models.ReportRunStatusCompleted, models.ReportRunStatusDegraded, models.ReportRunStatusFailed:
		return true
	}
	return false
}

func validateRunOrigin(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case models.ReportRunSourceCLI, models.ReportRunSourceHTTP:
		return true
	}
	return false
}
