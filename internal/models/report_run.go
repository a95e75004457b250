package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ReportRunStatusCompleted = "completed"
	ReportRunStatusDegraded  = "degraded"
	ReportRunStatusFailed    = "failed"
)

const (
	ReportRunSourceCLI  = "cli"
	ReportRunSourceHTTP = "http"
)

// ReportRun records the metadata of one report generation. Ledger rows are never stored.
type ReportRun struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SourceName       string    `gorm:"type:varchar(255);not null" json:"source_name"`
	Origin           string    `gorm:"type:varchar(20);not null;index" json:"origin"`
	FiscalYear       string    `gorm:"type:varchar(4);not null" json:"fiscal_year"`
	Status           string    `gorm:"type:varchar(20);not null;index" json:"status"`
	TotalRows        int       `gorm:"not null;default:0" json:"total_rows"`
	BusinessRows     int       `gorm:"not null;default:0" json:"business_rows"`
	ResearchRows     int       `gorm:"not null;default:0" json:"research_rows"`
	UnclassifiedRows int       `gorm:"not null;default:0" json:"unclassified_rows"`
	ResearchPairs    int       `gorm:"not null;default:0" json:"research_pairs"`
	DurationMillis   int64     `gorm:"not null;default:0" json:"duration_ms"`
	ErrorMessage     string    `gorm:"type:text" json:"error_message,omitempty"`
	Warnings         JSONBMap  `gorm:"type:text" json:"warnings,omitempty"`
	CreatedAt        time.Time `gorm:"not null;index" json:"created_at"`
}

func (r *ReportRun) AddWarning(key string, value interface{}) {
	if r.Warnings == nil {
		r.Warnings = make(JSONBMap)
	}
	r.Warnings[key] = value
}

func (r *ReportRun) GetWarning(key string, defaultValue interface{}) interface{} {
	if r.Warnings == nil {
		return defaultValue
	}

	if value, exists := r.Warnings[key]; exists {
		return value
	}

	return defaultValue
}

func (r *ReportRun) String() string {
	return fmt.Sprintf("ReportRun[%s: %s, Year: %s, Status: %s, Rows: %d/%d/%d, Time: %s]",
		r.ID, r.SourceName, r.FiscalYear, r.Status,
		r.BusinessRows, r.ResearchRows, r.UnclassifiedRows,
		r.CreatedAt.Format(time.RFC3339))
}

func (r *ReportRun) TableName() string {
	return "report_runs"
}

func (r *ReportRun) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	return nil
}

// ReportRunFilters narrows run history queries.
type ReportRunFilters struct {
	Status     string
	Origin     string
	FiscalYear string
}

// JSONBMap is a JSON object column stored as text.
type JSONBMap map[string]interface{}

// Value implements driver.Valuer interface
func (m JSONBMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	bytes, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	// Return string for SQLite compatibility
	return string(bytes), nil
}

func (m *JSONBMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBMap", value)
	}

	if len(bytes) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(bytes, m)
}
