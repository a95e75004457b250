package repositories

import (
	"time"

	"budget-ledger/internal/models"

	"github.com/google/uuid"
)

// ReportRunRepositoryInterface defines the contract for report run history
type ReportRunRepositoryInterface interface {
	Create(run *models.ReportRun) error
	GetByID(id uuid.UUID) (*models.ReportRun, error)
	List(filters models.ReportRunFilters, offset, limit int) ([]models.ReportRun, int64, error)
	CountByStatus() (map[string]int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}
