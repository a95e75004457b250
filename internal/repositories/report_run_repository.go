package repositories

import (
	"errors"
	"fmt"
	"time"

	"budget-ledger/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrReportRunNotFound = errors.New("report run not found")

// ReportRunRepository handles database operations for report runs
type ReportRunRepository struct {
	db *gorm.DB
}

// NewReportRunRepository creates a new report run repository
func NewReportRunRepository(db *gorm.DB) ReportRunRepositoryInterface {
	return &ReportRunRepository{
		db: db,
	}
}

// Create stores a report run
func (r *ReportRunRepository) Create(run *models.ReportRun) error {
	if run == nil {
		return errors.New("report run cannot be nil")
	}

	if err := r.db.Create(run).Error; err != nil {
		return fmt.Errorf("failed to create report run: %w", err)
	}

	return nil
}

// GetByID retrieves a report run by its ID
func (r *ReportRunRepository) GetByID(id uuid.UUID) (*models.ReportRun, error) {
	run := &models.ReportRun{}
	if err := r.db.Where("id = ?", id).First(run).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportRunNotFound
		}
		return nil, fmt.Errorf("failed to get report run by ID: %w", err)
	}

	return run, nil
}

// List returns runs newest first, narrowed by the non-empty filter fields
func (r *ReportRunRepository) List(filters models.ReportRunFilters, offset, limit int) ([]models.ReportRun, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var runs []models.ReportRun
	var total int64

	query := r.db.Model(&models.ReportRun{})
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Origin != "" {
		query = query.Where("origin = ?", filters.Origin)
	}
	if filters.FiscalYear != "" {
		query = query.Where("fiscal_year = ?", filters.FiscalYear)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count report runs: %w", err)
	}

	if err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&runs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list report runs: %w", err)
	}

	return runs, total, nil
}

// CountByStatus returns the number of runs per status
func (r *ReportRunRepository) CountByStatus() (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	if err := r.db.Model(&models.ReportRun{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count report runs by status: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// DeleteOlderThan removes report runs older than the specified duration
func (r *ReportRunRepository) DeleteOlderThan(duration time.Duration) (int64, error) {
	cutoffTime := time.Now().Add(-duration)

	result := r.db.Where("created_at < ?", cutoffTime).Delete(&models.ReportRun{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete old report runs: %w", result.Error)
	}

	return result.RowsAffected, nil
}
