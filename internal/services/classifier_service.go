package services

import (
	"fmt"
	"log/slog"
	"strings"

	"budget-ledger/internal/config"
	"budget-ledger/internal/models"
)

// ValidationError is returned when a ledger cannot be classified at all.
type ValidationError struct {
	Message         string
	Field           string
	AvailableFields []string
}

func (e *ValidationError) Error() string {
	if len(e.AvailableFields) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (available fields: %s)", e.Message, strings.Join(e.AvailableFields, ", "))
}

type classifierService struct {
	businessPrefix string
	researchPrefix string
	threshold      float64
	memoField      string
	metrics        MetricsRecorderInterface
}

// NewClassifierService creates the memo-prefix classifier. A memo matching both
// prefixes is always assigned to the business track.
func NewClassifierService(rules *config.ClassificationConfig, fields *config.LedgerConfig, metrics MetricsRecorderInterface) ClassifierServiceInterface {
	if strings.HasPrefix(rules.BusinessPrefix, rules.ResearchPrefix) || strings.HasPrefix(rules.ResearchPrefix, rules.BusinessPrefix) {
		slog.Warn("classification prefixes overlap, business prefix takes precedence",
			"business_prefix", rules.BusinessPrefix,
			"research_prefix", rules.ResearchPrefix)
	}

	return &classifierService{
		businessPrefix: rules.BusinessPrefix,
		researchPrefix: rules.ResearchPrefix,
		threshold:      rules.UnclassifiedThreshold,
		memoField:      fields.MemoField,
		metrics:        metrics,
	}
}

// Classify splits the ledger into three disjoint row-sets covering every input row once.
func (s *classifierService) Classify(table models.LedgerTable) (*models.ClassificationResult, error) {
	if table.IsEmpty() {
		return nil, &ValidationError{Message: "ledger contains no rows", AvailableFields: table.Columns}
	}
	if !table.HasColumn(s.memoField) {
		return nil, &ValidationError{
			Message:         fmt.Sprintf("memo field '%s' not found", s.memoField),
			Field:           s.memoField,
			AvailableFields: table.Columns,
		}
	}

	var business, research, unclassified []models.LedgerRow
	for _, row := range table.Rows {
		switch s.trackOf(row.Get(s.memoField)) {
		case models.TrackBusiness:
			business = append(business, row)
		case models.TrackResearch:
			research = append(research, row)
		default:
			unclassified = append(unclassified, row)
		}
	}

	result := &models.ClassificationResult{
		Business:     table.Subset(business),
		Research:     table.Subset(research),
		Unclassified: table.Subset(unclassified),
	}
	result.Stats = s.buildStats(table.Len(), len(business), len(research), len(unclassified))

	if result.Stats.HighUnclassified {
		slog.Warn("high unclassified ratio",
			"unclassified", result.Stats.UnclassifiedCount,
			"total", result.Stats.Total,
			"threshold", s.threshold)
		s.record("ledger_unclassified_warning", nil)
	}

	slog.Info("ledger classified",
		"total", result.Stats.Total,
		"business", result.Stats.BusinessCount,
		"research", result.Stats.ResearchCount,
		"unclassified", result.Stats.UnclassifiedCount)

	if s.metrics != nil {
		s.metrics.RecordGauge("unclassified_ratio", result.Stats.UnclassifiedPercentage/100, nil)
	}
	s.record("ledger_rows_classified", map[string]string{"track": string(models.TrackBusiness), "count": fmt.Sprint(len(business))})
	s.record("ledger_rows_classified", map[string]string{"track": string(models.TrackResearch), "count": fmt.Sprint(len(research))})
	s.record("ledger_rows_classified", map[string]string{"track": string(models.TrackUnclassified), "count": fmt.Sprint(len(unclassified))})

	return result, nil
}

func (s *classifierService) trackOf(memo string) models.Track {
	switch {
	case strings.HasPrefix(memo, s.businessPrefix):
		return models.TrackBusiness
	case strings.HasPrefix(memo, s.researchPrefix):
		return models.TrackResearch
	default:
		return models.TrackUnclassified
	}
}

func (s *classifierService) buildStats(total, business, research, unclassified int) models.ClassificationStats {
	stats := models.ClassificationStats{
		Total:             total,
		BusinessCount:     business,
		ResearchCount:     research,
		UnclassifiedCount: unclassified,
	}
	if total == 0 {
		return stats
	}

	stats.BusinessPercentage = percentage(business, total)
	stats.ResearchPercentage = percentage(research, total)
	stats.UnclassifiedPercentage = percentage(unclassified, total)
	stats.HighUnclassified = float64(unclassified) > float64(total)*s.threshold
	return stats
}

func (s *classifierService) record(name string, tags map[string]string) {
	if s.metrics != nil {
		s.metrics.IncrementCounter(name, tags)
	}
}

func percentage(part, total int) float64 {
	return float64(part) / float64(total) * 100
}
