package repositories

import (
	"testing"
	"time"

	"budget-ledger/internal/database"
	"budget-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestReportRunRepository(t *testing.T) {
	suite.Run(t, new(ReportRunRepositorySuite))
}

type ReportRunRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo ReportRunRepositoryInterface
}

func (s *ReportRunRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewReportRunRepository(s.db.DB)
}

func (s *ReportRunRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ReportRunRepositorySuite) newRun(status, origin, year string) *models.ReportRun {
	return &models.ReportRun{
		SourceName:   gofakeit.Word() + ".xlsx",
		Origin:       origin,
		FiscalYear:   year,
		Status:       status,
		TotalRows:    gofakeit.IntRange(10, 500),
		BusinessRows: gofakeit.IntRange(0, 10),
		ResearchRows: gofakeit.IntRange(0, 10),
	}
}

func (s *ReportRunRepositorySuite) TestCreate() {
	run := s.newRun(models.ReportRunStatusCompleted, models.ReportRunSourceCLI, "2025")

	err := s.repo.Create(run)
	s.NoError(err)
	s.NotEqual(uuid.Nil, run.ID)
	s.NotZero(run.CreatedAt)
}

func (s *ReportRunRepositorySuite) TestCreate_Nil() {
	err := s.repo.Create(nil)
	s.Error(err)
}

func (s *ReportRunRepositorySuite) TestCreate_PersistsWarnings() {
	run := s.newRun(models.ReportRunStatusDegraded, models.ReportRunSourceHTTP, "2025")
	run.AddWarning("research_summary", "aggregation degraded: missing columns 총지급액")
	s.Require().NoError(s.repo.Create(run))

	found, err := s.repo.GetByID(run.ID)
	s.Require().NoError(err)
	s.Equal("aggregation degraded: missing columns 총지급액", found.GetWarning("research_summary", ""))
}

func (s *ReportRunRepositorySuite) TestGetByID() {
	run := s.newRun(models.ReportRunStatusCompleted, models.ReportRunSourceHTTP, "2025")
	s.Require().NoError(s.repo.Create(run))

	found, err := s.repo.GetByID(run.ID)
	s.NoError(err)
	s.Equal(run.ID, found.ID)
	s.Equal(run.SourceName, found.SourceName)
	s.Equal(run.TotalRows, found.TotalRows)
}

func (s *ReportRunRepositorySuite) TestGetByID_NotFound() {
	found, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrReportRunNotFound)
	s.Nil(found)
}

func (s *ReportRunRepositorySuite) TestList_FiltersAndOrder() {
	base := time.Now().Add(-time.Hour)
	for i, status := range []string{
		models.ReportRunStatusCompleted,
		models.ReportRunStatusDegraded,
		models.ReportRunStatusCompleted,
		models.ReportRunStatusFailed,
	} {
		run := s.newRun(status, models.ReportRunSourceHTTP, "2025")
		run.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		s.Require().NoError(s.repo.Create(run))
	}

	s.Run("no filters", func() {
		runs, total, err := s.repo.List(models.ReportRunFilters{}, 0, 10)
		s.NoError(err)
		s.Equal(int64(4), total)
		s.Len(runs, 4)
		s.Equal(models.ReportRunStatusFailed, runs[0].Status)
		s.True(runs[0].CreatedAt.After(runs[1].CreatedAt))
	})

	s.Run("status filter", func() {
		runs, total, err := s.repo.List(models.ReportRunFilters{Status: models.ReportRunStatusCompleted}, 0, 10)
		s.NoError(err)
		s.Equal(int64(2), total)
		for _, run := range runs {
			s.Equal(models.ReportRunStatusCompleted, run.Status)
		}
	})

	s.Run("pagination", func() {
		runs, total, err := s.repo.List(models.ReportRunFilters{}, 2, 1)
		s.NoError(err)
		s.Equal(int64(4), total)
		s.Len(runs, 1)
		s.Equal(models.ReportRunStatusDegraded, runs[0].Status)
	})

	s.Run("fiscal year filter without matches", func() {
		runs, total, err := s.repo.List(models.ReportRunFilters{FiscalYear: "2022"}, 0, 10)
		s.NoError(err)
		s.Zero(total)
		s.Empty(runs)
	})
}

func (s *ReportRunRepositorySuite) TestCountByStatus() {
	s.Require().NoError(s.repo.Create(s.newRun(models.ReportRunStatusCompleted, models.ReportRunSourceCLI, "2025")))
	s.Require().NoError(s.repo.Create(s.newRun(models.ReportRunStatusCompleted, models.ReportRunSourceHTTP, "2025")))
	s.Require().NoError(s.repo.Create(s.newRun(models.ReportRunStatusFailed, models.ReportRunSourceHTTP, "2025")))

	counts, err := s.repo.CountByStatus()
	s.NoError(err)
	s.Equal(int64(2), counts[models.ReportRunStatusCompleted])
	s.Equal(int64(1), counts[models.ReportRunStatusFailed])
	s.Zero(counts[models.ReportRunStatusDegraded])
}

func (s *ReportRunRepositorySuite) TestDeleteOlderThan() {
	old := s.newRun(models.ReportRunStatusCompleted, models.ReportRunSourceCLI, "2025")
	old.CreatedAt = time.Now().Add(-48 * time.Hour)
	s.Require().NoError(s.repo.Create(old))

	recent := s.newRun(models.ReportRunStatusCompleted, models.ReportRunSourceCLI, "2025")
	s.Require().NoError(s.repo.Create(recent))

	deleted, err := s.repo.DeleteOlderThan(24 * time.Hour)
	s.NoError(err)
	s.Equal(int64(1), deleted)

	_, err = s.repo.GetByID(old.ID)
	s.ErrorIs(err, ErrReportRunNotFound)

	_, err = s.repo.GetByID(recent.ID)
	s.NoError(err)
}
