package services

import (
	"errors"
	"strings"
	"testing"

	"budget-ledger/internal/config"
	"budget-ledger/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"
)

type ClassifierServiceTestSuite struct {
	suite.Suite
	service ClassifierServiceInterface
}

func TestClassifierServiceSuite(t *testing.T) {
	suite.Run(t, new(ClassifierServiceTestSuite))
}

func (s *ClassifierServiceTestSuite) SetupTest() {
	s.service = NewClassifierService(testClassificationConfig(), testLedgerConfig(), nil)
}

func (s *ClassifierServiceTestSuite) TestClassify_PrefixCorrectness() {
	service := NewClassifierService(&config.ClassificationConfig{
		BusinessPrefix:        "25 A",
		ResearchPrefix:        "25 B",
		UnclassifiedThreshold: 0.7,
	}, testLedgerConfig(), nil)

	testCases := []struct {
		memo     string
		expected models.Track
	}{
		{"25 A_홍길동", models.TrackBusiness},
		{"25 B(위성항법)_김민수", models.TrackResearch},
		{"기타", models.TrackUnclassified},
		{"", models.TrackUnclassified},
		{" 25 A leading space", models.TrackUnclassified},
		{"25 a lower case", models.TrackUnclassified},
	}

	for _, tc := range testCases {
		s.Run(tc.memo, func() {
			result, err := service.Classify(ledgerTable(ledgerRecord(tc.memo, "소모품비", "1000")))
			s.Require().NoError(err)
			s.Equal(1, result.Rows(tc.expected).Len())
		})
	}
}

func (s *ClassifierServiceTestSuite) TestClassify_PartitionCompleteness() {
	prefixes := []string{testBusinessPrefix, testResearchPrefix, "", "24 차세대", "기타 "}

	records := make([][]string, 0, 200)
	for i := 0; i < 200; i++ {
		memo := prefixes[gofakeit.IntRange(0, len(prefixes)-1)] + gofakeit.Sentence(3)
		records = append(records, ledgerRecord(memo, gofakeit.Word(), gofakeit.Numerify("#####")))
	}
	table := ledgerTable(records...)

	result, err := s.service.Classify(table)
	s.Require().NoError(err)

	s.Equal(table.Len(), result.Business.Len()+result.Research.Len()+result.Unclassified.Len())

	seen := make(map[int]models.Track)
	for _, track := range []models.Track{models.TrackBusiness, models.TrackResearch, models.TrackUnclassified} {
		for _, row := range result.Rows(track).Rows {
			_, dup := seen[row.Index]
			s.False(dup, "row %d appears in more than one track", row.Index)
			seen[row.Index] = track
		}
	}
	s.Len(seen, table.Len())

	for _, row := range result.Business.Rows {
		s.True(strings.HasPrefix(row.Get("적요"), testBusinessPrefix))
	}
	for _, row := range result.Research.Rows {
		s.True(strings.HasPrefix(row.Get("적요"), testResearchPrefix))
	}
}

func (s *ClassifierServiceTestSuite) TestClassify_PreservesSchemaAndPassThroughColumns() {
	record := ledgerRecord(testBusinessPrefix+"_홍길동", "소모품비", "1000")
	result, err := s.service.Classify(ledgerTable(record))
	s.Require().NoError(err)

	s.Equal(testColumns, result.Business.Columns)
	s.Equal(testColumns, result.Research.Columns)
	s.Equal(record[4], result.Business.Rows[0].Get("작성자"))
	s.NotNil(result.Research.Rows)
	s.Empty(result.Research.Rows)
}

func (s *ClassifierServiceTestSuite) TestClassify_EmptyLedger() {
	result, err := s.service.Classify(models.NewLedgerTable(testColumns, nil))

	s.Nil(result)
	var validationErr *ValidationError
	s.Require().True(errors.As(err, &validationErr))
	s.Contains(err.Error(), "no rows")
}

func (s *ClassifierServiceTestSuite) TestClassify_MissingMemoColumn() {
	table := models.NewLedgerTable([]string{"예산과목", "총지급액"}, [][]string{{"소모품비", "1000"}})

	result, err := s.service.Classify(table)

	s.Nil(result)
	var validationErr *ValidationError
	s.Require().True(errors.As(err, &validationErr))
	s.Equal("적요", validationErr.Field)
	s.Equal([]string{"예산과목", "총지급액"}, validationErr.AvailableFields)
	s.Contains(err.Error(), "예산과목, 총지급액")
}

func (s *ClassifierServiceTestSuite) TestClassify_Stats() {
	table := ledgerTable(
		ledgerRecord(testBusinessPrefix+" 회의", "회의비", "1000"),
		ledgerRecord(testResearchPrefix+"(위성항법)_김민수", "연구개발비", "2000"),
		ledgerRecord(testResearchPrefix+"(자율주행)_이영희", "재료비", "3000"),
		ledgerRecord("급여", "일용임금", "4000"),
	)

	result, err := s.service.Classify(table)
	s.Require().NoError(err)

	stats := result.Stats
	s.Equal(4, stats.Total)
	s.Equal(1, stats.BusinessCount)
	s.Equal(2, stats.ResearchCount)
	s.Equal(1, stats.UnclassifiedCount)
	s.InDelta(25.0, stats.BusinessPercentage, 0.0001)
	s.InDelta(50.0, stats.ResearchPercentage, 0.0001)
	s.InDelta(25.0, stats.UnclassifiedPercentage, 0.0001)
	s.False(stats.HighUnclassified)
}

func (s *ClassifierServiceTestSuite) TestClassify_HighUnclassifiedIsAdvisory() {
	records := [][]string{ledgerRecord(testBusinessPrefix+" 회의", "회의비", "1000")}
	for i := 0; i < 9; i++ {
		records = append(records, ledgerRecord(gofakeit.Word(), "일용임금", "100"))
	}

	result, err := s.service.Classify(ledgerTable(records...))
	s.Require().NoError(err)
	s.True(result.Stats.HighUnclassified)
	s.Equal(9, result.Unclassified.Len())
}

func (s *ClassifierServiceTestSuite) TestClassify_ThresholdBoundaryIsExclusive() {
	service := NewClassifierService(&config.ClassificationConfig{
		BusinessPrefix:        testBusinessPrefix,
		ResearchPrefix:        testResearchPrefix,
		UnclassifiedThreshold: 0.5,
	}, testLedgerConfig(), nil)

	result, err := service.Classify(ledgerTable(
		ledgerRecord(testBusinessPrefix, "회의비", "1"),
		ledgerRecord("기타", "회의비", "1"),
	))
	s.Require().NoError(err)
	s.False(result.Stats.HighUnclassified)
}

func (s *ClassifierServiceTestSuite) TestClassify_OverlappingPrefixesPreferBusiness() {
	service := NewClassifierService(&config.ClassificationConfig{
		BusinessPrefix:        "25 연구",
		ResearchPrefix:        "25 연구소",
		UnclassifiedThreshold: 0.7,
	}, testLedgerConfig(), nil)

	result, err := service.Classify(ledgerTable(
		ledgerRecord("25 연구소 장비", "재료비", "1000"),
		ledgerRecord("25 연구 회의", "회의비", "1000"),
	))
	s.Require().NoError(err)

	s.Equal(2, result.Business.Len())
	s.Equal(0, result.Research.Len())
	s.Equal(0, result.Unclassified.Len())
}
