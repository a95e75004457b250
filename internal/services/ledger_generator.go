package services

import (
	"fmt"
	"strconv"
	"time"

	"budget-ledger/internal/config"
	"budget-ledger/internal/models"
	"budget-ledger/internal/taxonomy"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	businessShare     = 0.45
	researchShare     = 0.40
	minAmountTenThous = 1
	maxAmountTenThous = 300
)

var (
	businessTopics = []string{"운영위원회 회의", "성과보고회", "기술자문 회의", "워크숍 개최", "홍보물 제작", "장비 유지보수"}
	researchTopics = []string{"위성항법", "자율주행", "양자통신", "디지털트윈", "저궤도위성", "전파감시"}
	otherMemos     = []string{"급여", "관리비", "사무용품 구입", "건물 임차료", "4대보험 기관부담금"}
	familyNames    = []string{"김", "이", "박", "최", "정", "강", "조", "윤"}
	givenNames     = []string{"민수", "영희", "지훈", "서연", "현우", "수빈", "도윤", "하은"}
)

type ledgerGenerator struct {
	ledger         *config.LedgerConfig
	classification *config.ClassificationConfig
	lineItems      []string
	fiscalYear     int
	faker          *gofakeit.Faker
}

// NewLedgerGenerator builds synthetic ledgers for demos and load tests. A zero seed picks a random one.
func NewLedgerGenerator(cfg *config.Config, tax *taxonomy.Taxonomy, seed uint64) LedgerGeneratorInterface {
	year, err := strconv.Atoi(cfg.Budget.FiscalYear)
	if err != nil {
		year = time.Now().Year()
	}

	return &ledgerGenerator{
		ledger:         &cfg.Ledger,
		classification: &cfg.Classification,
		lineItems:      tax.LineItems(),
		fiscalYear:     year,
		faker:          gofakeit.New(seed),
	}
}

// Generate returns rows in the configured output column order, mixing business,
// research and unclassified memos.
func (g *ledgerGenerator) Generate(rows int) models.LedgerTable {
	columns := append([]string{}, g.ledger.OutputColumns...)
	records := make([][]string, 0, rows)

	for i := 0; i < rows; i++ {
		memo, author := g.memo()
		values := map[string]string{
			g.ledger.MemoField:     memo,
			g.ledger.LineItemField: g.faker.RandomString(g.lineItems),
			g.ledger.AmountField:   strconv.Itoa(g.faker.Number(minAmountTenThous, maxAmountTenThous) * 10000),
			g.ledger.DateField:     g.date().Format("2006-01-02"),
			"작성자":                  author,
			"번호":                   strconv.Itoa(i + 1),
			"결의서":                  g.faker.Numerify("결의-####"),
		}

		record := make([]string, len(columns))
		for j, col := range columns {
			record[j] = values[col]
		}
		records = append(records, record)
	}

	return models.NewLedgerTable(columns, records)
}

func (g *ledgerGenerator) memo() (memo, author string) {
	author = g.koreanName()
	roll := g.faker.Float64()

	switch {
	case roll < businessShare:
		return fmt.Sprintf("%s %s", g.classification.BusinessPrefix, g.faker.RandomString(businessTopics)), author
	case roll < businessShare+researchShare:
		return fmt.Sprintf("%s(%s)_%s", g.classification.ResearchPrefix, g.faker.RandomString(researchTopics), author), author
	default:
		return g.faker.RandomString(otherMemos), author
	}
}

func (g *ledgerGenerator) koreanName() string {
	return g.faker.RandomString(familyNames) + g.faker.RandomString(givenNames)
}

func (g *ledgerGenerator) date() time.Time {
	start := time.Date(g.fiscalYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(g.fiscalYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	return g.faker.DateRange(start, end)
}
