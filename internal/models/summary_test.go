package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutionRate_String(t *testing.T) {
	assert.Equal(t, "42", PercentRate(42).String())
	assert.Equal(t, "0", PercentRate(0).String())
	assert.Equal(t, "0%", UnbudgetedRate(decimal.Zero).String())
	assert.Equal(t, "∞%", UnbudgetedRate(decimal.NewFromInt(1000)).String())
}

func TestExecutionRate_JSON(t *testing.T) {
	tests := []struct {
		name string
		rate ExecutionRate
		json string
	}{
		{name: "percent", rate: PercentRate(87), json: `87`},
		{name: "idle sentinel", rate: UnbudgetedRate(decimal.Zero), json: `"0%"`},
		{name: "spent sentinel", rate: UnbudgetedRate(decimal.NewFromInt(5)), json: `"∞%"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.rate)
			require.NoError(t, err)
			assert.JSONEq(t, tt.json, string(data))

			var decoded ExecutionRate
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tt.rate, decoded)
		})
	}
}

func TestSummaryTable_TotalAndBody(t *testing.T) {
	table := SummaryTable{Rows: []SummaryRow{
		{Kind: RowKindLineItem, LineItem: "a", Spent: decimal.NewFromInt(1)},
		{Kind: RowKindLineItem, LineItem: "b", Spent: decimal.NewFromInt(2)},
		{Kind: RowKindTotal, Category: TotalLabel, Spent: decimal.NewFromInt(3)},
	}}

	total, ok := table.Total()
	require.True(t, ok)
	assert.Equal(t, TotalLabel, total.Category)
	assert.Len(t, table.Body(), 2)
	assert.Equal(t, 2, table.CountKind(RowKindLineItem))

	_, ok = SummaryTable{}.Total()
	assert.False(t, ok)
}

func TestResearchSummary_RowsConcatenatesInOrder(t *testing.T) {
	summary := ResearchSummary{
		GrandTotal: SummaryTable{Rows: []SummaryRow{{Kind: RowKindTitle, Category: GrandTotalLabel}}},
		Pairs: []PairSummary{
			{Pair: ResearchPair{Topic: "a", Researcher: "김"}, Table: SummaryTable{Rows: []SummaryRow{{Kind: RowKindTitle, Category: "a"}}}},
			{Pair: ResearchPair{Topic: "b", Researcher: "이"}, Table: SummaryTable{Rows: []SummaryRow{{Kind: RowKindTitle, Category: "b"}}}},
		},
	}

	rows := summary.Rows()

	require.Len(t, rows, 3)
	assert.Equal(t, GrandTotalLabel, rows[0].Category)
	assert.Equal(t, "a", rows[1].Category)
	assert.Equal(t, "b", rows[2].Category)
}

func TestResearchPair_Less(t *testing.T) {
	assert.True(t, ResearchPair{Topic: "가", Researcher: "하"}.Less(ResearchPair{Topic: "나", Researcher: "가"}))
	assert.True(t, ResearchPair{Topic: "가", Researcher: "김"}.Less(ResearchPair{Topic: "가", Researcher: "이"}))
	assert.False(t, ResearchPair{Topic: "가", Researcher: "김"}.Less(ResearchPair{Topic: "가", Researcher: "김"}))
}
