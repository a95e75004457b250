package models

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	// TotalLabel marks the TOTAL row of every summary and totals table.
	TotalLabel = "총액"
	// GrandTotalLabel titles the research grand-total table.
	GrandTotalLabel = "총합"
	// UnclassifiedLineItem replaces a missing line-item label.
	UnclassifiedLineItem = "미분류"
)

// RowKind tells renderers how to treat a summary row.
type RowKind string

const (
	RowKindLineItem  RowKind = "line_item"
	RowKindTotal     RowKind = "total"
	RowKindSynthetic RowKind = "synthetic"
	RowKindTitle     RowKind = "title"
	RowKindBlank     RowKind = "blank"
)

// RateKind distinguishes numeric execution rates from the unbudgeted sentinels.
type RateKind int

const (
	RatePercent RateKind = iota
	RateUnbudgetedIdle
	RateUnbudgetedSpent
)

// ExecutionRate is either an integer percentage or, for rows without a budget,
// the "0%" / "∞%" sentinel.
type ExecutionRate struct {
	Percent int64
	Kind    RateKind
}

// PercentRate wraps a numeric execution rate.
func PercentRate(percent int64) ExecutionRate {
	return ExecutionRate{Percent: percent, Kind: RatePercent}
}

// UnbudgetedRate returns "0%" when nothing was spent and "∞%" otherwise.
func UnbudgetedRate(spent decimal.Decimal) ExecutionRate {
	if spent.IsZero() {
		return ExecutionRate{Kind: RateUnbudgetedIdle}
	}
	return ExecutionRate{Kind: RateUnbudgetedSpent}
}

// IsSentinel reports whether the rate is a string sentinel rather than a number.
func (r ExecutionRate) IsSentinel() bool {
	return r.Kind != RatePercent
}

func (r ExecutionRate) String() string {
	switch r.Kind {
	case RateUnbudgetedIdle:
		return "0%"
	case RateUnbudgetedSpent:
		return "∞%"
	default:
		return strconv.FormatInt(r.Percent, 10)
	}
}

func (r ExecutionRate) MarshalJSON() ([]byte, error) {
	if r.IsSentinel() {
		return json.Marshal(r.String())
	}
	return json.Marshal(r.Percent)
}

func (r *ExecutionRate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "0%":
			*r = ExecutionRate{Kind: RateUnbudgetedIdle}
		case "∞%":
			*r = ExecutionRate{Kind: RateUnbudgetedSpent}
		default:
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return err
			}
			*r = PercentRate(n)
		}
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = PercentRate(n)
	return nil
}

// SummaryRow is one line of a per-track budget summary. Category and
// Subcategory are only set on the first row of their group.
type SummaryRow struct {
	Kind          RowKind         `json:"kind"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory"`
	LineItem      string          `json:"line_item"`
	Budget        decimal.Decimal `json:"budget"`
	Spent         decimal.Decimal `json:"spent"`
	Remainder     decimal.Decimal `json:"remainder"`
	ExecutionRate ExecutionRate   `json:"execution_rate"`
}

// IsNumeric reports whether the row carries amounts (not a title or separator).
func (r SummaryRow) IsNumeric() bool {
	return r.Kind != RowKindTitle && r.Kind != RowKindBlank
}

// SummaryTable is an ordered list of summary rows.
type SummaryTable struct {
	Rows []SummaryRow `json:"rows"`
}

func (t SummaryTable) IsEmpty() bool {
	return len(t.Rows) == 0
}

// Total returns the TOTAL row if the table has one.
func (t SummaryTable) Total() (SummaryRow, bool) {
	for _, r := range t.Rows {
		if r.Kind == RowKindTotal {
			return r, true
		}
	}
	return SummaryRow{}, false
}

// Body returns every row except the TOTAL row.
func (t SummaryTable) Body() []SummaryRow {
	rows := make([]SummaryRow, 0, len(t.Rows))
	for _, r := range t.Rows {
		if r.Kind != RowKindTotal {
			rows = append(rows, r)
		}
	}
	return rows
}

// CountKind counts the rows of a given kind.
func (t SummaryTable) CountKind(kind RowKind) int {
	n := 0
	for _, r := range t.Rows {
		if r.Kind == kind {
			n++
		}
	}
	return n
}

// ResearchPair is a distinct (topic, researcher) combination found in research memos.
type ResearchPair struct {
	Topic      string `json:"topic"`
	Researcher string `json:"researcher"`
}

// Less orders pairs by topic, then researcher.
func (p ResearchPair) Less(other ResearchPair) bool {
	if p.Topic != other.Topic {
		return p.Topic < other.Topic
	}
	return p.Researcher < other.Researcher
}

// PairSummary is the independent table for one research pair.
type PairSummary struct {
	Pair  ResearchPair `json:"pair"`
	Table SummaryTable `json:"table"`
}

// ResearchSummary is the composite research-track structure.
type ResearchSummary struct {
	GrandTotal SummaryTable  `json:"grand_total"`
	Pairs      []PairSummary `json:"pairs"`
}

// Rows concatenates the grand-total table and every pair table in order.
func (s ResearchSummary) Rows() []SummaryRow {
	n := len(s.GrandTotal.Rows)
	for _, p := range s.Pairs {
		n += len(p.Table.Rows)
	}

	rows := make([]SummaryRow, 0, n)
	rows = append(rows, s.GrandTotal.Rows...)
	for _, p := range s.Pairs {
		rows = append(rows, p.Table.Rows...)
	}
	return rows
}

// TotalsRow is one line of the merged business/research table.
type TotalsRow struct {
	Kind          RowKind         `json:"kind"`
	Category      string          `json:"category"`
	Subcategory   string          `json:"subcategory"`
	LineItem      string          `json:"line_item"`
	Budget        decimal.Decimal `json:"budget"`
	Center        decimal.Decimal `json:"center"`
	Research      decimal.Decimal `json:"research"`
	Remainder     decimal.Decimal `json:"remainder"`
	ExecutionRate ExecutionRate   `json:"execution_rate"`
}

// TotalsTable is the merged table across both tracks.
type TotalsTable struct {
	Rows []TotalsRow `json:"rows"`
}

// Total returns the TOTAL row if present.
func (t TotalsTable) Total() (TotalsRow, bool) {
	for _, r := range t.Rows {
		if r.Kind == RowKindTotal {
			return r, true
		}
	}
	return TotalsRow{}, false
}
