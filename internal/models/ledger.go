package models

// LedgerRow is one expense record as exported by the accounting system.
// Values is keyed by column header and must be treated as read-only.
type LedgerRow struct {
	Index  int               `json:"index"`
	Values map[string]string `json:"values"`
}

// Get returns the cell for a column, or "" when the column or cell is missing.
func (r LedgerRow) Get(field string) string {
	if r.Values == nil {
		return ""
	}
	return r.Values[field]
}

// LedgerTable is a flat row-set with an ordered column schema.
type LedgerTable struct {
	Columns []string    `json:"columns"`
	Rows    []LedgerRow `json:"rows"`
}

// NewLedgerTable builds a table from a header and positional records.
// Short records are padded with empty cells.
func NewLedgerTable(columns []string, records [][]string) LedgerTable {
	rows := make([]LedgerRow, 0, len(records))
	for i, record := range records {
		values := make(map[string]string, len(columns))
		for j, col := range columns {
			if j < len(record) {
				values[col] = record[j]
			} else {
				values[col] = ""
			}
		}
		rows = append(rows, LedgerRow{Index: i, Values: values})
	}

	cols := make([]string, len(columns))
	copy(cols, columns)
	return LedgerTable{Columns: cols, Rows: rows}
}

func (t LedgerTable) Len() int {
	return len(t.Rows)
}

func (t LedgerTable) IsEmpty() bool {
	return len(t.Rows) == 0
}

// HasColumn reports whether the schema contains the named column.
func (t LedgerTable) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Subset returns a table with the same schema and the given rows.
func (t LedgerTable) Subset(rows []LedgerRow) LedgerTable {
	cols := make([]string, len(t.Columns))
	copy(cols, t.Columns)
	if rows == nil {
		rows = []LedgerRow{}
	}
	return LedgerTable{Columns: cols, Rows: rows}
}

// Filter keeps the rows for which keep returns true.
func (t LedgerTable) Filter(keep func(LedgerRow) bool) LedgerTable {
	var rows []LedgerRow
	for _, r := range t.Rows {
		if keep(r) {
			rows = append(rows, r)
		}
	}
	return t.Subset(rows)
}

// Head returns at most n rows, for previews.
func (t LedgerTable) Head(n int) LedgerTable {
	if n < 0 || n >= len(t.Rows) {
		return t.Subset(t.Rows)
	}
	return t.Subset(t.Rows[:n])
}
