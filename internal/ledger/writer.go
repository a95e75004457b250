package ledger

import (
	"fmt"
	"io"
	"strconv"

	"budget-ledger/internal/models"

	"github.com/xuri/excelize/v2"
)

// SheetName is the sheet Write puts the ledger on.
const SheetName = "지출원장"

// Write renders a table as a single-sheet export that Loader reads back unchanged.
// Integer cells are stored as numbers the way the accounting system exports them.
func Write(w io.Writer, table models.LedgerTable) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("failed to name ledger sheet: %w", err)
	}

	header := make([]interface{}, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write ledger header: %w", err)
	}

	for i, row := range table.Rows {
		values := make([]interface{}, len(table.Columns))
		for j, col := range table.Columns {
			values[j] = cellValue(row.Get(col))
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write ledger row %d: %w", i+1, err)
		}
	}

	_, err := f.WriteTo(w)
	return err
}

func cellValue(v string) interface{} {
	if n, err := strconv.ParseInt(v, 10, 64); err == nil && strconv.FormatInt(n, 10) == v {
		return n
	}
	return v
}
