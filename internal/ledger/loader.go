package ledger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"budget-ledger/internal/models"

	"github.com/xuri/excelize/v2"
)

var (
	ErrUnreadableWorkbook  = errors.New("workbook could not be read")
	ErrSheetNotFound       = errors.New("sheet not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

var supportedExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// CheckExtension rejects file names excelize cannot open.
func CheckExtension(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	if !supportedExtensions[ext] {
		return fmt.Errorf("%w: %q", ErrUnsupportedFileType, ext)
	}
	return nil
}

// Loader reads an accounting-system export into a LedgerTable. The first row of
// the sheet is the header; every following non-blank row is a record.
type Loader struct {
	sheetName string
}

// NewLoader returns a loader for the named sheet. An empty name selects the first sheet.
func NewLoader(sheetName string) *Loader {
	return &Loader{sheetName: sheetName}
}

func (l *Loader) LoadFile(path string) (models.LedgerTable, error) {
	if err := CheckExtension(path); err != nil {
		return models.LedgerTable{}, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.LedgerTable{}, fmt.Errorf("%w: %v", ErrUnreadableWorkbook, err)
	}
	defer f.Close()

	return l.read(f)
}

func (l *Loader) Load(r io.Reader) (models.LedgerTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return models.LedgerTable{}, fmt.Errorf("%w: %v", ErrUnreadableWorkbook, err)
	}
	defer f.Close()

	return l.read(f)
}

func (l *Loader) read(f *excelize.File) (models.LedgerTable, error) {
	sheet, err := l.selectSheet(f)
	if err != nil {
		return models.LedgerTable{}, err
	}

	// raw values keep amounts unformatted and dates as serials
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.LedgerTable{}, fmt.Errorf("%w: reading sheet %q: %v", ErrUnreadableWorkbook, sheet, err)
	}

	if len(rows) == 0 {
		return models.NewLedgerTable(nil, nil), nil
	}

	columns := headerColumns(rows[0])
	records := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		records = append(records, row)
	}

	slog.Debug("ledger loaded", "sheet", sheet, "columns", len(columns), "rows", len(records))
	return models.NewLedgerTable(columns, records), nil
}

func (l *Loader) selectSheet(f *excelize.File) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: no sheets found", ErrUnreadableWorkbook)
	}

	if l.sheetName == "" {
		return sheets[0], nil
	}

	for _, name := range sheets {
		if name == l.sheetName {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: %q (available: %s)", ErrSheetNotFound, l.sheetName, strings.Join(sheets, ", "))
}

// headerColumns trims header cells, names blank ones by position and suffixes duplicates.
func headerColumns(header []string) []string {
	columns := make([]string, len(header))
	seen := make(map[string]int, len(header))

	for i, cell := range header {
		name := strings.TrimSpace(cell)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n)
		} else {
			seen[name] = 1
		}
		columns[i] = name
	}
	return columns
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
