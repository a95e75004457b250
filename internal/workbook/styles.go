package workbook

import (
	"fmt"

	"budget-ledger/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	headerFill = "366092"
	totalFill  = "FFE6E6"
	titleFill  = "D9E2F3"
	totalFont  = "FF0000"
	titleFont  = "1F4E79"

	// builtin "#,##0"
	thousandsFormat = 3
)

var rateFormat = `0"%"`

type styles struct {
	header      int
	text        int
	number      int
	rate        int
	totalText   int
	totalNumber int
	totalRate   int
	title       int
	merged      int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func solidFill(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

type styleDef struct {
	target *int
	style  *excelize.Style
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	left := &excelize.Alignment{Horizontal: "left", Vertical: "center"}
	right := &excelize.Alignment{Horizontal: "right", Vertical: "center"}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	totalFontStyle := &excelize.Font{Bold: true, Color: totalFont}

	definitions := []styleDef{
		{&st.header, &excelize.Style{
			Border:    thinBorder(),
			Fill:      solidFill(headerFill),
			Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
			Alignment: center,
		}},
		{&st.text, &excelize.Style{Border: thinBorder(), Alignment: left}},
		{&st.number, &excelize.Style{Border: thinBorder(), Alignment: right, NumFmt: thousandsFormat}},
		{&st.rate, &excelize.Style{Border: thinBorder(), Alignment: center, CustomNumFmt: &rateFormat}},
		{&st.totalText, &excelize.Style{Border: thinBorder(), Alignment: left, Fill: solidFill(totalFill), Font: totalFontStyle}},
		{&st.totalNumber, &excelize.Style{Border: thinBorder(), Alignment: right, Fill: solidFill(totalFill), Font: totalFontStyle, NumFmt: thousandsFormat}},
		{&st.totalRate, &excelize.Style{Border: thinBorder(), Alignment: center, Fill: solidFill(totalFill), Font: totalFontStyle, CustomNumFmt: &rateFormat}},
		{&st.title, &excelize.Style{
			Border:    thinBorder(),
			Fill:      solidFill(titleFill),
			Font:      &excelize.Font{Bold: true, Color: titleFont},
			Alignment: center,
		}},
		{&st.merged, &excelize.Style{Border: thinBorder(), Alignment: center}},
	}

	for _, def := range definitions {
		id, err := f.NewStyle(def.style)
		if err != nil {
			return styles{}, fmt.Errorf("failed to create workbook style: %w", err)
		}
		*def.target = id
	}
	return st, nil
}

// rowStyles returns the label, amount and rate styles for a row kind.
func (s styles) rowStyles(kind models.RowKind) (text, number, rate int) {
	if kind == models.RowKindTotal {
		return s.totalText, s.totalNumber, s.totalRate
	}
	return s.text, s.number, s.rate
}
