package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// QuoteSheetName is the worksheet holding the quote.
const QuoteSheetName = "Quote"

// GenerateExcel creates a spreadsheet from the given ExportData and returns
// the file contents as a byte slice. Money cells hold numbers formatted as
// dollars so the sheet stays usable for further calculation.
func GenerateExcel(data ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, QuoteSheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	sheet := QuoteSheetName

	widths := map[string]float64{"A": 42, "B": 12, "C": 16, "D": 16}
	for col, w := range widths {
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create section style: %w", err)
	}

	// Column header style: bold, white text, charcoal background, centered.
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	moneyFmt := "$#,##0.00"
	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}
	itemMoneyStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Size: 10},
		Border:       thinBorders(),
		CustomNumFmt: &moneyFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("create item money style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}
	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 11},
		CustomNumFmt: &moneyFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	row := 1
	cell := func(col string) string { return fmt.Sprintf("%s%d", col, row) }
	pair := func(label string, value any) {
		f.SetCellValue(sheet, cell("A"), label)
		f.SetCellValue(sheet, cell("B"), value)
		row++
	}

	// ── Header ──────────────────────────────────────────────────────────

	if err := f.MergeCell(sheet, "A1", "D1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", data.Title)
	f.SetCellStyle(sheet, "A1", "D1", titleStyle)
	row += 2

	pair("Quote Number:", sanitizeExcelCell(data.QuoteNumber))
	pair("Date:", data.Date)
	pair("Valid Until:", data.ValidUntil)
	row++

	// ── Client block ────────────────────────────────────────────────────

	f.SetCellValue(sheet, cell("A"), "Client Information:")
	f.SetCellStyle(sheet, cell("A"), cell("A"), sectionStyle)
	row++
	c := data.Client
	pair("Company:", sanitizeExcelCell(c.Name))
	pair("ABN:", sanitizeExcelCell(c.ABN))
	pair("Address:", sanitizeExcelCell(c.Address))
	pair("Suburb:", sanitizeExcelCell(c.Suburb))
	pair("State:", sanitizeExcelCell(c.State))
	pair("Postcode:", sanitizeExcelCell(c.Postcode))
	pair("Contact:", sanitizeExcelCell(c.ContactPerson))
	pair("Email:", sanitizeExcelCell(c.Email))
	pair("Phone:", sanitizeExcelCell(c.Phone))
	row++

	// ── Items ───────────────────────────────────────────────────────────

	f.SetCellValue(sheet, cell("A"), "Items:")
	f.SetCellStyle(sheet, cell("A"), cell("A"), sectionStyle)
	row++

	headers := []string{"Description", "Quantity", "Unit Price", "Total Price"}
	for i, h := range headers {
		f.SetCellValue(sheet, fmt.Sprintf("%c%d", 'A'+i, row), h)
	}
	f.SetCellStyle(sheet, cell("A"), cell("D"), headerStyle)
	row++

	for _, r := range data.Rows {
		f.SetCellValue(sheet, cell("A"), sanitizeExcelCell(r.Description))
		f.SetCellValue(sheet, cell("B"), r.Qty)
		f.SetCellValue(sheet, cell("C"), r.UnitPrice)
		f.SetCellValue(sheet, cell("D"), r.TotalPrice)
		f.SetCellStyle(sheet, cell("A"), cell("B"), itemStyle)
		f.SetCellStyle(sheet, cell("C"), cell("D"), itemMoneyStyle)
		row++
	}
	row++

	// ── Summary ─────────────────────────────────────────────────────────

	summary := []struct {
		label string
		value float64
	}{
		{"Subtotal:", data.Subtotal},
		{data.GSTLabel + ":", data.GST},
		{"Total:", data.Total},
	}
	for _, s := range summary {
		f.SetCellValue(sheet, cell("A"), s.label)
		f.SetCellStyle(sheet, cell("A"), cell("A"), summaryLabelStyle)
		f.SetCellValue(sheet, cell("D"), s.value)
		f.SetCellStyle(sheet, cell("D"), cell("D"), summaryValueStyle)
		row++
	}

	// ── Write to buffer ─────────────────────────────────────────────────

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Spreadsheet apps interpret cells starting
// with =, +, -, @, \t or \r as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
