package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	mutedColor  = &props.Color{Red: 80, Green: 80, Blue: 80}
	footerColor = &props.Color{Red: 140, Green: 140, Blue: 140}
)

// GeneratePDF creates a quotation PDF from export data using maroto/v2.
// It returns the raw PDF bytes or an error.
func GeneratePDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, data)
	addParties(m, data)
	addTableHeader(m)
	for _, r := range data.Rows {
		addTableRow(m, r)
	}
	addSummary(m, data)
	addTerms(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addHeader adds the title, the company block and the quote reference.
func addHeader(m core.Maroto, data ExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  20,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	refLines := []string{
		"Quote Number: " + data.QuoteNumber,
		"Date: " + data.Date,
		"Valid Until: " + data.ValidUntil,
	}
	for i := 0; i < max(len(data.CompanyLines), len(refLines)); i++ {
		left, right := "", ""
		if i < len(data.CompanyLines) {
			left = data.CompanyLines[i]
		}
		if i < len(refLines) {
			right = refLines[i]
		}
		style := props.Text{Size: 10, Align: align.Left}
		if i == 0 {
			style.Style = fontstyle.Bold
		}
		m.AddRows(
			row.New(5).Add(
				col.New(7).Add(text.New(left, style)),
				col.New(5).Add(text.New(right, props.Text{
					Size:  9,
					Align: align.Right,
					Color: mutedColor,
				})),
			),
		)
	}

	m.AddRows(row.New(6))
}

// addParties adds the "Quote For" client block.
func addParties(m core.Maroto, data ExportData) {
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("Quote For:", props.Text{
				Size:  11,
				Style: fontstyle.Bold,
			})),
		),
	)
	for _, line := range data.ClientLines {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(text.New(line, props.Text{Size: 10})),
			),
		)
	}
	m.AddRows(row.New(6))
}

// addTableHeader adds the column header row for the items table.
func addTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(5).Add(text.New("Description", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Unit", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(&headerCell),
		),
	)
}

// addTableRow adds a single priced line to the items table.
func addTableRow(m core.Maroto, r ExportRow) {
	baseText := props.Text{Size: 9, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(r.Index, baseText)),
			col.New(5).Add(text.New(r.Description, leftText)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Qty), rightText)),
			col.New(1).Add(text.New(r.Unit, baseText)),
			col.New(2).Add(text.New(FormatAUD(r.UnitPrice), rightText)),
			col.New(2).Add(text.New(FormatAUD(r.TotalPrice), rightText)),
		),
	)
}

// addSummary adds subtotal, GST and total below the table.
func addSummary(m core.Maroto, data ExportData) {
	m.AddRows(row.New(6))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	labelStyle := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}

	lines := []struct {
		label string
		value float64
	}{
		{"Subtotal", data.Subtotal},
		{data.GSTLabel, data.GST},
		{"Total", data.Total},
	}
	for i, l := range lines {
		label, value := labelStyle, valueStyle
		if i == len(lines)-1 {
			label.Size, value.Size = 12, 12
		}
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(l.label, label)).WithStyle(summaryCell),
				col.New(4).Add(text.New(FormatAUD(l.value), value)).WithStyle(summaryCell),
			),
		)
	}
}

// addTerms adds the terms lines and the optional footer text.
func addTerms(m core.Maroto, data ExportData) {
	m.AddRows(row.New(10))
	small := props.Text{Size: 8, Align: align.Left, Color: footerColor}
	for _, line := range data.Terms {
		m.AddRows(row.New(5).Add(col.New(12).Add(text.New(line, small))))
	}
	if data.Footer != "" {
		m.AddRows(row.New(8).Add(col.New(12).Add(text.New(data.Footer, props.Text{
			Size:  9,
			Style: fontstyle.Italic,
			Align: align.Center,
			Color: footerColor,
		}))))
	}
}
