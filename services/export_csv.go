package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// GenerateCSV writes the quote as comma-separated rows: a key/value header
// block, the item table, then the totals.
func GenerateCSV(data ExportData) ([]byte, error) {
	c := data.Client
	address := c.Address
	if locality := joinNonEmpty(" ", c.Suburb, c.State, c.Postcode); locality != "" {
		address = joinNonEmpty(", ", c.Address, locality)
	}

	records := [][]string{
		{"Quote Number", data.QuoteNumber},
		{"Date", data.Date},
		{"Valid Until", data.ValidUntil},
		{"Client", sanitizeExcelCell(c.Name)},
		{"ABN", sanitizeExcelCell(c.ABN)},
		{"Address", sanitizeExcelCell(address)},
		{"Contact", sanitizeExcelCell(c.ContactPerson)},
		{"Email", sanitizeExcelCell(c.Email)},
		{"Phone", sanitizeExcelCell(c.Phone)},
		{},
		{"Description", "Quantity", "Unit Price", "Total Price"},
	}
	for _, r := range data.Rows {
		records = append(records, []string{
			sanitizeExcelCell(r.Description),
			fmt.Sprintf("%d", r.Qty),
			fmt.Sprintf("%.2f", r.UnitPrice),
			fmt.Sprintf("%.2f", r.TotalPrice),
		})
	}
	records = append(records,
		[]string{},
		[]string{"Subtotal", "", "", fmt.Sprintf("%.2f", data.Subtotal)},
		[]string{data.GSTLabel, "", "", fmt.Sprintf("%.2f", data.GST)},
		[]string{"Total", "", "", fmt.Sprintf("%.2f", data.Total)},
	)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}
