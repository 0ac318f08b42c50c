package services

import (
	"fmt"
	"strings"

	"firequote/models"
)

// ExportRow is one priced line of an exported quote.
type ExportRow struct {
	Index       string
	Description string
	Qty         int
	Unit        string
	UnitPrice   float64
	TotalPrice  float64
}

// ExportData holds everything a document generator prints.
type ExportData struct {
	Title        string
	QuoteNumber  string
	Date         string
	ValidUntil   string
	CompanyLines []string
	Client       models.ClientInfo
	ClientLines  []string
	Rows         []ExportRow
	Subtotal     float64
	GST          float64
	Total        float64
	GSTLabel     string
	Terms        []string
	Footer       string
}

// placeholderCompanyLines are printed until company settings are configured.
var placeholderCompanyLines = []string{
	"[COMPANY NAME]",
	"[COMPANY ADDRESS]",
	"ABN: [COMPANY ABN]",
	"Phone: [COMPANY PHONE]",
}

// BuildExportData flattens a finalized quote into printable lines.
func BuildExportData(q models.Quote) ExportData {
	rows := make([]ExportRow, 0, len(q.Items))
	for i, item := range q.Items {
		rows = append(rows, ExportRow{
			Index:       fmt.Sprintf("%d", i+1),
			Description: item.Equipment.Name,
			Qty:         item.Quantity,
			Unit:        item.Equipment.Unit,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return ExportData{
		Title:        "QUOTATION",
		QuoteNumber:  q.Number,
		Date:         FormatDate(q.CreatedAt),
		ValidUntil:   FormatDate(q.ValidUntil),
		CompanyLines: companyLines(q.Company),
		Client:       q.ClientInfo,
		ClientLines:  clientLines(q.ClientInfo),
		Rows:         rows,
		Subtotal:     q.Subtotal,
		GST:          q.GST,
		Total:        q.Total,
		GSTLabel:     fmt.Sprintf("GST (%s)", FormatPercent(q.GSTRate)),
		Terms:        terms(q.Company),
		Footer:       footer(q.Company),
	}
}

func companyLines(c *models.CompanySettings) []string {
	if c == nil || strings.TrimSpace(c.CompanyName) == "" {
		return placeholderCompanyLines
	}
	lines := []string{c.CompanyName}
	if c.TradingName != "" && c.TradingName != c.CompanyName {
		lines = append(lines, "Trading as "+c.TradingName)
	}
	if c.Address.Street != "" {
		lines = append(lines, c.Address.Street)
	}
	if locality := joinNonEmpty(" ", c.Address.Suburb, c.Address.State, c.Address.Postcode); locality != "" {
		lines = append(lines, locality)
	}
	if c.ABN != "" {
		lines = append(lines, "ABN: "+c.ABN)
	}
	if c.Phone != "" {
		lines = append(lines, "Phone: "+c.Phone)
	}
	if c.Email != "" {
		lines = append(lines, "Email: "+c.Email)
	}
	return lines
}

func clientLines(c models.ClientInfo) []string {
	lines := []string{c.Name}
	if c.ABN != "" {
		lines = append(lines, "ABN: "+c.ABN)
	}
	lines = append(lines,
		c.Address,
		joinNonEmpty(" ", c.Suburb, c.State, c.Postcode),
		"Contact: "+c.ContactPerson,
		"Email: "+c.Email,
		"Phone: "+c.Phone,
	)
	return lines
}

func terms(c *models.CompanySettings) []string {
	days := c.ValidityDays()
	validity := fmt.Sprintf("This quote is valid for %d days from the date of issue.", days)
	if c == nil || (c.PaymentTerms == "" && c.TermsAndConditions == "") {
		return []string{
			"Terms: Payment due within 30 days. GST included where applicable.",
			validity,
		}
	}
	var lines []string
	if c.PaymentTerms != "" {
		lines = append(lines, "Payment terms: "+c.PaymentTerms)
	}
	lines = append(lines, validity)
	for _, l := range strings.Split(c.TermsAndConditions, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func footer(c *models.CompanySettings) string {
	if c == nil {
		return ""
	}
	return c.FooterText
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
