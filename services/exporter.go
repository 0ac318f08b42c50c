package services

import (
	"fmt"
	"strings"

	"firequote/models"
)

// Format names a downloadable document type.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "xlsx"
	FormatCSV   Format = "csv"
)

// ParseFormat maps a user supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return FormatPDF, nil
	case "xlsx", "excel":
		return FormatExcel, nil
	case "csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatExcel:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	}
	return "application/octet-stream"
}

// Document is a rendered quote ready to be written to a response or a file.
type Document struct {
	FileName    string
	ContentType string
	Content     []byte
}

// DocumentExporter renders quotes with the built-in generators.
type DocumentExporter struct{}

// Export renders q in the requested format.
func (DocumentExporter) Export(format Format, q models.Quote) (Document, error) {
	data := BuildExportData(q)

	var (
		content []byte
		err     error
	)
	switch format {
	case FormatPDF:
		content, err = GeneratePDF(data)
	case FormatExcel:
		content, err = GenerateExcel(data)
	case FormatCSV:
		content, err = GenerateCSV(data)
	default:
		return Document{}, fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		return Document{}, fmt.Errorf("export %s: %w", format, err)
	}

	return Document{
		FileName:    fmt.Sprintf("Quote-%s.%s", q.Number, format),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}
