package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"firequote/quote"
	"firequote/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, `"`, "")
	return s
}

// HandleQuoteExport renders the quote in the {format} path value and sends
// it as a download. A successful export starts a new quote.
func HandleQuoteExport(s *quote.Session, logger *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		format, err := services.ParseFormat(e.Request.PathValue("format"))
		if err != nil {
			return apiError(e, http.StatusBadRequest, err.Error())
		}

		doc, err := s.Export(format)
		if errors.Is(err, quote.ErrEmptyQuote) {
			return ErrorToast(e, logger, http.StatusConflict, "Add at least one item before exporting")
		}
		if err != nil {
			logger.Error("export failed", zap.String("format", string(format)), zap.Error(err))
			return ErrorToast(e, logger, http.StatusInternalServerError,
				fmt.Sprintf("Failed to generate %s file", strings.ToUpper(string(format))))
		}

		e.Response.Header().Set("Content-Type", doc.ContentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, sanitizeFilename(doc.FileName)))
		e.Response.WriteHeader(http.StatusOK)
		_, err = e.Response.Write(doc.Content)
		return err
	}
}
