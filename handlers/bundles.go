package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"firequote/models"
	"firequote/quote"
)

// HandleBundleList returns the bundle library, optionally narrowed with
// ?category=, together with the per-category counts.
func HandleBundleList(s *quote.Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category := e.Request.URL.Query().Get("category")
		if category == "all" {
			category = ""
		}
		return e.JSON(http.StatusOK, map[string]any{
			"bundles":    s.Bundles().List(models.BundleCategory(category)),
			"categories": s.Bundles().Categories(),
		})
	}
}

// HandleBundlePreview prices a bundle with ?override=<id>:<qty> values
// applied, without touching the quote.
func HandleBundlePreview(s *quote.Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		overrides, err := parseOverrides(e.Request)
		if err != nil {
			return apiError(e, http.StatusBadRequest, err.Error())
		}
		preview, ok := s.PreviewBundle(e.Request.PathValue("id"), overrides)
		if !ok {
			return apiError(e, http.StatusNotFound, "Bundle not found")
		}
		return e.JSON(http.StatusOK, preview)
	}
}

type applyBundleRequest struct {
	Overrides map[int]int `json:"overrides"`
}

// HandleApplyBundle merges a bundle into the quote.
func HandleApplyBundle(s *quote.Session, logger *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req applyBundleRequest
		if e.Request.ContentLength != 0 {
			if err := e.BindBody(&req); err != nil {
				return ErrorToast(e, logger, http.StatusBadRequest, "Invalid request body")
			}
		}

		id := e.Request.PathValue("id")
		res, ok := s.ApplyBundle(id, req.Overrides)
		if !ok {
			return ErrorToast(e, logger, http.StatusNotFound, "Bundle not found")
		}

		b, _ := s.Bundles().Find(id)
		SetToast(e, logger, "success", b.Name+" added to quote")
		return e.JSON(http.StatusOK, map[string]any{
			"result": res,
			"quote":  s.Snapshot(),
		})
	}
}
