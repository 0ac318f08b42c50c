package handlers

import (
	"encoding/json"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

// SetToast sets the HX-Trigger response header so an HTMX front end shows a
// toast notification. If an HX-Trigger header already exists, the toast
// payload is merged into the existing JSON object.
func SetToast(e *core.RequestEvent, logger *zap.Logger, toastType string, message string) {
	toast := map[string]string{"message": message, "type": toastType}

	merged := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &merged); err != nil {
			logger.Warn("existing HX-Trigger is not valid JSON, overwriting", zap.Error(err))
			merged = map[string]any{}
		}
	}
	merged["showToast"] = toast

	data, err := json.Marshal(merged)
	if err != nil {
		logger.Error("failed to marshal HX-Trigger JSON", zap.Error(err))
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))
}

// ErrorToast sets an error toast and responds with a JSON error body.
// HX-Reswap: none keeps HTMX from swapping the error into the page.
func ErrorToast(e *core.RequestEvent, logger *zap.Logger, statusCode int, message string) error {
	SetToast(e, logger, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return apiError(e, statusCode, message)
}
