package handlers

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"firequote/models"
	"firequote/quote"
	"firequote/services"
)

// quoteView is the quote state plus the formatted totals.
type quoteView struct {
	quote.State
	Labels map[string]string `json:"labels"`
}

func newQuoteView(st quote.State) quoteView {
	return quoteView{
		State: st,
		Labels: map[string]string{
			"subtotal": services.FormatAUD(st.Totals.Subtotal),
			"gst":      services.FormatAUD(st.Totals.GST),
			"total":    services.FormatAUD(st.Totals.Total),
		},
	}
}

// HandleQuoteState returns the working quote.
func HandleQuoteState(s *quote.Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, newQuoteView(s.Snapshot()))
	}
}

type addItemRequest struct {
	EquipmentID int `json:"equipmentId"`
}

// HandleAddItem adds one unit of an equipment id to the quote.
func HandleAddItem(s *quote.Session, logger *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req addItemRequest
		if err := e.BindBody(&req); err != nil {
			return ErrorToast(e, logger, http.StatusBadRequest, "Invalid request body")
		}
		item, ok := s.AddItem(req.EquipmentID)
		if !ok {
			return ErrorToast(e, logger, http.StatusNotFound, "Equipment not found")
		}
		return e.JSON(http.StatusOK, map[string]any{
			"item":  item,
			"quote": newQuoteView(s.Snapshot()),
		})
	}
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// HandleSetQuantity changes a line quantity. Zero or less removes the line.
func HandleSetQuantity(s *quote.Session, logger *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, err := pathInt(e, "equipmentId")
		if err != nil {
			return apiError(e, http.StatusBadRequest, err.Error())
		}
		var req setQuantityRequest
		if err := e.BindBody(&req); err != nil {
			return ErrorToast(e, logger, http.StatusBadRequest, "Invalid request body")
		}
		if !s.SetQuantity(id, req.Quantity) {
			return apiError(e, http.StatusNotFound, "Item not in quote")
		}
		return e.JSON(http.StatusOK, newQuoteView(s.Snapshot()))
	}
}

// clientResponse carries the stored client with its field errors. Invalid
// input is still stored so the form keeps what was typed.
type clientResponse struct {
	Client   models.ClientInfo `json:"client"`
	Complete bool              `json:"complete"`
	Errors   validation.Errors `json:"errors,omitempty"`
}

func newClientResponse(info models.ClientInfo) clientResponse {
	resp := clientResponse{Client: info, Complete: info.IsComplete()}
	var verrs validation.Errors
	if errors.As(info.Validate(), &verrs) {
		resp.Errors = verrs
	}
	return resp
}

// HandleSetClient replaces the client details being entered.
func HandleSetClient(s *quote.Session, logger *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var info models.ClientInfo
		if err := e.BindBody(&info); err != nil {
			return ErrorToast(e, logger, http.StatusBadRequest, "Invalid request body")
		}
		s.SetClient(info)
		return e.JSON(http.StatusOK, newClientResponse(info))
	}
}

// HandleSelectClient fills the client form from a saved client.
func HandleSelectClient(s *quote.Session, logger *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		info, ok := s.SelectClient(e.Request.PathValue("clientId"))
		if !ok {
			return ErrorToast(e, logger, http.StatusNotFound, "Client not found")
		}
		return e.JSON(http.StatusOK, newClientResponse(info))
	}
}

// HandleDraftRestore loads the offered draft into the quote.
func HandleDraftRestore(s *quote.Session, logger *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !s.RestoreDraft() {
			return ErrorToast(e, logger, http.StatusNotFound, "No draft to restore")
		}
		SetToast(e, logger, "success", "Draft restored")
		return e.JSON(http.StatusOK, newQuoteView(s.Snapshot()))
	}
}

// HandleDraftDiscard deletes the offered draft.
func HandleDraftDiscard(s *quote.Session, logger *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if !s.DiscardDraft() {
			return ErrorToast(e, logger, http.StatusNotFound, "No draft to discard")
		}
		return e.JSON(http.StatusOK, newQuoteView(s.Snapshot()))
	}
}

// HandleNewQuote starts over with an empty quote.
func HandleNewQuote(s *quote.Session, logger *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		s.NewQuote()
		SetToast(e, logger, "info", "Started a new quote")
		return e.JSON(http.StatusOK, newQuoteView(s.Snapshot()))
	}
}
