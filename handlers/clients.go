package handlers

import (
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"firequote/models"
	"firequote/quote"
	"firequote/services"
)

// ClientView is a saved client with its usage labels.
type ClientView struct {
	models.SavedClient
	UsageLabel    string `json:"usageLabel"`
	LastUsedLabel string `json:"lastUsedLabel"`
}

func clientViews(clients []models.SavedClient, now time.Time) []ClientView {
	out := make([]ClientView, 0, len(clients))
	for _, c := range clients {
		out = append(out, ClientView{
			SavedClient:   c,
			UsageLabel:    services.UsageLabel(c.UseCount),
			LastUsedLabel: services.LastUsedLabel(c.LastUsed, now),
		})
	}
	return out
}

// HandleClientSuggest returns saved clients matching ?q=, most used first.
func HandleClientSuggest(s *quote.Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		matches := s.Clients().Suggest(e.Request.URL.Query().Get("q"))
		return e.JSON(http.StatusOK, clientViews(matches, s.Now()))
	}
}

// HandleClientRecent returns the client directory, most recent first.
func HandleClientRecent(s *quote.Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, clientViews(s.Clients().Recent(), s.Now()))
	}
}
