package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"firequote/catalog"
	"firequote/models"
	"firequote/quote"
	"firequote/services"
)

// EquipmentView is a catalog entry with its quoted price and favourite flag.
type EquipmentView struct {
	models.Equipment
	UnitPrice  float64 `json:"unitPrice"`
	PriceLabel string  `json:"priceLabel"`
	Favorite   bool    `json:"favorite"`
}

// HandleEquipmentList returns the catalog filtered by ?q= and, with
// ?favorites=1, restricted to favourites. Favourites always sort first.
func HandleEquipmentList(s *quote.Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		q := e.Request.URL.Query()
		favs := s.Favorites()

		list := catalog.Search(s.Catalog().Equipment(), q.Get("q"))
		if q.Get("favorites") == "1" {
			list = favs.Filter(list)
		}
		list = favs.Sort(list)

		f := s.Formulas()
		out := make([]EquipmentView, 0, len(list))
		for _, eq := range list {
			price := services.UnitPrice(eq, f)
			out = append(out, EquipmentView{
				Equipment:  eq,
				UnitPrice:  price,
				PriceLabel: services.FormatAUD(price),
				Favorite:   favs.IsFavorite(eq.ID),
			})
		}
		return e.JSON(http.StatusOK, map[string]any{
			"equipment":      out,
			"favoritesCount": favs.Count(),
		})
	}
}

// HandleCategoryList returns the equipment categories.
func HandleCategoryList(s *quote.Session) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, s.Catalog().Categories())
	}
}

// HandleFavoriteToggle flips the favourite flag of an equipment id.
func HandleFavoriteToggle(s *quote.Session, logger *zap.Logger) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id, err := pathInt(e, "equipmentId")
		if err != nil {
			return ErrorToast(e, logger, http.StatusBadRequest, err.Error())
		}
		eq, ok := s.Lookup(id)
		if !ok {
			return ErrorToast(e, logger, http.StatusNotFound, "Equipment not found")
		}

		on := s.Favorites().Toggle(id)
		if on {
			SetToast(e, logger, "success", eq.Name+" added to favourites")
		} else {
			SetToast(e, logger, "info", eq.Name+" removed from favourites")
		}
		return e.JSON(http.StatusOK, map[string]any{
			"equipmentId": id,
			"favorite":    on,
			"count":       s.Favorites().Count(),
		})
	}
}
