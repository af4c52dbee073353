package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/health-tip-agent/internal/tips"
)

// TipHandler serves the plain, unauthenticated tip endpoints. It reads only
// from the immutable tip store and writes no delivery records.
type TipHandler struct {
	Store *tips.Store
}

func NewTipHandler(store *tips.Store) *TipHandler { return &TipHandler{Store: store} }

// RandomTip returns one uniformly random tip with a timestamp. No time-slot
// conditioning and no protocol envelope.
func (h *TipHandler) RandomTip(c echo.Context) error {
	tip, err := h.Store.PickRandom("")
	if err != nil {
		log.Printf("health-tip: pick failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no tips configured"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"tip":       tip.Text,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ListTips returns the full tip list. The response is immutable for the
// process lifetime, which is what makes this route safe to cache.
func (h *TipHandler) ListTips(c echo.Context) error {
	list := h.Store.All()
	return c.JSON(http.StatusOK, echo.Map{
		"tips":  list,
		"count": len(list),
	})
}
