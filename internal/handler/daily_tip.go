package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/health-tip-agent/internal/service"
	"github.com/iliyamo/health-tip-agent/internal/tips"
)

// DailyTipHandler exposes the scheduled delivery flow over HTTP so it can
// be triggered on demand with an explicit ?time= slot. The background timer
// calls the same service method directly.
type DailyTipHandler struct {
	Svc *service.Delivery
}

func NewDailyTipHandler(svc *service.Delivery) *DailyTipHandler { return &DailyTipHandler{Svc: svc} }

// Run handles GET /api/daily-tip?time={morning|afternoon|evening}. An
// unrecognized slot is rejected with 400 before anything is written.
func (h *DailyTipHandler) Run(c echo.Context) error {
	slot := c.QueryParam("time")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	summary, err := h.Svc.RunScheduled(ctx, slot)
	switch {
	case errors.Is(err, service.ErrInvalidSlot):
		log.Printf("daily-tip: rejected invalid slot %q", slot)
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "time must be one of morning, afternoon, evening"})
	case errors.Is(err, tips.ErrEmptyStore):
		log.Printf("daily-tip: tip store is empty (slot=%s)", slot)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "no tips configured"})
	case err != nil:
		log.Printf("daily-tip: delivery failed (slot=%s): %v", slot, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delivery failed"})
	}
	return c.JSON(http.StatusOK, summary)
}
