package handler

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/health-tip-agent/internal/model"
	"github.com/iliyamo/health-tip-agent/internal/repository"
)

// DeliveryAdminHandler exposes the delivery log to operators. Read-only:
// records are append-only and retention is handled outside the application.
type DeliveryAdminHandler struct {
	Deliveries *repository.DeliveryRepo
}

func NewDeliveryAdminHandler(d *repository.DeliveryRepo) *DeliveryAdminHandler {
	return &DeliveryAdminHandler{Deliveries: d}
}

// List handles GET /v1/deliveries?channel=&time_slot=&limit=&offset=,
// newest first.
func (h *DeliveryAdminHandler) List(c echo.Context) error {
	f := repository.DeliveryFilter{
		Channel:  c.QueryParam("channel"),
		TimeSlot: c.QueryParam("time_slot"),
		Limit:    50,
	}
	if f.Channel != "" && f.Channel != model.ChannelOnDemand && f.Channel != model.ChannelScheduled {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "channel must be on_demand or scheduled"})
	}
	if f.TimeSlot != "" && !model.ValidSlot(f.TimeSlot) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "time_slot must be one of morning, afternoon, evening"})
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "limit must be a positive integer"})
		}
		if n > 200 {
			n = 200
		}
		f.Limit = n
	}
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "offset must be a non-negative integer"})
		}
		f.Offset = n
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	list, err := h.Deliveries.List(ctx, f)
	if err != nil {
		log.Printf("deliveries: list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	total, err := h.Deliveries.Count(ctx)
	if err != nil {
		log.Printf("deliveries: count failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"deliveries": list,
		"count":      len(list),
		"total":      total,
	})
}
