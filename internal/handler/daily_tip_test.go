package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/health-tip-agent/internal/handler"
	"github.com/iliyamo/health-tip-agent/internal/model"
	"github.com/iliyamo/health-tip-agent/internal/service"
)

func newDailyTipServer(t *testing.T) (*echo.Echo, *memRecords) {
	t.Helper()
	rec := &memRecords{}
	svc := service.NewDelivery(fixtureStore(), rec, nil)
	e := echo.New()
	e.GET("/api/daily-tip", handler.NewDailyTipHandler(svc).Run)
	return e, rec
}

func TestDailyTipEvening(t *testing.T) {
	e, rec := newDailyTipServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/daily-tip?time=evening", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var sum model.DeliverySummary
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if sum.TimeSlot != model.SlotEvening {
		t.Errorf("time_slot = %q, want evening", sum.TimeSlot)
	}
	// The fixture has exactly one evening tip, so the pick is deterministic.
	if sum.Tip != "wind down before bed" {
		t.Errorf("tip = %q, want the evening-tagged tip", sum.Tip)
	}
	if len(rec.rows) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(rec.rows))
	}
	if rec.rows[0].Channel != model.ChannelScheduled || rec.rows[0].TimeSlot != model.SlotEvening {
		t.Errorf("record = %+v", rec.rows[0])
	}
}

func TestDailyTipInvalidSlot(t *testing.T) {
	for _, slot := range []string{"midnight", ""} {
		e, rec := newDailyTipServer(t)
		req := httptest.NewRequest(http.MethodGet, "/api/daily-tip?time="+slot, nil)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("slot %q: expected 400, got %d", slot, w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("error body is not JSON: %v", err)
		}
		if body["error"] == "" {
			t.Error("expected a JSON error body")
		}
		if len(rec.rows) != 0 {
			t.Errorf("slot %q: rejected request must not write records, got %d", slot, len(rec.rows))
		}
	}
}

func TestRandomTipEndpoint(t *testing.T) {
	e := echo.New()
	e.GET("/api/health-tip/", handler.NewTipHandler(fixtureStore()).RandomTip)

	req := httptest.NewRequest(http.MethodGet, "/api/health-tip/", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body["tip"] == "" || body["timestamp"] == "" {
		t.Errorf("body = %v, want tip and timestamp", body)
	}
}

func TestListTipsEndpoint(t *testing.T) {
	e := echo.New()
	e.GET("/api/tips", handler.NewTipHandler(fixtureStore()).ListTips)

	req := httptest.NewRequest(http.MethodGet, "/api/tips", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Tips  []model.Tip `json:"tips"`
		Count int         `json:"count"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.Count != 3 || len(body.Tips) != 3 {
		t.Errorf("count = %d, tips = %d, want 3", body.Count, len(body.Tips))
	}
}
