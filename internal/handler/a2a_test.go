package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/health-tip-agent/internal/a2a"
	"github.com/iliyamo/health-tip-agent/internal/handler"
	"github.com/iliyamo/health-tip-agent/internal/model"
	"github.com/iliyamo/health-tip-agent/internal/service"
	"github.com/iliyamo/health-tip-agent/internal/tips"
)

// memRecords is an in-memory delivery store used instead of MySQL.
type memRecords struct {
	rows []model.Delivery
}

func (m *memRecords) Create(_ context.Context, d *model.Delivery) error {
	d.ID = uint64(len(m.rows) + 1)
	m.rows = append(m.rows, *d)
	return nil
}

func fixtureStore() *tips.Store {
	return tips.NewStore([]model.Tip{
		{Text: "stretch in the morning", Category: model.CategoryExercise, TimeSlot: model.SlotMorning},
		{Text: "wind down before bed", Category: model.CategorySleep, TimeSlot: model.SlotEvening},
		{Text: "drink water", Category: model.CategoryNutrition},
	}, true)
}

func newA2AServer(t *testing.T) (*echo.Echo, *memRecords) {
	t.Helper()
	store := fixtureStore()
	rec := &memRecords{}
	svc := service.NewDelivery(store, rec, nil)
	e := echo.New()
	e.POST("/api/a2a/health", handler.NewA2AHandler(store, svc).Handle)
	return e, rec
}

func postA2A(t *testing.T, e *echo.Echo, body string) a2a.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/a2a/health", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}
	var resp a2a.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	return resp
}

func TestMessageSendEchoesIdentifiers(t *testing.T) {
	e, rec := newA2AServer(t)
	resp := postA2A(t, e, `{
		"jsonrpc": "2.0",
		"id": "req-1",
		"method": "message/send",
		"params": {"message": {
			"parts": [{"kind": "text", "text": "give me a tip"}],
			"messageId": "msg-42",
			"taskId": "task-7"
		}}
	}`)

	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	if resp.ID != "req-1" {
		t.Errorf("response id = %v, want req-1", resp.ID)
	}
	if resp.Result.ID != "msg-42" {
		t.Errorf("result.id = %q, want msg-42", resp.Result.ID)
	}
	if resp.Result.ContextID != "task-7" {
		t.Errorf("result.contextId = %q, want task-7", resp.Result.ContextID)
	}
	if resp.Result.Status.State != "completed" {
		t.Errorf("state = %q", resp.Result.Status.State)
	}
	if len(rec.rows) != 1 {
		t.Fatalf("expected one delivery record, got %d", len(rec.rows))
	}
	if rec.rows[0].Channel != model.ChannelOnDemand || rec.rows[0].ContextID != "task-7" {
		t.Errorf("record = %+v", rec.rows[0])
	}
}

func TestGreetingDeliversTip(t *testing.T) {
	e, rec := newA2AServer(t)
	resp := postA2A(t, e, `{
		"jsonrpc": "2.0",
		"id": 5,
		"method": "message/send",
		"params": {"message": {"parts": [{"kind": "text", "text": "hi there"}]}}
	}`)

	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	parts := resp.Result.Status.Message.Parts
	if len(parts) != 1 || parts[0].Kind != "text" {
		t.Fatalf("expected exactly one text part, got %+v", parts)
	}
	if !strings.HasPrefix(parts[0].Text, "Here's a health tip for you: ") {
		t.Errorf("greeting should deliver a templated tip, got %q", parts[0].Text)
	}
	if len(rec.rows) != 1 {
		t.Fatalf("expected one delivery record, got %d", len(rec.rows))
	}
	// No ids supplied: both must be generated.
	if resp.Result.ID == "" || resp.Result.ContextID == "" {
		t.Error("missing generated identifiers")
	}
}

func TestNameQueryBeatsGreeting(t *testing.T) {
	e, _ := newA2AServer(t)
	resp := postA2A(t, e, `{
		"jsonrpc": "2.0",
		"id": 6,
		"method": "message/send",
		"params": {"message": {"parts": [{"kind": "text", "text": "hello, what is your name?"}]}}
	}`)

	text := resp.Result.Status.Message.Parts[0].Text
	if !strings.Contains(text, "Health Buddy") {
		t.Errorf("expected identity response, got %q", text)
	}
	if strings.HasPrefix(text, "Here's a health tip") {
		t.Errorf("name query must not be answered with a tip, got %q", text)
	}
}

func TestMultipleTextPartsAreConcatenated(t *testing.T) {
	e, _ := newA2AServer(t)
	resp := postA2A(t, e, `{
		"jsonrpc": "2.0",
		"id": 7,
		"method": "message/send",
		"params": {"message": {"parts": [
			{"kind": "text", "text": "what is "},
			{"kind": "data"},
			{"kind": "text", "text": "your name?"}
		]}}
	}`)

	text := resp.Result.Status.Message.Parts[0].Text
	if !strings.Contains(text, "Health Buddy") {
		t.Errorf("split name query not recognized, got %q", text)
	}
}

func TestExecuteMethod(t *testing.T) {
	e, rec := newA2AServer(t)
	resp := postA2A(t, e, `{
		"jsonrpc": "2.0",
		"id": "req-2",
		"method": "execute",
		"params": {
			"contextId": "ctx-9",
			"taskId": "task-9",
			"messages": [{"parts": [{"kind": "text", "text": "any advice?"}]}]
		}
	}`)

	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	if resp.Result.ID != "task-9" || resp.Result.ContextID != "ctx-9" {
		t.Errorf("result ids = %q/%q", resp.Result.ID, resp.Result.ContextID)
	}
	if len(rec.rows) != 1 {
		t.Fatalf("expected one delivery record, got %d", len(rec.rows))
	}
}

func TestMalformedRequests(t *testing.T) {
	cases := []struct {
		name string
		body string
		code int
	}{
		{"not json", `{"jsonrpc": `, a2a.CodeInvalidRequest},
		{"missing jsonrpc", `{"method": "message/send", "params": {"message": {"parts": [{"kind":"text","text":"hi"}]}}}`, a2a.CodeInvalidRequest},
		{"missing method", `{"jsonrpc": "2.0", "id": 1, "params": {}}`, a2a.CodeInvalidRequest},
		{"missing parts", `{"jsonrpc": "2.0", "id": 1, "method": "message/send", "params": {"message": {"messageId": "m1"}}}`, a2a.CodeInvalidParams},
		{"unknown method", `{"jsonrpc": "2.0", "id": 1, "method": "message/stream", "params": {}}`, a2a.CodeMethodNotFound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e, rec := newA2AServer(t)
			resp := postA2A(t, e, c.body)
			if resp.Error == nil {
				t.Fatalf("expected JSON-RPC error, got result %+v", resp.Result)
			}
			if resp.Result != nil {
				t.Error("error responses must not carry a result")
			}
			if resp.Error.Code != c.code {
				t.Errorf("code = %d, want %d", resp.Error.Code, c.code)
			}
			if len(rec.rows) != 0 {
				t.Errorf("rejected request must not write records, got %d", len(rec.rows))
			}
		})
	}
}
