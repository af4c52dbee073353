package handler

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/health-tip-agent/internal/a2a"
	"github.com/iliyamo/health-tip-agent/internal/model"
	"github.com/iliyamo/health-tip-agent/internal/service"
	"github.com/iliyamo/health-tip-agent/internal/tips"
)

// identityText answers "what is your name" style questions; every other
// strategy gets a tip wrapped in tipTemplate. Both are protocol-visible
// strings, so changes here change what chat clients display.
const (
	identityText = "I'm Health Buddy, your dedicated health and wellness assistant! I can help with nutrition, exercise, mental health, sleep, and preventive care."
	tipTemplate  = "Here's a health tip for you: %s"
)

// A2AHandler serves the chat-integration endpoint. Each valid request is
// classified, answered with a completed task envelope and logged as exactly
// one delivery record; malformed requests are rejected with a JSON-RPC
// error object and write nothing.
type A2AHandler struct {
	Store *tips.Store
	Svc   *service.Delivery
}

func NewA2AHandler(store *tips.Store, svc *service.Delivery) *A2AHandler {
	return &A2AHandler{Store: store, Svc: svc}
}

// Handle processes POST /api/a2a/health. JSON-RPC errors are returned with
// HTTP 200; the error object in the body is the failure signal.
func (h *A2AHandler) Handle(c echo.Context) error {
	var req a2a.Request
	if err := c.Bind(&req); err != nil {
		log.Printf("a2a: invalid JSON body: %v", err)
		return c.JSON(http.StatusOK, a2a.NewError(nil, a2a.CodeInvalidRequest, "Invalid Request", "body is not valid JSON"))
	}
	if req.JSONRPC != "2.0" {
		log.Printf("a2a: missing/unsupported jsonrpc version %q", req.JSONRPC)
		return c.JSON(http.StatusOK, a2a.NewError(req.ID, a2a.CodeInvalidRequest, "Invalid Request", "jsonrpc must be \"2.0\""))
	}
	if req.Method == "" {
		log.Printf("a2a: missing method (id=%v)", req.ID)
		return c.JSON(http.StatusOK, a2a.NewError(req.ID, a2a.CodeInvalidRequest, "Invalid Request", "method is required"))
	}

	var text, taskID, contextID string
	switch req.Method {
	case a2a.MethodMessageSend:
		msg := req.Params.Message
		if msg == nil || len(msg.Parts) == 0 {
			log.Printf("a2a: message/send without message parts (id=%v)", req.ID)
			return c.JSON(http.StatusOK, a2a.NewError(req.ID, a2a.CodeInvalidParams, "Invalid params", "params.message.parts is required"))
		}
		text = collectText(msg.Parts)
		// Envelope id echoes the message id, contextId echoes the task id;
		// fresh ids are generated when the request carried none.
		taskID = msg.MessageID
		if msg.TaskID != nil {
			contextID = *msg.TaskID
		}
	case a2a.MethodExecute:
		if len(req.Params.Messages) == 0 {
			log.Printf("a2a: execute without messages (id=%v)", req.ID)
			return c.JSON(http.StatusOK, a2a.NewError(req.ID, a2a.CodeInvalidParams, "Invalid params", "params.messages is required"))
		}
		var b strings.Builder
		for _, m := range req.Params.Messages {
			b.WriteString(collectText(m.Parts))
		}
		text = b.String()
		taskID = req.Params.TaskID
		contextID = req.Params.ContextID
	default:
		log.Printf("a2a: unknown method %q (id=%v)", req.Method, req.ID)
		return c.JSON(http.StatusOK, a2a.NewError(req.ID, a2a.CodeMethodNotFound, "Method not found",
			fmt.Sprintf("unknown method %q; use %q or %q", req.Method, a2a.MethodMessageSend, a2a.MethodExecute)))
	}
	if taskID == "" {
		taskID = a2a.NewID()
	}
	if contextID == "" {
		contextID = a2a.NewID()
	}

	strategy := a2a.Classify(text)
	log.Printf("a2a: method=%s strategy=%s context=%s", req.Method, strategy, contextID)

	var delivered model.Tip
	if strategy == a2a.StrategyNameQuery {
		delivered = model.Tip{Text: identityText}
	} else {
		tip, err := h.Store.PickRandom("")
		if err != nil {
			log.Printf("a2a: tip store is empty (context=%s)", contextID)
			return c.JSON(http.StatusOK, a2a.NewError(req.ID, a2a.CodeInternal, "Internal error", "no tips configured"))
		}
		delivered = model.Tip{Text: fmt.Sprintf(tipTemplate, tip.Text), Category: tip.Category}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Svc.RecordOnDemand(ctx, delivered, contextID, taskID); err != nil {
		log.Printf("a2a: record delivery failed (context=%s): %v", contextID, err)
		return c.JSON(http.StatusOK, a2a.NewError(req.ID, a2a.CodeInternal, "Internal error", "failed to record delivery"))
	}

	task := a2a.BuildEnvelope(taskID, contextID, delivered.Text)
	return c.JSON(http.StatusOK, a2a.NewResult(req.ID, task))
}

// collectText concatenates all text-kind parts in order.
func collectText(parts []a2a.Part) string {
	var b strings.Builder
	for _, p := range parts {
		if p.Kind == "text" {
			b.WriteString(p.Text)
		}
	}
	return strings.TrimSpace(b.String())
}
