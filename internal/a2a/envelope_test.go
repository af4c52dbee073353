package a2a

import (
	"testing"
	"time"
)

func TestBuildEnvelope(t *testing.T) {
	task := BuildEnvelope("task-123", "ctx-456", "drink water")

	if task.ID != "task-123" {
		t.Errorf("id = %q, want task-123", task.ID)
	}
	if task.ContextID != "ctx-456" {
		t.Errorf("contextId = %q, want ctx-456", task.ContextID)
	}
	if task.Status.State != "completed" {
		t.Errorf("state = %q, want completed", task.Status.State)
	}
	if task.Kind != "task" {
		t.Errorf("kind = %q, want task", task.Kind)
	}
	if _, err := time.Parse(time.RFC3339, task.Status.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", task.Status.Timestamp, err)
	}

	msg := task.Status.Message
	if len(msg.Parts) != 1 {
		t.Fatalf("expected exactly one part, got %d", len(msg.Parts))
	}
	if msg.Parts[0].Kind != "text" || msg.Parts[0].Text != "drink water" {
		t.Errorf("part = %+v, want text part with response text", msg.Parts[0])
	}
	if msg.Role != "agent" || msg.Kind != "message" {
		t.Errorf("message role/kind = %q/%q", msg.Role, msg.Kind)
	}
	if msg.TaskID == nil || *msg.TaskID != "task-123" {
		t.Errorf("message taskId should echo the task id")
	}
	if msg.MessageID == "" {
		t.Error("message id must be generated")
	}

	if len(task.Artifacts) != 1 || task.Artifacts[0].Name != "assistantResponse" {
		t.Fatalf("expected one assistantResponse artifact, got %+v", task.Artifacts)
	}
	if len(task.History) != 1 {
		t.Fatalf("expected one history entry, got %d", len(task.History))
	}
}

func TestNewIDFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if len(id) != 36 {
			t.Fatalf("id %q has length %d, want 36", id, len(id))
		}
		if id[14] != '4' {
			t.Fatalf("id %q is not version 4", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
