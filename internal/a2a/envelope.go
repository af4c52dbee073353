package a2a

import "time"

// Task is the result envelope wrapping an agent reply. ID echoes the
// request's message identifier and ContextID its task identifier; both are
// freshly generated when the request carried none.
type Task struct {
	ID        string     `json:"id"`
	ContextID string     `json:"contextId"`
	Status    TaskStatus `json:"status"`
	Artifacts []Artifact `json:"artifacts"`
	History   []Message  `json:"history"`
	Kind      string     `json:"kind"`
}

// TaskStatus carries the task state, a timestamp and the embedded agent
// message. State is always "completed" on this synchronous path; no partial
// or async states are modeled.
type TaskStatus struct {
	State     string  `json:"state"`
	Timestamp string  `json:"timestamp"`
	Message   Message `json:"message"`
}

// Artifact is a named output attached to a task.
type Artifact struct {
	ArtifactID string `json:"artifactId"`
	Name       string `json:"name"`
	Parts      []Part `json:"parts"`
}

// BuildEnvelope constructs a completed task envelope for a response text.
// The envelope is deterministic given its inputs except for the timestamp
// (current UTC time, ISO-8601) and the freshly generated message/artifact
// ids. The status message carries exactly one text part.
func BuildEnvelope(taskID, contextID, responseText string) *Task {
	messageID := NewID()
	parts := []Part{{Kind: "text", Text: responseText}}
	msg := Message{
		Kind:      "message",
		Role:      "agent",
		Parts:     parts,
		MessageID: messageID,
		TaskID:    &taskID,
	}
	return &Task{
		ID:        taskID,
		ContextID: contextID,
		Status: TaskStatus{
			State:     "completed",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Message:   msg,
		},
		Artifacts: []Artifact{{
			ArtifactID: NewID(),
			Name:       "assistantResponse",
			Parts:      parts,
		}},
		History: []Message{msg},
		Kind:    "task",
	}
}
