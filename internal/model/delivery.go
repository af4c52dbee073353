package model

import "time"

// Delivery channels. A record is written for every tip handed out, whether
// it was requested over the A2A endpoint or pushed by the scheduler.
const (
	ChannelOnDemand  = "on_demand"
	ChannelScheduled = "scheduled"
)

// Delivery mirrors one row of the 'deliveries' table. Rows are append-only:
// the application never updates or deletes them after creation.
type Delivery struct {
	ID          uint64    `json:"id"`
	TipText     string    `json:"tip_text"`
	DeliveredAt time.Time `json:"delivered_at"`
	Channel     string    `json:"channel"`
	TimeSlot    string    `json:"time_slot,omitempty"`
	ContextID   string    `json:"context_id,omitempty"`
	TaskID      string    `json:"task_id,omitempty"`
}

// DeliverySummary is the response body for a scheduled delivery trigger.
type DeliverySummary struct {
	Tip       string    `json:"tip"`
	TimeSlot  string    `json:"time_slot"`
	Timestamp time.Time `json:"timestamp"`
}
