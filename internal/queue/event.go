// Package queue defines the message payloads exchanged over the broker and
// the background consumer that records them. Tip deliveries are announced
// on a durable queue so downstream integrations (chat webhooks, analytics)
// can react without querying the primary database.
package queue

// DeliveryQueueName is the durable queue tip delivery events are published to.
const DeliveryQueueName = "tip.delivered"

// TipDeliveredEvent is published after a tip delivery has been recorded.
type TipDeliveredEvent struct {
	Tip         string `json:"tip"`
	Category    string `json:"category"`
	Channel     string `json:"channel"`
	TimeSlot    string `json:"time_slot,omitempty"`
	ContextID   string `json:"context_id,omitempty"`
	DeliveredAt string `json:"delivered_at"`
}
