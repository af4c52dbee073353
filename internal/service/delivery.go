// Package service implements the delivery flows shared by the HTTP handlers
// and the background scheduler. Handlers stay thin: slot validation, tip
// selection, the delivery-log insert and the outbound event all live here
// so the timer can fire the same logic as a plain function call.
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/iliyamo/health-tip-agent/internal/model"
	"github.com/iliyamo/health-tip-agent/internal/queue"
)

// ErrInvalidSlot is returned when a scheduled delivery is requested with a
// time slot outside {morning, afternoon, evening}. No record is written.
var ErrInvalidSlot = errors.New("invalid time slot")

// TipPicker selects tips. Implemented by *tips.Store.
type TipPicker interface {
	PickRandom(slot string) (model.Tip, error)
}

// DeliveryStore appends delivery records. Implemented by
// *repository.DeliveryRepo; tests substitute an in-memory fake.
type DeliveryStore interface {
	Create(ctx context.Context, d *model.Delivery) error
}

// Delivery bundles the dependencies of both delivery paths. Publish is
// optional; when nil no outbound event is sent (e.g. no broker configured).
type Delivery struct {
	Tips    TipPicker
	Records DeliveryStore
	Publish func(ctx context.Context, ev queue.TipDeliveredEvent) error
}

func NewDelivery(t TipPicker, r DeliveryStore, publish func(context.Context, queue.TipDeliveredEvent) error) *Delivery {
	return &Delivery{Tips: t, Records: r, Publish: publish}
}

// RunScheduled performs one scheduled delivery for the given slot: pick a
// slot-appropriate tip, append a delivery record, announce it outbound.
// The outbound call is fire-and-forget; a failure is logged and the next
// firing is unaffected.
func (s *Delivery) RunScheduled(ctx context.Context, slot string) (model.DeliverySummary, error) {
	if !model.ValidSlot(slot) {
		return model.DeliverySummary{}, ErrInvalidSlot
	}
	tip, err := s.Tips.PickRandom(slot)
	if err != nil {
		return model.DeliverySummary{}, err
	}
	now := time.Now().UTC()
	rec := &model.Delivery{
		TipText:     tip.Text,
		DeliveredAt: now,
		Channel:     model.ChannelScheduled,
		TimeSlot:    slot,
	}
	if err := s.Records.Create(ctx, rec); err != nil {
		return model.DeliverySummary{}, err
	}
	s.announce(ctx, tip, model.ChannelScheduled, slot, "", now)
	return model.DeliverySummary{Tip: tip.Text, TimeSlot: slot, Timestamp: now}, nil
}

// RecordOnDemand appends a delivery record for a tip returned over the A2A
// endpoint and announces it outbound.
func (s *Delivery) RecordOnDemand(ctx context.Context, tip model.Tip, contextID, taskID string) error {
	now := time.Now().UTC()
	rec := &model.Delivery{
		TipText:     tip.Text,
		DeliveredAt: now,
		Channel:     model.ChannelOnDemand,
		ContextID:   contextID,
		TaskID:      taskID,
	}
	if err := s.Records.Create(ctx, rec); err != nil {
		return err
	}
	s.announce(ctx, tip, model.ChannelOnDemand, "", contextID, now)
	return nil
}

func (s *Delivery) announce(ctx context.Context, tip model.Tip, channel, slot, contextID string, at time.Time) {
	if s.Publish == nil {
		return
	}
	ev := queue.TipDeliveredEvent{
		Tip:         tip.Text,
		Category:    tip.Category,
		Channel:     channel,
		TimeSlot:    slot,
		ContextID:   contextID,
		DeliveredAt: at.Format(time.RFC3339),
	}
	if err := s.Publish(ctx, ev); err != nil {
		log.Printf("delivery: outbound publish failed (channel=%s slot=%s): %v", channel, slot, err)
	}
}
