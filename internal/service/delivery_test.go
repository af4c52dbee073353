package service

import (
	"context"
	"errors"
	"testing"

	"github.com/iliyamo/health-tip-agent/internal/model"
	"github.com/iliyamo/health-tip-agent/internal/queue"
	"github.com/iliyamo/health-tip-agent/internal/tips"
)

// memRecords is an in-memory DeliveryStore for tests.
type memRecords struct {
	rows []model.Delivery
}

func (m *memRecords) Create(_ context.Context, d *model.Delivery) error {
	d.ID = uint64(len(m.rows) + 1)
	m.rows = append(m.rows, *d)
	return nil
}

func testStore() *tips.Store {
	return tips.NewStore([]model.Tip{
		{Text: "stretch in the morning", Category: model.CategoryExercise, TimeSlot: model.SlotMorning},
		{Text: "wind down before bed", Category: model.CategorySleep, TimeSlot: model.SlotEvening},
		{Text: "drink water", Category: model.CategoryNutrition},
	}, true)
}

func TestRunScheduledInvalidSlot(t *testing.T) {
	rec := &memRecords{}
	svc := NewDelivery(testStore(), rec, nil)

	_, err := svc.RunScheduled(context.Background(), "midnight")
	if !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot, got %v", err)
	}
	if len(rec.rows) != 0 {
		t.Fatalf("invalid slot must not write a record, got %d", len(rec.rows))
	}
}

func TestRunScheduledWritesOneRecord(t *testing.T) {
	rec := &memRecords{}
	svc := NewDelivery(testStore(), rec, nil)

	sum, err := svc.RunScheduled(context.Background(), model.SlotEvening)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.TimeSlot != model.SlotEvening {
		t.Errorf("summary slot = %q", sum.TimeSlot)
	}
	if sum.Tip != "wind down before bed" {
		t.Errorf("expected the evening tip, got %q", sum.Tip)
	}
	if len(rec.rows) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(rec.rows))
	}
	row := rec.rows[0]
	if row.Channel != model.ChannelScheduled || row.TimeSlot != model.SlotEvening {
		t.Errorf("record = %+v", row)
	}
	if row.TipText != sum.Tip {
		t.Errorf("record tip %q does not match summary %q", row.TipText, sum.Tip)
	}
}

func TestRecordOnDemand(t *testing.T) {
	rec := &memRecords{}
	svc := NewDelivery(testStore(), rec, nil)

	tip := model.Tip{Text: "drink water", Category: model.CategoryNutrition}
	if err := svc.RecordOnDemand(context.Background(), tip, "ctx-1", "task-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.rows) != 1 {
		t.Fatalf("expected one record, got %d", len(rec.rows))
	}
	row := rec.rows[0]
	if row.Channel != model.ChannelOnDemand || row.ContextID != "ctx-1" || row.TaskID != "task-1" {
		t.Errorf("record = %+v", row)
	}
	if row.TimeSlot != "" {
		t.Errorf("on-demand record must not carry a slot, got %q", row.TimeSlot)
	}
}

func TestPublishFailureDoesNotFailDelivery(t *testing.T) {
	rec := &memRecords{}
	published := 0
	svc := NewDelivery(testStore(), rec, func(context.Context, queue.TipDeliveredEvent) error {
		published++
		return errors.New("broker down")
	})

	if _, err := svc.RunScheduled(context.Background(), model.SlotMorning); err != nil {
		t.Fatalf("publish failure must not fail the delivery: %v", err)
	}
	if published != 1 {
		t.Fatalf("expected one publish attempt, got %d", published)
	}
	if len(rec.rows) != 1 {
		t.Fatalf("expected record despite publish failure, got %d", len(rec.rows))
	}
}

func TestPublishEventCarriesDeliveryFields(t *testing.T) {
	rec := &memRecords{}
	var got queue.TipDeliveredEvent
	svc := NewDelivery(testStore(), rec, func(_ context.Context, ev queue.TipDeliveredEvent) error {
		got = ev
		return nil
	})

	if _, err := svc.RunScheduled(context.Background(), model.SlotMorning); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Channel != model.ChannelScheduled || got.TimeSlot != model.SlotMorning {
		t.Errorf("event = %+v", got)
	}
	if got.Tip != "stretch in the morning" || got.Category != model.CategoryExercise {
		t.Errorf("event tip/category = %q/%q", got.Tip, got.Category)
	}
}
