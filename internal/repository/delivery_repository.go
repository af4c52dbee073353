package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/health-tip-agent/internal/model"
)

// DeliveryRepo appends and reads rows of the 'deliveries' table. The table
// is append-only: one insert per tip handed out, never updated or deleted
// by the application. Timestamps are stored in UTC.
type DeliveryRepo struct{ DB *sql.DB }

func NewDeliveryRepo(db *sql.DB) *DeliveryRepo { return &DeliveryRepo{DB: db} }

// Create inserts a delivery row and populates the generated ID. Optional
// fields (time_slot, context_id, task_id) are stored as NULL when empty.
func (r *DeliveryRepo) Create(ctx context.Context, d *model.Delivery) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO deliveries (tip_text, delivered_at, channel, time_slot, context_id, task_id) VALUES (?,?,?,?,?,?)",
		d.TipText, d.DeliveredAt.UTC(), d.Channel,
		nullStr(d.TimeSlot), nullStr(d.ContextID), nullStr(d.TaskID))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = uint64(id)
	return nil
}

// Count returns the total number of delivery rows.
func (r *DeliveryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM deliveries").Scan(&n)
	return n, err
}

// DeliveryFilter narrows a List call. Zero values mean "no filter"; Limit
// is clamped by the handler, not here.
type DeliveryFilter struct {
	Channel  string
	TimeSlot string
	Limit    int
	Offset   int
}

// List returns delivery rows newest first, optionally filtered by channel
// and time slot.
func (r *DeliveryRepo) List(ctx context.Context, f DeliveryFilter) ([]model.Delivery, error) {
	q := "SELECT id, tip_text, delivered_at, channel, time_slot, context_id, task_id FROM deliveries"
	args := []any{}
	where := ""
	if f.Channel != "" {
		where = " WHERE channel=?"
		args = append(args, f.Channel)
	}
	if f.TimeSlot != "" {
		if where == "" {
			where = " WHERE time_slot=?"
		} else {
			where += " AND time_slot=?"
		}
		args = append(args, f.TimeSlot)
	}
	q += where + " ORDER BY delivered_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, f.Limit, f.Offset)

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Delivery{}
	for rows.Next() {
		var (
			d                       model.Delivery
			slot, contextID, taskID sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.TipText, &d.DeliveredAt, &d.Channel, &slot, &contextID, &taskID); err != nil {
			return nil, err
		}
		d.TimeSlot = slot.String
		d.ContextID = contextID.String
		d.TaskID = taskID.String
		out = append(out, d)
	}
	return out, rows.Err()
}

// nullStr maps "" to NULL for optional VARCHAR columns.
func nullStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
