package repository

import (
	"context"

	"github.com/QuangTung97/crowd-escrow/model"
)

// Event ...
type Event interface {
	InsertEvent(ctx context.Context, event model.Event) error
	FindEventsByAggregate(ctx context.Context, aggregateType model.AggregateType, key string) ([]model.Event, error)
}

type eventImpl struct {
}

// NewEvent ...
func NewEvent() Event {
	return &eventImpl{}
}

// InsertEvent ...
func (e *eventImpl) InsertEvent(ctx context.Context, event model.Event) error {
	query := `
INSERT INTO event (op_id, type, data, aggregate_type, aggregate_key, created_at)
VALUES (:op_id, :type, :data, :aggregate_type, :aggregate_key, :created_at)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, event)
	return err
}

// FindEventsByAggregate returns events in insertion order
func (e *eventImpl) FindEventsByAggregate(
	ctx context.Context, aggregateType model.AggregateType, key string,
) ([]model.Event, error) {
	query := `
SELECT id, op_id, type, data, aggregate_type, aggregate_key, created_at
FROM event
WHERE aggregate_type = ? AND aggregate_key = ?
ORDER BY id
`
	var result []model.Event
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, aggregateType, key)
	return result, err
}
