package model

import "time"

// Event is an entry of the operation journal, appended in the same transaction as the operation
type Event struct {
	ID   uint64 `db:"id" json:"id"`
	OpID string `db:"op_id" json:"op_id"`
	Type string `db:"type" json:"type"`
	Data []byte `db:"data" json:"data"`

	AggregateType AggregateType `db:"aggregate_type" json:"aggregate_type"`
	AggregateKey  string        `db:"aggregate_key" json:"aggregate_key"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// AggregateType ...
type AggregateType int

const (
	// AggregateTypeCampaign ...
	AggregateTypeCampaign AggregateType = 1

	// AggregateTypeTreasury ...
	AggregateTypeTreasury AggregateType = 2

	// AggregateTypeCustody ...
	AggregateTypeCustody AggregateType = 3
)
