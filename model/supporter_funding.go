package model

import (
	"database/sql"
	"time"
)

// SupporterFundingSchemaVersion ...
const SupporterFundingSchemaVersion uint32 = 1

// SupporterFunding is the contribution of one supporter to one campaign.
// IsRefundClaimed and RewardClaimed are never both true.
type SupporterFunding struct {
	CampaignKey string    `db:"campaign_key" json:"campaign_key"`
	Supporter   string    `db:"supporter" json:"supporter"`
	Amount      uint64    `db:"amount" json:"amount"`
	FundedAt    time.Time `db:"funded_at" json:"funded_at"`

	IsRefundClaimed  bool           `db:"is_refund_claimed" json:"is_refund_claimed"`
	RewardClaimed    bool           `db:"reward_claimed" json:"reward_claimed"`
	EditionNumber    uint64         `db:"edition_number" json:"edition_number"`
	RewardInstanceID sql.NullString `db:"reward_instance_id" json:"-"`

	SchemaVersion uint32    `db:"schema_version" json:"schema_version"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// NullSupporterFunding ...
type NullSupporterFunding struct {
	Valid   bool
	Funding SupporterFunding
}
