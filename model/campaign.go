package model

import "time"

// CampaignSchemaVersion is the current layout of the campaign record
const CampaignSchemaVersion uint32 = 1

// Campaign is the authoritative aggregate state of one funding campaign
type Campaign struct {
	Key         string `db:"campaign_key" json:"key"`
	Creator     string `db:"creator" json:"creator"`
	CreatorHash uint32 `db:"creator_hash" json:"-"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`

	Goal            uint64 `db:"goal" json:"goal"`
	RaisedTotal     uint64 `db:"raised_total" json:"raised_total"`
	SupportersCount uint32 `db:"supporters_count" json:"supporters_count"`

	IsActive  bool      `db:"is_active" json:"is_active"`
	IsFunded  bool      `db:"is_funded" json:"is_funded"`
	StartTime time.Time `db:"start_time" json:"start_time"`
	EndTime   time.Time `db:"end_time" json:"end_time"`

	RewardName    string `db:"reward_name" json:"reward_name"`
	RewardSymbol  string `db:"reward_symbol" json:"reward_symbol"`
	RewardURI     string `db:"reward_uri" json:"reward_uri"`
	RewardTokenID string `db:"reward_token_id" json:"reward_token_id"`
	NftInEscrow   bool   `db:"nft_in_escrow" json:"nft_in_escrow"`

	MaxEditions    uint64 `db:"max_editions" json:"max_editions"`
	EditionsMinted uint64 `db:"editions_minted" json:"editions_minted"`

	SchemaVersion uint32    `db:"schema_version" json:"schema_version"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// NullCampaign ...
type NullCampaign struct {
	Valid    bool
	Campaign Campaign
}
