package model

import "time"

// AssetNative is the value unit campaigns are funded with
const AssetNative = "native"

// CustodyKind ...
type CustodyKind int

const (
	// CustodyKindAccount is a holding owned by an external identity
	CustodyKindAccount CustodyKind = 1

	// CustodyKindCampaign holds the contributions of a campaign
	CustodyKindCampaign CustodyKind = 2

	// CustodyKindTreasury accumulates platform fees
	CustodyKindTreasury CustodyKind = 3

	// CustodyKindEscrow holds the reward token of a campaign
	CustodyKindEscrow CustodyKind = 4
)

// Custody is a holding of one asset attributable to one owner or derived authority
type Custody struct {
	Key     string      `db:"custody_key" json:"key"`
	Owner   string      `db:"owner" json:"owner"`
	Asset   string      `db:"asset" json:"asset"`
	Kind    CustodyKind `db:"kind" json:"kind"`
	Balance uint64      `db:"balance" json:"balance"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NullCustody ...
type NullCustody struct {
	Valid   bool
	Custody Custody
}
