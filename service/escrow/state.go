package escrow

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/QuangTung97/crowd-escrow/model"
)

// State of a campaign, derived from its flags and the clock, never stored
type State int

const (
	// StateActive accepts contributions
	StateActive State = iota + 1

	// StateFunded reached its goal, funds and rewards can be withdrawn
	StateFunded

	// StateFailed passed its deadline without reaching its goal, only refunds are possible
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateFunded:
		return "funded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText ...
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DeriveState ...
func DeriveState(campaign model.Campaign, now time.Time) State {
	if campaign.IsFunded {
		return StateFunded
	}
	if now.After(campaign.EndTime) {
		return StateFailed
	}
	return StateActive
}

// CampaignView is a campaign with its read time projections
type CampaignView struct {
	model.Campaign

	State          State           `json:"state"`
	FundingPercent decimal.Decimal `json:"funding_percent"`

	// TimeRemainingSeconds is zero once the deadline passed
	TimeRemainingSeconds int64 `json:"time_remaining_seconds"`
}

var hundred = decimal.NewFromInt(100)

func newDecimalFromUint64(n uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0)
}

// FundingPercent is raised/goal in percent with two decimals, capped at 100
func FundingPercent(raised uint64, goal uint64) decimal.Decimal {
	if goal == 0 {
		return decimal.Zero
	}
	percent := newDecimalFromUint64(raised).Mul(hundred).Div(newDecimalFromUint64(goal)).RoundFloor(2)
	if percent.GreaterThan(hundred) {
		return hundred
	}
	return percent
}

// NewCampaignView ...
func NewCampaignView(campaign model.Campaign, now time.Time) CampaignView {
	remaining := campaign.EndTime.Sub(now)
	if remaining < 0 {
		remaining = 0
	}

	return CampaignView{
		Campaign:             campaign,
		State:                DeriveState(campaign, now),
		FundingPercent:       FundingPercent(campaign.RaisedTotal, campaign.Goal),
		TimeRemainingSeconds: int64(remaining / time.Second),
	}
}
