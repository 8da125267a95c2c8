package escrow

// Event types of the operation journal
const (
	EventCampaignCreated    = "CampaignCreated"
	EventCampaignFunded     = "CampaignFunded"
	EventGoalReached        = "GoalReached"
	EventFundsWithdrawn     = "FundsWithdrawn"
	EventFeeCollected       = "FeeCollected"
	EventRefundClaimed      = "RefundClaimed"
	EventTreasuryWithdrawn  = "TreasuryWithdrawn"
	EventRewardEscrowed     = "RewardEscrowed"
	EventRewardClaimed      = "RewardClaimed"
	EventRewardClaimUpdated = "RewardClaimUpdated"
	EventDeposited          = "Deposited"
	EventRewardTokenMinted  = "RewardTokenMinted"
)

type campaignCreatedEvent struct {
	Creator     string `json:"creator"`
	Name        string `json:"name"`
	Goal        uint64 `json:"goal"`
	EndTime     int64  `json:"end_time"`
	MaxEditions uint64 `json:"max_editions"`
}

type campaignFundedEvent struct {
	Supporter       string `json:"supporter"`
	Amount          uint64 `json:"amount"`
	RaisedTotal     uint64 `json:"raised_total"`
	SupportersCount uint32 `json:"supporters_count"`
}

type goalReachedEvent struct {
	Goal        uint64 `json:"goal"`
	RaisedTotal uint64 `json:"raised_total"`
}

type fundsWithdrawnEvent struct {
	Creator       string `json:"creator"`
	Fee           uint64 `json:"fee"`
	CreatorAmount uint64 `json:"creator_amount"`
}

type feeCollectedEvent struct {
	CampaignKey string `json:"campaign_key"`
	Fee         uint64 `json:"fee"`
}

type refundClaimedEvent struct {
	Supporter string `json:"supporter"`
	Amount    uint64 `json:"amount"`
}

type treasuryWithdrawnEvent struct {
	Admin  string `json:"admin"`
	Amount uint64 `json:"amount"`
}

type rewardEscrowedEvent struct {
	TokenID         string `json:"token_id"`
	EscrowAuthority string `json:"escrow_authority"`
}

type rewardClaimedEvent struct {
	Supporter        string `json:"supporter"`
	EditionNumber    uint64 `json:"edition_number"`
	RewardInstanceID string `json:"reward_instance_id"`
}

type depositedEvent struct {
	Asset  string `json:"asset"`
	Amount uint64 `json:"amount"`
}
