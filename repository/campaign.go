package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/QuangTung97/crowd-escrow/model"
)

// Campaign ...
type Campaign interface {
	InsertCampaign(ctx context.Context, campaign model.Campaign) error
	GetCampaign(ctx context.Context, key string) (model.NullCampaign, error)

	// LockCampaign reads the campaign and holds its row lock until the transaction ends
	LockCampaign(ctx context.Context, key string) (model.NullCampaign, error)
	UpdateCampaign(ctx context.Context, campaign model.Campaign) error

	FindCampaignsByCreator(ctx context.Context, creatorHash uint32, creator string) ([]model.Campaign, error)
}

type campaignImpl struct {
}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignImpl{}
}

const campaignColumns = `
	campaign_key, creator, creator_hash, name, description,
	goal, raised_total, supporters_count,
	is_active, is_funded, start_time, end_time,
	reward_name, reward_symbol, reward_uri, reward_token_id, nft_in_escrow,
	max_editions, editions_minted,
	schema_version, created_at, updated_at
`

// InsertCampaign returns ErrDuplicateKey when the creator already has a campaign with the same name
func (c *campaignImpl) InsertCampaign(ctx context.Context, campaign model.Campaign) error {
	query := `
INSERT INTO campaign (` + campaignColumns + `) VALUES (
	:campaign_key, :creator, :creator_hash, :name, :description,
	:goal, :raised_total, :supporters_count,
	:is_active, :is_funded, :start_time, :end_time,
	:reward_name, :reward_symbol, :reward_uri, :reward_token_id, :nft_in_escrow,
	:max_editions, :editions_minted,
	:schema_version, :created_at, :updated_at
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	return translateInsertError(err)
}

func getCampaign(ctx context.Context, db Readonly, query string, key string) (model.NullCampaign, error) {
	var campaign model.Campaign
	err := db.GetContext(ctx, &campaign, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullCampaign{}, nil
	}
	if err != nil {
		return model.NullCampaign{}, err
	}
	return model.NullCampaign{
		Valid:    true,
		Campaign: campaign,
	}, nil
}

// GetCampaign ...
func (c *campaignImpl) GetCampaign(ctx context.Context, key string) (model.NullCampaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaign WHERE campaign_key = ?`
	return getCampaign(ctx, GetReadonly(ctx), query, key)
}

// LockCampaign ...
func (c *campaignImpl) LockCampaign(ctx context.Context, key string) (model.NullCampaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaign WHERE campaign_key = ?` + forUpdate(ctx)
	return getCampaign(ctx, GetTx(ctx), query, key)
}

// UpdateCampaign writes the mutable part of the campaign
func (c *campaignImpl) UpdateCampaign(ctx context.Context, campaign model.Campaign) error {
	query := `
UPDATE campaign SET
	raised_total = :raised_total,
	supporters_count = :supporters_count,
	is_active = :is_active,
	is_funded = :is_funded,
	nft_in_escrow = :nft_in_escrow,
	editions_minted = :editions_minted,
	updated_at = :updated_at
WHERE campaign_key = :campaign_key
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	return err
}

// FindCampaignsByCreator returns the newest campaigns first
func (c *campaignImpl) FindCampaignsByCreator(
	ctx context.Context, creatorHash uint32, creator string,
) ([]model.Campaign, error) {
	query := `
SELECT ` + campaignColumns + `
FROM campaign
WHERE creator_hash = ? AND creator = ?
ORDER BY start_time DESC, campaign_key
`
	var result []model.Campaign
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, creatorHash, creator)
	return result, err
}
