package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/QuangTung97/crowd-escrow/model"
)

// Funding ...
type Funding interface {
	// InsertFunding returns ErrDuplicateKey when the supporter already funded the campaign
	InsertFunding(ctx context.Context, funding model.SupporterFunding) error
	GetFunding(ctx context.Context, campaignKey string, supporter string) (model.NullSupporterFunding, error)
	LockFunding(ctx context.Context, campaignKey string, supporter string) (model.NullSupporterFunding, error)
	UpdateFunding(ctx context.Context, funding model.SupporterFunding) error

	FindFundingsByCampaign(ctx context.Context, campaignKey string) ([]model.SupporterFunding, error)
}

type fundingImpl struct {
}

// NewFunding ...
func NewFunding() Funding {
	return &fundingImpl{}
}

const fundingColumns = `
	campaign_key, supporter, amount, funded_at,
	is_refund_claimed, reward_claimed, edition_number, reward_instance_id,
	schema_version, created_at, updated_at
`

// InsertFunding ...
func (f *fundingImpl) InsertFunding(ctx context.Context, funding model.SupporterFunding) error {
	query := `
INSERT INTO supporter_funding (` + fundingColumns + `) VALUES (
	:campaign_key, :supporter, :amount, :funded_at,
	:is_refund_claimed, :reward_claimed, :edition_number, :reward_instance_id,
	:schema_version, :created_at, :updated_at
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, funding)
	return translateInsertError(err)
}

func getFunding(
	ctx context.Context, db Readonly, query string, campaignKey string, supporter string,
) (model.NullSupporterFunding, error) {
	var funding model.SupporterFunding
	err := db.GetContext(ctx, &funding, query, campaignKey, supporter)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullSupporterFunding{}, nil
	}
	if err != nil {
		return model.NullSupporterFunding{}, err
	}
	return model.NullSupporterFunding{
		Valid:   true,
		Funding: funding,
	}, nil
}

// GetFunding ...
func (f *fundingImpl) GetFunding(
	ctx context.Context, campaignKey string, supporter string,
) (model.NullSupporterFunding, error) {
	query := `SELECT ` + fundingColumns + ` FROM supporter_funding WHERE campaign_key = ? AND supporter = ?`
	return getFunding(ctx, GetReadonly(ctx), query, campaignKey, supporter)
}

// LockFunding ...
func (f *fundingImpl) LockFunding(
	ctx context.Context, campaignKey string, supporter string,
) (model.NullSupporterFunding, error) {
	query := `SELECT ` + fundingColumns + ` FROM supporter_funding WHERE campaign_key = ? AND supporter = ?` +
		forUpdate(ctx)
	return getFunding(ctx, GetTx(ctx), query, campaignKey, supporter)
}

// UpdateFunding writes the claim flags, amount and funding time never change
func (f *fundingImpl) UpdateFunding(ctx context.Context, funding model.SupporterFunding) error {
	query := `
UPDATE supporter_funding SET
	is_refund_claimed = :is_refund_claimed,
	reward_claimed = :reward_claimed,
	edition_number = :edition_number,
	reward_instance_id = :reward_instance_id,
	updated_at = :updated_at
WHERE campaign_key = :campaign_key AND supporter = :supporter
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, funding)
	return err
}

// FindFundingsByCampaign ...
func (f *fundingImpl) FindFundingsByCampaign(ctx context.Context, campaignKey string) ([]model.SupporterFunding, error) {
	query := `
SELECT ` + fundingColumns + `
FROM supporter_funding
WHERE campaign_key = ?
ORDER BY funded_at, supporter
`
	var result []model.SupporterFunding
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignKey)
	return result, err
}
