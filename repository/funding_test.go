package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/QuangTung97/crowd-escrow/model"
	"github.com/QuangTung97/crowd-escrow/pkg/integration"
)

func newFundingModel(campaignKey string, supporter string, amount uint64, fundedAt string) model.SupporterFunding {
	t := newTime(fundedAt)
	return model.SupporterFunding{
		CampaignKey:   campaignKey,
		Supporter:     supporter,
		Amount:        amount,
		FundedAt:      t,
		SchemaVersion: model.SupporterFundingSchemaVersion,
		CreatedAt:     t,
		UpdatedAt:     t,
	}
}

func TestFunding(t *testing.T) {
	tc := integration.NewTestCase(t)
	provider := NewProvider(tc.DB)
	repo := NewFunding()

	readCtx := provider.Readonly(newContext())

	//---------------------------------------
	// Get Not Found
	//---------------------------------------
	result, err := repo.GetFunding(readCtx, "campaign01", "bob")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullSupporterFunding{}, result)

	funding01 := newFundingModel("campaign01", "bob", 400, "2022-05-07T10:01:00+07:00")
	funding02 := newFundingModel("campaign01", "carol", 700, "2022-05-07T10:02:00+07:00")
	funding03 := newFundingModel("campaign02", "bob", 100, "2022-05-07T10:03:00+07:00")

	//---------------------------------------
	// Insert
	//---------------------------------------
	err = provider.Transact(newContext(), func(ctx context.Context) error {
		for _, f := range []model.SupporterFunding{funding02, funding01, funding03} {
			if err := repo.InsertFunding(ctx, f); err != nil {
				return err
			}
		}
		return nil
	})
	assert.Equal(t, nil, err)

	result, err = repo.GetFunding(readCtx, "campaign01", "bob")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Valid)
	assert.Equal(t, funding01, utcFunding(result.Funding))

	//---------------------------------------
	// Insert Duplicated
	//---------------------------------------
	err = provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.InsertFunding(ctx, funding01)
	})
	assert.Equal(t, ErrDuplicateKey, err)

	//---------------------------------------
	// Find By Campaign
	//---------------------------------------
	fundings, err := repo.FindFundingsByCampaign(readCtx, "campaign01")
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(fundings))
	assert.Equal(t, funding01, utcFunding(fundings[0]))
	assert.Equal(t, funding02, utcFunding(fundings[1]))

	//---------------------------------------
	// Lock And Update
	//---------------------------------------
	updatedAt := newTime("2022-05-07T10:20:00+07:00")
	err = provider.Transact(newContext(), func(ctx context.Context) error {
		locked, err := repo.LockFunding(ctx, "campaign01", "carol")
		if err != nil {
			return err
		}
		assert.Equal(t, true, locked.Valid)

		f := locked.Funding
		f.RewardClaimed = true
		f.EditionNumber = 1
		f.RewardInstanceID = sql.NullString{Valid: true, String: "token-01"}
		f.UpdatedAt = updatedAt
		f.Amount = 1
		return repo.UpdateFunding(ctx, f)
	})
	assert.Equal(t, nil, err)

	expected := funding02
	expected.RewardClaimed = true
	expected.EditionNumber = 1
	expected.RewardInstanceID = sql.NullString{Valid: true, String: "token-01"}
	expected.UpdatedAt = updatedAt

	result, err = repo.GetFunding(readCtx, "campaign01", "carol")
	assert.Equal(t, nil, err)
	assert.Equal(t, expected, utcFunding(result.Funding))
}
