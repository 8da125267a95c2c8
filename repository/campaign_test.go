package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/QuangTung97/crowd-escrow/model"
	"github.com/QuangTung97/crowd-escrow/pkg/integration"
)

type campaignTest struct {
	tc       *integration.TestCase
	provider Provider
	repo     Campaign
}

func newCampaignTest(t *testing.T) *campaignTest {
	tc := integration.NewTestCase(t)
	return &campaignTest{
		tc:       tc,
		provider: NewProvider(tc.DB),
		repo:     NewCampaign(),
	}
}

func newCampaignModel(key string, creator string, name string, start string) model.Campaign {
	startTime := newTime(start)
	return model.Campaign{
		Key:         key,
		Creator:     creator,
		CreatorHash: 3300,
		Name:        name,
		Description: "description of " + name,

		Goal:     1000,
		IsActive: true,

		StartTime: startTime,
		EndTime:   startTime.Add(10 * time.Minute),

		RewardName:    "Reward",
		RewardSymbol:  "RWD",
		RewardURI:     "https://example.com/reward.json",
		RewardTokenID: "token-" + key,

		MaxEditions: 5,

		SchemaVersion: model.CampaignSchemaVersion,
		CreatedAt:     startTime,
		UpdatedAt:     startTime,
	}
}

func TestCampaign(t *testing.T) {
	tc := newCampaignTest(t)

	readCtx := tc.provider.Readonly(newContext())

	//---------------------------------------
	// Get Not Found
	//---------------------------------------
	result, err := tc.repo.GetCampaign(readCtx, "campaign01")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullCampaign{}, result)

	campaign01 := newCampaignModel("campaign01", "alice", "Solar", "2022-05-07T10:00:00+07:00")

	//---------------------------------------
	// Insert
	//---------------------------------------
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return tc.repo.InsertCampaign(ctx, campaign01)
	})
	assert.Equal(t, nil, err)

	result, err = tc.repo.GetCampaign(readCtx, "campaign01")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Valid)
	assert.Equal(t, campaign01, utcCampaign(result.Campaign))

	//---------------------------------------
	// Insert Same Creator And Name
	//---------------------------------------
	duplicated := newCampaignModel("campaign02", "alice", "Solar", "2022-05-07T11:00:00+07:00")
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return tc.repo.InsertCampaign(ctx, duplicated)
	})
	assert.Equal(t, ErrDuplicateKey, err)

	//---------------------------------------
	// Lock And Update
	//---------------------------------------
	updatedAt := newTime("2022-05-07T10:05:00+07:00")
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		locked, err := tc.repo.LockCampaign(ctx, "campaign01")
		if err != nil {
			return err
		}
		assert.Equal(t, true, locked.Valid)

		c := locked.Campaign
		c.RaisedTotal = 1500
		c.SupportersCount = 2
		c.IsFunded = true
		c.IsActive = false
		c.NftInEscrow = true
		c.EditionsMinted = 1
		c.UpdatedAt = updatedAt

		// immutable fields are not written
		c.Name = "changed"
		c.Goal = 1
		return tc.repo.UpdateCampaign(ctx, c)
	})
	assert.Equal(t, nil, err)

	expected := campaign01
	expected.RaisedTotal = 1500
	expected.SupportersCount = 2
	expected.IsFunded = true
	expected.IsActive = false
	expected.NftInEscrow = true
	expected.EditionsMinted = 1
	expected.UpdatedAt = updatedAt

	result, err = tc.repo.GetCampaign(readCtx, "campaign01")
	assert.Equal(t, nil, err)
	assert.Equal(t, expected, utcCampaign(result.Campaign))

	//---------------------------------------
	// Lock Not Found
	//---------------------------------------
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		locked, err := tc.repo.LockCampaign(ctx, "not-found")
		assert.Equal(t, model.NullCampaign{}, locked)
		return err
	})
	assert.Equal(t, nil, err)
}

func TestCampaign_FindCampaignsByCreator(t *testing.T) {
	tc := newCampaignTest(t)

	campaign01 := newCampaignModel("campaign01", "alice", "Solar", "2022-05-07T10:00:00+07:00")
	campaign02 := newCampaignModel("campaign02", "alice", "Wind", "2022-05-08T10:00:00+07:00")
	campaign03 := newCampaignModel("campaign03", "bob", "Water", "2022-05-09T10:00:00+07:00")

	err := tc.provider.Transact(newContext(), func(ctx context.Context) error {
		for _, c := range []model.Campaign{campaign01, campaign02, campaign03} {
			if err := tc.repo.InsertCampaign(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})
	assert.Equal(t, nil, err)

	readCtx := tc.provider.Readonly(newContext())

	campaigns, err := tc.repo.FindCampaignsByCreator(readCtx, 3300, "alice")
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(campaigns))
	assert.Equal(t, campaign02, utcCampaign(campaigns[0]))
	assert.Equal(t, campaign01, utcCampaign(campaigns[1]))

	campaigns, err = tc.repo.FindCampaignsByCreator(readCtx, 3301, "alice")
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(campaigns))

	campaigns, err = tc.repo.FindCampaignsByCreator(readCtx, 3300, "carol")
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(campaigns))
}
