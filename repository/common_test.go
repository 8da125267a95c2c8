package repository

import (
	"context"
	"time"

	"github.com/QuangTung97/crowd-escrow/model"
)

func newContext() context.Context {
	return context.Background()
}

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func newCustody(owner string, asset string, balance uint64) model.Custody {
	return model.Custody{
		Key:       owner + "/" + asset,
		Owner:     owner,
		Asset:     asset,
		Kind:      model.CustodyKindAccount,
		Balance:   balance,
		CreatedAt: newTime("2022-05-07T10:00:00+07:00"),
		UpdatedAt: newTime("2022-05-07T10:00:00+07:00"),
	}
}

// the driver may attach a fixed zone to the times it reads back
func utcCampaign(c model.Campaign) model.Campaign {
	c.StartTime = c.StartTime.UTC()
	c.EndTime = c.EndTime.UTC()
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c
}

func utcFunding(f model.SupporterFunding) model.SupporterFunding {
	f.FundedAt = f.FundedAt.UTC()
	f.CreatedAt = f.CreatedAt.UTC()
	f.UpdatedAt = f.UpdatedAt.UTC()
	return f
}

func utcCustody(c model.Custody) model.Custody {
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c
}
