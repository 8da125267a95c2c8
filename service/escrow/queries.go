package escrow

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/QuangTung97/crowd-escrow/model"
	"github.com/QuangTung97/crowd-escrow/pkg/keys"
	"github.com/QuangTung97/crowd-escrow/pkg/util"
)

func campaignCacheKey(campaignKey string) string {
	return "campaign:" + campaignKey
}

func (s *Service) cachedCampaign(campaignKey string) (model.Campaign, bool) {
	if s.cache == nil {
		return model.Campaign{}, false
	}
	data, ok := s.cache.Get(campaignCacheKey(campaignKey))
	if !ok {
		return model.Campaign{}, false
	}
	var campaign model.Campaign
	if err := json.Unmarshal(data, &campaign); err != nil {
		return model.Campaign{}, false
	}
	return campaign, true
}

func (s *Service) cacheCampaign(campaign model.Campaign) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(campaign)
	if err != nil {
		return
	}
	s.cache.Set(campaignCacheKey(campaign.Key), data)
}

func (s *Service) uncacheCampaign(campaignKey string) {
	if s.cache == nil {
		return
	}
	s.cache.Delete(campaignCacheKey(campaignKey))
}

// GetCampaign ...
func (s *Service) GetCampaign(ctx context.Context, campaignKey string) (CampaignView, error) {
	now := s.nowFn()

	if campaign, ok := s.cachedCampaign(campaignKey); ok {
		return NewCampaignView(campaign, now), nil
	}

	nullCampaign, err := s.campaignRepo.GetCampaign(s.provider.Readonly(ctx), campaignKey)
	if err != nil {
		return CampaignView{}, fmt.Errorf("get campaign: %w", err)
	}
	if !nullCampaign.Valid {
		return CampaignView{}, ErrCampaignNotFound
	}

	s.cacheCampaign(nullCampaign.Campaign)
	return NewCampaignView(nullCampaign.Campaign, now), nil
}

// ListCampaignsByCreator returns the newest campaigns first
func (s *Service) ListCampaignsByCreator(ctx context.Context, creator string) ([]CampaignView, error) {
	campaigns, err := s.campaignRepo.FindCampaignsByCreator(s.provider.Readonly(ctx), util.HashFunc(creator), creator)
	if err != nil {
		return nil, fmt.Errorf("find campaigns: %w", err)
	}

	now := s.nowFn()
	result := make([]CampaignView, 0, len(campaigns))
	for _, c := range campaigns {
		result = append(result, NewCampaignView(c, now))
	}
	return result, nil
}

// GetFunding ...
func (s *Service) GetFunding(ctx context.Context, campaignKey string, supporter string) (model.SupporterFunding, error) {
	nullFunding, err := s.fundingRepo.GetFunding(s.provider.Readonly(ctx), campaignKey, supporter)
	if err != nil {
		return model.SupporterFunding{}, fmt.Errorf("get supporter funding: %w", err)
	}
	if !nullFunding.Valid {
		return model.SupporterFunding{}, ErrFundingNotFound
	}
	return nullFunding.Funding, nil
}

// ListFundings ...
func (s *Service) ListFundings(ctx context.Context, campaignKey string) ([]model.SupporterFunding, error) {
	fundings, err := s.fundingRepo.FindFundingsByCampaign(s.provider.Readonly(ctx), campaignKey)
	if err != nil {
		return nil, fmt.Errorf("find supporter fundings: %w", err)
	}
	return fundings, nil
}

// ListEvents returns the journal of a campaign in commit order
func (s *Service) ListEvents(ctx context.Context, campaignKey string) ([]model.Event, error) {
	events, err := s.eventRepo.FindEventsByAggregate(s.provider.Readonly(ctx), model.AggregateTypeCampaign, campaignKey)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	return events, nil
}

// TreasuryBalance ...
func (s *Service) TreasuryBalance(ctx context.Context) (uint64, error) {
	return s.ledger.Balance(s.provider.Readonly(ctx), keys.TreasuryAuthority(), model.AssetNative)
}

// Balances returns every custody held by owner
func (s *Service) Balances(ctx context.Context, owner string) ([]model.Custody, error) {
	return s.ledger.Custodies(s.provider.Readonly(ctx), owner)
}
