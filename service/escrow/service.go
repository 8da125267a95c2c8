package escrow

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/QuangTung97/crowd-escrow/config"
	"github.com/QuangTung97/crowd-escrow/model"
	"github.com/QuangTung97/crowd-escrow/pkg/memtable"
	"github.com/QuangTung97/crowd-escrow/repository"
	"github.com/QuangTung97/crowd-escrow/service/ledger"
)

//go:generate otelwrap --out service_wrappers.go . IService

// IService ...
type IService interface {
	CreateCampaign(ctx context.Context, input CreateCampaignInput) (string, error)
	Fund(ctx context.Context, input FundInput) (model.Campaign, error)
	WithdrawFunds(ctx context.Context, campaignKey string, caller string) (WithdrawOutput, error)
	ClaimRefund(ctx context.Context, campaignKey string, supporter string) (uint64, error)
	WithdrawTreasury(ctx context.Context, caller string, amount uint64) error
	TransferRewardToEscrow(ctx context.Context, campaignKey string, caller string) error
	ClaimReward(ctx context.Context, campaignKey string, supporter string) (ClaimRewardOutput, error)

	// Deprecated: AdminUpdateClaim marks a reward as claimed without moving the token, use ClaimReward
	AdminUpdateClaim(ctx context.Context, input AdminUpdateClaimInput) error

	GetCampaign(ctx context.Context, campaignKey string) (CampaignView, error)
	ListCampaignsByCreator(ctx context.Context, creator string) ([]CampaignView, error)
	GetFunding(ctx context.Context, campaignKey string, supporter string) (model.SupporterFunding, error)
	ListFundings(ctx context.Context, campaignKey string) ([]model.SupporterFunding, error)
	ListEvents(ctx context.Context, campaignKey string) ([]model.Event, error)
	TreasuryBalance(ctx context.Context) (uint64, error)
	Balances(ctx context.Context, owner string) ([]model.Custody, error)

	Deposit(ctx context.Context, owner string, amount uint64) error
	MintRewardToken(ctx context.Context, owner string, tokenID string) error
}

//go:generate moq -out escrow_mocks_test.go . TokenProgram

// TokenProgram moves and creates reward tokens
type TokenProgram interface {
	TransferToken(ctx context.Context, transfer ledger.TokenTransfer) error
	MintToken(ctx context.Context, tokenID string, owner string, supply uint64) error
}

// CreateCampaignInput ...
type CreateCampaignInput struct {
	Creator     string `json:"-" validate:"required,max=64"`
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=200"`
	Goal        uint64 `json:"goal"`

	RewardName    string `json:"reward_name" validate:"required,max=32"`
	RewardSymbol  string `json:"reward_symbol" validate:"required,max=10"`
	RewardURI     string `json:"reward_uri" validate:"required,max=200"`
	RewardTokenID string `json:"reward_token_id" validate:"required,max=64"`

	// Duration and MaxEditions override the configured values when positive
	Duration    time.Duration `json:"duration"`
	MaxEditions uint64        `json:"max_editions"`
}

// FundInput ...
type FundInput struct {
	CampaignKey string
	Supporter   string
	Amount      uint64
}

// WithdrawOutput ...
type WithdrawOutput struct {
	Fee           uint64 `json:"fee"`
	CreatorAmount uint64 `json:"creator_amount"`
}

// ClaimRewardOutput ...
type ClaimRewardOutput struct {
	EditionNumber    uint64 `json:"edition_number"`
	RewardInstanceID string `json:"reward_instance_id"`
}

// AdminUpdateClaimInput ...
type AdminUpdateClaimInput struct {
	CampaignKey      string `json:"-"`
	Caller           string `json:"-"`
	Supporter        string `json:"supporter" validate:"required"`
	EditionNumber    uint64 `json:"edition_number"`
	RewardInstanceID string `json:"reward_instance_id" validate:"required,max=64"`
}

// Service ...
type Service struct {
	provider     repository.Provider
	campaignRepo repository.Campaign
	fundingRepo  repository.Funding
	eventRepo    repository.Event

	ledger ledger.Ledger
	tokens TokenProgram

	conf     config.EscrowConfig
	validate *validator.Validate
	cache    *memtable.MemTable
	nowFn    func() time.Time
}

var _ IService = &Service{}

// Option ...
type Option func(s *Service)

// WithNowFunc ...
func WithNowFunc(nowFn func() time.Time) Option {
	return func(s *Service) {
		s.nowFn = nowFn
	}
}

// WithCache enables caching of campaign records read outside of operations
func WithCache(cache *memtable.MemTable) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

// NewService ...
func NewService(
	provider repository.Provider,
	campaignRepo repository.Campaign,
	fundingRepo repository.Funding,
	eventRepo repository.Event,
	ledgerService ledger.Ledger,
	tokens TokenProgram,
	conf config.EscrowConfig,
	options ...Option,
) *Service {
	s := &Service{
		provider:     provider,
		campaignRepo: campaignRepo,
		fundingRepo:  fundingRepo,
		eventRepo:    eventRepo,

		ledger: ledgerService,
		tokens: tokens,

		conf:     conf,
		validate: validator.New(),
		nowFn:    time.Now,
	}
	for _, o := range options {
		o(s)
	}
	return s
}

// NewDefaultService wires the service over the repositories and the custody ledger
func NewDefaultService(provider repository.Provider, conf config.EscrowConfig, options ...Option) *Service {
	s := &Service{nowFn: time.Now}
	for _, o := range options {
		o(s)
	}

	ledgerService := ledger.NewService(repository.NewCustody(), ledger.WithNowFunc(s.nowFn))
	return NewService(
		provider,
		repository.NewCampaign(),
		repository.NewFunding(),
		repository.NewEvent(),
		ledgerService, ledgerService,
		conf, options...,
	)
}
