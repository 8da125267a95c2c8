package escrow

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/QuangTung97/crowd-escrow/model"
)

// IServiceWrapper wraps OpenTelemetry's span
type IServiceWrapper struct {
	IService
	tracer trace.Tracer
	prefix string
}

// NewIServiceWrapper creates a wrapper
func NewIServiceWrapper(wrapped IService, tracer trace.Tracer, prefix string) *IServiceWrapper {
	return &IServiceWrapper{
		IService: wrapped,
		tracer:   tracer,
		prefix:   prefix,
	}
}

// CreateCampaign ...
func (w *IServiceWrapper) CreateCampaign(ctx context.Context, input CreateCampaignInput) (string, error) {
	ctx, span := w.tracer.Start(ctx, w.prefix+"CreateCampaign")
	defer span.End()

	a, err := w.IService.CreateCampaign(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return a, err
}

// Fund ...
func (w *IServiceWrapper) Fund(ctx context.Context, input FundInput) (model.Campaign, error) {
	ctx, span := w.tracer.Start(ctx, w.prefix+"Fund")
	defer span.End()

	a, err := w.IService.Fund(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return a, err
}

// WithdrawFunds ...
func (w *IServiceWrapper) WithdrawFunds(ctx context.Context, campaignKey string, caller string) (WithdrawOutput, error) {
	ctx, span := w.tracer.Start(ctx, w.prefix+"WithdrawFunds")
	defer span.End()

	a, err := w.IService.WithdrawFunds(ctx, campaignKey, caller)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return a, err
}

// ClaimRefund ...
func (w *IServiceWrapper) ClaimRefund(ctx context.Context, campaignKey string, supporter string) (uint64, error) {
	ctx, span := w.tracer.Start(ctx, w.prefix+"ClaimRefund")
	defer span.End()

	a, err := w.IService.ClaimRefund(ctx, campaignKey, supporter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return a, err
}

// WithdrawTreasury ...
func (w *IServiceWrapper) WithdrawTreasury(ctx context.Context, caller string, amount uint64) error {
	ctx, span := w.tracer.Start(ctx, w.prefix+"WithdrawTreasury")
	defer span.End()

	err := w.IService.WithdrawTreasury(ctx, caller, amount)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// TransferRewardToEscrow ...
func (w *IServiceWrapper) TransferRewardToEscrow(ctx context.Context, campaignKey string, caller string) error {
	ctx, span := w.tracer.Start(ctx, w.prefix+"TransferRewardToEscrow")
	defer span.End()

	err := w.IService.TransferRewardToEscrow(ctx, campaignKey, caller)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// ClaimReward ...
func (w *IServiceWrapper) ClaimReward(ctx context.Context, campaignKey string, supporter string) (ClaimRewardOutput, error) {
	ctx, span := w.tracer.Start(ctx, w.prefix+"ClaimReward")
	defer span.End()

	a, err := w.IService.ClaimReward(ctx, campaignKey, supporter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return a, err
}

// AdminUpdateClaim ...
func (w *IServiceWrapper) AdminUpdateClaim(ctx context.Context, input AdminUpdateClaimInput) error {
	ctx, span := w.tracer.Start(ctx, w.prefix+"AdminUpdateClaim")
	defer span.End()

	err := w.IService.AdminUpdateClaim(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// GetCampaign ...
func (w *IServiceWrapper) GetCampaign(ctx context.Context, campaignKey string) (CampaignView, error) {
	ctx, span := w.tracer.Start(ctx, w.prefix+"GetCampaign")
	defer span.End()

	a, err := w.IService.GetCampaign(ctx, campaignKey)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return a, err
}

// ListCampaignsByCreator ...
func (w *IServiceWrapper) ListCampaignsByCreator(ctx context.Context, creator string) ([]CampaignView, error) {
	ctx, span := w.tracer.Start(ctx, w.prefix+"ListCampaignsByCreator")
	defer span.End()

	a, err := w.IService.ListCampaignsByCreator(ctx, creator)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return a, err
}

// GetFunding ...
func (w *IServiceWrapper) GetFunding(ctx context.Context, campaignKey string, supporter string) (model.SupporterFunding, error) {
	ctx, span := w.tracer.Start(ctx, w.prefix+"GetFunding")
	defer span.End()

	a, err := w.IService.GetFunding(ctx, campaignKey, supporter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return a, err
}

// ListFundings ...
func (w *IServiceWrapper) ListFundings(ctx context.Context, campaignKey string) ([]model.SupporterFunding, error) {
	ctx, span := w.tracer.Start(ctx, w.prefix+"ListFundings")
	defer span.End()

	a, err := w.IService.ListFundings(ctx, campaignKey)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return a, err
}

// ListEvents ...
func (w *IServiceWrapper) ListEvents(ctx context.Context, campaignKey string) ([]model.Event, error) {
	ctx, span := w.tracer.Start(ctx, w.prefix+"ListEvents")
	defer span.End()

	a, err := w.IService.ListEvents(ctx, campaignKey)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return a, err
}

// TreasuryBalance ...
func (w *IServiceWrapper) TreasuryBalance(ctx context.Context) (uint64, error) {
	ctx, span := w.tracer.Start(ctx, w.prefix+"TreasuryBalance")
	defer span.End()

	a, err := w.IService.TreasuryBalance(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return a, err
}

// Balances ...
func (w *IServiceWrapper) Balances(ctx context.Context, owner string) ([]model.Custody, error) {
	ctx, span := w.tracer.Start(ctx, w.prefix+"Balances")
	defer span.End()

	a, err := w.IService.Balances(ctx, owner)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return a, err
}

// Deposit ...
func (w *IServiceWrapper) Deposit(ctx context.Context, owner string, amount uint64) error {
	ctx, span := w.tracer.Start(ctx, w.prefix+"Deposit")
	defer span.End()

	err := w.IService.Deposit(ctx, owner, amount)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// MintRewardToken ...
func (w *IServiceWrapper) MintRewardToken(ctx context.Context, owner string, tokenID string) error {
	ctx, span := w.tracer.Start(ctx, w.prefix+"MintRewardToken")
	defer span.End()

	err := w.IService.MintRewardToken(ctx, owner, tokenID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
