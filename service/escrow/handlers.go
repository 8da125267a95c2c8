package escrow

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/QuangTung97/crowd-escrow/model"
	"github.com/QuangTung97/crowd-escrow/pkg/keys"
	"github.com/QuangTung97/crowd-escrow/pkg/otellib"
	"github.com/QuangTung97/crowd-escrow/pkg/safemath"
	"github.com/QuangTung97/crowd-escrow/pkg/util"
	"github.com/QuangTung97/crowd-escrow/repository"
	"github.com/QuangTung97/crowd-escrow/service/ledger"
)

// Operation names used in metrics and logs
const (
	OpCreateCampaign         = "create_campaign"
	OpFund                   = "fund"
	OpWithdrawFunds          = "withdraw_funds"
	OpClaimRefund            = "claim_refund"
	OpWithdrawTreasury       = "withdraw_treasury"
	OpTransferRewardToEscrow = "transfer_reward_to_escrow"
	OpClaimReward            = "claim_reward"
	OpAdminUpdateClaim       = "admin_update_claim"
	OpDeposit                = "deposit"
	OpMintRewardToken        = "mint_reward_token"
)

func (s *Service) lockCampaign(ctx context.Context, key string) (model.Campaign, error) {
	nullCampaign, err := s.campaignRepo.LockCampaign(ctx, key)
	if err != nil {
		return model.Campaign{}, fmt.Errorf("lock campaign: %w", err)
	}
	if !nullCampaign.Valid {
		return model.Campaign{}, ErrCampaignNotFound
	}
	return nullCampaign.Campaign, nil
}

func (s *Service) lockFunding(ctx context.Context, campaignKey string, supporter string) (model.SupporterFunding, error) {
	nullFunding, err := s.fundingRepo.LockFunding(ctx, campaignKey, supporter)
	if err != nil {
		return model.SupporterFunding{}, fmt.Errorf("lock supporter funding: %w", err)
	}
	if !nullFunding.Valid {
		return model.SupporterFunding{}, ErrFundingNotFound
	}
	return nullFunding.Funding, nil
}

// checkIdentity rejects caller identities in the namespace of derived keys,
// those keys sign only through the escrow itself
func checkIdentity(ids ...string) error {
	for _, id := range ids {
		if keys.IsDerived(id) {
			return ErrUnauthorized
		}
	}
	return nil
}

func (s *Service) validateInput(input interface{}) error {
	if err := s.validate.Struct(input); err != nil {
		return ErrInvalidInput.WithMessage(err.Error())
	}
	return nil
}

// CreateCampaign returns the key derived from the creator and the campaign name
func (s *Service) CreateCampaign(ctx context.Context, input CreateCampaignInput) (string, error) {
	if err := s.validateInput(input); err != nil {
		return "", err
	}
	if err := checkIdentity(input.Creator); err != nil {
		return "", err
	}

	duration := s.conf.CampaignDuration
	if input.Duration > 0 {
		duration = input.Duration
	}
	maxEditions := s.conf.MaxEditions
	if input.MaxEditions > 0 {
		maxEditions = input.MaxEditions
	}

	key := keys.CampaignKey(input.Creator, input.Name)

	err := s.execute(ctx, OpCreateCampaign, func(ctx context.Context, op *operation) error {
		campaign := model.Campaign{
			Key:         key,
			Creator:     input.Creator,
			CreatorHash: util.HashFunc(input.Creator),
			Name:        input.Name,
			Description: input.Description,

			Goal:     input.Goal,
			IsActive: true,

			StartTime: op.now,
			EndTime:   op.now.Add(duration),

			RewardName:    input.RewardName,
			RewardSymbol:  input.RewardSymbol,
			RewardURI:     input.RewardURI,
			RewardTokenID: input.RewardTokenID,

			MaxEditions: maxEditions,

			SchemaVersion: model.CampaignSchemaVersion,
			CreatedAt:     op.now,
			UpdatedAt:     op.now,
		}

		err := s.campaignRepo.InsertCampaign(ctx, campaign)
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrCampaignAlreadyExists
		}
		if err != nil {
			return fmt.Errorf("insert campaign: %w", err)
		}

		if input.Goal == 0 {
			otellib.Extract(ctx).Warn("campaign created with zero goal, its first contribution funds it",
				zap.String("campaign", key))
		}

		op.log(zap.String("campaign", key), zap.String("creator", input.Creator), zap.Uint64("goal", input.Goal))
		return op.emit(model.AggregateTypeCampaign, key, EventCampaignCreated, campaignCreatedEvent{
			Creator:     input.Creator,
			Name:        input.Name,
			Goal:        input.Goal,
			EndTime:     campaign.EndTime.Unix(),
			MaxEditions: maxEditions,
		})
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// applyContribution returns the campaign after adding one supporter's amount, nothing is saturated
func applyContribution(campaign model.Campaign, amount uint64) (model.Campaign, error) {
	raised, err := safemath.Add(campaign.RaisedTotal, amount)
	if err != nil {
		return model.Campaign{}, ErrAmountOverflow
	}
	count, err := safemath.AddUint32(campaign.SupportersCount, 1)
	if err != nil {
		return model.Campaign{}, ErrCountOverflow
	}

	campaign.RaisedTotal = raised
	campaign.SupportersCount = count
	if campaign.RaisedTotal >= campaign.Goal {
		campaign.IsFunded = true
	}
	return campaign, nil
}

// Fund returns the campaign aggregate after the contribution
func (s *Service) Fund(ctx context.Context, input FundInput) (model.Campaign, error) {
	if input.Amount == 0 {
		return model.Campaign{}, ErrInvalidAmount
	}
	if input.Supporter == "" {
		return model.Campaign{}, ErrInvalidInput.WithMessage("supporter is required")
	}
	if err := checkIdentity(input.Supporter); err != nil {
		return model.Campaign{}, err
	}

	var result model.Campaign
	err := s.execute(ctx, OpFund, func(ctx context.Context, op *operation) error {
		campaign, err := s.lockCampaign(ctx, input.CampaignKey)
		if err != nil {
			return err
		}

		if !campaign.IsActive {
			return ErrCampaignNotActive
		}
		if op.now.After(campaign.EndTime) {
			return ErrCampaignEnded
		}

		existing, err := s.fundingRepo.LockFunding(ctx, input.CampaignKey, input.Supporter)
		if err != nil {
			return fmt.Errorf("lock supporter funding: %w", err)
		}
		if existing.Valid {
			return ErrAlreadyFunded
		}

		wasFunded := campaign.IsFunded
		campaign, err = applyContribution(campaign, input.Amount)
		if err != nil {
			return err
		}
		campaign.UpdatedAt = op.now

		err = s.ledger.Transfer(ctx, ledger.TransferInput{
			From:      input.Supporter,
			To:        campaign.Key,
			Authority: input.Supporter,
			ToKind:    model.CustodyKindCampaign,
			Asset:     model.AssetNative,
			Amount:    input.Amount,
		})
		if err != nil {
			return translateLedgerError(err)
		}

		err = s.fundingRepo.InsertFunding(ctx, model.SupporterFunding{
			CampaignKey:   campaign.Key,
			Supporter:     input.Supporter,
			Amount:        input.Amount,
			FundedAt:      op.now,
			SchemaVersion: model.SupporterFundingSchemaVersion,
			CreatedAt:     op.now,
			UpdatedAt:     op.now,
		})
		if errors.Is(err, repository.ErrDuplicateKey) {
			return ErrAlreadyFunded
		}
		if err != nil {
			return fmt.Errorf("insert supporter funding: %w", err)
		}

		if err := s.campaignRepo.UpdateCampaign(ctx, campaign); err != nil {
			return fmt.Errorf("update campaign: %w", err)
		}

		op.invalidate(campaign.Key)
		op.log(
			zap.String("campaign", campaign.Key),
			zap.String("supporter", input.Supporter),
			zap.Uint64("amount", input.Amount),
			zap.Uint64("raised_total", campaign.RaisedTotal),
		)

		err = op.emit(model.AggregateTypeCampaign, campaign.Key, EventCampaignFunded, campaignFundedEvent{
			Supporter:       input.Supporter,
			Amount:          input.Amount,
			RaisedTotal:     campaign.RaisedTotal,
			SupportersCount: campaign.SupportersCount,
		})
		if err != nil {
			return err
		}
		if campaign.IsFunded && !wasFunded {
			err = op.emit(model.AggregateTypeCampaign, campaign.Key, EventGoalReached, goalReachedEvent{
				Goal:        campaign.Goal,
				RaisedTotal: campaign.RaisedTotal,
			})
			if err != nil {
				return err
			}
		}

		result = campaign
		return nil
	})
	if err != nil {
		return model.Campaign{}, err
	}
	return result, nil
}

// WithdrawFunds sweeps the campaign custody, the platform fee goes to the treasury first
func (s *Service) WithdrawFunds(ctx context.Context, campaignKey string, caller string) (WithdrawOutput, error) {
	if err := checkIdentity(caller); err != nil {
		return WithdrawOutput{}, err
	}

	var result WithdrawOutput
	err := s.execute(ctx, OpWithdrawFunds, func(ctx context.Context, op *operation) error {
		campaign, err := s.lockCampaign(ctx, campaignKey)
		if err != nil {
			return err
		}

		if !campaign.IsFunded {
			return ErrCampaignNotFunded
		}
		if caller != campaign.Creator {
			return ErrUnauthorized
		}

		balance, err := s.ledger.Balance(ctx, campaign.Key, model.AssetNative)
		if err != nil {
			return fmt.Errorf("campaign balance: %w", err)
		}
		if balance == 0 {
			return ErrNothingToWithdraw
		}

		fee, creatorAmount, err := ComputeFee(balance, s.conf.FeeNumerator, s.conf.FeeDenominator)
		if err != nil {
			return err
		}

		treasury := keys.TreasuryAuthority()
		err = s.ledger.Transfer(ctx, ledger.TransferInput{
			From:      campaign.Key,
			To:        treasury,
			Authority: campaign.Key,
			ToKind:    model.CustodyKindTreasury,
			Asset:     model.AssetNative,
			Amount:    fee,
		})
		if err != nil {
			return translateLedgerError(err)
		}

		err = s.ledger.Transfer(ctx, ledger.TransferInput{
			From:      campaign.Key,
			To:        campaign.Creator,
			Authority: campaign.Key,
			ToKind:    model.CustodyKindAccount,
			Asset:     model.AssetNative,
			Amount:    creatorAmount,
		})
		if err != nil {
			return translateLedgerError(err)
		}

		op.log(
			zap.String("campaign", campaign.Key),
			zap.Uint64("fee", fee),
			zap.Uint64("creator_amount", creatorAmount),
		)

		err = op.emit(model.AggregateTypeCampaign, campaign.Key, EventFundsWithdrawn, fundsWithdrawnEvent{
			Creator:       campaign.Creator,
			Fee:           fee,
			CreatorAmount: creatorAmount,
		})
		if err != nil {
			return err
		}
		err = op.emit(model.AggregateTypeTreasury, treasury, EventFeeCollected, feeCollectedEvent{
			CampaignKey: campaign.Key,
			Fee:         fee,
		})
		if err != nil {
			return err
		}

		result = WithdrawOutput{
			Fee:           fee,
			CreatorAmount: creatorAmount,
		}
		return nil
	})
	if err != nil {
		return WithdrawOutput{}, err
	}
	return result, nil
}

// ClaimRefund returns the recorded contribution of the supporter
func (s *Service) ClaimRefund(ctx context.Context, campaignKey string, supporter string) (uint64, error) {
	if err := checkIdentity(supporter); err != nil {
		return 0, err
	}

	var refund uint64
	err := s.execute(ctx, OpClaimRefund, func(ctx context.Context, op *operation) error {
		campaign, err := s.lockCampaign(ctx, campaignKey)
		if err != nil {
			return err
		}

		if !op.now.After(campaign.EndTime) {
			return ErrCampaignStillActive
		}
		if campaign.IsFunded {
			return ErrCampaignAlreadyFunded
		}

		// keyed by (campaign, supporter), so the record belongs to both
		funding, err := s.lockFunding(ctx, campaign.Key, supporter)
		if err != nil {
			return err
		}
		if funding.IsRefundClaimed {
			return ErrRefundAlreadyClaimed
		}
		if funding.RewardClaimed {
			return ErrNftAlreadyMinted
		}

		err = s.ledger.Transfer(ctx, ledger.TransferInput{
			From:      campaign.Key,
			To:        supporter,
			Authority: campaign.Key,
			ToKind:    model.CustodyKindAccount,
			Asset:     model.AssetNative,
			Amount:    funding.Amount,
		})
		if err != nil {
			return translateLedgerError(err)
		}

		funding.IsRefundClaimed = true
		funding.UpdatedAt = op.now
		if err := s.fundingRepo.UpdateFunding(ctx, funding); err != nil {
			return fmt.Errorf("update supporter funding: %w", err)
		}

		op.log(
			zap.String("campaign", campaign.Key),
			zap.String("supporter", supporter),
			zap.Uint64("amount", funding.Amount),
		)

		refund = funding.Amount
		return op.emit(model.AggregateTypeCampaign, campaign.Key, EventRefundClaimed, refundClaimedEvent{
			Supporter: supporter,
			Amount:    funding.Amount,
		})
	})
	if err != nil {
		return 0, err
	}
	return refund, nil
}

// WithdrawTreasury ...
func (s *Service) WithdrawTreasury(ctx context.Context, caller string, amount uint64) error {
	if err := checkIdentity(caller); err != nil {
		return err
	}
	return s.execute(ctx, OpWithdrawTreasury, func(ctx context.Context, op *operation) error {
		if caller != s.conf.Admin {
			return ErrUnauthorized
		}

		treasury := keys.TreasuryAuthority()
		balance, err := s.ledger.Balance(ctx, treasury, model.AssetNative)
		if err != nil {
			return fmt.Errorf("treasury balance: %w", err)
		}
		if balance < amount {
			return ErrInsufficientFunds
		}

		err = s.ledger.Transfer(ctx, ledger.TransferInput{
			From:      treasury,
			To:        caller,
			Authority: treasury,
			ToKind:    model.CustodyKindAccount,
			Asset:     model.AssetNative,
			Amount:    amount,
		})
		if err != nil {
			return translateLedgerError(err)
		}

		op.log(zap.String("admin", caller), zap.Uint64("amount", amount))
		return op.emit(model.AggregateTypeTreasury, treasury, EventTreasuryWithdrawn, treasuryWithdrawnEvent{
			Admin:  caller,
			Amount: amount,
		})
	})
}

// TransferRewardToEscrow moves the single reward token of the creator into the campaign escrow
func (s *Service) TransferRewardToEscrow(ctx context.Context, campaignKey string, caller string) error {
	if err := checkIdentity(caller); err != nil {
		return err
	}
	return s.execute(ctx, OpTransferRewardToEscrow, func(ctx context.Context, op *operation) error {
		campaign, err := s.lockCampaign(ctx, campaignKey)
		if err != nil {
			return err
		}

		if caller != campaign.Creator {
			return ErrUnauthorized
		}
		if campaign.NftInEscrow {
			return ErrNftAlreadyInEscrow
		}

		escrowAuthority := keys.EscrowAuthority(campaign.Key)
		err = s.tokens.TransferToken(ctx, ledger.TokenTransfer{
			TokenID:   campaign.RewardTokenID,
			From:      caller,
			To:        escrowAuthority,
			Authority: caller,
			ToKind:    model.CustodyKindEscrow,
		})
		if err != nil {
			return translateLedgerError(err)
		}

		campaign.NftInEscrow = true
		campaign.UpdatedAt = op.now
		if err := s.campaignRepo.UpdateCampaign(ctx, campaign); err != nil {
			return fmt.Errorf("update campaign: %w", err)
		}

		op.invalidate(campaign.Key)
		op.log(zap.String("campaign", campaign.Key), zap.String("token_id", campaign.RewardTokenID))
		return op.emit(model.AggregateTypeCampaign, campaign.Key, EventRewardEscrowed, rewardEscrowedEvent{
			TokenID:         campaign.RewardTokenID,
			EscrowAuthority: escrowAuthority,
		})
	})
}

// ClaimReward assigns the next edition to the supporter and releases the reward from escrow
func (s *Service) ClaimReward(ctx context.Context, campaignKey string, supporter string) (ClaimRewardOutput, error) {
	if err := checkIdentity(supporter); err != nil {
		return ClaimRewardOutput{}, err
	}

	var result ClaimRewardOutput
	err := s.execute(ctx, OpClaimReward, func(ctx context.Context, op *operation) error {
		campaign, err := s.lockCampaign(ctx, campaignKey)
		if err != nil {
			return err
		}

		funding, err := s.lockFunding(ctx, campaign.Key, supporter)
		if err != nil {
			return err
		}

		if !campaign.IsFunded {
			return ErrCampaignNotFunded
		}
		if !campaign.NftInEscrow {
			return ErrNftNotInEscrow
		}
		if funding.RewardClaimed {
			return ErrNftAlreadyMinted
		}
		if funding.IsRefundClaimed {
			return ErrRefundAlreadyClaimed
		}
		if campaign.EditionsMinted >= campaign.MaxEditions {
			return ErrMaxEditionsReached
		}

		minted, err := safemath.Add(campaign.EditionsMinted, 1)
		if err != nil {
			return ErrArithmetic
		}
		campaign.EditionsMinted = minted
		campaign.UpdatedAt = op.now

		escrowAuthority := keys.EscrowAuthority(campaign.Key)
		err = s.tokens.TransferToken(ctx, ledger.TokenTransfer{
			TokenID:   campaign.RewardTokenID,
			From:      escrowAuthority,
			To:        supporter,
			Authority: escrowAuthority,
			ToKind:    model.CustodyKindAccount,
		})
		if err != nil {
			return translateLedgerError(err)
		}

		funding.RewardClaimed = true
		funding.EditionNumber = minted
		funding.RewardInstanceID = sql.NullString{Valid: true, String: campaign.RewardTokenID}
		funding.UpdatedAt = op.now

		if err := s.fundingRepo.UpdateFunding(ctx, funding); err != nil {
			return fmt.Errorf("update supporter funding: %w", err)
		}
		if err := s.campaignRepo.UpdateCampaign(ctx, campaign); err != nil {
			return fmt.Errorf("update campaign: %w", err)
		}

		op.invalidate(campaign.Key)
		op.log(
			zap.String("campaign", campaign.Key),
			zap.String("supporter", supporter),
			zap.Uint64("edition", minted),
		)

		result = ClaimRewardOutput{
			EditionNumber:    minted,
			RewardInstanceID: campaign.RewardTokenID,
		}
		return op.emit(model.AggregateTypeCampaign, campaign.Key, EventRewardClaimed, rewardClaimedEvent{
			Supporter:        supporter,
			EditionNumber:    minted,
			RewardInstanceID: campaign.RewardTokenID,
		})
	})
	if err != nil {
		return ClaimRewardOutput{}, err
	}
	return result, nil
}

// AdminUpdateClaim records a reward claimed outside of the escrow.
// The edition counter follows the highest edition ever recorded, it is not incremented.
//
// Deprecated: use ClaimReward.
func (s *Service) AdminUpdateClaim(ctx context.Context, input AdminUpdateClaimInput) error {
	if err := s.validateInput(input); err != nil {
		return err
	}
	if input.EditionNumber == 0 {
		return ErrInvalidInput.WithMessage("edition number must be positive")
	}
	if err := checkIdentity(input.Caller, input.Supporter); err != nil {
		return err
	}

	return s.execute(ctx, OpAdminUpdateClaim, func(ctx context.Context, op *operation) error {
		campaign, err := s.lockCampaign(ctx, input.CampaignKey)
		if err != nil {
			return err
		}

		funding, err := s.lockFunding(ctx, campaign.Key, input.Supporter)
		if err != nil {
			return err
		}
		if input.Caller != funding.Supporter {
			return ErrUnauthorized
		}

		if !campaign.IsFunded {
			return ErrCampaignNotFunded
		}
		if funding.RewardClaimed {
			return ErrNftAlreadyMinted
		}
		if funding.IsRefundClaimed {
			return ErrRefundAlreadyClaimed
		}
		if input.EditionNumber > campaign.MaxEditions {
			return ErrMaxEditionsReached
		}

		if input.EditionNumber > campaign.EditionsMinted {
			campaign.EditionsMinted = input.EditionNumber
			campaign.UpdatedAt = op.now
			if err := s.campaignRepo.UpdateCampaign(ctx, campaign); err != nil {
				return fmt.Errorf("update campaign: %w", err)
			}
		}

		funding.RewardClaimed = true
		funding.EditionNumber = input.EditionNumber
		funding.RewardInstanceID = sql.NullString{Valid: true, String: input.RewardInstanceID}
		funding.UpdatedAt = op.now
		if err := s.fundingRepo.UpdateFunding(ctx, funding); err != nil {
			return fmt.Errorf("update supporter funding: %w", err)
		}

		op.invalidate(campaign.Key)
		op.log(
			zap.String("campaign", campaign.Key),
			zap.String("supporter", input.Supporter),
			zap.Uint64("edition", input.EditionNumber),
		)
		return op.emit(model.AggregateTypeCampaign, campaign.Key, EventRewardClaimUpdated, rewardClaimedEvent{
			Supporter:        input.Supporter,
			EditionNumber:    input.EditionNumber,
			RewardInstanceID: input.RewardInstanceID,
		})
	})
}

// Deposit credits value to an identity, only when deposits are enabled
func (s *Service) Deposit(ctx context.Context, owner string, amount uint64) error {
	if !s.conf.AllowDeposit {
		return ErrDepositDisabled
	}
	if owner == "" {
		return ErrInvalidInput.WithMessage("owner is required")
	}
	if err := checkIdentity(owner); err != nil {
		return err
	}
	if amount == 0 {
		return ErrInvalidAmount
	}

	return s.execute(ctx, OpDeposit, func(ctx context.Context, op *operation) error {
		err := s.ledger.Mint(ctx, owner, model.AssetNative, model.CustodyKindAccount, amount)
		if err != nil {
			return translateLedgerError(err)
		}

		op.log(zap.String("owner", owner), zap.Uint64("amount", amount))
		return op.emit(model.AggregateTypeCustody, owner, EventDeposited, depositedEvent{
			Asset:  model.AssetNative,
			Amount: amount,
		})
	})
}

// MintRewardToken creates the single unit of a reward token held by owner
func (s *Service) MintRewardToken(ctx context.Context, owner string, tokenID string) error {
	if !s.conf.AllowDeposit {
		return ErrDepositDisabled
	}
	if owner == "" || tokenID == "" {
		return ErrInvalidInput.WithMessage("owner and token id are required")
	}
	if err := checkIdentity(owner); err != nil {
		return err
	}

	return s.execute(ctx, OpMintRewardToken, func(ctx context.Context, op *operation) error {
		if err := s.tokens.MintToken(ctx, tokenID, owner, 1); err != nil {
			return translateLedgerError(err)
		}

		op.log(zap.String("owner", owner), zap.String("token_id", tokenID))
		return op.emit(model.AggregateTypeCustody, owner, EventRewardTokenMinted, depositedEvent{
			Asset:  ledger.TokenAsset(tokenID),
			Amount: 1,
		})
	})
}
