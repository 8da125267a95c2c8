package ledger

import (
	"context"

	"github.com/QuangTung97/crowd-escrow/model"
)

const tokenAssetPrefix = "token:"

// TokenAsset returns the ledger asset of a reward token
func TokenAsset(tokenID string) string {
	return tokenAssetPrefix + tokenID
}

// TokenTransfer moves exactly one unit of a reward token
type TokenTransfer struct {
	TokenID   string
	From      string
	To        string
	Authority string
	ToKind    model.CustodyKind
}

// TransferToken is the token subsystem over custody records
func (s *Service) TransferToken(ctx context.Context, transfer TokenTransfer) error {
	return s.Transfer(ctx, TransferInput{
		From:      transfer.From,
		To:        transfer.To,
		Authority: transfer.Authority,
		ToKind:    transfer.ToKind,
		Asset:     TokenAsset(transfer.TokenID),
		Amount:    1,
	})
}

// MintToken creates a supply of a reward token held by owner
func (s *Service) MintToken(ctx context.Context, tokenID string, owner string, supply uint64) error {
	return s.Mint(ctx, owner, TokenAsset(tokenID), model.CustodyKindAccount, supply)
}
