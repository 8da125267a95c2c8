package escrow

import (
	"context"
	"sync"

	"github.com/QuangTung97/crowd-escrow/service/ledger"
)

// Ensure, that TokenProgramMock does implement TokenProgram.
// If this is not the case, regenerate this file with moq.
var _ TokenProgram = &TokenProgramMock{}

// TokenProgramMock is a mock implementation of TokenProgram.
//
//	func TestSomethingThatUsesTokenProgram(t *testing.T) {
//
//		// make and configure a mocked TokenProgram
//		mockedTokenProgram := &TokenProgramMock{
//			MintTokenFunc: func(ctx context.Context, tokenID string, owner string, supply uint64) error {
//				panic("mock out the MintToken method")
//			},
//			TransferTokenFunc: func(ctx context.Context, transfer ledger.TokenTransfer) error {
//				panic("mock out the TransferToken method")
//			},
//		}
//
//		// use mockedTokenProgram in code that requires TokenProgram
//		// and then make assertions.
//
//	}
type TokenProgramMock struct {
	// MintTokenFunc mocks the MintToken method.
	MintTokenFunc func(ctx context.Context, tokenID string, owner string, supply uint64) error

	// TransferTokenFunc mocks the TransferToken method.
	TransferTokenFunc func(ctx context.Context, transfer ledger.TokenTransfer) error

	// calls tracks calls to the methods.
	calls struct {
		// MintToken holds details about calls to the MintToken method.
		MintToken []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// TokenID is the tokenID argument value.
			TokenID string
			// Owner is the owner argument value.
			Owner string
			// Supply is the supply argument value.
			Supply uint64
		}
		// TransferToken holds details about calls to the TransferToken method.
		TransferToken []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Transfer is the transfer argument value.
			Transfer ledger.TokenTransfer
		}
	}
	lockMintToken     sync.RWMutex
	lockTransferToken sync.RWMutex
}

// MintToken calls MintTokenFunc.
func (mock *TokenProgramMock) MintToken(ctx context.Context, tokenID string, owner string, supply uint64) error {
	if mock.MintTokenFunc == nil {
		panic("TokenProgramMock.MintTokenFunc: method is nil but TokenProgram.MintToken was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TokenID string
		Owner   string
		Supply  uint64
	}{
		Ctx:     ctx,
		TokenID: tokenID,
		Owner:   owner,
		Supply:  supply,
	}
	mock.lockMintToken.Lock()
	mock.calls.MintToken = append(mock.calls.MintToken, callInfo)
	mock.lockMintToken.Unlock()
	return mock.MintTokenFunc(ctx, tokenID, owner, supply)
}

// MintTokenCalls gets all the calls that were made to MintToken.
// Check the length with:
//
//	len(mockedTokenProgram.MintTokenCalls())
func (mock *TokenProgramMock) MintTokenCalls() []struct {
	Ctx     context.Context
	TokenID string
	Owner   string
	Supply  uint64
} {
	var calls []struct {
		Ctx     context.Context
		TokenID string
		Owner   string
		Supply  uint64
	}
	mock.lockMintToken.RLock()
	calls = mock.calls.MintToken
	mock.lockMintToken.RUnlock()
	return calls
}

// TransferToken calls TransferTokenFunc.
func (mock *TokenProgramMock) TransferToken(ctx context.Context, transfer ledger.TokenTransfer) error {
	if mock.TransferTokenFunc == nil {
		panic("TokenProgramMock.TransferTokenFunc: method is nil but TokenProgram.TransferToken was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Transfer ledger.TokenTransfer
	}{
		Ctx:      ctx,
		Transfer: transfer,
	}
	mock.lockTransferToken.Lock()
	mock.calls.TransferToken = append(mock.calls.TransferToken, callInfo)
	mock.lockTransferToken.Unlock()
	return mock.TransferTokenFunc(ctx, transfer)
}

// TransferTokenCalls gets all the calls that were made to TransferToken.
// Check the length with:
//
//	len(mockedTokenProgram.TransferTokenCalls())
func (mock *TokenProgramMock) TransferTokenCalls() []struct {
	Ctx      context.Context
	Transfer ledger.TokenTransfer
} {
	var calls []struct {
		Ctx      context.Context
		Transfer ledger.TokenTransfer
	}
	mock.lockTransferToken.RLock()
	calls = mock.calls.TransferToken
	mock.lockTransferToken.RUnlock()
	return calls
}
