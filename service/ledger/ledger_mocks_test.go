package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/QuangTung97/crowd-escrow/model"
	"github.com/QuangTung97/crowd-escrow/repository"
)

// Ensure, that CustodyMock does implement repository.Custody.
// If this is not the case, regenerate this file with moq.
var _ repository.Custody = &CustodyMock{}

// CustodyMock is a mock implementation of repository.Custody.
//
//	func TestSomethingThatUsesCustody(t *testing.T) {
//
//		// make and configure a mocked repository.Custody
//		mockedCustody := &CustodyMock{
//			FindCustodiesByOwnerFunc: func(ctx context.Context, owner string) ([]model.Custody, error) {
//				panic("mock out the FindCustodiesByOwner method")
//			},
//			GetCustodyFunc: func(ctx context.Context, key string) (model.NullCustody, error) {
//				panic("mock out the GetCustody method")
//			},
//			InsertCustodyFunc: func(ctx context.Context, custody model.Custody) error {
//				panic("mock out the InsertCustody method")
//			},
//			LockCustodyFunc: func(ctx context.Context, key string) (model.NullCustody, error) {
//				panic("mock out the LockCustody method")
//			},
//			UpdateCustodyBalanceFunc: func(ctx context.Context, key string, balance uint64, updatedAt time.Time) error {
//				panic("mock out the UpdateCustodyBalance method")
//			},
//		}
//
//		// use mockedCustody in code that requires repository.Custody
//		// and then make assertions.
//
//	}
type CustodyMock struct {
	// FindCustodiesByOwnerFunc mocks the FindCustodiesByOwner method.
	FindCustodiesByOwnerFunc func(ctx context.Context, owner string) ([]model.Custody, error)

	// GetCustodyFunc mocks the GetCustody method.
	GetCustodyFunc func(ctx context.Context, key string) (model.NullCustody, error)

	// InsertCustodyFunc mocks the InsertCustody method.
	InsertCustodyFunc func(ctx context.Context, custody model.Custody) error

	// LockCustodyFunc mocks the LockCustody method.
	LockCustodyFunc func(ctx context.Context, key string) (model.NullCustody, error)

	// UpdateCustodyBalanceFunc mocks the UpdateCustodyBalance method.
	UpdateCustodyBalanceFunc func(ctx context.Context, key string, balance uint64, updatedAt time.Time) error

	// calls tracks calls to the methods.
	calls struct {
		// FindCustodiesByOwner holds details about calls to the FindCustodiesByOwner method.
		FindCustodiesByOwner []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Owner is the owner argument value.
			Owner string
		}
		// GetCustody holds details about calls to the GetCustody method.
		GetCustody []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Key is the key argument value.
			Key string
		}
		// InsertCustody holds details about calls to the InsertCustody method.
		InsertCustody []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Custody is the custody argument value.
			Custody model.Custody
		}
		// LockCustody holds details about calls to the LockCustody method.
		LockCustody []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Key is the key argument value.
			Key string
		}
		// UpdateCustodyBalance holds details about calls to the UpdateCustodyBalance method.
		UpdateCustodyBalance []struct {
			// Ctx is the ctx argument value.
			Ctx context.Context
			// Key is the key argument value.
			Key string
			// Balance is the balance argument value.
			Balance uint64
			// UpdatedAt is the updatedAt argument value.
			UpdatedAt time.Time
		}
	}
	lockFindCustodiesByOwner sync.RWMutex
	lockGetCustody           sync.RWMutex
	lockInsertCustody        sync.RWMutex
	lockLockCustody          sync.RWMutex
	lockUpdateCustodyBalance sync.RWMutex
}

// FindCustodiesByOwner calls FindCustodiesByOwnerFunc.
func (mock *CustodyMock) FindCustodiesByOwner(ctx context.Context, owner string) ([]model.Custody, error) {
	if mock.FindCustodiesByOwnerFunc == nil {
		panic("CustodyMock.FindCustodiesByOwnerFunc: method is nil but Custody.FindCustodiesByOwner was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Owner string
	}{
		Ctx:   ctx,
		Owner: owner,
	}
	mock.lockFindCustodiesByOwner.Lock()
	mock.calls.FindCustodiesByOwner = append(mock.calls.FindCustodiesByOwner, callInfo)
	mock.lockFindCustodiesByOwner.Unlock()
	return mock.FindCustodiesByOwnerFunc(ctx, owner)
}

// FindCustodiesByOwnerCalls gets all the calls that were made to FindCustodiesByOwner.
// Check the length with:
//
//	len(mockedCustody.FindCustodiesByOwnerCalls())
func (mock *CustodyMock) FindCustodiesByOwnerCalls() []struct {
	Ctx   context.Context
	Owner string
} {
	var calls []struct {
		Ctx   context.Context
		Owner string
	}
	mock.lockFindCustodiesByOwner.RLock()
	calls = mock.calls.FindCustodiesByOwner
	mock.lockFindCustodiesByOwner.RUnlock()
	return calls
}

// GetCustody calls GetCustodyFunc.
func (mock *CustodyMock) GetCustody(ctx context.Context, key string) (model.NullCustody, error) {
	if mock.GetCustodyFunc == nil {
		panic("CustodyMock.GetCustodyFunc: method is nil but Custody.GetCustody was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockGetCustody.Lock()
	mock.calls.GetCustody = append(mock.calls.GetCustody, callInfo)
	mock.lockGetCustody.Unlock()
	return mock.GetCustodyFunc(ctx, key)
}

// GetCustodyCalls gets all the calls that were made to GetCustody.
// Check the length with:
//
//	len(mockedCustody.GetCustodyCalls())
func (mock *CustodyMock) GetCustodyCalls() []struct {
	Ctx context.Context
	Key string
} {
	var calls []struct {
		Ctx context.Context
		Key string
	}
	mock.lockGetCustody.RLock()
	calls = mock.calls.GetCustody
	mock.lockGetCustody.RUnlock()
	return calls
}

// InsertCustody calls InsertCustodyFunc.
func (mock *CustodyMock) InsertCustody(ctx context.Context, custody model.Custody) error {
	if mock.InsertCustodyFunc == nil {
		panic("CustodyMock.InsertCustodyFunc: method is nil but Custody.InsertCustody was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Custody model.Custody
	}{
		Ctx:     ctx,
		Custody: custody,
	}
	mock.lockInsertCustody.Lock()
	mock.calls.InsertCustody = append(mock.calls.InsertCustody, callInfo)
	mock.lockInsertCustody.Unlock()
	return mock.InsertCustodyFunc(ctx, custody)
}

// InsertCustodyCalls gets all the calls that were made to InsertCustody.
// Check the length with:
//
//	len(mockedCustody.InsertCustodyCalls())
func (mock *CustodyMock) InsertCustodyCalls() []struct {
	Ctx     context.Context
	Custody model.Custody
} {
	var calls []struct {
		Ctx     context.Context
		Custody model.Custody
	}
	mock.lockInsertCustody.RLock()
	calls = mock.calls.InsertCustody
	mock.lockInsertCustody.RUnlock()
	return calls
}

// LockCustody calls LockCustodyFunc.
func (mock *CustodyMock) LockCustody(ctx context.Context, key string) (model.NullCustody, error) {
	if mock.LockCustodyFunc == nil {
		panic("CustodyMock.LockCustodyFunc: method is nil but Custody.LockCustody was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key string
	}{
		Ctx: ctx,
		Key: key,
	}
	mock.lockLockCustody.Lock()
	mock.calls.LockCustody = append(mock.calls.LockCustody, callInfo)
	mock.lockLockCustody.Unlock()
	return mock.LockCustodyFunc(ctx, key)
}

// LockCustodyCalls gets all the calls that were made to LockCustody.
// Check the length with:
//
//	len(mockedCustody.LockCustodyCalls())
func (mock *CustodyMock) LockCustodyCalls() []struct {
	Ctx context.Context
	Key string
} {
	var calls []struct {
		Ctx context.Context
		Key string
	}
	mock.lockLockCustody.RLock()
	calls = mock.calls.LockCustody
	mock.lockLockCustody.RUnlock()
	return calls
}

// UpdateCustodyBalance calls UpdateCustodyBalanceFunc.
func (mock *CustodyMock) UpdateCustodyBalance(ctx context.Context, key string, balance uint64, updatedAt time.Time) error {
	if mock.UpdateCustodyBalanceFunc == nil {
		panic("CustodyMock.UpdateCustodyBalanceFunc: method is nil but Custody.UpdateCustodyBalance was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Key       string
		Balance   uint64
		UpdatedAt time.Time
	}{
		Ctx:       ctx,
		Key:       key,
		Balance:   balance,
		UpdatedAt: updatedAt,
	}
	mock.lockUpdateCustodyBalance.Lock()
	mock.calls.UpdateCustodyBalance = append(mock.calls.UpdateCustodyBalance, callInfo)
	mock.lockUpdateCustodyBalance.Unlock()
	return mock.UpdateCustodyBalanceFunc(ctx, key, balance, updatedAt)
}

// UpdateCustodyBalanceCalls gets all the calls that were made to UpdateCustodyBalance.
// Check the length with:
//
//	len(mockedCustody.UpdateCustodyBalanceCalls())
func (mock *CustodyMock) UpdateCustodyBalanceCalls() []struct {
	Ctx       context.Context
	Key       string
	Balance   uint64
	UpdatedAt time.Time
} {
	var calls []struct {
		Ctx       context.Context
		Key       string
		Balance   uint64
		UpdatedAt time.Time
	}
	mock.lockUpdateCustodyBalance.RLock()
	calls = mock.calls.UpdateCustodyBalance
	mock.lockUpdateCustodyBalance.RUnlock()
	return calls
}
