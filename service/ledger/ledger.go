// Package ledger is the value-transfer primitive of the escrow.
// Value lives in custody records, one per (owner, asset). A transfer moves value
// between two custody records inside the caller's transaction, so it commits or
// rolls back together with every other record the caller touched.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/QuangTung97/crowd-escrow/model"
	"github.com/QuangTung97/crowd-escrow/pkg/keys"
	"github.com/QuangTung97/crowd-escrow/pkg/safemath"
	"github.com/QuangTung97/crowd-escrow/repository"
)

// ErrInsufficientFunds ...
var ErrInsufficientFunds = errors.New("ledger: insufficient funds")

// ErrBalanceOverflow ...
var ErrBalanceOverflow = errors.New("ledger: balance overflow")

// ErrUnauthorized is returned when the signing authority does not own the source custody
var ErrUnauthorized = errors.New("ledger: authority does not own source custody")

// ErrSameCustody ...
var ErrSameCustody = errors.New("ledger: source and destination are the same custody")

//go:generate moq -pkg ledger -out ledger_mocks_test.go ../../repository Custody

// Ledger ...
type Ledger interface {
	// Balance returns zero for a custody that was never credited
	Balance(ctx context.Context, owner string, asset string) (uint64, error)

	// Transfer must be called inside repository.Provider.Transact
	Transfer(ctx context.Context, input TransferInput) error

	// Mint credits new value to a custody, it must be called inside repository.Provider.Transact
	Mint(ctx context.Context, owner string, asset string, kind model.CustodyKind, amount uint64) error

	Custodies(ctx context.Context, owner string) ([]model.Custody, error)
}

// TransferInput ...
type TransferInput struct {
	From      string
	To        string
	Authority string

	// ToKind is used when the destination custody does not exist yet
	ToKind model.CustodyKind

	Asset  string
	Amount uint64
}

// Service implements Ledger and the token subsystem
type Service struct {
	custodyRepo repository.Custody
	nowFn       func() time.Time
}

var _ Ledger = &Service{}

// Option ...
type Option func(s *Service)

// WithNowFunc ...
func WithNowFunc(nowFn func() time.Time) Option {
	return func(s *Service) {
		s.nowFn = nowFn
	}
}

// NewService ...
func NewService(custodyRepo repository.Custody, options ...Option) *Service {
	s := &Service{
		custodyRepo: custodyRepo,
		nowFn:       time.Now,
	}
	for _, o := range options {
		o(s)
	}
	return s
}

// Balance ...
func (s *Service) Balance(ctx context.Context, owner string, asset string) (uint64, error) {
	custody, err := s.custodyRepo.GetCustody(ctx, keys.CustodyKey(owner, asset))
	if err != nil {
		return 0, err
	}
	return custody.Custody.Balance, nil
}

// Custodies ...
func (s *Service) Custodies(ctx context.Context, owner string) ([]model.Custody, error) {
	return s.custodyRepo.FindCustodiesByOwner(ctx, owner)
}

func (s *Service) lockOrCreate(
	ctx context.Context, owner string, asset string, kind model.CustodyKind,
) (model.Custody, error) {
	key := keys.CustodyKey(owner, asset)

	locked, err := s.custodyRepo.LockCustody(ctx, key)
	if err != nil {
		return model.Custody{}, err
	}
	if locked.Valid {
		return locked.Custody, nil
	}

	now := s.nowFn()
	custody := model.Custody{
		Key:       key,
		Owner:     owner,
		Asset:     asset,
		Kind:      kind,
		Balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.custodyRepo.InsertCustody(ctx, custody)
	if errors.Is(err, repository.ErrDuplicateKey) {
		// created by a concurrent transaction after our lock attempt
		locked, err = s.custodyRepo.LockCustody(ctx, key)
		if err != nil {
			return model.Custody{}, err
		}
		return locked.Custody, nil
	}
	if err != nil {
		return model.Custody{}, err
	}
	return custody, nil
}

// Transfer locks both custodies in key order, so two opposite transfers never wait on each other
func (s *Service) Transfer(ctx context.Context, input TransferInput) error {
	if input.From == input.To {
		return ErrSameCustody
	}
	if input.Authority != input.From {
		return ErrUnauthorized
	}

	fromKey := keys.CustodyKey(input.From, input.Asset)
	toKey := keys.CustodyKey(input.To, input.Asset)

	var from, to model.Custody
	var fromFound bool

	lockFrom := func() error {
		locked, err := s.custodyRepo.LockCustody(ctx, fromKey)
		if err != nil {
			return err
		}
		from = locked.Custody
		fromFound = locked.Valid
		return nil
	}
	lockTo := func() error {
		var err error
		to, err = s.lockOrCreate(ctx, input.To, input.Asset, input.ToKind)
		return err
	}

	first, second := lockFrom, lockTo
	if toKey < fromKey {
		first, second = lockTo, lockFrom
	}
	if err := first(); err != nil {
		return err
	}
	if err := second(); err != nil {
		return err
	}

	if !fromFound || from.Balance < input.Amount {
		return ErrInsufficientFunds
	}

	toBalance, err := safemath.Add(to.Balance, input.Amount)
	if err != nil {
		return ErrBalanceOverflow
	}

	now := s.nowFn()
	if err := s.custodyRepo.UpdateCustodyBalance(ctx, fromKey, from.Balance-input.Amount, now); err != nil {
		return fmt.Errorf("debit custody: %w", err)
	}
	if err := s.custodyRepo.UpdateCustodyBalance(ctx, toKey, toBalance, now); err != nil {
		return fmt.Errorf("credit custody: %w", err)
	}
	return nil
}

// Mint ...
func (s *Service) Mint(ctx context.Context, owner string, asset string, kind model.CustodyKind, amount uint64) error {
	custody, err := s.lockOrCreate(ctx, owner, asset, kind)
	if err != nil {
		return err
	}

	balance, err := safemath.Add(custody.Balance, amount)
	if err != nil {
		return ErrBalanceOverflow
	}
	return s.custodyRepo.UpdateCustodyBalance(ctx, custody.Key, balance, s.nowFn())
}
