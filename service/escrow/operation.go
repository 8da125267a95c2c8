package escrow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/QuangTung97/crowd-escrow/model"
	"github.com/QuangTung97/crowd-escrow/pkg/otellib"
	"github.com/QuangTung97/crowd-escrow/service/ledger"
)

// operation collects what a handler produced while its transaction is open
type operation struct {
	id  string
	now time.Time

	events      []model.Event
	invalidated []string
	fields      []zap.Field
}

func (op *operation) emit(aggregateType model.AggregateType, key string, eventType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", eventType, err)
	}
	op.events = append(op.events, model.Event{
		OpID:          op.id,
		Type:          eventType,
		Data:          data,
		AggregateType: aggregateType,
		AggregateKey:  key,
		CreatedAt:     op.now,
	})
	return nil
}

func (op *operation) invalidate(campaignKey string) {
	op.invalidated = append(op.invalidated, campaignKey)
}

func (op *operation) log(fields ...zap.Field) {
	op.fields = append(op.fields, fields...)
}

// execute runs fn and appends its events in one transaction.
// The cached campaigns fn touched are dropped only after commit.
func (s *Service) execute(
	ctx context.Context, name string, fn func(ctx context.Context, op *operation) error,
) error {
	start := time.Now()
	op := &operation{
		id:  uuid.NewString(),
		now: s.nowFn(),
	}

	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		if err := fn(ctx, op); err != nil {
			return err
		}
		for _, e := range op.events {
			if err := s.eventRepo.InsertEvent(ctx, e); err != nil {
				return fmt.Errorf("insert event %s: %w", e.Type, err)
			}
		}
		return nil
	})
	observeOperation(name, time.Since(start), err)

	logger := otellib.Extract(ctx).With(
		zap.String("operation", name),
		zap.String("op_id", op.id),
	)

	if err != nil {
		code := ErrorCode(err)
		if code == "" {
			logger.Error("operation failed", zap.Error(err))
		} else {
			logger.Debug("operation rejected", zap.String("code", code))
		}
		return err
	}

	for _, key := range op.invalidated {
		s.uncacheCampaign(key)
	}
	logger.Info("operation committed", op.fields...)
	return nil
}

func translateLedgerError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return ErrInsufficientFunds
	case errors.Is(err, ledger.ErrBalanceOverflow):
		return ErrAmountOverflow
	case errors.Is(err, ledger.ErrUnauthorized), errors.Is(err, ledger.ErrSameCustody):
		return ErrUnauthorized
	default:
		return err
	}
}
