package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Readonly for wrapping sqlx functionalities
type Readonly interface {
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Transaction for wrapping sqlx functionalities
type Transaction interface {
	Readonly

	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

var _ Transaction = &sqlx.DB{}
var _ Transaction = &sqlx.Tx{}

// Provider for creating Readonly and Transaction
type Provider interface {
	// Transact runs fn inside one transaction. Every record written by fn is committed
	// together, or none is when fn returns an error or panics.
	// A nested call joins the transaction of its caller.
	Transact(ctx context.Context, fn func(ctx context.Context) error) error

	Readonly(ctx context.Context) context.Context
}

type providerImpl struct {
	db      *sqlx.DB
	dialect dialect
}

// NewProvider ...
func NewProvider(db *sqlx.DB) Provider {
	return &providerImpl{
		db:      db,
		dialect: dialectOf(db.DriverName()),
	}
}

// Transact ...
func (p *providerImpl) Transact(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(ctxTxKey).(ctxTxValue); ok {
		return fn(ctx)
	}

	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		} else if err != nil {
			_ = tx.Rollback()
		}
	}()

	ctx = context.WithValue(ctx, ctxTxKey, ctxTxValue{
		tx:      tx,
		dialect: p.dialect,
	})

	err = fn(ctx)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Readonly ...
func (p *providerImpl) Readonly(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxReadonlyKey, ctxReadonlyValue{
		db: p.db,
	})
}
