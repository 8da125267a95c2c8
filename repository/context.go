package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// GetTx get Transaction from context
func GetTx(ctx context.Context) Transaction {
	tx, ok := ctx.Value(ctxTxKey).(ctxTxValue)
	if !ok {
		panic("Not found transaction")
	}
	return tx.tx
}

// GetReadonly get Readonly from context, the transaction is used when inside Transact
func GetReadonly(ctx context.Context) Readonly {
	if tx, ok := ctx.Value(ctxTxKey).(ctxTxValue); ok {
		return tx.tx
	}
	db, ok := ctx.Value(ctxReadonlyKey).(ctxReadonlyValue)
	if !ok {
		panic("Not found readonly repository")
	}
	return db.db
}

// forUpdate returns the row locking clause of the transaction's dialect
func forUpdate(ctx context.Context) string {
	tx, ok := ctx.Value(ctxTxKey).(ctxTxValue)
	if !ok {
		panic("Not found transaction")
	}
	return tx.dialect.forUpdate()
}

type ctxTxKeyType struct {
}

type ctxReadonlyKeyType struct {
}

var ctxTxKey = ctxTxKeyType{}
var ctxReadonlyKey = ctxReadonlyKeyType{}

type ctxTxValue struct {
	tx      *sqlx.Tx
	dialect dialect
}

type ctxReadonlyValue struct {
	db *sqlx.DB
}
