package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/QuangTung97/crowd-escrow/model"
)

// Custody ...
type Custody interface {
	GetCustody(ctx context.Context, key string) (model.NullCustody, error)
	LockCustody(ctx context.Context, key string) (model.NullCustody, error)
	InsertCustody(ctx context.Context, custody model.Custody) error
	UpdateCustodyBalance(ctx context.Context, key string, balance uint64, updatedAt time.Time) error

	FindCustodiesByOwner(ctx context.Context, owner string) ([]model.Custody, error)
}

type custodyImpl struct {
}

// NewCustody ...
func NewCustody() Custody {
	return &custodyImpl{}
}

const custodyColumns = `custody_key, owner, asset, kind, balance, created_at, updated_at`

func getCustody(ctx context.Context, db Readonly, query string, key string) (model.NullCustody, error) {
	var custody model.Custody
	err := db.GetContext(ctx, &custody, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return model.NullCustody{}, nil
	}
	if err != nil {
		return model.NullCustody{}, err
	}
	return model.NullCustody{
		Valid:   true,
		Custody: custody,
	}, nil
}

// GetCustody ...
func (c *custodyImpl) GetCustody(ctx context.Context, key string) (model.NullCustody, error) {
	query := `SELECT ` + custodyColumns + ` FROM custody WHERE custody_key = ?`
	return getCustody(ctx, GetReadonly(ctx), query, key)
}

// LockCustody ...
func (c *custodyImpl) LockCustody(ctx context.Context, key string) (model.NullCustody, error) {
	query := `SELECT ` + custodyColumns + ` FROM custody WHERE custody_key = ?` + forUpdate(ctx)
	return getCustody(ctx, GetTx(ctx), query, key)
}

// InsertCustody ...
func (c *custodyImpl) InsertCustody(ctx context.Context, custody model.Custody) error {
	query := `
INSERT INTO custody (` + custodyColumns + `)
VALUES (:custody_key, :owner, :asset, :kind, :balance, :created_at, :updated_at)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, custody)
	return translateInsertError(err)
}

// UpdateCustodyBalance ...
func (c *custodyImpl) UpdateCustodyBalance(ctx context.Context, key string, balance uint64, updatedAt time.Time) error {
	query := `UPDATE custody SET balance = ?, updated_at = ? WHERE custody_key = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, balance, updatedAt, key)
	return err
}

// FindCustodiesByOwner ...
func (c *custodyImpl) FindCustodiesByOwner(ctx context.Context, owner string) ([]model.Custody, error) {
	query := `SELECT ` + custodyColumns + ` FROM custody WHERE owner = ? ORDER BY asset`
	var result []model.Custody
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, owner)
	return result, err
}
