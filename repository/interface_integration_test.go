package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/QuangTung97/crowd-escrow/pkg/integration"
)

func TestProvider_Readonly__GetReadonly(t *testing.T) {
	tc := integration.NewTestCase(t)

	p := NewProvider(tc.DB)
	ctx := p.Readonly(newContext())

	db := GetReadonly(ctx)

	var version string
	err := db.GetContext(ctx, &version, "SELECT sqlite_version()")
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__GetTransaction(t *testing.T) {
	tc := integration.NewTestCase(t)

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		tx := GetTx(ctx)

		err := tx.GetContext(ctx, &version, "SELECT sqlite_version()")
		assert.Equal(t, nil, err)

		return nil
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__GetReadonly(t *testing.T) {
	tc := integration.NewTestCase(t)

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		db := GetReadonly(ctx)

		err := db.GetContext(ctx, &version, "SELECT sqlite_version()")
		assert.Equal(t, nil, err)

		return nil
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__Multi_Calls_Multi_Levels(t *testing.T) {
	tc := integration.NewTestCase(t)

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		return p.Transact(ctx, func(ctx context.Context) error {
			tx := GetTx(ctx)

			err := tx.GetContext(ctx, &version, "SELECT sqlite_version()")
			assert.Equal(t, nil, err)

			return nil
		})
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__Rollback_On_Error(t *testing.T) {
	tc := integration.NewTestCase(t)
	p := NewProvider(tc.DB)
	repo := NewCustody()

	custody := newCustody("owner01", "native", 100)

	failed := errors.New("failed")
	err := p.Transact(newContext(), func(ctx context.Context) error {
		err := repo.InsertCustody(ctx, custody)
		assert.Equal(t, nil, err)
		return failed
	})
	assert.Equal(t, failed, err)

	result, err := repo.GetCustody(p.Readonly(newContext()), custody.Key)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, result.Valid)
}

func TestProvider_Transact__Rollback_On_Panic(t *testing.T) {
	tc := integration.NewTestCase(t)
	p := NewProvider(tc.DB)
	repo := NewCustody()

	custody := newCustody("owner01", "native", 100)

	assert.PanicsWithValue(t, "some panic", func() {
		_ = p.Transact(newContext(), func(ctx context.Context) error {
			err := repo.InsertCustody(ctx, custody)
			assert.Equal(t, nil, err)
			panic("some panic")
		})
	})

	result, err := repo.GetCustody(p.Readonly(newContext()), custody.Key)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, result.Valid)
}

func TestGetTx__Outside_Transaction(t *testing.T) {
	assert.PanicsWithValue(t, "Not found transaction", func() {
		GetTx(newContext())
	})
}
