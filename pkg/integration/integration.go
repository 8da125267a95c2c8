package integration

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/QuangTung97/crowd-escrow/config"
	"github.com/QuangTung97/crowd-escrow/pkg/migration"

	// registers the "sqlite" driver for NewTestCase
	_ "modernc.org/sqlite"
)

// TestCase ...
type TestCase struct {
	DB   *sqlx.DB
	Conf config.Config
}

// NewTestCase opens a migrated SQLite database private to the test.
// The pool is limited to one connection so that transactions are strictly serialized.
func NewTestCase(t *testing.T) *TestCase {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)",
		filepath.Join(t.TempDir(), "escrow.db"))

	db := sqlx.MustConnect(migration.DialectSQLite, dsn)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = db.Close()
	})

	migration.MustUpForTesting(db)

	conf := config.Config{
		Escrow: config.DefaultEscrowConfig(),
	}
	conf.Escrow.Admin = "admin"

	return &TestCase{
		DB:   db,
		Conf: conf,
	}
}
