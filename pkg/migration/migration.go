package migration

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/QuangTung97/crowd-escrow/migrations"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

// Dialect names used both as sqlx driver names and migration directories
const (
	DialectMySQL  = "mysql"
	DialectSQLite = "sqlite"
)

// New creates a migrate instance over an already opened database.
// Closing the returned instance also closes db.
func New(db *sqlx.DB) (*migrate.Migrate, error) {
	dialect := db.DriverName()

	src, err := iofs.New(migrations.FS, dialect)
	if err != nil {
		return nil, fmt.Errorf("open migration source %q: %w", dialect, err)
	}

	var driver database.Driver
	switch dialect {
	case DialectMySQL:
		driver, err = mysql.WithInstance(db.DB, &mysql.Config{})
	case DialectSQLite:
		driver, err = sqlite.WithInstance(db.DB, &sqlite.Config{})
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
	if err != nil {
		return nil, fmt.Errorf("open migration driver: %w", err)
	}

	return migrate.NewWithInstance("iofs", src, dialect, driver)
}

// Up applies all pending migrations
func Up(db *sqlx.DB) error {
	m, err := New(db)
	if err != nil {
		return err
	}
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// MustUpForTesting ...
func MustUpForTesting(db *sqlx.DB) {
	if err := Up(db); err != nil {
		panic(err)
	}
}

// MigrateCommand returns the cobra command for managing the schema of db
func MigrateCommand(connect func() *sqlx.DB) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "manage database schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				return Up(connect())
			},
		},
		&cobra.Command{
			Use:   "down [steps]",
			Short: "revert migrations, one step by default",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				steps := 1
				if len(args) > 0 {
					n, err := strconv.Atoi(args[0])
					if err != nil || n <= 0 {
						return fmt.Errorf("invalid steps %q", args[0])
					}
					steps = n
				}

				m, err := New(connect())
				if err != nil {
					return err
				}
				defer func() { _, _ = m.Close() }()
				return m.Steps(-steps)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "print current schema version",
			RunE: func(cmd *cobra.Command, args []string) error {
				m, err := New(connect())
				if err != nil {
					return err
				}
				defer func() { _, _ = m.Close() }()

				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Println("VERSION: none")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Println("VERSION:", version, "DIRTY:", dirty)
				return nil
			},
		},
	)
	return cmd
}
