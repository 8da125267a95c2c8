package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"modernc.org/sqlite"
)

// ErrDuplicateKey is returned when an insert collides with an existing unique key
var ErrDuplicateKey = errors.New("repository: duplicate key")

type dialect int

const (
	dialectMySQL dialect = iota + 1
	dialectSQLite
)

func dialectOf(driverName string) dialect {
	if driverName == "sqlite" {
		return dialectSQLite
	}
	return dialectMySQL
}

// forUpdate: SQLite has no row locks, its transactions are serialized by the database lock
func (d dialect) forUpdate() string {
	if d == dialectSQLite {
		return ""
	}
	return " FOR UPDATE"
}

const (
	mysqlErrDuplicateEntry = 1062
	sqliteErrConstraint    = 19
)

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrDuplicateEntry
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		// extended result codes keep the primary code in the low byte
		if sqliteErr.Code()&0xff != sqliteErrConstraint {
			return false
		}
		msg := sqliteErr.Error()
		return strings.Contains(msg, "UNIQUE") || strings.Contains(msg, "PRIMARY KEY")
	}
	return false
}

func translateInsertError(err error) error {
	if isDuplicateKey(err) {
		return ErrDuplicateKey
	}
	return err
}
