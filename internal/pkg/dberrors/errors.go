package dberrors

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	sqlite "modernc.org/sqlite"
)

// sqliteConstraint is the SQLITE_CONSTRAINT primary result code; extended codes
// such as SQLITE_CONSTRAINT_UNIQUE (2067) carry it in their low byte.
const sqliteConstraint = 19

// IsUniqueViolation reports whether err is a unique-constraint violation from
// either supported backend: PostgreSQL (pgx, SQLSTATE 23505) or SQLite.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code()&0xff == sqliteConstraint &&
			strings.Contains(sqliteErr.Error(), "UNIQUE")
	}

	return false
}

// IsNoRows reports whether err means the query matched nothing.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
