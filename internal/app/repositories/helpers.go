package repositories

import (
	"database/sql"
	"fmt"
)

// requireRowAffected turns a zero-row mutation into the given not-found error.
func requireRowAffected(res sql.Result, notFound error) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
