package seeder

import (
	"context"
	"fmt"
	"strings"

	"career-compass/internal/database"
)

// EnsureTableColumns fails when the table lacks any of the given columns, so a
// seeder never writes into a schema it does not understand.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	if table == "" {
		return fmt.Errorf("empty table")
	}

	rows, err := db.Query(
		ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema='public' AND table_name=$1`,
		table,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	existing := map[string]struct{}{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return err
		}
		existing[c] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if missing := missingColumns(existing, columns); len(missing) > 0 {
		return fmt.Errorf("schema mismatch: table %s missing columns %s", table, strings.Join(missing, ", "))
	}
	return nil
}

func missingColumns(existing map[string]struct{}, columns []string) []string {
	var missing []string
	for _, col := range columns {
		if col == "" {
			continue
		}
		if _, ok := existing[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}
