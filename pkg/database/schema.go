package database

import (
	"context"
	"fmt"
)

var schema = []struct {
	table string
	ddl   string
}{
	{
		table: "payments",
		ddl: `
		CREATE TABLE IF NOT EXISTS payments (
			id         UUID PRIMARY KEY,
			reference  VARCHAR(64) NOT NULL UNIQUE,
			account_id BIGINT NOT NULL,
			amount     INTEGER NOT NULL CHECK (amount >= 0),
			status     VARCHAR(20) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
	},
	{
		table: "seat_reservations",
		ddl: `
		CREATE TABLE IF NOT EXISTS seat_reservations (
			id         UUID PRIMARY KEY,
			reference  VARCHAR(64) NOT NULL UNIQUE,
			account_id BIGINT NOT NULL,
			seat_count INTEGER NOT NULL CHECK (seat_count >= 0),
			created_at TIMESTAMPTZ NOT NULL
		)`,
	},
}

// EnsureSchema creates the collaborator tables when they are missing.
func EnsureSchema(ctx context.Context, db PgxIface) error {
	for _, s := range schema {
		if _, err := db.Exec(ctx, s.ddl); err != nil {
			return fmt.Errorf("creating %s table: %w", s.table, err)
		}
	}
	return nil
}
