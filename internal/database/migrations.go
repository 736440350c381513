package database

import (
	"context"
	"fmt"
)

// Collections are the document tables. Every table has the same shape: the
// JSON document in doc, its id duplicated as the primary key, and seq
// recording insertion order.
var Collections = []string{
	"crops",
	"market_prices",
	"schemes",
	"storage_guides",
	"qa_pairs",
	"weather_cache",
}

func collectionMigrations(name string) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		seq BIGSERIAL NOT NULL,
		id TEXT PRIMARY KEY,
		doc JSONB NOT NULL
	)`, name),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_seq ON %s(seq)`, name, name),
	}
}

func migrations() []string {
	var stmts []string
	for _, name := range Collections {
		stmts = append(stmts, collectionMigrations(name)...)
	}

	// Market prices are listed newest first.
	stmts = append(stmts,
		`CREATE INDEX IF NOT EXISTS idx_market_prices_date ON market_prices ((doc #>> '{date}'))`,
	)
	return stmts
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations() {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
