// Package sqlite persists portfolio holdings in a SQLite database file.
//
// It is an alternative to the text portfolio file: holdings are saved as rows
// of a single table, in portfolio order, and loaded back with the same
// tolerance for invalid entries.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/etnz/eportfolio"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS holdings (
	position   INTEGER PRIMARY KEY,
	type       TEXT NOT NULL,
	symbol     TEXT NOT NULL,
	name       TEXT NOT NULL,
	quantity   INTEGER NOT NULL,
	price      TEXT NOT NULL,
	book_value TEXT NOT NULL
)`

// Open opens the database at path and makes sure the schema exists.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return db, nil
}

// Save replaces the content of the database at path with holdings.
func Save(ctx context.Context, path string, holdings []*eportfolio.Holding) error {
	db, err := Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM holdings"); err != nil {
		return fmt.Errorf("failed to clear holdings: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO holdings (position, type, symbol, name, quantity, price, book_value) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, h := range holdings {
		_, err := stmt.ExecContext(ctx, i, h.Kind().String(), h.Symbol(), h.Name(), h.Quantity(),
			h.Price().Decimal().String(), h.BookValue().Decimal().String())
		if err != nil {
			return fmt.Errorf("failed to insert %q: %w", h.Symbol(), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit holdings: %w", err)
	}
	return nil
}

// Load returns the holdings stored in the database at path, in portfolio order.
// Invalid rows are logged as warnings and skipped.
func Load(ctx context.Context, path string, log zerolog.Logger) ([]*eportfolio.Holding, error) {
	db, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		"SELECT position, type, symbol, name, quantity, price, book_value FROM holdings ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}
	defer rows.Close()

	var holdings []*eportfolio.Holding
	seen := make(map[string]bool)
	for rows.Next() {
		var (
			position                       int
			typ, symbol, name, price, book string
			quantity                       int
		)
		if err := rows.Scan(&position, &typ, &symbol, &name, &quantity, &price, &book); err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		h, err := decodeRow(typ, symbol, name, quantity, price, book)
		if err == nil && seen[strings.ToLower(h.Symbol())] {
			err = fmt.Errorf("symbol %q is already defined", symbol)
		}
		if err != nil {
			log.Warn().Int("position", position).Str("symbol", symbol).Err(err).Msg("skipping invalid investment row")
			continue
		}
		seen[strings.ToLower(h.Symbol())] = true
		holdings = append(holdings, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read holdings: %w", err)
	}
	return holdings, nil
}

func decodeRow(typ, symbol, name string, quantity int, price, book string) (*eportfolio.Holding, error) {
	kind, err := eportfolio.ParseKind(typ)
	if err != nil {
		return nil, err
	}
	p, err := eportfolio.ParseMoney(price)
	if err != nil {
		return nil, err
	}
	b, err := eportfolio.ParseMoney(book)
	if err != nil {
		return nil, err
	}
	return eportfolio.NewHolding(kind, symbol, name, quantity, p, b)
}
