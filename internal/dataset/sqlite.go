package dataset

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

const salesSchema = `
CREATE TABLE IF NOT EXISTS daily_sales (
    date TEXT PRIMARY KEY,       -- YYYY-MM-DD
    day_of_the_week TEXT NOT NULL,
    sales REAL NOT NULL CHECK (sales >= 0)
);
`

// SQLiteWriter persists generated sales records to a SQLite database.
type SQLiteWriter struct {
	db   *sql.DB
	path string
}

// NewSQLiteWriter opens (or creates) the database at path and ensures the
// daily_sales table exists.
func NewSQLiteWriter(path string) (*SQLiteWriter, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single writer
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(context.Background(), salesSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteWriter{db: db, path: path}, nil
}

// Write replaces the daily_sales table contents with records, in one
// transaction. Re-running the generator overwrites previous output, same as
// the file writers.
func (w *SQLiteWriter) Write(ctx context.Context, records []Record) error {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM daily_sales`); err != nil {
		return fmt.Errorf("failed to clear previous data: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO daily_sales (date, day_of_the_week, sales) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx,
			r.Date.Format("2006-01-02"), r.Weekday.String(), r.Sales); err != nil {
			return fmt.Errorf("failed to insert %s: %w", r.Date.Format("2006-01-02"), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// Count returns the number of stored daily sales rows.
func (w *SQLiteWriter) Count(ctx context.Context) (int, error) {
	var n int
	if err := w.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM daily_sales`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (w *SQLiteWriter) Close() error {
	return w.db.Close()
}
