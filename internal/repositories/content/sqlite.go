package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/solution-quest/internal/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS content_rows (
    dataset  TEXT    NOT NULL,
    position INTEGER NOT NULL,
    fields   TEXT    NOT NULL,
    PRIMARY KEY (dataset, position)
);
`

// SQLiteSource stores dataset rows in a single SQLite table. Each row keeps
// its position within the dataset and its fields as a JSON array.
type SQLiteSource struct {
	db *sql.DB
}

// SQLiteConfig contains configuration for a SQLite source
type SQLiteConfig struct {
	Path string
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", cfg.Path, vb)
	return vb.Build()
}

// OpenSQLite opens (creating if needed) a SQLite content database
func OpenSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteSource, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	dsn := filepath.Clean(strings.TrimSpace(cfg.Path)) + "?_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open content database")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping content database")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create content schema")
	}

	return &SQLiteSource{db: db}, nil
}

// Close closes the database handle
func (s *SQLiteSource) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Rows returns the rows of a dataset in position order
func (s *SQLiteSource) Rows(ctx context.Context, dataset string) ([][]string, error) {
	rs, err := s.db.QueryContext(ctx,
		`SELECT fields FROM content_rows WHERE dataset = ? ORDER BY position`, dataset)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to query dataset").
			WithMeta("dataset", dataset)
	}
	defer func() { _ = rs.Close() }()

	var rows [][]string
	for rs.Next() {
		var raw string
		if err := rs.Scan(&raw); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan row").
				WithMeta("dataset", dataset)
		}

		var fields []string
		if err := json.Unmarshal([]byte(raw), &fields); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to decode row").
				WithMeta("dataset", dataset)
		}
		rows = append(rows, fields)
	}
	if err := rs.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read dataset").
			WithMeta("dataset", dataset)
	}

	return rows, nil
}

// ReplaceDataset swaps every row of a dataset for the given rows in one transaction
func (s *SQLiteSource) ReplaceDataset(ctx context.Context, dataset string, rows [][]string) error {
	if strings.TrimSpace(dataset) == "" {
		return errors.InvalidArgument("dataset is required")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin import")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM content_rows WHERE dataset = ?`, dataset); err != nil {
		return errors.Wrapf(err, "failed to clear dataset %s", dataset)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO content_rows (dataset, position, fields) VALUES (?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "failed to prepare insert")
	}
	defer func() { _ = stmt.Close() }()

	for i, row := range rows {
		encoded, err := json.Marshal(row)
		if err != nil {
			return errors.Wrapf(err, "failed to encode row %d", i)
		}
		if _, err := stmt.ExecContext(ctx, dataset, i, string(encoded)); err != nil {
			return errors.Wrapf(err, "failed to insert row %d of %s", i, dataset)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit import")
	}
	return nil
}
