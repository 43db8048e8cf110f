package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jdalisay/pitaka/internal/common"
	"github.com/jdalisay/pitaka/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements the TabularStore interface on a local SQLite
// file, storing each table as ordered rows of JSON-encoded cells. It is
// the offline backend and the snapshot target for integration tests.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLite store instance.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("%w: dbPath cannot be empty", common.ErrInvalidConfig)
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteStore{db: db, dbPath: dbPath}
	if err := s.migrate(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS sheet_tables (
		name   TEXT PRIMARY KEY,
		header TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS sheet_rows (
		table_name TEXT NOT NULL REFERENCES sheet_tables(name),
		row_index  INTEGER NOT NULL,
		cells      TEXT NOT NULL,
		PRIMARY KEY (table_name, row_index)
	);`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return err
	}
	return nil
}

// CreateTable creates an empty table with the given header, replacing any
// existing table of the same name.
func (s *SQLiteStore) CreateTable(ctx context.Context, name string, header []string) error {
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to encode header: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sheet_rows WHERE table_name = ?`, name); err != nil {
		return fmt.Errorf("failed to clear rows: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO sheet_tables (name, header) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET header = excluded.header`,
		name, string(headerJSON)); err != nil {
		return fmt.Errorf("failed to save table header: %w", err)
	}
	return tx.Commit()
}

// ReadTable implements the TabularStore interface.
func (s *SQLiteStore) ReadTable(ctx context.Context, name string) (*service.Table, error) {
	var headerJSON string
	err := s.db.QueryRowContext(ctx, `SELECT header FROM sheet_tables WHERE name = ?`, name).Scan(&headerJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", common.ErrTableNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read table header: %w", err)
	}

	var header []string
	if err := json.Unmarshal([]byte(headerJSON), &header); err != nil {
		return nil, fmt.Errorf("failed to decode header for %s: %w", name, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT cells FROM sheet_rows WHERE table_name = ? ORDER BY row_index`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	defer func() { _ = rows.Close() }()

	table := &service.Table{Name: name, Header: header}
	for rows.Next() {
		var cellsJSON string
		if err := rows.Scan(&cellsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		var cells []any
		if err := json.Unmarshal([]byte(cellsJSON), &cells); err != nil {
			return nil, fmt.Errorf("failed to decode row in %s: %w", name, err)
		}
		table.Rows = append(table.Rows, cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}
	return table, nil
}

// AppendRow implements the TabularStore interface.
func (s *SQLiteStore) AppendRow(ctx context.Context, name string, row []any) error {
	if err := s.ensureTable(ctx, name); err != nil {
		return err
	}
	cellsJSON, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to encode row: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sheet_rows (table_name, row_index, cells)
		 SELECT ?, COALESCE(MAX(row_index), -1) + 1, ? FROM sheet_rows WHERE table_name = ?`,
		name, string(cellsJSON), name)
	if err != nil {
		return fmt.Errorf("failed to append row to %s: %w", name, err)
	}
	return nil
}

// UpdateRow implements the TabularStore interface.
func (s *SQLiteStore) UpdateRow(ctx context.Context, name string, rowIndex int, row []any) error {
	if err := s.ensureTable(ctx, name); err != nil {
		return err
	}
	cellsJSON, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to encode row: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE sheet_rows SET cells = ? WHERE table_name = ? AND row_index = ?`,
		string(cellsJSON), name, rowIndex)
	if err != nil {
		return fmt.Errorf("failed to update row %d in %s: %w", rowIndex, name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("row %d out of range for table %s", rowIndex, name)
	}
	return nil
}

// UpdateRows implements the TabularStore interface.
func (s *SQLiteStore) UpdateRows(ctx context.Context, name string, startRow int, rows [][]any) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, row := range rows {
		cellsJSON, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("failed to encode row: %w", err)
		}
		res, err := tx.ExecContext(ctx,
			`UPDATE sheet_rows SET cells = ? WHERE table_name = ? AND row_index = ?`,
			string(cellsJSON), name, startRow+i)
		if err != nil {
			return fmt.Errorf("failed to update row %d in %s: %w", startRow+i, name, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check update result: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("row %d out of range for table %s", startRow+i, name)
		}
	}
	return tx.Commit()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureTable(ctx context.Context, name string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM sheet_tables WHERE name = ?`, name).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", common.ErrTableNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("failed to check table %s: %w", name, err)
	}
	return nil
}
