package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/membank/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/membank/internal/core/domain"
	"github.com/custodia-labs/membank/internal/core/ports/driven"
)

// Store is the SQLite-backed content store. It serves both the raw query
// port used by the retrieval core and the record write port used by outer
// tooling. One connection pool is shared by the whole process.
type Store struct {
	db       *sql.DB
	path     string
	registry *domain.Registry
}

var (
	_ driven.Querier     = (*Store)(nil)
	_ driven.RecordStore = (*Store)(nil)
)

// NewStore opens (or creates) the content database under dataDir.
// If dataDir is empty, defaults to ~/.membank/data/membank.db.
func NewStore(dataDir string, registry *domain.Registry) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".membank", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", domain.ErrStorageUnavailable, err)
	}

	dbPath := filepath.Join(dataDir, "membank.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", domain.ErrStorageUnavailable, err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling foreign keys: %v", domain.ErrStorageUnavailable, err)
	}

	s := &Store{
		db:       db,
		path:     dbPath,
		registry: registry,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Query executes a raw query and returns every row as a column-name map.
// Statement errors map to domain.ErrQuerySyntax; connection-level failures
// map to domain.ErrStorageUnavailable.
func (s *Store) Query(ctx context.Context, query string, args ...any) ([]domain.Row, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, classifyError(err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, classifyError(err)
	}

	var out []domain.Row
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		row := make(domain.Row, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err)
	}
	return out, nil
}

// Save inserts or updates a record in the named registry table. An empty key
// gets a generated UUID. Returns the record's key.
func (s *Store) Save(ctx context.Context, table string, rec domain.Record) (string, error) {
	tbl, err := s.registry.ByName(table)
	if err != nil {
		return "", err
	}

	if rec.Key == "" {
		rec.Key = uuid.NewString()
	}

	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, created_at, %s)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(%s) DO UPDATE SET
			%s = excluded.%s,
			%s = excluded.%s,
			%s = excluded.%s
	`, tbl.Name, tbl.KeyField, tbl.TitleField, tbl.ContentField, tbl.ModifiedField,
		tbl.KeyField,
		tbl.TitleField, tbl.TitleField,
		tbl.ContentField, tbl.ContentField,
		tbl.ModifiedField, tbl.ModifiedField)

	_, err = s.db.ExecContext(ctx, query,
		rec.Key, rec.Title, rec.Content, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return "", fmt.Errorf("saving record to %s: %w", tbl.Name, classifyError(err))
	}
	return rec.Key, nil
}

// Delete removes a record by key.
func (s *Store) Delete(ctx context.Context, table, key string) error {
	tbl, err := s.registry.ByName(table)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", tbl.Name, tbl.KeyField)
	res, err := s.db.ExecContext(ctx, query, key)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", tbl.Name, classifyError(err))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count returns the number of records in the named registry table.
func (s *Store) Count(ctx context.Context, table string) (int, error) {
	tbl, err := s.registry.ByName(table)
	if err != nil {
		return 0, err
	}

	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", tbl.Name)
	if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting %s: %w", tbl.Name, classifyError(err))
	}
	return count, nil
}

// classifyError maps driver errors onto the domain taxonomy. Statement
// rejections (bad syntax, unknown tables or columns) are the caller's
// problem; everything else is a storage fault.
func classifyError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}

	msg := err.Error()
	for _, marker := range []string{
		"syntax error", "no such table", "no such column",
		"no such function", "incomplete input",
	} {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w: %v", domain.ErrQuerySyntax, err)
		}
	}
	if strings.Contains(msg, "unable to open") || strings.Contains(msg, "database is locked") {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return err
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version,
		); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
