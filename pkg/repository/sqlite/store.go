// Package sqlite provides the SQLite-backed record store
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/syscmd/pkg/domain"
	"github.com/m-mizutani/syscmd/pkg/domain/interfaces"
	"github.com/m-mizutani/syscmd/pkg/domain/model"
	"github.com/m-mizutani/syscmd/pkg/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// Store persists command records in SQLite
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var _ interfaces.RecordStore = (*Store)(nil)

// Open opens or creates the database at path and applies embedded migrations
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, goerr.New("database path is required")
	}

	dsn := MemoryPath
	if path != MemoryPath {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, domain.ErrRepository.Wrap(err)
	}
	if path == MemoryPath {
		// every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, domain.ErrRepository.Wrap(err)
	}

	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, domain.ErrRepository.Wrap(err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database handle
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Create inserts one record
func (s *Store) Create(ctx context.Context, command, name, output string) (*model.CommandRecord, error) {
	createdAt := s.now().UTC()

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO command_records (command, name, output, created_at) VALUES (?, ?, ?, ?)`,
		command, name, output, createdAt.UnixMilli(),
	)
	if err != nil {
		return nil, domain.ErrRepository.Wrap(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, domain.ErrRepository.Wrap(err)
	}

	return &model.CommandRecord{
		ID:        id,
		Command:   command,
		Name:      name,
		Output:    output,
		CreatedAt: time.UnixMilli(createdAt.UnixMilli()).UTC(),
	}, nil
}

// Get returns one record by ID
func (s *Store) Get(ctx context.Context, id int64) (*model.CommandRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, command, name, output, created_at FROM command_records WHERE id = ?`, id,
	)

	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(domain.ErrRecordNotFound, "no such record", goerr.V("id", id))
	}
	if err != nil {
		return nil, domain.ErrRepository.Wrap(err)
	}
	return record, nil
}

// List returns up to limit records, newest first. A non-positive limit returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]*model.CommandRecord, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, command, name, output, created_at FROM command_records
		 ORDER BY id DESC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, domain.ErrRepository.Wrap(err)
	}
	defer rows.Close()

	var records []*model.CommandRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, domain.ErrRepository.Wrap(err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrRepository.Wrap(err)
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*model.CommandRecord, error) {
	var record model.CommandRecord
	var createdAt int64
	if err := row.Scan(&record.ID, &record.Command, &record.Name, &record.Output, &createdAt); err != nil {
		return nil, err
	}
	record.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &record, nil
}
