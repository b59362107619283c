package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hammamikhairi/forkify/internal/domain"
	"github.com/hammamikhairi/forkify/internal/logger"
)

// LikesSlot is the key under which the likes collection is stored.
const LikesSlot = "likes"

const schema = `
CREATE TABLE IF NOT EXISTS slots (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

var _ domain.LikesStore = (*SQLiteStore)(nil)

// SQLiteStore keeps named JSON slots in a SQLite database.
type SQLiteStore struct {
	db  *sql.DB
	log *logger.Logger
}

// NewSQLiteStore opens (or creates) the database at dbPath.
func NewSQLiteStore(dbPath string, log *logger.Logger) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: create schema: %w", err)
	}

	log = log.With("store")
	log.Debug("opened %s", dbPath)
	return &SQLiteStore{db: db, log: log}, nil
}

// Close releases the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the likes slot. A missing slot yields an empty slice; a slot
// that is not a JSON array of likes is an error.
func (s *SQLiteStore) Load(ctx context.Context) ([]domain.Like, error) {
	raw, err := s.Get(ctx, LikesSlot)
	if errors.Is(err, domain.ErrNotFound) {
		return []domain.Like{}, nil
	}
	if err != nil {
		return nil, err
	}

	var likes []domain.Like
	if err := json.Unmarshal([]byte(raw), &likes); err != nil {
		return nil, fmt.Errorf("storage: decode %s slot: %w", LikesSlot, err)
	}
	if likes == nil {
		likes = []domain.Like{}
	}
	return likes, nil
}

// Save replaces the likes slot with likes.
func (s *SQLiteStore) Save(ctx context.Context, likes []domain.Like) error {
	if likes == nil {
		likes = []domain.Like{}
	}
	data, err := json.Marshal(likes)
	if err != nil {
		return fmt.Errorf("storage: encode %s slot: %w", LikesSlot, err)
	}
	if err := s.Put(ctx, LikesSlot, string(data)); err != nil {
		return err
	}
	s.log.Debug("saved %d likes", len(likes))
	return nil
}

// Get returns the raw value of slot key, or domain.ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("storage: read slot %s: %w", key, err)
	}
	return value, nil
}

// Put upserts slot key.
func (s *SQLiteStore) Put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("storage: write slot %s: %w", key, err)
	}
	return nil
}
