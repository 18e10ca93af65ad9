package credential

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/frauddash/go-fraudclient/core"
)

type credentialRecord struct {
	bun.BaseModel `bun:"table:credential_slots,alias:cs"`

	Slot      string    `bun:"slot,pk"`
	Token     string    `bun:"token,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

// SQLiteStore persists the credential slot in a local SQLite file, the
// durable analog of the dashboard's browser-local storage key. One row per
// slot; Set upserts, Clear deletes.
type SQLiteStore struct {
	db   *bun.DB
	slot string
}

// OpenSQLiteStore opens (creating if needed) the backing database at path
// and ensures the slot table exists. Use ":memory:" for a throwaway store.
func OpenSQLiteStore(ctx context.Context, path string, slot string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("credential: sqlite path is required")
	}
	sqldb, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("credential: open sqlite database: %w", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	store, err := NewSQLiteStore(ctx, db, slot)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func NewSQLiteStore(ctx context.Context, db *bun.DB, slot string) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("credential: bun db is required")
	}
	if strings.TrimSpace(slot) == "" {
		slot = DefaultSlot
	}
	if _, err := db.NewCreateTable().
		Model((*credentialRecord)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("credential: ensure slot table: %w", err)
	}
	return &SQLiteStore{db: db, slot: strings.TrimSpace(slot)}, nil
}

func (s *SQLiteStore) Get(ctx context.Context) (string, bool, error) {
	if s == nil || s.db == nil {
		return "", false, core.InternalError("credential: sqlite store is not configured", nil)
	}
	record := new(credentialRecord)
	err := s.db.NewSelect().
		Model(record).
		Where("slot = ?", s.slot).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, core.InternalError("credential: read slot", map[string]any{"error": err.Error()})
	}
	token := strings.TrimSpace(record.Token)
	if token == "" {
		return "", false, nil
	}
	return token, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	if s == nil || s.db == nil {
		return core.InternalError("credential: sqlite store is not configured", nil)
	}
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return core.BadInputError("credential: token is required", nil)
	}
	record := credentialRecord{
		Slot:      s.slot,
		Token:     trimmed,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := s.db.NewInsert().
		Model(&record).
		On("CONFLICT (slot) DO UPDATE").
		Set("token = EXCLUDED.token").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return core.InternalError("credential: write slot", map[string]any{"error": err.Error()})
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if s == nil || s.db == nil {
		return core.InternalError("credential: sqlite store is not configured", nil)
	}
	_, err := s.db.NewDelete().
		Model((*credentialRecord)(nil)).
		Where("slot = ?", s.slot).
		Exec(ctx)
	if err != nil {
		return core.InternalError("credential: clear slot", map[string]any{"error": err.Error()})
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

var _ core.CredentialStore = (*SQLiteStore)(nil)
