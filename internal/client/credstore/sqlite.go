package credstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/craftops/atelier/internal/common"
	"github.com/craftops/atelier/internal/dbx"
)

// SQLiteStore keeps the credential record in a local sqlite database so it
// survives process restarts.
type SQLiteStore struct {
	db dbx.DBTX
}

func NewSQLiteStore(db dbx.DBTX) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Save(ctx context.Context, cred StoredCredential) error {
	value, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("failed to encode credential: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, common.CredentialKey, value)
	if err != nil {
		return fmt.Errorf("failed to save credential: %w", err)
	}
	return nil
}

// Load returns the previously saved credential. A missing row, an unreadable
// database, or a record that fails to decode all report ok=false.
func (s *SQLiteStore) Load(ctx context.Context) (StoredCredential, bool) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM credentials WHERE key = ?`, common.CredentialKey).Scan(&value)
	if err != nil {
		return StoredCredential{}, false
	}

	var cred StoredCredential
	if err := json.Unmarshal(value, &cred); err != nil {
		return StoredCredential{}, false
	}
	if cred.Token == "" {
		return StoredCredential{}, false
	}
	return cred, true
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM credentials WHERE key = ?`, common.CredentialKey)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}
