package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// SQLite — локальное хранилище (modernc.org/sqlite), та же схема, поля в TEXT.
type SQLite struct{ db *sql.DB }

func NewSQLite(db *sql.DB) *SQLite { return &SQLite{db: db} }

func (s *SQLite) Get(ctx context.Context, collection, id string) (Fields, bool, error) {
	if err := validateKey(collection, id); err != nil {
		return nil, false, err
	}
	var raw string
	err := s.db.QueryRowContext(ctx, `
		SELECT fields FROM documents WHERE collection = ? AND id = ?
	`, collection, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	f, err := decode([]byte(raw))
	if err != nil {
		return nil, false, err
	}
	return f, true, nil
}

func (s *SQLite) Set(ctx context.Context, collection, id string, fields Fields) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	raw, err := encode(fields)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, fields)
		VALUES (?, ?, ?)
		ON CONFLICT (collection, id)
		DO UPDATE SET fields = excluded.fields, updated_at = CURRENT_TIMESTAMP
	`, collection, id, string(raw))
	return err
}

func (s *SQLite) UpdateField(ctx context.Context, collection, id, field string, value any) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	raw, err := encode(Fields{field: value})
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, fields)
		VALUES (?, ?, ?)
		ON CONFLICT (collection, id)
		DO UPDATE SET fields = json_patch(documents.fields, excluded.fields), updated_at = CURRENT_TIMESTAMP
	`, collection, id, string(raw))
	return err
}

func (s *SQLite) Add(ctx context.Context, collection string, fields Fields) (string, error) {
	id := uuid.NewString()
	raw, err := encode(fields)
	if err != nil {
		return "", err
	}
	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (collection, id, fields) VALUES (?, ?, ?)
	`, collection, id, string(raw)); err != nil {
		return "", err
	}
	return id, nil
}

func (s *SQLite) Delete(ctx context.Context, collection, id string) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE collection = ? AND id = ?`, collection, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLite) List(ctx context.Context, collection string) ([]Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, fields FROM documents WHERE collection = ? ORDER BY seq
	`, collection)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Document
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		f, err := decode([]byte(raw))
		if err != nil {
			return nil, fmt.Errorf("document %s/%s: %w", collection, id, err)
		}
		out = append(out, Document{ID: id, Fields: f})
	}
	return out, rows.Err()
}
