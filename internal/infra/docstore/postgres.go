package docstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres хранит документы в таблице documents (jsonb).
type Postgres struct{ pool *pgxpool.Pool }

func NewPostgres(pool *pgxpool.Pool) *Postgres { return &Postgres{pool: pool} }

func (s *Postgres) Get(ctx context.Context, collection, id string) (Fields, bool, error) {
	if err := validateKey(collection, id); err != nil {
		return nil, false, err
	}
	var raw []byte
	err := s.pool.QueryRow(ctx, `
		SELECT fields FROM documents WHERE collection = $1 AND id = $2
	`, collection, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	f, err := decode(raw)
	if err != nil {
		return nil, false, err
	}
	return f, true, nil
}

func (s *Postgres) Set(ctx context.Context, collection, id string, fields Fields) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	raw, err := encode(fields)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO documents (collection, id, fields)
		VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (collection, id)
		DO UPDATE SET fields = EXCLUDED.fields, updated_at = now()
	`, collection, id, string(raw))
	return err
}

func (s *Postgres) UpdateField(ctx context.Context, collection, id, field string, value any) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	raw, err := encode(Fields{field: value})
	if err != nil {
		return err
	}
	// верхнеуровневый merge: меняется только одно поле
	_, err = s.pool.Exec(ctx, `
		INSERT INTO documents (collection, id, fields)
		VALUES ($1, $2, $3::jsonb)
		ON CONFLICT (collection, id)
		DO UPDATE SET fields = documents.fields || EXCLUDED.fields, updated_at = now()
	`, collection, id, string(raw))
	return err
}

func (s *Postgres) Add(ctx context.Context, collection string, fields Fields) (string, error) {
	id := uuid.NewString()
	raw, err := encode(fields)
	if err != nil {
		return "", err
	}
	if _, err := s.pool.Exec(ctx, `
		INSERT INTO documents (collection, id, fields)
		VALUES ($1, $2, $3::jsonb)
	`, collection, id, string(raw)); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Postgres) Delete(ctx context.Context, collection, id string) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx, `DELETE FROM documents WHERE collection = $1 AND id = $2`, collection, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Postgres) List(ctx context.Context, collection string) ([]Document, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, fields FROM documents
		WHERE collection = $1
		ORDER BY seq
	`, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		f, err := decode(raw)
		if err != nil {
			return nil, fmt.Errorf("document %s/%s: %w", collection, id, err)
		}
		out = append(out, Document{ID: id, Fields: f})
	}
	return out, rows.Err()
}
