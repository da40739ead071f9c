package blob

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres хранит файлы в таблице blobs (bytea).
type Postgres struct {
	pool *pgxpool.Pool
	base string
}

func NewPostgres(pool *pgxpool.Pool, publicURL string) *Postgres {
	return &Postgres{pool: pool, base: publicURL}
}

func (s *Postgres) Upload(ctx context.Context, path, contentType string, data []byte) error {
	p, err := CleanPath(path)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO blobs (path, content_type, data)
		VALUES ($1, $2, $3)
		ON CONFLICT (path)
		DO UPDATE SET content_type = EXCLUDED.content_type, data = EXCLUDED.data, created_at = now()
	`, p, contentTypeOrDefault(contentType), data)
	return err
}

func (s *Postgres) DownloadURL(ctx context.Context, path string) (string, error) {
	p, err := CleanPath(path)
	if err != nil {
		return "", err
	}
	var exists bool
	if err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM blobs WHERE path = $1)`, p).Scan(&exists); err != nil {
		return "", err
	}
	if !exists {
		return "", ErrNotFound
	}
	return URL(s.base, p), nil
}

func (s *Postgres) Open(ctx context.Context, path string) (Object, error) {
	p, err := CleanPath(path)
	if err != nil {
		return Object{}, err
	}
	var o Object
	err = s.pool.QueryRow(ctx, `SELECT content_type, data FROM blobs WHERE path = $1`, p).
		Scan(&o.ContentType, &o.Data)
	if errors.Is(err, pgx.ErrNoRows) {
		return Object{}, ErrNotFound
	}
	return o, err
}
