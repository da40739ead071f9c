package blob

import (
	"context"
	"database/sql"
	"errors"
)

// SQLite хранит файлы в таблице blobs локальной базы.
type SQLite struct {
	db   *sql.DB
	base string
}

func NewSQLite(db *sql.DB, publicURL string) *SQLite {
	return &SQLite{db: db, base: publicURL}
}

func (s *SQLite) Upload(ctx context.Context, path, contentType string, data []byte) error {
	p, err := CleanPath(path)
	if err != nil {
		return err
	}
	if data == nil {
		data = []byte{}
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO blobs (path, content_type, data)
		VALUES (?, ?, ?)
		ON CONFLICT (path)
		DO UPDATE SET content_type = excluded.content_type, data = excluded.data, created_at = CURRENT_TIMESTAMP
	`, p, contentTypeOrDefault(contentType), data)
	return err
}

func (s *SQLite) DownloadURL(ctx context.Context, path string) (string, error) {
	p, err := CleanPath(path)
	if err != nil {
		return "", err
	}
	var one int
	err = s.db.QueryRowContext(ctx, `SELECT 1 FROM blobs WHERE path = ?`, p).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return URL(s.base, p), nil
}

func (s *SQLite) Open(ctx context.Context, path string) (Object, error) {
	p, err := CleanPath(path)
	if err != nil {
		return Object{}, err
	}
	var o Object
	err = s.db.QueryRowContext(ctx, `SELECT content_type, data FROM blobs WHERE path = ?`, p).
		Scan(&o.ContentType, &o.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return Object{}, ErrNotFound
	}
	return o, err
}
