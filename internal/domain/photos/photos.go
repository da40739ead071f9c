package photos

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/Spok95/project-assistant/internal/apperr"
	"github.com/Spok95/project-assistant/internal/domain/users"
	"github.com/Spok95/project-assistant/internal/infra/blob"
	"github.com/Spok95/project-assistant/internal/infra/docstore"
)

// DateLayout — формат даты снимка в записи.
const DateLayout = "2006-01-02 15:04:05"

type Photo struct {
	ID   string `json:"id"`
	URI  string `json:"uri"`
	Date string `json:"date"`
}

// Service загружает фото работ в файловое хранилище и ведёт их список.
type Service struct {
	store docstore.Store
	blobs blob.Storage
	log   *slog.Logger
}

func NewService(store docstore.Store, blobs blob.Storage, log *slog.Logger) *Service {
	return &Service{store: store, blobs: blobs, log: log}
}

func collection(uid string) string { return docstore.Path("users", uid, "photos") }

// BlobPath — путь файла: users/<uid>/photos/<имя файла>.
func BlobPath(uid, fileName string) string {
	return docstore.Path("users", uid, "photos", fileName)
}

// Upload сохраняет файл, получает ссылку и добавляет запись {uri, date}.
// Файл и запись пишутся отдельно: при ошибке второго шага файл остаётся.
func (s *Service) Upload(ctx context.Context, uid, fileName string, data []byte, takenAt time.Time) (Photo, error) {
	if uid == "" {
		return Photo{}, users.ErrNotSignedIn
	}
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(fileName), "\\", "/"))
	if name == "" || name == "." || name == "/" || name == ".." {
		return Photo{}, apperr.Invalid("file name is required")
	}
	if len(data) == 0 {
		return Photo{}, apperr.Invalid("photo is empty")
	}

	p := BlobPath(uid, name)
	if err := s.blobs.Upload(ctx, p, http.DetectContentType(data), data); err != nil {
		return Photo{}, fmt.Errorf("upload photo: %w", err)
	}
	uri, err := s.blobs.DownloadURL(ctx, p)
	if err != nil {
		return Photo{}, fmt.Errorf("photo url: %w", err)
	}

	ph := Photo{URI: uri, Date: takenAt.Format(DateLayout)}
	id, err := s.store.Add(ctx, collection(uid), docstore.Fields{"uri": ph.URI, "date": ph.Date})
	if err != nil {
		return Photo{}, fmt.Errorf("save photo record: %w", err)
	}
	ph.ID = id
	s.log.Info("photo uploaded", "uid", uid, "path", p)
	return ph, nil
}

func (s *Service) List(ctx context.Context, uid string) ([]Photo, error) {
	if uid == "" {
		return nil, users.ErrNotSignedIn
	}
	docs, err := s.store.List(ctx, collection(uid))
	if err != nil {
		return nil, fmt.Errorf("load photos: %w", err)
	}
	out := make([]Photo, 0, len(docs))
	for _, d := range docs {
		ph := Photo{ID: d.ID}
		ph.URI, _ = d.Fields["uri"].(string)
		ph.Date, _ = d.Fields["date"].(string)
		out = append(out, ph)
	}
	return out, nil
}
