package blob

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Spok95/project-assistant/internal/apperr"
)

var ErrNotFound = apperr.New(apperr.KindNotFound, "file not found")

const DefaultContentType = "application/octet-stream"

// Object — содержимое файла вместе с типом.
type Object struct {
	ContentType string
	Data        []byte
}

// Storage — файловое хранилище. Пути вида "users/<uid>/photos/<file>".
type Storage interface {
	// Upload сохраняет байты по пути, перезаписывая существующий файл.
	Upload(ctx context.Context, path, contentType string, data []byte) error
	// DownloadURL возвращает публичную ссылку на загруженный файл.
	DownloadURL(ctx context.Context, path string) (string, error)
	// Open читает файл для отдачи по ссылке.
	Open(ctx context.Context, path string) (Object, error)
}

// URL строит ссылку <base>/files/<path>, экранируя сегменты пути.
func URL(base, path string) string {
	segs := strings.Split(path, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	return strings.TrimRight(base, "/") + "/files/" + strings.Join(segs, "/")
}

// CleanPath проверяет путь: без пустых сегментов, "." и "..".
func CleanPath(path string) (string, error) {
	p := strings.Trim(path, "/")
	if p == "" {
		return "", apperr.Invalid("file path is required")
	}
	for _, s := range strings.Split(p, "/") {
		if s == "" || s == "." || s == ".." {
			return "", apperr.Invalid(fmt.Sprintf("invalid file path %q", path))
		}
	}
	return p, nil
}

func contentTypeOrDefault(ct string) string {
	if strings.TrimSpace(ct) == "" {
		return DefaultContentType
	}
	return ct
}
