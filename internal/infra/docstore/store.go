package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Spok95/project-assistant/internal/apperr"
)

var ErrNotFound = apperr.New(apperr.KindNotFound, "document not found")

type Fields = map[string]any

type Document struct {
	ID     string
	Fields Fields
}

// Store — удалённое документное хранилище. Коллекция — путь вида
// "materials" или "users/<uid>/projects". Операции над разными документами
// независимы: ни транзакций, ни версий, последняя запись выигрывает.
type Store interface {
	// Get возвращает поля документа; ok=false, если документа нет (это не ошибка).
	Get(ctx context.Context, collection, id string) (fields Fields, ok bool, err error)
	// Set полностью перезаписывает документ (создаёт при отсутствии).
	Set(ctx context.Context, collection, id string, fields Fields) error
	// UpdateField меняет одно поле, создавая документ при отсутствии.
	UpdateField(ctx context.Context, collection, id, field string, value any) error
	// Add создаёт документ со сгенерированным id.
	Add(ctx context.Context, collection string, fields Fields) (string, error)
	// Delete удаляет документ; ErrNotFound, если его нет.
	Delete(ctx context.Context, collection, id string) error
	// List возвращает документы коллекции в порядке создания.
	List(ctx context.Context, collection string) ([]Document, error)
}

// Path собирает путь коллекции из сегментов: Path("users", uid, "projects").
func Path(segments ...string) string {
	return strings.Join(segments, "/")
}

func encode(fields Fields) ([]byte, error) {
	if fields == nil {
		fields = Fields{}
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}
	return raw, nil
}

// decode сохраняет числа как json.Number, чтобы целые не превращались во float64.
func decode(raw []byte) (Fields, error) {
	out := Fields{}
	if len(raw) == 0 {
		return out, nil
	}
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	return out, nil
}

func validateKey(collection, id string) error {
	if strings.TrimSpace(collection) == "" {
		return errors.New("collection is required")
	}
	if strings.TrimSpace(id) == "" {
		return errors.New("document id is required")
	}
	return nil
}
