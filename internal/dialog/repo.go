package dialog

import (
	"context"
	"errors"
	"strconv"

	"github.com/Spok95/project-assistant/internal/infra/docstore"
)

// Collection — состояния диалогов, документ = id чата.
const Collection = "dialogs"

type Repo struct {
	store docstore.Store
}

func NewRepo(store docstore.Store) *Repo { return &Repo{store: store} }

func docID(chatID int64) string { return strconv.FormatInt(chatID, 10) }

func (r *Repo) Get(ctx context.Context, chatID int64) (*Item, error) {
	f, ok, err := r.store.Get(ctx, Collection, docID(chatID))
	if err != nil {
		return nil, err
	}
	// нет документа — состояния пока нет
	if !ok {
		return &Item{ChatID: chatID, State: StateIdle, Payload: Payload{}}, nil
	}
	state, _ := f["state"].(string)
	p, _ := f["payload"].(map[string]any)
	if p == nil {
		p = Payload{}
	}
	return &Item{ChatID: chatID, State: State(state), Payload: p}, nil
}

func (r *Repo) Set(ctx context.Context, chatID int64, state State, payload Payload) error {
	if payload == nil {
		payload = Payload{}
	}
	return r.store.Set(ctx, Collection, docID(chatID), docstore.Fields{
		"state":   string(state),
		"payload": map[string]any(payload),
	})
}

func (r *Repo) Reset(ctx context.Context, chatID int64) error {
	err := r.store.Delete(ctx, Collection, docID(chatID))
	if errors.Is(err, docstore.ErrNotFound) {
		return nil
	}
	return err
}

// GetString Helper для безопасного чтения строк из payload
func GetString(p Payload, key string) (string, bool) {
	v, ok := p[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
