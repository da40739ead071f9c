package docstore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/google/uuid"
)

type memDoc struct {
	seq    int64
	fields []byte
}

// Memory — хранилище в памяти для тестов и режима store.driver=memory.
// Поля хранятся в JSON, чтобы вести себя так же, как настоящие бэкенды.
type Memory struct {
	mu   sync.Mutex
	seq  int64
	data map[string]map[string]memDoc
}

func NewMemory() *Memory {
	return &Memory{data: map[string]map[string]memDoc{}}
}

func (m *Memory) Get(_ context.Context, collection, id string) (Fields, bool, error) {
	if err := validateKey(collection, id); err != nil {
		return nil, false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.data[collection][id]
	if !ok {
		return nil, false, nil
	}
	f, err := decode(d.fields)
	return f, err == nil, err
}

func (m *Memory) put(collection, id string, raw []byte) {
	col, ok := m.data[collection]
	if !ok {
		col = map[string]memDoc{}
		m.data[collection] = col
	}
	d, exists := col[id]
	if !exists {
		m.seq++
		d.seq = m.seq
	}
	d.fields = raw
	col[id] = d
}

func (m *Memory) Set(_ context.Context, collection, id string, fields Fields) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	raw, err := encode(fields)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(collection, id, raw)
	return nil
}

func (m *Memory) UpdateField(_ context.Context, collection, id, field string, value any) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	current := map[string]json.RawMessage{}
	if d, ok := m.data[collection][id]; ok {
		if err := json.Unmarshal(d.fields, &current); err != nil {
			return err
		}
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	current[field] = v
	raw, err := json.Marshal(current)
	if err != nil {
		return err
	}
	m.put(collection, id, raw)
	return nil
}

func (m *Memory) Add(ctx context.Context, collection string, fields Fields) (string, error) {
	id := uuid.NewString()
	if err := m.Set(ctx, collection, id, fields); err != nil {
		return "", err
	}
	return id, nil
}

func (m *Memory) Delete(_ context.Context, collection, id string) error {
	if err := validateKey(collection, id); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[collection][id]; !ok {
		return ErrNotFound
	}
	delete(m.data[collection], id)
	return nil
}

func (m *Memory) List(_ context.Context, collection string) ([]Document, error) {
	m.mu.Lock()
	type entry struct {
		id string
		d  memDoc
	}
	entries := make([]entry, 0, len(m.data[collection]))
	for id, d := range m.data[collection] {
		entries = append(entries, entry{id: id, d: d})
	}
	m.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].d.seq < entries[j].d.seq })

	out := make([]Document, 0, len(entries))
	for _, e := range entries {
		f, err := decode(e.d.fields)
		if err != nil {
			return nil, err
		}
		out = append(out, Document{ID: e.id, Fields: f})
	}
	return out, nil
}
