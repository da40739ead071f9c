package blob

import (
	"context"
	"sync"
)

// Memory — хранилище файлов в памяти.
type Memory struct {
	base string

	mu   sync.RWMutex
	objs map[string]Object
}

func NewMemory(publicURL string) *Memory {
	return &Memory{base: publicURL, objs: map[string]Object{}}
}

func (m *Memory) Upload(_ context.Context, path, contentType string, data []byte) error {
	p, err := CleanPath(path)
	if err != nil {
		return err
	}
	buf := make([]byte, len(data))
	copy(buf, data)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objs[p] = Object{ContentType: contentTypeOrDefault(contentType), Data: buf}
	return nil
}

func (m *Memory) DownloadURL(_ context.Context, path string) (string, error) {
	p, err := CleanPath(path)
	if err != nil {
		return "", err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.objs[p]; !ok {
		return "", ErrNotFound
	}
	return URL(m.base, p), nil
}

func (m *Memory) Open(_ context.Context, path string) (Object, error) {
	p, err := CleanPath(path)
	if err != nil {
		return Object{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.objs[p]
	if !ok {
		return Object{}, ErrNotFound
	}
	return o, nil
}
