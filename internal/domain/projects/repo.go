package projects

import (
	"context"
	"fmt"
	"time"

	"github.com/Spok95/project-assistant/internal/infra/docstore"
)

type Repo struct{ store docstore.Store }

func NewRepo(store docstore.Store) *Repo { return &Repo{store: store} }

func collection(uid string) string { return docstore.Path("users", uid, "projects") }

func (r *Repo) Add(ctx context.Context, uid string, p Project) (string, error) {
	id, err := r.store.Add(ctx, collection(uid), docstore.Fields{
		FieldName:        p.Name,
		FieldDescription: p.Description,
		FieldStart:       p.Start.UTC().Format(time.RFC3339),
		FieldEnd:         p.End.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("save project: %w", err)
	}
	return id, nil
}

// List возвращает проекты в порядке создания, каждый со своим id.
func (r *Repo) List(ctx context.Context, uid string) ([]Project, error) {
	docs, err := r.store.List(ctx, collection(uid))
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	out := make([]Project, 0, len(docs))
	for _, d := range docs {
		out = append(out, fromFields(d.ID, d.Fields))
	}
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, uid, id string) error {
	if err := r.store.Delete(ctx, collection(uid), id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func fromFields(id string, f docstore.Fields) Project {
	p := Project{ID: id}
	p.Name, _ = f[FieldName].(string)
	p.Description, _ = f[FieldDescription].(string)
	p.Start = parseStored(f[FieldStart])
	p.End = parseStored(f[FieldEnd])
	return p
}

func parseStored(v any) time.Time {
	s, _ := v.(string)
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
