package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/Spok95/project-assistant/internal/apperr"
	"github.com/Spok95/project-assistant/internal/domain/materials"
	"github.com/Spok95/project-assistant/internal/domain/users"
	"github.com/Spok95/project-assistant/internal/infra/docstore"
)

type Repo struct{ store docstore.Store }

func NewRepo(store docstore.Store) *Repo { return &Repo{store: store} }

// Get читает остатки пользователя. Нет документа — пустой инвентарь, не ошибка.
func (r *Repo) Get(ctx context.Context, uid string) (materials.Inventory, error) {
	if uid == "" {
		return nil, users.ErrNotSignedIn
	}
	f, ok, err := r.store.Get(ctx, Collection, uid)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}
	if !ok {
		return materials.Inventory{}, nil
	}
	return materials.InventoryFromFields(f), nil
}

// AddMaterial записывает одно поле документа (создаёт документ при отсутствии).
func (r *Repo) AddMaterial(ctx context.Context, uid, name string, qty int) error {
	if uid == "" {
		return users.ErrNotSignedIn
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return apperr.Invalid("material name is required")
	}
	if qty <= 0 {
		return apperr.Invalid("quantity must be a positive number")
	}
	if err := r.store.UpdateField(ctx, Collection, uid, name, qty); err != nil {
		return fmt.Errorf("add material %q: %w", name, err)
	}
	return nil
}

// Save полностью перезаписывает документ. Последняя запись выигрывает,
// версии не проверяются.
func (r *Repo) Save(ctx context.Context, uid string, inv materials.Inventory) error {
	if uid == "" {
		return users.ErrNotSignedIn
	}
	if err := r.store.Set(ctx, Collection, uid, Snapshot(inv).Fields()); err != nil {
		return fmt.Errorf("save inventory: %w", err)
	}
	return nil
}
