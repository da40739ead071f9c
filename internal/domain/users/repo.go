package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Spok95/project-assistant/internal/infra/docstore"
)

type Repo struct{ store docstore.Store }

func NewRepo(store docstore.Store) *Repo { return &Repo{store: store} }

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Get возвращает профиль по uid; nil, если пользователя нет.
func (r *Repo) Get(ctx context.Context, uid string) (*User, error) {
	f, ok, err := r.store.Get(ctx, Collection, uid)
	if err != nil || !ok {
		return nil, err
	}
	u := &User{UID: uid}
	u.Email, _ = f["email"].(string)
	if s, _ := f["created_at"].(string); s != "" {
		u.CreatedAt, _ = time.Parse(time.RFC3339, s)
	}
	return u, nil
}

// GetByEmail ищет пользователя по email; nil, если не найден.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*User, error) {
	f, ok, err := r.store.Get(ctx, emailsCollection, normalizeEmail(email))
	if err != nil || !ok {
		return nil, err
	}
	uid, _ := f["uid"].(string)
	if uid == "" {
		return nil, nil
	}
	return r.Get(ctx, uid)
}

// PasswordHash возвращает bcrypt-хэш пароля; пустая строка, если его нет.
func (r *Repo) PasswordHash(ctx context.Context, uid string) (string, error) {
	f, ok, err := r.store.Get(ctx, credentialsCollection, uid)
	if err != nil || !ok {
		return "", err
	}
	h, _ := f["password_hash"].(string)
	return h, nil
}

// Create записывает профиль {email, uid}, хэш пароля и индекс email.
// Документы пишутся по отдельности, без транзакции.
func (r *Repo) Create(ctx context.Context, u User, passwordHash string) error {
	if err := r.store.Set(ctx, Collection, u.UID, docstore.Fields{
		"email":      u.Email,
		"uid":        u.UID,
		"created_at": u.CreatedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	if err := r.store.Set(ctx, credentialsCollection, u.UID, docstore.Fields{
		"password_hash": passwordHash,
	}); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}
	if err := r.store.Set(ctx, emailsCollection, normalizeEmail(u.Email), docstore.Fields{
		"uid": u.UID,
	}); err != nil {
		return fmt.Errorf("save email index: %w", err)
	}
	return nil
}
