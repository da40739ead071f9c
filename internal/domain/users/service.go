package users

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Spok95/project-assistant/internal/apperr"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service — регистрация и вход по email/паролю. Если передана сессия,
// она отражает результат последнего входа/выхода.
type Service struct {
	repo    *Repo
	session *Session
	log     *slog.Logger
	now     func() time.Time
	cost    int
}

func NewService(repo *Repo, session *Session, log *slog.Logger) *Service {
	return &Service{repo: repo, session: session, log: log, now: time.Now, cost: bcrypt.DefaultCost}
}

// SignUp создаёт пользователя. Пароль и подтверждение должны совпадать.
func (s *Service) SignUp(ctx context.Context, email, password, confirm string) (*User, error) {
	email = strings.TrimSpace(email)
	switch {
	case email == "" || !strings.Contains(email, "@"):
		return nil, apperr.Invalid("please enter a valid email")
	case password != confirm:
		return nil, apperr.Invalid("passwords do not match")
	case len(password) < MinPasswordLen:
		return nil, apperr.Invalid(fmt.Sprintf("password must be at least %d characters", MinPasswordLen))
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := User{UID: uuid.NewString(), Email: email, CreatedAt: s.now().UTC().Truncate(time.Second)}
	if err := s.repo.Create(ctx, u, string(hash)); err != nil {
		return nil, err
	}
	s.log.Info("user registered", "uid", u.UID)

	if s.session != nil {
		s.session.set(&u)
	}
	return &u, nil
}

// SignIn проверяет email и пароль.
func (s *Service) SignIn(ctx context.Context, email, password string) (*User, error) {
	email = strings.TrimSpace(email)
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	hash, err := s.repo.PasswordHash(ctx, u.UID)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}
	if hash == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if s.session != nil {
		s.session.set(u)
	}
	return u, nil
}

func (s *Service) SignOut() {
	if s.session != nil {
		s.session.set(nil)
	}
}

// Lookup возвращает профиль по uid.
func (s *Service) Lookup(ctx context.Context, uid string) (*User, error) {
	if uid == "" {
		return nil, ErrNotSignedIn
	}
	u, err := s.repo.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrNotSignedIn
	}
	return u, nil
}
