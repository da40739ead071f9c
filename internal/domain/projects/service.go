package projects

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Spok95/project-assistant/internal/apperr"
	"github.com/Spok95/project-assistant/internal/domain/users"
	"github.com/Spok95/project-assistant/internal/infra/notify"
)

type Service struct {
	repo     *Repo
	notifier notify.Notifier
	log      *slog.Logger
}

func NewService(repo *Repo, notifier notify.Notifier, log *slog.Logger) *Service {
	if notifier == nil {
		notifier = notify.Nop{}
	}
	return &Service{repo: repo, notifier: notifier, log: log}
}

// Create проверяет черновик, сохраняет проект и показывает уведомление.
// При ошибке валидации в хранилище ничего не пишется.
func (s *Service) Create(ctx context.Context, uid string, d Draft) (Project, error) {
	if uid == "" {
		return Project{}, users.ErrNotSignedIn
	}
	p, err := d.Validate()
	if err != nil {
		return Project{}, err
	}
	id, err := s.repo.Add(ctx, uid, p)
	if err != nil {
		return Project{}, err
	}
	p.ID = id
	s.log.Info("project created", "uid", uid, "project_id", id)

	s.notifier.Show("Project created", fmt.Sprintf("Project '%s' was created successfully.", p.Name))
	return p, nil
}

func (s *Service) List(ctx context.Context, uid string) ([]Project, error) {
	if uid == "" {
		return nil, users.ErrNotSignedIn
	}
	return s.repo.List(ctx, uid)
}

func (s *Service) Delete(ctx context.Context, uid, id string) error {
	if uid == "" {
		return users.ErrNotSignedIn
	}
	if strings.TrimSpace(id) == "" {
		return apperr.Invalid("project id is required")
	}
	if err := s.repo.Delete(ctx, uid, id); err != nil {
		return err
	}
	s.log.Info("project deleted", "uid", uid, "project_id", id)
	return nil
}
