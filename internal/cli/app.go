package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Spok95/project-assistant/internal/api"
	"github.com/Spok95/project-assistant/internal/bot"
	"github.com/Spok95/project-assistant/internal/config"
	"github.com/Spok95/project-assistant/internal/dialog"
	"github.com/Spok95/project-assistant/internal/domain/estimate"
	"github.com/Spok95/project-assistant/internal/domain/inventory"
	"github.com/Spok95/project-assistant/internal/domain/materials"
	"github.com/Spok95/project-assistant/internal/domain/photos"
	"github.com/Spok95/project-assistant/internal/domain/projects"
	"github.com/Spok95/project-assistant/internal/domain/users"
	"github.com/Spok95/project-assistant/internal/infra/blob"
	"github.com/Spok95/project-assistant/internal/infra/db"
	"github.com/Spok95/project-assistant/internal/infra/docstore"
	"github.com/Spok95/project-assistant/internal/infra/metrics"
	"github.com/Spok95/project-assistant/internal/infra/notify"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// app — собранные зависимости сервиса.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	metrics *metrics.Metrics

	store    docstore.Store
	blobs    blob.Storage
	notifier notify.Notifier
	tg       *tgbotapi.BotAPI

	users     *users.Service
	tokens    *users.Tokens
	estimates *estimate.Service
	inventory *inventory.Repo
	projects  *projects.Service
	photos    *photos.Service

	closers []func()
}

// newApp открывает хранилище выбранного драйвера (применяя миграции) и
// собирает сервисы. reg == nil — метрики не регистрируются.
func newApp(ctx context.Context, cfg config.Config, log *slog.Logger, reg prometheus.Registerer) (*app, error) {
	a := &app{cfg: cfg, log: log, metrics: metrics.New(reg)}

	if err := a.openStorage(ctx); err != nil {
		a.Close()
		return nil, err
	}
	a.store = docstore.NewInstrumented(a.store, a.metrics, log)

	if err := a.openTelegram(); err != nil {
		a.Close()
		return nil, err
	}
	if err := a.openNotifier(); err != nil {
		a.Close()
		return nil, err
	}

	secret := cfg.Auth.JWTSecret
	if secret == "" {
		if cfg.App.Env != "dev" {
			a.Close()
			return nil, fmt.Errorf("auth.jwt_secret is required outside dev")
		}
		secret = uuid.NewString()
		log.Warn("auth.jwt_secret is empty, using a random secret; tokens will not survive a restart")
	}

	prices := materials.DefaultPrices().WithOverrides(cfg.Prices)

	a.tokens = users.NewTokens(secret, cfg.Auth.TokenTTL)
	a.users = a.accounts(nil)
	a.inventory = inventory.NewRepo(a.store)
	a.estimates = estimate.NewService(a.inventory, prices, a.metrics, log)
	a.projects = projects.NewService(projects.NewRepo(a.store), a.notifier, log)
	a.photos = photos.NewService(a.store, a.blobs, log)
	return a, nil
}

func (a *app) openStorage(ctx context.Context) error {
	publicURL := a.cfg.App.PublicURL

	switch a.cfg.Store.Driver {
	case config.DriverPostgres:
		if err := db.MigratePostgres(ctx, a.cfg.Store.DSN, a.log); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		pool, err := db.Connect(ctx, a.cfg.Store.DSN)
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		a.closers = append(a.closers, pool.Close)
		a.store = docstore.NewPostgres(pool)
		a.blobs = blob.NewPostgres(pool, publicURL)

	case config.DriverSQLite:
		sqlDB, err := db.OpenSQLite(a.cfg.Store.SQLite)
		if err != nil {
			return err
		}
		a.closers = append(a.closers, func() { _ = sqlDB.Close() })
		if err := db.MigrateSQLite(ctx, sqlDB, a.log); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		a.store = docstore.NewSQLite(sqlDB)
		a.blobs = blob.NewSQLite(sqlDB, publicURL)

	case config.DriverMemory:
		a.store = docstore.NewMemory()
		a.blobs = blob.NewMemory(publicURL)

	default:
		return fmt.Errorf("unknown store driver %q", a.cfg.Store.Driver)
	}
	a.log.Info("store opened", "driver", a.cfg.Store.Driver)
	return nil
}

// accounts — сервис учётных записей над хранилищем приложения. HTTP API
// работает без сессии (пользователь приходит из токена); клиентские
// команды CLI передают свою сессию.
func (a *app) accounts(session *users.Session) *users.Service {
	return users.NewService(users.NewRepo(a.store), session, a.log)
}

// openTelegram подключается к Bot API, если задан токен.
func (a *app) openTelegram() error {
	if a.cfg.Telegram.Token == "" {
		return nil
	}
	api, err := notify.Dial(a.cfg.Telegram.Token)
	if err != nil {
		return err
	}
	a.tg = api
	a.log.Info("telegram connected", "bot", api.Self.UserName)
	return nil
}

func (a *app) openNotifier() error {
	chain := notify.Multi{notify.NewLog(a.log)}
	if a.tg != nil && a.cfg.Telegram.AdminChatID != 0 {
		tg := notify.NewTelegram(a.tg, a.cfg.Telegram.AdminChatID, a.log, a.metrics)
		a.closers = append(a.closers, tg.Wait)
		chain = append(chain, tg)
		a.log.Info("telegram notifications enabled", "chat_id", a.cfg.Telegram.AdminChatID)
	}
	a.notifier = chain
	return nil
}

// Bot возвращает чат-калькулятор или nil, если он выключен.
func (a *app) Bot() *bot.Bot {
	if a.tg == nil || !a.cfg.Telegram.Bot {
		return nil
	}
	a.closers = append(a.closers, a.tg.StopReceivingUpdates)
	return bot.New(a.tg, a.log, dialog.NewRepo(a.store), a.estimates)
}

func (a *app) API() *api.API {
	return api.New(api.Deps{
		Users:     a.users,
		Tokens:    a.tokens,
		Estimates: a.estimates,
		Inventory: a.inventory,
		Projects:  a.projects,
		Photos:    a.photos,
		Blobs:     a.blobs,
		Location:  a.cfg.Location(),
		Log:       a.log,
	})
}

// Close освобождает ресурсы в обратном порядке.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
