package bot

import (
	"context"
	"log/slog"

	"github.com/Spok95/project-assistant/internal/dialog"
	"github.com/Spok95/project-assistant/internal/domain/estimate"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// API — часть *tgbotapi.BotAPI, которой пользуется бот.
type API interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

// Bot — чат-калькулятор: штукатурка и краска для гостя, с таблицей xlsx.
type Bot struct {
	api       API
	log       *slog.Logger
	states    *dialog.Repo
	estimates *estimate.Service
}

func New(api API, log *slog.Logger, states *dialog.Repo, estimates *estimate.Service) *Bot {
	return &Bot{api: api, log: log, states: states, estimates: estimates}
}

func (b *Bot) Run(ctx context.Context, timeoutSec int) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeoutSec
	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, upd)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, upd tgbotapi.Update) {
	switch {
	case upd.Message != nil:
		b.onMessage(ctx, upd.Message)
	case upd.CallbackQuery != nil:
		b.onCallback(ctx, upd.CallbackQuery)
	}
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send failed", "err", err)
	}
}

func (b *Bot) answerCallback(cb *tgbotapi.CallbackQuery, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, text)); err != nil {
		b.log.Error("callback answer failed", "err", err)
	}
}
