package notify

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/Spok95/project-assistant/internal/infra/metrics"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender — часть *tgbotapi.BotAPI, нужная для отправки.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram отправляет уведомления в админский чат. Отправка идёт в
// отдельной горутине, ошибки только логируются.
type Telegram struct {
	api    Sender
	chatID int64
	log    *slog.Logger
	m      *metrics.Metrics

	wg sync.WaitGroup
}

func NewTelegram(api Sender, chatID int64, log *slog.Logger, m *metrics.Metrics) *Telegram {
	return &Telegram{api: api, chatID: chatID, log: log, m: m}
}

// Dial создаёт клиента Bot API по токену.
func Dial(token string) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot api: %w", err)
	}
	return api, nil
}

func (t *Telegram) Show(title, body string) {
	msg := tgbotapi.NewMessage(t.chatID, fmt.Sprintf("🔔 %s\n%s", title, body))
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		_, err := t.api.Send(msg)
		t.m.Notifies.WithLabelValues("telegram", metrics.Result(err)).Inc()
		if err != nil {
			t.log.Error("send failed", "err", err, "title", title)
		}
	}()
}

// Wait дожидается отправки всех начатых уведомлений (для остановки сервиса).
func (t *Telegram) Wait() { t.wg.Wait() }
