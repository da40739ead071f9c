package notify

import (
	"log/slog"
)

// Notifier показывает уведомление пользователю. Вызов не блокирует и не
// возвращает ошибку: доставка best-effort.
type Notifier interface {
	Show(title, body string)
}

// Log пишет уведомления в лог.
type Log struct{ log *slog.Logger }

func NewLog(log *slog.Logger) *Log { return &Log{log: log} }

func (n *Log) Show(title, body string) {
	n.log.Info("notification", "title", title, "body", body)
}

// Multi рассылает уведомление во все каналы по очереди.
type Multi []Notifier

func (m Multi) Show(title, body string) {
	for _, n := range m {
		if n != nil {
			n.Show(title, body)
		}
	}
}

// Nop ничего не делает.
type Nop struct{}

func (Nop) Show(string, string) {}
