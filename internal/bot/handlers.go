package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/Spok95/project-assistant/internal/dialog"
	"github.com/Spok95/project-assistant/internal/domain/estimate"
	"github.com/Spok95/project-assistant/internal/infra/report"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	msgWelcome   = "Hi! I estimate materials for plastering and painting.\nChoose what to calculate or send /plaster <area> <coarse|fine>, /paint <area>."
	msgAskArea   = "Enter the wall area in m², for example 12.5"
	msgBadArea   = "The area must be a positive number, for example 12.5"
	msgAskMode   = "Choose the plaster mode:"
	msgCancelled = "Cancelled."
	msgUnknown   = "I did not understand that. Send /start to see what I can do."
	msgFailed    = "Something went wrong, please try again later."
	msgStale     = "This step is no longer active."

	payloadArea = "area"
)

func (b *Bot) onMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	if msg.IsCommand() {
		b.handleCommand(ctx, chatID, msg.Command(), strings.Fields(msg.CommandArguments()))
		return
	}

	switch text {
	case btnPlaster:
		b.startPlaster(ctx, chatID, nil)
		return
	case btnPaint:
		b.startPaint(ctx, chatID, nil)
		return
	case btnCancel:
		b.cancel(ctx, chatID)
		return
	}

	b.handleStateMessage(ctx, chatID, text)
}

func (b *Bot) handleCommand(ctx context.Context, chatID int64, cmd string, args []string) {
	switch cmd {
	case "start", "help":
		_ = b.states.Reset(ctx, chatID)
		m := tgbotapi.NewMessage(chatID, msgWelcome)
		m.ReplyMarkup = mainReplyKeyboard()
		b.send(m)
	case "plaster":
		b.startPlaster(ctx, chatID, args)
	case "paint":
		b.startPaint(ctx, chatID, args)
	case "cancel":
		b.cancel(ctx, chatID)
	default:
		b.send(tgbotapi.NewMessage(chatID, msgUnknown))
	}
}

func (b *Bot) cancel(ctx context.Context, chatID int64) {
	_ = b.states.Reset(ctx, chatID)
	m := tgbotapi.NewMessage(chatID, msgCancelled)
	m.ReplyMarkup = mainReplyKeyboard()
	b.send(m)
}

// startPlaster: без аргументов спрашивает площадь, с площадью — режим,
// с площадью и режимом сразу считает.
func (b *Bot) startPlaster(ctx context.Context, chatID int64, args []string) {
	if len(args) == 0 {
		b.setState(ctx, chatID, dialog.StatePlasterArea, nil)
		b.send(tgbotapi.NewMessage(chatID, msgAskArea))
		return
	}
	if estimate.ParseArea(args[0]) <= 0 {
		b.setState(ctx, chatID, dialog.StatePlasterArea, nil)
		b.send(tgbotapi.NewMessage(chatID, msgBadArea))
		return
	}
	if len(args) >= 2 && estimate.ParseMode(args[1]) != estimate.ModeUnknown {
		b.plaster(ctx, chatID, args[0], args[1])
		return
	}
	b.askMode(ctx, chatID, args[0])
}

func (b *Bot) startPaint(ctx context.Context, chatID int64, args []string) {
	if len(args) > 0 && estimate.ParseArea(args[0]) > 0 {
		b.paint(ctx, chatID, args[0])
		return
	}
	b.setState(ctx, chatID, dialog.StatePaintArea, nil)
	b.send(tgbotapi.NewMessage(chatID, msgAskArea))
}

func (b *Bot) askMode(ctx context.Context, chatID int64, area string) {
	b.setState(ctx, chatID, dialog.StatePlasterMode, dialog.Payload{payloadArea: area})
	m := tgbotapi.NewMessage(chatID, msgAskMode)
	m.ReplyMarkup = modeKeyboard()
	b.send(m)
}

func (b *Bot) handleStateMessage(ctx context.Context, chatID int64, text string) {
	st, err := b.states.Get(ctx, chatID)
	if err != nil {
		b.log.Error("dialog state get failed", "err", err, "chat_id", chatID)
		b.send(tgbotapi.NewMessage(chatID, msgFailed))
		return
	}

	switch st.State {
	case dialog.StatePlasterArea:
		if estimate.ParseArea(text) <= 0 {
			b.send(tgbotapi.NewMessage(chatID, msgBadArea))
			return
		}
		b.askMode(ctx, chatID, text)

	case dialog.StatePlasterMode:
		area, _ := dialog.GetString(st.Payload, payloadArea)
		if estimate.ParseMode(text) == estimate.ModeUnknown {
			m := tgbotapi.NewMessage(chatID, msgAskMode)
			m.ReplyMarkup = modeKeyboard()
			b.send(m)
			return
		}
		b.plaster(ctx, chatID, area, text)

	case dialog.StatePaintArea:
		if estimate.ParseArea(text) <= 0 {
			b.send(tgbotapi.NewMessage(chatID, msgBadArea))
			return
		}
		b.paint(ctx, chatID, text)

	default:
		b.send(tgbotapi.NewMessage(chatID, msgUnknown))
	}
}

func (b *Bot) onCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		b.answerCallback(cb, "")
		return
	}
	chatID := cb.Message.Chat.ID
	data := cb.Data

	switch {
	case data == cbCancel:
		b.answerCallback(cb, "")
		b.cancel(ctx, chatID)

	case strings.HasPrefix(data, cbModePrefix):
		st, err := b.states.Get(ctx, chatID)
		if err != nil || st.State != dialog.StatePlasterMode {
			b.answerCallback(cb, msgStale)
			return
		}
		b.answerCallback(cb, "")
		area, _ := dialog.GetString(st.Payload, payloadArea)
		b.plaster(ctx, chatID, area, strings.TrimPrefix(data, cbModePrefix))

	default:
		b.answerCallback(cb, "")
	}
}

func (b *Bot) plaster(ctx context.Context, chatID int64, area, mode string) {
	est, err := b.estimates.PlasterEstimate(ctx, "", area, mode)
	if err != nil {
		b.log.Error("plaster estimate failed", "err", err, "chat_id", chatID)
		b.send(tgbotapi.NewMessage(chatID, msgFailed))
		return
	}
	_ = b.states.Reset(ctx, chatID)
	b.reply(chatID, est)
}

func (b *Bot) paint(ctx context.Context, chatID int64, area string) {
	est, err := b.estimates.PaintEstimate(ctx, "", area)
	if err != nil {
		b.log.Error("paint estimate failed", "err", err, "chat_id", chatID)
		b.send(tgbotapi.NewMessage(chatID, msgFailed))
		return
	}
	_ = b.states.Reset(ctx, chatID)
	b.reply(chatID, est)
}

// reply отправляет расчёт текстом и файлом xlsx.
func (b *Bot) reply(chatID int64, est estimate.Estimate) {
	title := estimateTitle(est)
	m := tgbotapi.NewMessage(chatID, formatEstimate(title, est))
	m.ReplyMarkup = mainReplyKeyboard()
	b.send(m)

	data, err := report.EstimateXLSX(title, est.Result)
	if err != nil {
		b.log.Error("estimate xlsx failed", "err", err)
		return
	}
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  est.Kind + "-estimate.xlsx",
		Bytes: data,
	})
	b.send(doc)
}

func (b *Bot) setState(ctx context.Context, chatID int64, st dialog.State, p dialog.Payload) {
	if err := b.states.Set(ctx, chatID, st, p); err != nil {
		b.log.Error("dialog state set failed", "err", err, "chat_id", chatID)
	}
}

func estimateTitle(e estimate.Estimate) string {
	if e.Kind == estimate.KindPlaster {
		return fmt.Sprintf("Plaster (%s), %g m²", e.Mode, e.Area)
	}
	return fmt.Sprintf("Paint, %g m²", e.Area)
}

func formatEstimate(title string, e estimate.Estimate) string {
	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n\n")
	for _, l := range e.Lines {
		fmt.Fprintf(&sb, "• %s: need %d %s, have %d, missing %d, cost %s\n",
			l.Name, l.Required, l.Unit, l.OnHand, l.Missing, l.Cost.StringFixed(2))
	}
	fmt.Fprintf(&sb, "\nTotal to buy: %s", e.Total.StringFixed(2))
	return sb.String()
}
