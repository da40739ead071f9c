package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	btnPlaster = "🧱 Plaster"
	btnPaint   = "🎨 Paint"
	btnCancel  = "✖️ Cancel"

	cbModePrefix = "pl:mode:"
	cbCancel     = "nav:cancel"
)

func mainReplyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnPlaster),
			tgbotapi.NewKeyboardButton(btnPaint),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancel),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func modeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Coarse", cbModePrefix+"coarse"),
			tgbotapi.NewInlineKeyboardButtonData("Fine", cbModePrefix+"fine"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnCancel, cbCancel),
		),
	)
}
