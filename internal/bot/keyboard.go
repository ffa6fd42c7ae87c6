package bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// mainKeyboard is the persistent command keyboard shown on /start.
func mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/book"),
			tgbotapi.NewKeyboardButton("/quotes"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/current"),
			tgbotapi.NewKeyboardButton("/reset"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("/status"),
			tgbotapi.NewKeyboardButton("/help"),
		),
	)
}
