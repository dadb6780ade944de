package menu

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// StartMenu — меню новичка без класса: создать или присоединиться.
func StartMenu() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("Создать класс"),
			tgbotapi.NewKeyboardButton("Присоединиться"),
		),
	)
}

// MainMenu — основное меню участника класса.
func MainMenu() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("👥 Мой класс"),
			tgbotapi.NewKeyboardButton("📅 Расписание"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("📝 Домашние задания"),
			tgbotapi.NewKeyboardButton("📢 Объявления"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("🎉 Мероприятия"),
			tgbotapi.NewKeyboardButton("💰 Сборы"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("📚 Предметы"),
			tgbotapi.NewKeyboardButton("📤 Экспорт расписания"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("Главное меню"),
		),
	)
}
