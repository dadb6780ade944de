package handlers

import (
	"context"
	"database/sql"

	"github.com/classcoord/telegram-class-bot/internal/bot/menu"
	"github.com/classcoord/telegram-class-bot/internal/ctxutil"
	"github.com/classcoord/telegram-class-bot/internal/db"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleStart — приветствие; меню зависит от того, состоит ли пользователь
// в классе.
func HandleStart(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	userClass, err := db.FindClassByMember(dbCtx, database, msg.From.ID)
	if err != nil {
		failTurn(bot, chatID, err)
		return
	}

	if userClass == nil {
		sendWithMarkup(bot, chatID,
			"Добро пожаловать! 🎓 Этот бот помогает классу вести расписание, ДЗ, объявления и сборы.\n\n"+
				"Создайте класс или присоединитесь по коду.", menu.StartMenu())
		return
	}
	sendWithMarkup(bot, chatID, "С возвращением! Выберите действие:", menu.MainMenu())
}

// HandleMainMenu — кнопка «Главное меню».
func HandleMainMenu(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	userClass, err := db.FindClassByMember(dbCtx, database, msg.From.ID)
	if err != nil {
		failTurn(bot, chatID, err)
		return
	}

	if userClass == nil {
		sendWithMarkup(bot, chatID, "Главное меню:", menu.StartMenu())
		return
	}
	sendWithMarkup(bot, chatID, "Главное меню:", menu.MainMenu())
}
