package handlers

import (
	"context"
	"database/sql"

	"github.com/classcoord/telegram-class-bot/internal/bot/menu"
	"github.com/classcoord/telegram-class-bot/internal/ctxutil"
	"github.com/classcoord/telegram-class-bot/internal/db"
	"github.com/classcoord/telegram-class-bot/internal/metrics"
	"github.com/classcoord/telegram-class-bot/internal/models"
	"github.com/classcoord/telegram-class-bot/internal/observability"
	"github.com/classcoord/telegram-class-bot/internal/tg"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func sendText(bot *tgbotapi.BotAPI, chatID int64, text string) {
	if _, err := tg.Send(bot, tgbotapi.NewMessage(chatID, text)); err != nil {
		metrics.HandlerErrors.Inc()
	}
}

func sendWithMarkup(bot *tgbotapi.BotAPI, chatID int64, text string, mk interface{}) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = mk
	if _, err := tg.Send(bot, msg); err != nil {
		metrics.HandlerErrors.Inc()
	}
}

// failTurn — сбой хранилища внутри одного хода диалога: метрика, Sentry,
// общий ответ пользователю. Никогда не роняет процесс.
func failTurn(bot *tgbotapi.BotAPI, chatID int64, err error) {
	metrics.HandlerErrors.Inc()
	observability.CaptureErr(err)
	sendText(bot, chatID, errGeneric)
}

// requireClass возвращает класс пользователя; если его нет — показывает
// стартовое меню и возвращает nil. Ошибка хранилища уже отвечена.
func requireClass(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, chatID, userID int64) *models.SchoolClass {
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	userClass, err := db.FindClassByMember(dbCtx, database, userID)
	if err != nil {
		failTurn(bot, chatID, err)
		return nil
	}
	if userClass == nil {
		sendWithMarkup(bot, chatID, "Вы ещё не состоите в классе. Создайте класс или присоединитесь по коду.", menu.StartMenu())
		return nil
	}
	return userClass
}
