package handlers

import (
	"context"
	"database/sql"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleMyClass — карточка класса: название, код приглашения, участники.
func HandleMyClass(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userClass := requireClass(ctx, bot, database, chatID, msg.From.ID)
	if userClass == nil {
		return
	}

	text := fmt.Sprintf(
		"👥 Класс: %s\nКод для приглашения: %d\nУчастников: %d\n\n"+
			"Отправьте код новому участнику — он вводится после кнопки «Присоединиться».",
		userClass.Name, userClass.ID, len(userClass.Members),
	)
	sendText(bot, chatID, text)
}
