package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/classcoord/telegram-class-bot/internal/ctxutil"
	"github.com/classcoord/telegram-class-bot/internal/db"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleMoney — открытые сборы класса.
func HandleMoney(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userClass := requireClass(ctx, bot, database, chatID, msg.From.ID)
	if userClass == nil {
		return
	}

	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	collections, err := db.ListMoneyCollections(dbCtx, database, userClass.ID)
	if err != nil {
		failTurn(bot, chatID, err)
		return
	}
	if len(collections) == 0 {
		sendText(bot, chatID, "Открытых сборов нет.")
		return
	}

	var b strings.Builder
	b.WriteString("💰 Сборы:\n")
	for _, m := range collections {
		fmt.Fprintf(&b, "\n• %s: собрано %d из %d ₽\n", m.Name, m.Collected, m.Target)
	}
	sendText(bot, chatID, b.String())
}
