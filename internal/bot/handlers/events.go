package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/classcoord/telegram-class-bot/internal/ctxutil"
	"github.com/classcoord/telegram-class-bot/internal/db"
	"github.com/classcoord/telegram-class-bot/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleEvents — мероприятия класса с прогрессом по задачам.
func HandleEvents(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userClass := requireClass(ctx, bot, database, chatID, msg.From.ID)
	if userClass == nil {
		return
	}

	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	events, err := db.ListEvents(dbCtx, database, userClass.ID)
	if err != nil {
		failTurn(bot, chatID, err)
		return
	}
	if len(events) == 0 {
		sendText(bot, chatID, "Мероприятий пока нет.")
		return
	}

	sendText(bot, chatID, FormatEvents(events))
}

func FormatEvents(events []models.Event) string {
	var b strings.Builder
	b.WriteString("🎉 Мероприятия:\n")
	for _, e := range events {
		b.WriteString("\n" + e.Name)
		if !e.Date.IsZero() {
			b.WriteString(" — " + e.Date.Format("02.01.2006"))
		}
		b.WriteString("\n")
		if e.Description != "" {
			b.WriteString(e.Description + "\n")
		}
		if len(e.Tasks) > 0 {
			fmt.Fprintf(&b, "Задачи: %d/%d выполнено\n", e.DoneCount(), len(e.Tasks))
			done := make(map[string]struct{}, len(e.CompleteTasks))
			for _, t := range e.CompleteTasks {
				done[t] = struct{}{}
			}
			for _, t := range e.Tasks {
				mark := "☐"
				if _, ok := done[t]; ok {
					mark = "☑"
				}
				fmt.Fprintf(&b, "  %s %s\n", mark, t)
			}
		}
	}
	return b.String()
}
