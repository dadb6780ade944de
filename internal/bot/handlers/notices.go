package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/classcoord/telegram-class-bot/internal/bot/shared/fsmutil"
	"github.com/classcoord/telegram-class-bot/internal/ctxutil"
	"github.com/classcoord/telegram-class-bot/internal/db"
	"github.com/classcoord/telegram-class-bot/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleNotices — все объявления класса.
func HandleNotices(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userClass := requireClass(ctx, bot, database, chatID, msg.From.ID)
	if userClass == nil {
		return
	}

	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	notices, err := db.ListNotices(dbCtx, database, userClass.ID)
	if err != nil {
		failTurn(bot, chatID, err)
		return
	}
	if len(notices) == 0 {
		sendText(bot, chatID, "Объявлений пока нет.")
		return
	}

	var b strings.Builder
	b.WriteString("📢 Объявления:\n")
	for _, n := range notices {
		fmt.Fprintf(&b, "\n%s (%s)\n%s\n", n.Name, n.CreatedAt.Format("02.01.2006"), n.Body)
	}
	sendText(bot, chatID, b.String())
}

// --- FSM добавления объявления ---

const (
	noticeStepName = iota
	noticeStepBody
)

type AddNoticeState struct {
	Step int
	Name string
}

var noticeStates = make(map[int64]*AddNoticeState)

func GetAddNoticeState(chatID int64) *AddNoticeState { return noticeStates[chatID] }

func ClearAddNoticeState(chatID int64) { delete(noticeStates, chatID) }

func StartAddNotice(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if requireClass(ctx, bot, database, chatID, msg.From.ID) == nil {
		return
	}
	noticeStates[chatID] = &AddNoticeState{Step: noticeStepName}
	sendText(bot, chatID, "Введите заголовок объявления:")
}

func HandleAddNoticeText(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	state := noticeStates[chatID]
	if state == nil {
		return
	}
	if fsmutil.IsCancelText(msg.Text) {
		ClearAddNoticeState(chatID)
		sendText(bot, chatID, "🚫 Отменено.")
		return
	}

	switch state.Step {
	case noticeStepName:
		state.Name = strings.TrimSpace(msg.Text)
		if state.Name == "" {
			sendText(bot, chatID, "Заголовок не может быть пустым. Введите заголовок:")
			return
		}
		state.Step = noticeStepBody
		sendText(bot, chatID, "Введите текст объявления:")

	case noticeStepBody:
		userClass := requireClass(ctx, bot, database, chatID, msg.From.ID)
		if userClass == nil {
			return
		}

		dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
		defer cancel()
		if _, err := db.CreateNotice(dbCtx, database, models.Notice{
			ClassID: userClass.ID,
			Name:    state.Name,
			Body:    strings.TrimSpace(msg.Text),
		}); err != nil {
			failTurn(bot, chatID, err)
			return
		}

		ClearAddNoticeState(chatID)
		sendText(bot, chatID, "✅ Объявление опубликовано.")
	}
}
