package handlers

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/classcoord/telegram-class-bot/internal/bot/shared/fsmutil"
	"github.com/classcoord/telegram-class-bot/internal/ctxutil"
	"github.com/classcoord/telegram-class-bot/internal/db"
	"github.com/classcoord/telegram-class-bot/internal/export"
	"github.com/classcoord/telegram-class-bot/internal/tg"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleExportSchedule — выгрузка расписания в .xlsx файлом в чат.
func HandleExportSchedule(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	// защита от двойного запуска тяжёлой выгрузки
	if !fsmutil.SetPending(chatID, "export:schedule") {
		sendText(bot, chatID, "Выгрузка уже выполняется, подождите.")
		return
	}
	defer fsmutil.ClearPending(chatID, "export:schedule")

	userClass := requireClass(ctx, bot, database, chatID, msg.From.ID)
	if userClass == nil {
		return
	}

	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	schedule, err := db.GetScheduleByClass(dbCtx, database, userClass.ID)
	if err != nil {
		failTurn(bot, chatID, err)
		return
	}
	if schedule == nil {
		sendText(bot, chatID, "Расписание ещё не заведено.")
		return
	}

	wb, err := export.NewScheduleWorkbook(schedule)
	if err != nil {
		failTurn(bot, chatID, err)
		return
	}

	path := filepath.Join(os.TempDir(), export.ScheduleFilename(userClass.Name))
	if err := wb.SaveAs(path); err != nil {
		failTurn(bot, chatID, err)
		return
	}
	defer func() { _ = os.Remove(path) }()

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = "📤 Расписание класса " + userClass.Name
	if _, err := tg.Send(bot, doc); err != nil {
		failTurn(bot, chatID, err)
	}
}
