package jobs

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/classcoord/telegram-class-bot/internal/db"
	"github.com/classcoord/telegram-class-bot/internal/observability"
	"github.com/classcoord/telegram-class-bot/internal/tg"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HomeworkDigest — утренняя рассылка ДЗ на завтра участникам каждого
// класса. Тикает раз в минуту; шлёт один раз в день в заданный час.
type HomeworkDigest struct {
	bot  *tgbotapi.BotAPI
	db   *sql.DB
	hour int
	loc  *time.Location

	lastSentDay string // "2006-01-02", защита от повторной отправки
}

func NewHomeworkDigest(bot *tgbotapi.BotAPI, database *sql.DB, hour int, loc *time.Location) *HomeworkDigest {
	return &HomeworkDigest{bot: bot, db: database, hour: hour, loc: loc}
}

func (d *HomeworkDigest) Run(ctx context.Context) error {
	now := time.Now().In(d.loc)
	if now.Hour() != d.hour {
		return nil
	}
	day := now.Format("2006-01-02")
	if d.lastSentDay == day {
		return nil
	}
	d.lastSentDay = day

	start, end := db.DayBounds(now.AddDate(0, 0, 1))

	classIDs, err := db.ListClassIDs(ctx, d.db)
	if err != nil {
		observability.CaptureErr(err)
		return err
	}

	for _, classID := range classIDs {
		tasks, err := db.ListHomeTasksBetween(ctx, d.db, classID, start, end)
		if err != nil {
			observability.CaptureErr(err)
			continue
		}
		if len(tasks) == 0 {
			continue
		}

		text := fmt.Sprintf("📝 ДЗ на завтра (%s):\n", start.Format("02.01.2006"))
		for _, t := range tasks {
			text += fmt.Sprintf("• %s — %s\n", t.Lesson, t.Task)
		}

		members, err := db.MemberTelegramIDs(ctx, d.db, classID)
		if err != nil {
			observability.CaptureErr(err)
			continue
		}
		for _, chatID := range members {
			if _, err := tg.Send(d.bot, tgbotapi.NewMessage(chatID, text)); err != nil {
				// пользователь мог заблокировать бота; идём дальше
				continue
			}
		}
	}
	return nil
}
