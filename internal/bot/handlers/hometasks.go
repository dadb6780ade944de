package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/classcoord/telegram-class-bot/internal/bot/shared/fsmutil"
	"github.com/classcoord/telegram-class-bot/internal/ctxutil"
	"github.com/classcoord/telegram-class-bot/internal/db"
	"github.com/classcoord/telegram-class-bot/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleHomeTasks — домашние задания на ближайшую неделю, [сегодня, +7 дней).
func HandleHomeTasks(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userClass := requireClass(ctx, bot, database, chatID, msg.From.ID)
	if userClass == nil {
		return
	}

	start, end := db.WeekAheadBounds(time.Now())

	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	tasks, err := db.ListHomeTasksBetween(dbCtx, database, userClass.ID, start, end)
	if err != nil {
		failTurn(bot, chatID, err)
		return
	}
	if len(tasks) == 0 {
		sendText(bot, chatID, "На ближайшую неделю заданий нет. 🎉")
		return
	}

	sendText(bot, chatID, FormatHomeTasks(tasks))
}

func FormatHomeTasks(tasks []models.HomeTask) string {
	var b strings.Builder
	b.WriteString("📝 Домашние задания:\n")
	var lastDay string
	for _, t := range tasks {
		day := t.Date.Format("02.01.2006")
		if day != lastDay {
			b.WriteString("\n" + day + ":\n")
			lastDay = day
		}
		fmt.Fprintf(&b, "• %s — %s\n", t.Lesson, t.Task)
	}
	return b.String()
}

// --- FSM добавления домашнего задания ---

const (
	htStepLesson = iota
	htStepDate
	htStepTask
)

type AddHomeTaskState struct {
	Step   int
	Lesson string
	Date   time.Time
}

var homeTaskStates = make(map[int64]*AddHomeTaskState)

func GetAddHomeTaskState(chatID int64) *AddHomeTaskState { return homeTaskStates[chatID] }

func ClearAddHomeTaskState(chatID int64) { delete(homeTaskStates, chatID) }

func StartAddHomeTask(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if requireClass(ctx, bot, database, chatID, msg.From.ID) == nil {
		return
	}
	homeTaskStates[chatID] = &AddHomeTaskState{Step: htStepLesson}
	sendText(bot, chatID, "Введите предмет, по которому задано ДЗ:")
}

func HandleAddHomeTaskText(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	state := homeTaskStates[chatID]
	if state == nil {
		return
	}
	if fsmutil.IsCancelText(msg.Text) {
		ClearAddHomeTaskState(chatID)
		sendText(bot, chatID, "🚫 Отменено.")
		return
	}

	switch state.Step {
	case htStepLesson:
		state.Lesson = strings.TrimSpace(msg.Text)
		if state.Lesson == "" {
			sendText(bot, chatID, "Название предмета не может быть пустым. Введите предмет:")
			return
		}
		state.Step = htStepDate
		sendText(bot, chatID, "Введите дату сдачи в формате ДД.ММ.ГГГГ:")

	case htStepDate:
		date, err := ParseTaskDate(msg.Text, time.Now())
		if err != nil {
			sendText(bot, chatID, "❌ "+err.Error())
			return
		}
		state.Date = date
		state.Step = htStepTask
		sendText(bot, chatID, "Введите текст задания:")

	case htStepTask:
		task := strings.TrimSpace(msg.Text)
		if task == "" {
			sendText(bot, chatID, "Задание не может быть пустым. Введите текст задания:")
			return
		}

		userClass := requireClass(ctx, bot, database, chatID, msg.From.ID)
		if userClass == nil {
			return
		}

		dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
		defer cancel()
		if _, err := db.CreateHomeTask(dbCtx, database, models.HomeTask{
			ClassID: userClass.ID,
			Lesson:  state.Lesson,
			Date:    state.Date,
			Task:    task,
		}); err != nil {
			failTurn(bot, chatID, err)
			return
		}

		ClearAddHomeTaskState(chatID)
		sendText(bot, chatID, fmt.Sprintf("✅ ДЗ по предмету «%s» на %s сохранено.",
			state.Lesson, state.Date.Format("02.01.2006")))
	}
}

// ParseTaskDate — дата в формате ДД.ММ.ГГГГ, не раньше сегодняшнего дня.
func ParseTaskDate(input string, now time.Time) (time.Time, error) {
	date, err := time.Parse("02.01.2006", strings.TrimSpace(input))
	if err != nil {
		return time.Time{}, fmt.Errorf("неверный формат. Введите дату в формате ДД.ММ.ГГГГ:")
	}
	// сравниваем календарные дни; time.Parse даёт UTC
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return time.Time{}, fmt.Errorf("дата уже прошла. Введите дату не раньше сегодняшней:")
	}
	return date, nil
}
