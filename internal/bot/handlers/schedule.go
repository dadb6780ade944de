package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/classcoord/telegram-class-bot/internal/bot/shared/fsmutil"
	"github.com/classcoord/telegram-class-bot/internal/ctxutil"
	"github.com/classcoord/telegram-class-bot/internal/db"
	"github.com/classcoord/telegram-class-bot/internal/models"
	"github.com/classcoord/telegram-class-bot/internal/tg"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleSchedule — расписание на неделю одним сообщением.
func HandleSchedule(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
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

	sendText(bot, chatID, FormatSchedule(schedule))
}

// FormatSchedule собирает текст расписания Пн..Пт; пустые дни помечаются.
func FormatSchedule(s *models.LessonSchedule) string {
	var b strings.Builder
	b.WriteString("📅 Расписание на неделю:\n")
	for i, day := range s.Days() {
		b.WriteString("\n" + models.WeekdayNames[i] + ":\n")
		if len(day) == 0 {
			b.WriteString("  — уроков нет\n")
			continue
		}
		for n, subject := range day {
			fmt.Fprintf(&b, "  %d. %s\n", n+1, subject)
		}
	}
	return b.String()
}

// HandleSubjects — список всех предметов недели и дни, в которые они идут.
func HandleSubjects(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
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

	set := schedule.AllSubjects()
	if len(set) == 0 {
		sendText(bot, chatID, "В расписании пока нет предметов.")
		return
	}
	subjects := make([]string, 0, len(set))
	for s := range set {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)

	var b strings.Builder
	b.WriteString("📚 Предметы недели:\n")
	for _, s := range subjects {
		fmt.Fprintf(&b, "• %s — дни: %s\n", s, strings.Join(schedule.DaysWithSubject(s), ", "))
	}
	sendText(bot, chatID, b.String())
}

// --- FSM редактирования одного дня расписания ---

const (
	schedStepDay = iota // ждём выбор дня кнопкой
	schedStepSubjects   // ждём список предметов текстом
)

const (
	schedDayPrefix = "sched_day:"
	schedCancel    = "sched:cancel"
)

type EditScheduleState struct {
	Step      int
	Day       int
	MessageID int
}

var scheduleStates = make(map[int64]*EditScheduleState)

func GetEditScheduleState(chatID int64) *EditScheduleState { return scheduleStates[chatID] }

func ClearEditScheduleState(chatID int64) { delete(scheduleStates, chatID) }

func StartEditSchedule(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if requireClass(ctx, bot, database, chatID, msg.From.ID) == nil {
		return
	}

	scheduleStates[chatID] = &EditScheduleState{Step: schedStepDay}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, 3)
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Пн", schedDayPrefix+"0"),
		tgbotapi.NewInlineKeyboardButtonData("Вт", schedDayPrefix+"1"),
		tgbotapi.NewInlineKeyboardButtonData("Ср", schedDayPrefix+"2"),
	))
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Чт", schedDayPrefix+"3"),
		tgbotapi.NewInlineKeyboardButtonData("Пт", schedDayPrefix+"4"),
	))
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("❌ Отмена", schedCancel),
	))

	out := tgbotapi.NewMessage(chatID, "Выберите день для редактирования:")
	out.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	sent, _ := tg.Send(bot, out)
	scheduleStates[chatID].MessageID = sent.MessageID
}

func HandleEditScheduleCallback(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	state := scheduleStates[chatID]
	if state == nil {
		return
	}
	ncAnswer(bot, cb)

	if cb.Data == schedCancel {
		fsmutil.DisableMarkup(bot, chatID, state.MessageID)
		ClearEditScheduleState(chatID)
		sendText(bot, chatID, "🚫 Отменено.")
		return
	}

	day, err := strconv.Atoi(strings.TrimPrefix(cb.Data, schedDayPrefix))
	if err != nil || day < 0 || day > 4 {
		return
	}
	state.Day = day
	state.Step = schedStepSubjects
	fsmutil.DisableMarkup(bot, chatID, state.MessageID)
	sendText(bot, chatID, fmt.Sprintf(
		"%s: введите предметы через запятую (пустое сообщение — очистить день):",
		models.WeekdayNames[day],
	))
}

func HandleEditScheduleText(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	state := scheduleStates[chatID]
	if state == nil || state.Step != schedStepSubjects {
		return
	}
	if fsmutil.IsCancelText(msg.Text) {
		ClearEditScheduleState(chatID)
		sendText(bot, chatID, "🚫 Отменено.")
		return
	}

	userClass := requireClass(ctx, bot, database, chatID, msg.From.ID)
	if userClass == nil {
		return
	}

	subjects := SplitSubjects(msg.Text)

	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	if err := db.SetScheduleDay(dbCtx, database, userClass.ID, state.Day, subjects); err != nil {
		failTurn(bot, chatID, err)
		return
	}

	ClearEditScheduleState(chatID)
	sendText(bot, chatID, fmt.Sprintf("✅ %s: сохранено предметов — %d.", models.WeekdayNames[state.Day], len(subjects)))
}

// SplitSubjects — разбор «Математика, ИЗО, Труд» в список без пустых элементов.
func SplitSubjects(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
