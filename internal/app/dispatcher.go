package app

import (
	"context"
	"database/sql"
	"strings"

	"github.com/classcoord/telegram-class-bot/internal/bot/handlers"
	"github.com/classcoord/telegram-class-bot/internal/config"
	"github.com/classcoord/telegram-class-bot/internal/ctxutil"
	"github.com/classcoord/telegram-class-bot/internal/db"
	"github.com/classcoord/telegram-class-bot/internal/metrics"
	"github.com/classcoord/telegram-class-bot/internal/observability"
	"github.com/classcoord/telegram-class-bot/internal/tg"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Router маршрутизирует апдейты: сперва активные FSM-шаги, затем
// таблица интентов. Обработка внутри одного чата последовательная.
type Router struct {
	bot     *tgbotapi.BotAPI
	db      *sql.DB
	cfg     *config.Config
	log     *zap.SugaredLogger
	limiter *ChatLimiter
}

func NewRouter(bot *tgbotapi.BotAPI, database *sql.DB, cfg *config.Config, log *zap.SugaredLogger) *Router {
	return &Router{
		bot:     bot,
		db:      database,
		cfg:     cfg,
		log:     log,
		limiter: NewChatLimiter(),
	}
}

func (r *Router) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	metrics.BotUpdates.Inc()
	switch {
	case update.CallbackQuery != nil:
		r.HandleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		r.HandleMessage(ctx, update.Message)
	}
}

func (r *Router) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	chatID := msg.Chat.ID
	unlock := r.limiter.lock(chatID)
	defer unlock()

	ctx = ctxutil.WithChatID(ctx, chatID)
	r.ensureUser(ctx, msg.From)

	// активные диалоги получают текст первыми
	if state := handlers.GetNewClassState(chatID); state != nil {
		if state.Step == handlers.NCStepJoin {
			// известная команда меню прерывает ожидание кода класса
			if in := ParseIntent(msg.Text); IsMenuIntent(in) {
				handlers.ClearNewClassState(chatID)
				r.dispatchIntent(ctx, in, msg)
				return
			}
		}
		handlers.HandleNewClassText(ctx, r.bot, r.db, msg)
		return
	}
	if handlers.GetEditScheduleState(chatID) != nil {
		handlers.HandleEditScheduleText(ctx, r.bot, r.db, msg)
		return
	}
	if handlers.GetAddHomeTaskState(chatID) != nil {
		handlers.HandleAddHomeTaskText(ctx, r.bot, r.db, msg)
		return
	}
	if handlers.GetAddNoticeState(chatID) != nil {
		handlers.HandleAddNoticeText(ctx, r.bot, r.db, msg)
		return
	}

	r.dispatchIntent(ctx, ParseIntent(msg.Text), msg)
}

func (r *Router) dispatchIntent(ctx context.Context, in Intent, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch in {
	case IntentStart:
		handlers.HandleStart(ctx, r.bot, r.db, msg)
	case IntentMainMenu:
		handlers.HandleMainMenu(ctx, r.bot, r.db, msg)
	case IntentCreateClass:
		handlers.StartCreateClass(ctx, r.bot, r.db, msg)
	case IntentJoinClass:
		handlers.StartJoinClass(ctx, r.bot, r.db, msg)
	case IntentMyClass:
		handlers.HandleMyClass(ctx, r.bot, r.db, msg)
	case IntentSchedule:
		handlers.HandleSchedule(ctx, r.bot, r.db, msg)
	case IntentEditSchedule:
		handlers.StartEditSchedule(ctx, r.bot, r.db, msg)
	case IntentExportSchedule:
		handlers.HandleExportSchedule(ctx, r.bot, r.db, msg)
	case IntentSubjects:
		handlers.HandleSubjects(ctx, r.bot, r.db, msg)
	case IntentHomework:
		handlers.HandleHomeTasks(ctx, r.bot, r.db, msg)
	case IntentAddHomeTask:
		handlers.StartAddHomeTask(ctx, r.bot, r.db, msg)
	case IntentNotices:
		handlers.HandleNotices(ctx, r.bot, r.db, msg)
	case IntentAddNotice:
		handlers.StartAddNotice(ctx, r.bot, r.db, msg)
	case IntentEvents:
		handlers.HandleEvents(ctx, r.bot, r.db, msg)
	case IntentMoney:
		handlers.HandleMoney(ctx, r.bot, r.db, msg)
	case IntentBackup:
		if r.cfg.IsAdmin(chatID) {
			handlers.HandleAdminBackup(ctx, r.bot, chatID)
			return
		}
		r.unknown(chatID)
	default:
		r.unknown(chatID)
	}
}

func (r *Router) HandleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	unlock := r.limiter.lock(chatID)
	defer unlock()

	ctx = ctxutil.WithChatID(ctx, chatID)
	r.log.Debugw("callback", "from", cb.From.ID, "data", cb.Data, "msg_id", cb.Message.MessageID)

	switch {
	case strings.HasPrefix(cb.Data, "newclass:"):
		handlers.HandleNewClassCallback(ctx, r.bot, r.db, cb)
	case strings.HasPrefix(cb.Data, "sched_day:") || cb.Data == "sched:cancel":
		handlers.HandleEditScheduleCallback(ctx, r.bot, r.db, cb)
	default:
		// кнопка из устаревшего сообщения: отвечаем, чтобы UI не «завис»
		if _, err := tg.Request(r.bot, tgbotapi.NewCallback(cb.ID, "")); err != nil {
			metrics.HandlerErrors.Inc()
		}
	}
}

// ensureUser заводит пользователя при первом контакте; ник берём из
// профиля Telegram.
func (r *Router) ensureUser(ctx context.Context, from *tgbotapi.User) {
	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()

	nickname := strings.TrimSpace(from.FirstName + " " + from.LastName)
	if nickname == "" {
		nickname = from.UserName
	}
	if _, created, err := db.EnsureUser(dbCtx, r.db, from.ID, nickname); err != nil {
		metrics.HandlerErrors.Inc()
		observability.CaptureErr(err)
		r.log.Errorw("ensure user", "telegram_id", from.ID, "err", err)
	} else if created {
		r.log.Infow("new user", "telegram_id", from.ID)
	}
}

func (r *Router) unknown(chatID int64) {
	if _, err := tg.Send(r.bot, tgbotapi.NewMessage(chatID, "⚠️ Неизвестная команда. Используйте /start")); err != nil {
		metrics.HandlerErrors.Inc()
	}
}
