package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/classcoord/telegram-class-bot/internal/bot/menu"
	"github.com/classcoord/telegram-class-bot/internal/bot/shared/fsmutil"
	"github.com/classcoord/telegram-class-bot/internal/ctxutil"
	"github.com/classcoord/telegram-class-bot/internal/db"
	"github.com/classcoord/telegram-class-bot/internal/metrics"
	"github.com/classcoord/telegram-class-bot/internal/observability"
	"github.com/classcoord/telegram-class-bot/internal/tg"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Шаги диалога создания/вступления в класс.
const (
	NCStepName = iota // ждём название класса
	NCStepConfirm     // ждём подтверждение названия
	NCStepJoin        // ждём код класса
)

const (
	ncConfirmData = "newclass:confirm"
	ncRejectData  = "newclass:reject"

	errGeneric = "⚠️ Что-то пошло не так, попробуйте ещё раз."
)

// NewClassState — состояние диалога одного чата. PendingName — введённое,
// но ещё не подтверждённое название; класс не существует, пока не нажато
// подтверждение.
type NewClassState struct {
	Step        int
	PendingName string
	MessageID   int
}

var newClassStates = make(map[int64]*NewClassState)

func GetNewClassState(chatID int64) *NewClassState { return newClassStates[chatID] }

func ClearNewClassState(chatID int64) { delete(newClassStates, chatID) }

// StartCreateClass — вход в диалог создания класса. Участник класса
// получает подсказку и остаётся вне диалога.
func StartCreateClass(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	userClass, err := db.FindClassByMember(dbCtx, database, msg.From.ID)
	if err != nil {
		ncFail(bot, chatID, err)
		return
	}
	if userClass != nil {
		ncSendText(bot, chatID, "Вы уже являетесь участником класса.")
		return
	}

	newClassStates[chatID] = &NewClassState{Step: NCStepName}
	ncSendText(bot, chatID, "Введите название класса:")
}

// StartJoinClass — вход в диалог вступления, с тем же guard'ом.
func StartJoinClass(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	userClass, err := db.FindClassByMember(dbCtx, database, msg.From.ID)
	if err != nil {
		ncFail(bot, chatID, err)
		return
	}
	if userClass != nil {
		ncSendText(bot, chatID, "Вы уже являетесь участником класса.")
		return
	}

	newClassStates[chatID] = &NewClassState{Step: NCStepJoin}
	ncSendText(bot, chatID, "Введите код класса, к которому хотите присоединиться:")
}

// HandleNewClassText — текстовые шаги диалога. Командные тексты в шаге
// NCStepJoin до сюда не доходят: их перехватывает диспетчер по интенту.
func HandleNewClassText(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	state := newClassStates[chatID]
	if state == nil {
		return
	}

	switch state.Step {
	case NCStepName, NCStepConfirm:
		// повторный ввод затирает неподтверждённое название
		state.PendingName = strings.TrimSpace(msg.Text)
		if state.PendingName == "" {
			ncSendText(bot, chatID, "Название не может быть пустым. Введите название класса:")
			return
		}
		state.Step = NCStepConfirm

		mk := tgbotapi.NewInlineKeyboardMarkup(
			fsmutil.ConfirmRow(ncConfirmData, ncRejectData),
		)
		out := tgbotapi.NewMessage(chatID, fmt.Sprintf("Вы ввели: %s. Всё верно?", state.PendingName))
		out.ReplyMarkup = mk
		sent, _ := tg.Send(bot, out)
		state.MessageID = sent.MessageID

	case NCStepJoin:
		handleJoinCode(ctx, bot, database, msg, state)
	}
}

func handleJoinCode(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, msg *tgbotapi.Message, state *NewClassState) {
	chatID := msg.Chat.ID

	classID, err := ParseClassCode(msg.Text)
	if err != nil {
		ncSendText(bot, chatID, "Такого класса не существует.")
		return
	}

	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	userClass, err := db.AddClassMember(dbCtx, database, classID, msg.From.ID)
	if err != nil {
		ncFail(bot, chatID, err)
		return
	}
	if userClass == nil {
		// неверный код — остаёмся в том же шаге, ждём следующую попытку
		ncSendText(bot, chatID, "Такого класса не существует.")
		return
	}

	ClearNewClassState(chatID)
	metrics.ClassJoins.Inc()

	ncSendText(bot, chatID, fmt.Sprintf("Вы присоединились к классу: %s", userClass.Name))
	out := tgbotapi.NewMessage(chatID, "Главное меню:")
	out.ReplyMarkup = menu.MainMenu()
	_, _ = tg.Send(bot, out)
}

// HandleNewClassCallback — кнопки подтверждения названия.
func HandleNewClassCallback(ctx context.Context, bot *tgbotapi.BotAPI, database *sql.DB, cb *tgbotapi.CallbackQuery) {
	chatID := cb.Message.Chat.ID
	ncAnswer(bot, cb)

	state := newClassStates[chatID]
	if state == nil || state.Step != NCStepConfirm || state.PendingName == "" {
		// устаревшая кнопка: диалога уже нет, стартуем заново
		fsmutil.DisableMarkup(bot, chatID, cb.Message.MessageID)
		ncSendText(bot, chatID, "Диалог создания класса завершён. Нажмите «Создать класс», чтобы начать заново.")
		return
	}

	if ParseCallbackAction(cb.Data) != "confirm" {
		// отказ: имя вводится заново, диалог не прерывается
		state.Step = NCStepName
		fsmutil.DisableMarkup(bot, chatID, state.MessageID)
		ncSendText(bot, chatID, "Введите название заново:")
		return
	}

	dbCtx, cancel := ctxutil.WithDBTimeout(ctx)
	defer cancel()
	created, err := db.CreateClassWithSchedule(dbCtx, database, state.PendingName, cb.From.ID)
	if err != nil {
		// класс не создан — остаёмся на подтверждении, можно нажать ещё раз
		ncFail(bot, chatID, err)
		return
	}

	fsmutil.DisableMarkup(bot, chatID, state.MessageID)
	ClearNewClassState(chatID)
	metrics.ClassesCreated.Inc()

	text := fmt.Sprintf(
		"Поздравляю, вы создали новый класс!\n\n"+
			"Код для приглашения участников: %d\n"+
			"Перейдите в раздел «Мой класс», чтобы пригласить других участников, "+
			"или начните добавлять расписание, ДЗ и мероприятия кнопками меню.",
		created.ID,
	)
	out := tgbotapi.NewMessage(chatID, text)
	out.ReplyMarkup = menu.MainMenu()
	_, _ = tg.Send(bot, out)
}

// ParseCallbackAction — ключевое слово действия из callback-данных вида
// "newclass:confirm": сегмент после первого двоеточия.
func ParseCallbackAction(data string) string {
	if _, after, ok := strings.Cut(data, ":"); ok {
		return after
	}
	return ""
}

// ParseClassCode — код класса из текста сообщения. Кодом служит id класса.
func ParseClassCode(text string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(text), 10, 64)
}

func ncSendText(bot *tgbotapi.BotAPI, chatID int64, text string) {
	if _, err := tg.Send(bot, tgbotapi.NewMessage(chatID, text)); err != nil {
		metrics.HandlerErrors.Inc()
	}
}

// ncFail — сбой хранилища: считаем, репортим, отвечаем общей фразой.
// Состояние диалога не трогаем, шаг можно повторить.
func ncFail(bot *tgbotapi.BotAPI, chatID int64, err error) {
	metrics.HandlerErrors.Inc()
	observability.CaptureErr(err)
	ncSendText(bot, chatID, errGeneric)
}

func ncAnswer(bot *tgbotapi.BotAPI, cb *tgbotapi.CallbackQuery) {
	if _, err := tg.Request(bot, tgbotapi.NewCallback(cb.ID, "")); err != nil {
		metrics.HandlerErrors.Inc()
	}
}
