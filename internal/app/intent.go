package app

import "strings"

// Intent — типизированное намерение пользователя. FSM-шаги сравнивают
// входящий текст с интентами через ParseIntent, а не с сырыми строками.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentStart
	IntentMainMenu
	IntentCreateClass
	IntentJoinClass
	IntentMyClass
	IntentSchedule
	IntentEditSchedule
	IntentExportSchedule
	IntentSubjects
	IntentHomework
	IntentAddHomeTask
	IntentNotices
	IntentAddNotice
	IntentEvents
	IntentMoney
	IntentBackup
)

var intentByText = map[string]Intent{
	"/start":                IntentStart,
	"главное меню":          IntentMainMenu,
	"/menu":                 IntentMainMenu,
	"создать класс":         IntentCreateClass,
	"/new_class":            IntentCreateClass,
	"присоединиться":        IntentJoinClass,
	"/join":                 IntentJoinClass,
	"👥 мой класс":           IntentMyClass,
	"/my_class":             IntentMyClass,
	"📅 расписание":          IntentSchedule,
	"/schedule":             IntentSchedule,
	"/edit_schedule":        IntentEditSchedule,
	"📤 экспорт расписания":  IntentExportSchedule,
	"/export_schedule":      IntentExportSchedule,
	"📚 предметы":            IntentSubjects,
	"/subjects":             IntentSubjects,
	"📝 домашние задания":    IntentHomework,
	"/hometasks":            IntentHomework,
	"/add_hometask":         IntentAddHomeTask,
	"📢 объявления":          IntentNotices,
	"/notices":              IntentNotices,
	"/add_notice":           IntentAddNotice,
	"🎉 мероприятия":         IntentEvents,
	"/events":               IntentEvents,
	"💰 сборы":               IntentMoney,
	"/money":                IntentMoney,
	"💾 бэкап бд":            IntentBackup,
	"/backup":               IntentBackup,
}

// ParseIntent сопоставляет текст сообщения (команду или подпись кнопки
// меню) с интентом. Регистр и края пробелов игнорируются.
func ParseIntent(text string) Intent {
	if in, ok := intentByText[strings.ToLower(strings.TrimSpace(text))]; ok {
		return in
	}
	return IntentUnknown
}

// IsMenuIntent — интенты, по которым FSM ожидания кода класса прерывается
// и управление возвращается диспетчеру.
func IsMenuIntent(in Intent) bool {
	switch in {
	case IntentCreateClass, IntentJoinClass, IntentMainMenu, IntentStart:
		return true
	}
	return false
}
