package models

import "time"

// User — запись о пользователе бота. Принадлежность к классу хранится в
// classes.members; users.class_id — денормализованная копия, обновляется
// в той же транзакции, что и members.
type User struct {
	ID         int64
	TelegramID int64
	TgNickname string
	Name       string
	ClassID    *int64
}

// SchoolClass — класс (группа пользователей). Members — упорядоченный
// список telegram_id участников; порядок вступления сохраняется.
type SchoolClass struct {
	ID           int64
	Name         string
	TelegramChat string
	Members      []int64
}

// HasMember — есть ли участник с таким telegram_id.
func (c *SchoolClass) HasMember(telegramID int64) bool {
	for _, m := range c.Members {
		if m == telegramID {
			return true
		}
	}
	return false
}

type Notice struct {
	ID        int64
	ClassID   int64
	Name      string
	Body      string
	CreatedAt time.Time
}

// Event — мероприятие класса. Tasks и CompleteTasks — параллельные списки
// строк; задача считается выполненной, если её текст есть в CompleteTasks.
type Event struct {
	ID            int64
	ClassID       int64
	Name          string
	Date          time.Time
	Description   string
	Tasks         []string
	CompleteTasks []string
}

// DoneCount — сколько задач мероприятия уже выполнено.
func (e *Event) DoneCount() int {
	done := make(map[string]struct{}, len(e.CompleteTasks))
	for _, t := range e.CompleteTasks {
		done[t] = struct{}{}
	}
	n := 0
	for _, t := range e.Tasks {
		if _, ok := done[t]; ok {
			n++
		}
	}
	return n
}

type HomeTask struct {
	ID      int64
	ClassID int64
	Lesson  string
	Date    time.Time
	Task    string
}

type MoneyCollection struct {
	ID        int64
	ClassID   int64
	Name      string
	Target    int64
	Collected int64
}
