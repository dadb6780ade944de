//go:build testutil
// +build testutil

package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/classcoord/telegram-class-bot/internal/db"
	"github.com/classcoord/telegram-class-bot/internal/models"
	"github.com/classcoord/telegram-class-bot/internal/testutil/testdb"
)

// общая подготовка: пользователь + класс
func mustClass(t *testing.T, ctx context.Context, h *testdb.DBHandle, creator int64) *models.SchoolClass {
	t.Helper()
	if _, _, err := db.EnsureUser(ctx, h.DB, creator, "seed"); err != nil {
		t.Fatal(err)
	}
	created, err := db.CreateClassWithSchedule(ctx, h.DB, "9В", creator)
	if err != nil {
		t.Fatal(err)
	}
	return created
}

func TestListHomeTasksBetween_HalfOpen(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	class := mustClass(t, ctx, h, 7001)

	base := db.DayStart(time.Now())
	for i, name := range []string{"сегодня", "через 3 дня", "через 7 дней"} {
		offset := []int{0, 3, 7}[i]
		_, err := db.CreateHomeTask(ctx, h.DB, models.HomeTask{
			ClassID: class.ID,
			Lesson:  "Математика",
			Date:    base.AddDate(0, 0, offset),
			Task:    name,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	start, end := db.WeekAheadBounds(time.Now())
	tasks, err := db.ListHomeTasksBetween(ctx, h.DB, class.ID, start, end)
	if err != nil {
		t.Fatal(err)
	}
	// правая граница не включается: задание на +7 дней в выборку не входит
	if len(tasks) != 2 {
		t.Fatalf("ожидали 2 задания в окне недели, получили %d", len(tasks))
	}
	for _, task := range tasks {
		if task.Task == "через 7 дней" {
			t.Fatal("задание на границе окна не должно попадать в выборку")
		}
	}
}

func TestSetScheduleDay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	class := mustClass(t, ctx, h, 7002)

	if err := db.SetScheduleDay(ctx, h.DB, class.ID, 2, []string{"Физика", "Химия"}); err != nil {
		t.Fatal(err)
	}
	// недопустимый номер дня отклоняется до запроса
	if err := db.SetScheduleDay(ctx, h.DB, class.ID, 5, []string{"Труд"}); err == nil {
		t.Fatal("ожидали ошибку для дня вне диапазона Пн..Пт")
	}

	schedule, err := db.GetScheduleByClass(ctx, h.DB, class.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(schedule.Wednesday) != 2 || schedule.Wednesday[0] != "Физика" {
		t.Fatalf("ожидали среду [Физика Химия], получили %v", schedule.Wednesday)
	}
}

func TestNoticesEventsMoney(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	class := mustClass(t, ctx, h, 7003)

	noticeID, err := db.CreateNotice(ctx, h.DB, models.Notice{
		ClassID: class.ID,
		Name:    "Собрание",
		Body:    "В пятницу в 18:00",
	})
	if err != nil {
		t.Fatal(err)
	}
	notice, err := db.GetNoticeByID(ctx, h.DB, noticeID)
	if err != nil {
		t.Fatal(err)
	}
	if notice == nil || notice.Body != "В пятницу в 18:00" {
		t.Fatalf("объявление не прочиталось: %v", notice)
	}

	eventID, err := db.CreateEvent(ctx, h.DB, models.Event{
		ClassID: class.ID,
		Name:    "Ярмарка",
		Date:    db.DayStart(time.Now()),
		Tasks:   []string{"плакат", "выпечка"},
	})
	if err != nil {
		t.Fatal(err)
	}
	done, err := db.CompleteEventTask(ctx, h.DB, eventID, "плакат")
	if err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Fatal("ожидали отметку существующей задачи")
	}
	// повторная отметка — no-op
	done, err = db.CompleteEventTask(ctx, h.DB, eventID, "плакат")
	if err != nil {
		t.Fatal(err)
	}
	if done {
		t.Fatal("повторная отметка не должна считаться выполненной")
	}
	event, err := db.GetEventByID(ctx, h.DB, eventID)
	if err != nil {
		t.Fatal(err)
	}
	if event.DoneCount() != 1 {
		t.Fatalf("ожидали 1 выполненную задачу, получили %d", event.DoneCount())
	}

	moneyID, err := db.CreateMoneyCollection(ctx, h.DB, models.MoneyCollection{
		ClassID: class.ID,
		Name:    "На экскурсию",
		Target:  15000,
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AddCollectedMoney(ctx, h.DB, moneyID, 2500); err != nil {
		t.Fatal(err)
	}
	list, err := db.ListMoneyCollections(ctx, h.DB, class.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Collected != 2500 {
		t.Fatalf("ожидали собранные 2500, получили %v", list)
	}

	if err := db.SetUserName(ctx, h.DB, 7003, "Ольга Петровна"); err != nil {
		t.Fatal(err)
	}
	u, err := db.GetUserByTelegramID(ctx, h.DB, 7003)
	if err != nil {
		t.Fatal(err)
	}
	if u.Name != "Ольга Петровна" {
		t.Fatalf("имя не сохранилось: %q", u.Name)
	}
}
