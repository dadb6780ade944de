package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/classcoord/telegram-class-bot/internal/models"
)

func TestParseTaskDate(t *testing.T) {
	now := time.Date(2026, time.September, 1, 15, 30, 0, 0, time.Local)

	got, err := ParseTaskDate("02.09.2026", now)
	if err != nil {
		t.Fatal(err)
	}
	if got.Day() != 2 || got.Month() != time.September || got.Year() != 2026 {
		t.Fatalf("дата разобралась неверно: %v", got)
	}

	// сегодняшний день допустим, даже если время уже после полудня
	if _, err := ParseTaskDate("01.09.2026", now); err != nil {
		t.Fatalf("сегодняшняя дата должна приниматься: %v", err)
	}

	if _, err := ParseTaskDate("31.08.2026", now); err == nil {
		t.Fatal("вчерашняя дата должна отклоняться")
	}
	for _, bad := range []string{"2026-09-02", "02.09", "завтра", ""} {
		if _, err := ParseTaskDate(bad, now); err == nil {
			t.Errorf("ParseTaskDate(%q): ожидали ошибку формата", bad)
		}
	}
}

func TestFormatHomeTasks(t *testing.T) {
	day1 := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	out := FormatHomeTasks([]models.HomeTask{
		{Lesson: "Математика", Date: day1, Task: "№ 12–15"},
		{Lesson: "ИЗО", Date: day1, Task: "натюрморт"},
		{Lesson: "Физика", Date: day2, Task: "§4"},
	})

	// заголовок дня печатается один раз на дату
	if strings.Count(out, "02.09.2026:") != 1 {
		t.Fatalf("заголовок дня должен встречаться один раз:\n%s", out)
	}
	if !strings.Contains(out, "• Математика — № 12–15") || !strings.Contains(out, "• Физика — §4") {
		t.Fatalf("строки заданий отрисованы неверно:\n%s", out)
	}
	if !strings.Contains(out, "03.09.2026:") {
		t.Fatalf("второй день пропал:\n%s", out)
	}
}
