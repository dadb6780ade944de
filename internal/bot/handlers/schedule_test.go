package handlers

import (
	"strings"
	"testing"

	"github.com/classcoord/telegram-class-bot/internal/models"
)

func TestSplitSubjects(t *testing.T) {
	got := SplitSubjects("Математика, ИЗО ,  Труд")
	want := []string{"Математика", "ИЗО", "Труд"}
	if len(got) != len(want) {
		t.Fatalf("ожидали %v, получили %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ожидали %v, получили %v", want, got)
		}
	}

	if got := SplitSubjects(" , ,, "); len(got) != 0 {
		t.Fatalf("пустые элементы должны отбрасываться, получили %v", got)
	}
	if got := SplitSubjects("Физика"); len(got) != 1 || got[0] != "Физика" {
		t.Fatalf("одиночный предмет: получили %v", got)
	}
}

func TestFormatSchedule(t *testing.T) {
	s := &models.LessonSchedule{
		Monday:    []string{"Математика", "ИЗО"},
		Wednesday: []string{"Математика"},
	}
	out := FormatSchedule(s)

	if !strings.Contains(out, "Понедельник:") || !strings.Contains(out, "1. Математика") {
		t.Fatalf("понедельник отрисован неверно:\n%s", out)
	}
	if !strings.Contains(out, "2. ИЗО") {
		t.Fatalf("нумерация уроков потерялась:\n%s", out)
	}
	// пустые дни присутствуют с пометкой, а не пропущены
	if strings.Count(out, "— уроков нет") != 3 {
		t.Fatalf("ожидали три пустых дня:\n%s", out)
	}
}
