package export

import (
	"strings"
	"testing"

	"github.com/classcoord/telegram-class-bot/internal/models"
)

func TestNewScheduleWorkbook(t *testing.T) {
	s := &models.LessonSchedule{
		Monday:    []string{"Математика", "ИЗО"},
		Wednesday: []string{"Физика"},
	}
	f, err := NewScheduleWorkbook(s)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = f.Close() }()

	got, err := f.GetCellValue("Расписание", "B1")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Понедельник" {
		t.Fatalf("заголовок B1 = %q, ожидали Понедельник", got)
	}

	got, _ = f.GetCellValue("Расписание", "B3")
	if got != "ИЗО" {
		t.Fatalf("второй урок понедельника = %q, ожидали ИЗО", got)
	}
	got, _ = f.GetCellValue("Расписание", "D2")
	if got != "Физика" {
		t.Fatalf("первый урок среды = %q, ожидали Физика", got)
	}
	// у вторника уроков нет, ячейка пустая
	got, _ = f.GetCellValue("Расписание", "C2")
	if got != "" {
		t.Fatalf("пустой день не должен содержать значений, получили %q", got)
	}
}

func TestScheduleFilename(t *testing.T) {
	name := ScheduleFilename(`10/А "особый"`)
	if strings.ContainsAny(name, `\/:*?"<>|`) {
		t.Fatalf("недопустимые символы в имени файла: %q", name)
	}
	if !strings.HasSuffix(name, ".xlsx") {
		t.Fatalf("ожидали расширение .xlsx: %q", name)
	}

	if got := ScheduleFilename("   "); !strings.Contains(got, "—") {
		t.Fatalf("пустое имя класса должно заменяться прочерком: %q", got)
	}
}

func TestColName(t *testing.T) {
	for n, want := range map[int]string{1: "A", 2: "B", 26: "Z", 27: "AA", 52: "AZ"} {
		if got := colName(n); got != want {
			t.Errorf("colName(%d) = %q, ожидали %q", n, got, want)
		}
	}
}
