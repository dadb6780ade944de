package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/classcoord/telegram-class-bot/internal/models"
	"github.com/xuri/excelize/v2"
)

const scheduleSheet = "Расписание"

// NewScheduleWorkbook — книга с расписанием недели: колонка на день,
// строка на номер урока.
func NewScheduleWorkbook(s *models.LessonSchedule) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", scheduleSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	days := s.Days()

	// заголовок: № | Пн..Пт
	if err := f.SetCellStr(scheduleSheet, "A1", "№"); err != nil {
		return nil, err
	}
	maxLessons := 0
	for i, day := range days {
		cell := fmt.Sprintf("%s1", colName(i+2))
		if err := f.SetCellStr(scheduleSheet, cell, models.WeekdayNames[i]); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", cell, err)
		}
		if len(day) > maxLessons {
			maxLessons = len(day)
		}
	}

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	_ = f.SetCellStyle(scheduleSheet, "A1", colName(len(days)+1)+"1", bold)

	for row := 0; row < maxLessons; row++ {
		_ = f.SetCellInt(scheduleSheet, fmt.Sprintf("A%d", row+2), int64(row+1))
		for col, day := range days {
			if row >= len(day) {
				continue
			}
			cell := fmt.Sprintf("%s%d", colName(col+2), row+2)
			if err := f.SetCellStr(scheduleSheet, cell, day[row]); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	// эвристическая ширина по самому длинному предмету дня
	_ = f.SetColWidth(scheduleSheet, "A", "A", 5)
	for i, day := range days {
		maxim := len([]rune(models.WeekdayNames[i]))
		for _, subject := range day {
			if l := len([]rune(subject)); l > maxim {
				maxim = l
			}
		}
		w := float64(maxim) * 1.1
		if w < 12 {
			w = 12
		}
		if w > 40 {
			w = 40
		}
		col := colName(i + 2)
		_ = f.SetColWidth(scheduleSheet, col, col, w)
	}
	return f, nil
}

// ScheduleFilename — человекочитаемое имя файла выгрузки.
func ScheduleFilename(className string) string {
	base := fmt.Sprintf("Расписание — %s — %s.xlsx",
		cleanName(className), time.Now().Format("2006-01-02"))
	return sanitizeFileName(base)
}

// helpers

func colName(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+(n%26))) + s
		n /= 26
	}
	return s
}

var invalidFileRe = regexp.MustCompile(`[\\/:*?"<>|]+`)

func sanitizeFileName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Join(strings.Fields(s), " ")
	return invalidFileRe.ReplaceAllString(s, "_")
}

func cleanName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "—"
	}
	return s
}
