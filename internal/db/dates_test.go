package db

import (
	"testing"
	"time"
)

func TestDayBounds(t *testing.T) {
	now := time.Date(2026, time.September, 1, 17, 45, 12, 0, time.Local)

	start, end := DayBounds(now)
	if !start.Equal(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.Local)) {
		t.Fatalf("начало дня: %v", start)
	}
	if !end.Equal(start.AddDate(0, 0, 1)) {
		t.Fatalf("конец дня должен быть началом следующего: %v", end)
	}
}

func TestWeekAheadBounds(t *testing.T) {
	now := time.Date(2026, time.September, 1, 8, 0, 0, 0, time.Local)

	start, end := WeekAheadBounds(now)
	if !start.Equal(DayStart(now)) {
		t.Fatalf("окно должно начинаться с сегодняшнего дня: %v", start)
	}
	if !end.Equal(start.AddDate(0, 0, 7)) {
		t.Fatalf("окно должно заканчиваться через 7 дней: %v", end)
	}
}
