package db

import "time"

// DayStart — полночь дня момента t в его локации.
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayBounds — границы [from, to) календарного дня момента t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := DayStart(t)
	return start, start.AddDate(0, 0, 1)
}

// WeekAheadBounds — окно [сегодня 00:00, +7 дней) для выборки домашних
// заданий на ближайшую неделю.
func WeekAheadBounds(t time.Time) (time.Time, time.Time) {
	start := DayStart(t)
	return start, start.AddDate(0, 0, 7)
}
