package models

// LessonSchedule — расписание уроков класса: пять списков предметов,
// понедельник–пятница. Ровно одна строка на класс, создаётся пустой
// вместе с классом.
type LessonSchedule struct {
	ID        int64
	ClassID   int64
	Monday    []string
	Tuesday   []string
	Wednesday []string
	Thursday  []string
	Friday    []string
}

// WeekdayNames — названия учебных дней в порядке Пн..Пт.
var WeekdayNames = [5]string{"Понедельник", "Вторник", "Среда", "Четверг", "Пятница"}

// Days возвращает списки предметов по дням в порядке Пн..Пт.
// Индекс 0 — понедельник.
func (s *LessonSchedule) Days() [5][]string {
	return [5][]string{s.Monday, s.Tuesday, s.Wednesday, s.Thursday, s.Friday}
}

// SetDay заменяет список предметов дня day (0 = понедельник .. 4 = пятница).
func (s *LessonSchedule) SetDay(day int, subjects []string) {
	switch day {
	case 0:
		s.Monday = subjects
	case 1:
		s.Tuesday = subjects
	case 2:
		s.Wednesday = subjects
	case 3:
		s.Thursday = subjects
	case 4:
		s.Friday = subjects
	}
}

// AllSubjects — множество всех предметов недели. Пустые и отсутствующие
// дни пропускаются.
func (s *LessonSchedule) AllSubjects() map[string]struct{} {
	out := make(map[string]struct{})
	for _, day := range s.Days() {
		for _, subject := range day {
			out[subject] = struct{}{}
		}
	}
	return out
}

// DaysWithSubject — номера дней ("1" = понедельник .. "5" = пятница),
// в расписании которых встречается предмет. Порядок Пн..Пт сохраняется.
func (s *LessonSchedule) DaysWithSubject(subject string) []string {
	var days []string
	for i, day := range s.Days() {
		for _, sub := range day {
			if sub == subject {
				days = append(days, string(rune('1'+i)))
				break
			}
		}
	}
	return days
}
