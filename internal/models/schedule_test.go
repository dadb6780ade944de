package models

import (
	"reflect"
	"testing"
)

func TestAllSubjects(t *testing.T) {
	s := &LessonSchedule{
		Monday:    []string{"Математика", "ИЗО"},
		Wednesday: []string{"Математика"},
	}

	got := s.AllSubjects()
	want := map[string]struct{}{
		"Математика": {},
		"ИЗО":        {},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ожидали %v, получили %v", want, got)
	}
}

func TestAllSubjects_EmptySchedule(t *testing.T) {
	s := &LessonSchedule{}
	if got := s.AllSubjects(); len(got) != 0 {
		t.Fatalf("для пустого расписания ожидали пустое множество, получили %v", got)
	}
}

func TestDaysWithSubject(t *testing.T) {
	s := &LessonSchedule{
		Monday:    []string{"Математика", "ИЗО"},
		Wednesday: []string{"Математика"},
	}

	t.Run("two_days_in_order", func(t *testing.T) {
		got := s.DaysWithSubject("Математика")
		if !reflect.DeepEqual(got, []string{"1", "3"}) {
			t.Fatalf("ожидали [1 3], получили %v", got)
		}
	})

	t.Run("single_day", func(t *testing.T) {
		got := s.DaysWithSubject("ИЗО")
		if !reflect.DeepEqual(got, []string{"1"}) {
			t.Fatalf("ожидали [1], получили %v", got)
		}
	})

	t.Run("unknown_subject", func(t *testing.T) {
		if got := s.DaysWithSubject("Физика"); len(got) != 0 {
			t.Fatalf("ожидали пустой список, получили %v", got)
		}
	})
}

func TestSetDay(t *testing.T) {
	s := &LessonSchedule{}
	s.SetDay(4, []string{"Физкультура"})
	if !reflect.DeepEqual(s.Friday, []string{"Физкультура"}) {
		t.Fatalf("ожидали пятницу [Физкультура], получили %v", s.Friday)
	}
}

func TestEventDoneCount(t *testing.T) {
	e := &Event{
		Tasks:         []string{"купить шары", "заказать торт", "позвать фотографа"},
		CompleteTasks: []string{"заказать торт"},
	}
	if got := e.DoneCount(); got != 1 {
		t.Fatalf("ожидали 1 выполненную задачу, получили %d", got)
	}
}
