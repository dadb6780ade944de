package app

import "testing"

func TestParseIntent(t *testing.T) {
	cases := []struct {
		text string
		want Intent
	}{
		{"/start", IntentStart},
		{"Создать класс", IntentCreateClass},
		{"ПРИСОЕДИНИТЬСЯ", IntentJoinClass},
		{"  /schedule  ", IntentSchedule},
		{"📅 Расписание", IntentSchedule},
		{"📤 Экспорт расписания", IntentExportSchedule},
		{"📚 Предметы", IntentSubjects},
		{"📝 Домашние задания", IntentHomework},
		{"💰 Сборы", IntentMoney},
		{"/backup", IntentBackup},
		{"Главное меню", IntentMainMenu},
		{"какой-то произвольный текст", IntentUnknown},
		{"", IntentUnknown},
	}
	for _, c := range cases {
		if got := ParseIntent(c.text); got != c.want {
			t.Errorf("ParseIntent(%q) = %v, ожидали %v", c.text, got, c.want)
		}
	}
}

func TestIsMenuIntent(t *testing.T) {
	for _, in := range []Intent{IntentCreateClass, IntentJoinClass, IntentMainMenu, IntentStart} {
		if !IsMenuIntent(in) {
			t.Errorf("интент %v должен прерывать диалог присоединения", in)
		}
	}
	// обычный текст и предметные интенты диалог не прерывают:
	// они могут быть кодом класса или случайным нажатием кнопки
	for _, in := range []Intent{IntentUnknown, IntentSchedule, IntentHomework, IntentBackup} {
		if IsMenuIntent(in) {
			t.Errorf("интент %v не должен прерывать диалог присоединения", in)
		}
	}
}
