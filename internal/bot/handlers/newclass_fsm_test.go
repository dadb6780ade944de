package handlers

import "testing"

func TestParseCallbackAction(t *testing.T) {
	cases := []struct {
		data, want string
	}{
		{"newclass:confirm", "confirm"},
		{"newclass:reject", "reject"},
		{"sched:cancel", "cancel"},
		{"noseparator", ""},
		{"trailing:", ""},
	}
	for _, c := range cases {
		if got := ParseCallbackAction(c.data); got != c.want {
			t.Errorf("ParseCallbackAction(%q) = %q, ожидали %q", c.data, got, c.want)
		}
	}
}

func TestParseClassCode(t *testing.T) {
	id, err := ParseClassCode("  42 ")
	if err != nil {
		t.Fatal(err)
	}
	if id != 42 {
		t.Fatalf("ожидали 42, получили %d", id)
	}

	for _, bad := range []string{"", "abc", "4 2", "12.5"} {
		if _, err := ParseClassCode(bad); err == nil {
			t.Errorf("ParseClassCode(%q): ожидали ошибку", bad)
		}
	}
}

func TestNewClassStateLifecycle(t *testing.T) {
	const chatID = int64(900100)
	ClearNewClassState(chatID)

	if GetNewClassState(chatID) != nil {
		t.Fatal("ожидали отсутствие состояния до старта диалога")
	}

	newClassStates[chatID] = &NewClassState{Step: NCStepName}
	state := GetNewClassState(chatID)
	if state == nil || state.Step != NCStepName {
		t.Fatalf("состояние не сохранилось: %v", state)
	}

	// повторный ввод имени перезаписывает черновик
	state.PendingName = "10А"
	state.PendingName = "10Б"
	if GetNewClassState(chatID).PendingName != "10Б" {
		t.Fatal("последний ввод имени должен перекрывать предыдущий")
	}

	ClearNewClassState(chatID)
	if GetNewClassState(chatID) != nil {
		t.Fatal("состояние должно очищаться после завершения диалога")
	}
}
