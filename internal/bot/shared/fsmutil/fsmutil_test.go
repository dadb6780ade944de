package fsmutil

import "testing"

func TestPending(t *testing.T) {
	const chatID = int64(123456)
	ClearPending(chatID, "export:schedule")

	if !SetPending(chatID, "export:schedule") {
		t.Fatal("первый захват должен проходить")
	}
	if SetPending(chatID, "export:schedule") {
		t.Fatal("повторный захват того же чата должен отклоняться")
	}
	if SetPending(chatID, "newclass") {
		t.Fatal("чат занят — другой ключ тоже должен отклоняться")
	}

	// снятие с чужим ключом флаг не трогает
	ClearPending(chatID, "newclass")
	if SetPending(chatID, "newclass") {
		t.Fatal("флаг не должен сниматься чужим ключом")
	}

	ClearPending(chatID, "export:schedule")
	if !SetPending(chatID, "newclass") {
		t.Fatal("после снятия флага чат должен освобождаться")
	}
	ClearPending(chatID, "newclass")
}

func TestIsCancelText(t *testing.T) {
	for _, s := range []string{"Отмена", "  отмена ", "/cancel", "CANCEL"} {
		if !IsCancelText(s) {
			t.Errorf("IsCancelText(%q) должен возвращать true", s)
		}
	}
	for _, s := range []string{"", "отменить", "stop"} {
		if IsCancelText(s) {
			t.Errorf("IsCancelText(%q) должен возвращать false", s)
		}
	}
}
