package config

import "testing"

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs(" 101, 202 303 ")
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{101, 202, 303}
	if len(ids) != len(want) {
		t.Fatalf("ожидали %v, получили %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ожидали %v, получили %v", want, ids)
		}
	}

	if ids, err := parseIDs(""); err != nil || ids != nil {
		t.Fatalf("пустая строка: ожидали nil, получили %v (%v)", ids, err)
	}
	if _, err := parseIDs("101,abc"); err == nil {
		t.Fatal("ожидали ошибку для нечислового id")
	}
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{AdminIDs: []int64{101, 202}}
	if !cfg.IsAdmin(202) {
		t.Fatal("202 должен быть админом")
	}
	if cfg.IsAdmin(303) {
		t.Fatal("303 не должен быть админом")
	}
	if (&Config{}).IsAdmin(101) {
		t.Fatal("при пустом списке админов нет")
	}
}
