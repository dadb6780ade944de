//go:build testutil
// +build testutil

package db_test

import (
	"context"
	"testing"

	"github.com/classcoord/telegram-class-bot/internal/db"
	"github.com/classcoord/telegram-class-bot/internal/testutil/testdb"
)

func TestEnsureUser_Idempotent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	u1, created, err := db.EnsureUser(ctx, h.DB, 111222333, "Маша К")
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Fatal("ожидали create=true при первом контакте")
	}

	u2, created, err := db.EnsureUser(ctx, h.DB, 111222333, "Маша К")
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Fatal("ожидали create=false при повторном контакте")
	}
	if u2.ID != u1.ID {
		t.Fatalf("ожидали ту же запись, получили id %d и %d", u1.ID, u2.ID)
	}

	var n int
	if err := h.DB.QueryRow(`SELECT count(*) FROM users WHERE telegram_id = 111222333`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("ожидали одну строку users, получили %d", n)
	}
}

func TestCreateClassWithSchedule(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	const creator = int64(5001)
	if _, _, err := db.EnsureUser(ctx, h.DB, creator, "создатель"); err != nil {
		t.Fatal(err)
	}

	created, err := db.CreateClassWithSchedule(ctx, h.DB, "10А", creator)
	if err != nil {
		t.Fatal(err)
	}
	if len(created.Members) != 1 || created.Members[0] != creator {
		t.Fatalf("ожидали members=[%d], получили %v", creator, created.Members)
	}

	// строка расписания создана в той же транзакции и пуста
	schedule, err := db.GetScheduleByClass(ctx, h.DB, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if schedule == nil {
		t.Fatal("ожидали строку расписания для нового класса")
	}
	for i, day := range schedule.Days() {
		if len(day) != 0 {
			t.Fatalf("ожидали пустой день %d, получили %v", i+1, day)
		}
	}

	byID, err := db.GetClassByID(ctx, h.DB, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if byID == nil || byID.Name != "10А" {
		t.Fatalf("класс не читается по id: %v", byID)
	}
	if missing, err := db.GetClassByID(ctx, h.DB, 999999); err != nil || missing != nil {
		t.Fatalf("ожидали nil для несуществующего id, получили %v (%v)", missing, err)
	}

	// users.class_id синхронизирован
	u, err := db.GetUserByTelegramID(ctx, h.DB, creator)
	if err != nil {
		t.Fatal(err)
	}
	if u.ClassID == nil || *u.ClassID != created.ID {
		t.Fatalf("ожидали class_id=%d у создателя, получили %v", created.ID, u.ClassID)
	}
}

func TestFindClassesByMember_AndJoinOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	const creator, second, third = int64(1), int64(2), int64(3)
	for _, id := range []int64{creator, second, third} {
		if _, _, err := db.EnsureUser(ctx, h.DB, id, "u"); err != nil {
			t.Fatal(err)
		}
	}

	created, err := db.CreateClassWithSchedule(ctx, h.DB, "7Б", creator)
	if err != nil {
		t.Fatal(err)
	}

	if got, err := db.FindClassesByMember(ctx, h.DB, second); err != nil || len(got) != 0 {
		t.Fatalf("ожидали пустой результат для не-участника, получили %v (%v)", got, err)
	}

	if _, err := db.AddClassMember(ctx, h.DB, created.ID, second); err != nil {
		t.Fatal(err)
	}
	joined, err := db.AddClassMember(ctx, h.DB, created.ID, third)
	if err != nil {
		t.Fatal(err)
	}

	want := []int64{creator, second, third}
	if len(joined.Members) != len(want) {
		t.Fatalf("ожидали %v, получили %v", want, joined.Members)
	}
	for i := range want {
		if joined.Members[i] != want[i] {
			t.Fatalf("порядок вступления нарушен: ожидали %v, получили %v", want, joined.Members)
		}
	}

	// повторное вступление — no-op
	again, err := db.AddClassMember(ctx, h.DB, created.ID, second)
	if err != nil {
		t.Fatal(err)
	}
	if len(again.Members) != len(want) {
		t.Fatalf("повторное вступление изменило members: %v", again.Members)
	}

	got, err := db.FindClassesByMember(ctx, h.DB, second)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != created.ID {
		t.Fatalf("ожидали ровно класс %d, получили %v", created.ID, got)
	}

	// несуществующий класс
	none, err := db.AddClassMember(ctx, h.DB, 999999, second)
	if err != nil {
		t.Fatal(err)
	}
	if none != nil {
		t.Fatalf("ожидали nil для несуществующего класса, получили %v", none)
	}
}
