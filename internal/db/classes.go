package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/classcoord/telegram-class-bot/internal/models"
	"github.com/lib/pq"
)

// FindClassesByMember возвращает все классы, в members которых есть
// telegramID. По замыслу их не больше одного, но схема этого не требует,
// поэтому наружу отдаём список.
func FindClassesByMember(ctx context.Context, database *sql.DB, telegramID int64) ([]models.SchoolClass, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT id, name, telegram_chat, members
		FROM classes
		WHERE members @> ARRAY[$1]::bigint[]
		ORDER BY id`, telegramID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.SchoolClass
	for rows.Next() {
		var c models.SchoolClass
		if err := rows.Scan(&c.ID, &c.Name, &c.TelegramChat, pq.Array(&c.Members)); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// FindClassByMember — первый класс пользователя или nil, если он ни в одном
// не состоит. Отсутствие класса — ожидаемая ветка, не ошибка.
func FindClassByMember(ctx context.Context, database *sql.DB, telegramID int64) (*models.SchoolClass, error) {
	row := database.QueryRowContext(ctx, `
		SELECT id, name, telegram_chat, members
		FROM classes
		WHERE members @> ARRAY[$1]::bigint[]
		ORDER BY id
		LIMIT 1`, telegramID)

	var c models.SchoolClass
	if err := row.Scan(&c.ID, &c.Name, &c.TelegramChat, pq.Array(&c.Members)); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func GetClassByID(ctx context.Context, database *sql.DB, id int64) (*models.SchoolClass, error) {
	row := database.QueryRowContext(ctx, `
		SELECT id, name, telegram_chat, members FROM classes WHERE id = $1`, id)

	var c models.SchoolClass
	if err := row.Scan(&c.ID, &c.Name, &c.TelegramChat, pq.Array(&c.Members)); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// CreateClassWithSchedule создаёт класс с единственным участником-создателем
// и пустую строку расписания одной транзакцией: осиротевший класс без
// расписания после сбоя невозможен. Заодно проставляет users.class_id.
func CreateClassWithSchedule(ctx context.Context, database *sql.DB, name string, creatorID int64) (*models.SchoolClass, error) {
	tx, err := database.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	c := models.SchoolClass{Name: name, Members: []int64{creatorID}}
	row := tx.QueryRowContext(ctx, `
		INSERT INTO classes (name, members)
		VALUES ($1, $2)
		RETURNING id`, name, pq.Array(c.Members))
	if err := row.Scan(&c.ID); err != nil {
		return nil, fmt.Errorf("insert class: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO lesson_schedule (class_id) VALUES ($1)`, c.ID); err != nil {
		return nil, fmt.Errorf("insert schedule: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE users SET class_id = $1 WHERE telegram_id = $2`, c.ID, creatorID); err != nil {
		return nil, fmt.Errorf("set user class: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &c, nil
}

// AddClassMember дописывает telegramID в конец members класса classID и
// синхронизирует users.class_id. Возвращает обновлённый класс или nil,
// если класса не существует. Повторное вступление — no-op.
func AddClassMember(ctx context.Context, database *sql.DB, classID, telegramID int64) (*models.SchoolClass, error) {
	tx, err := database.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `
		UPDATE classes
		SET members = CASE
			WHEN members @> ARRAY[$2]::bigint[] THEN members
			ELSE array_append(members, $2)
		END
		WHERE id = $1
		RETURNING id, name, telegram_chat, members`, classID, telegramID)

	var c models.SchoolClass
	if err := row.Scan(&c.ID, &c.Name, &c.TelegramChat, pq.Array(&c.Members)); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE users SET class_id = $1 WHERE telegram_id = $2`, classID, telegramID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &c, nil
}

// MemberTelegramIDs — telegram_id всех участников класса (для рассылок).
func MemberTelegramIDs(ctx context.Context, database *sql.DB, classID int64) ([]int64, error) {
	row := database.QueryRowContext(ctx, `SELECT members FROM classes WHERE id = $1`, classID)
	var members []int64
	if err := row.Scan(pq.Array(&members)); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return members, nil
}

// ListClassIDs — id всех классов (для фоновых обходов).
func ListClassIDs(ctx context.Context, database *sql.DB) ([]int64, error) {
	rows, err := database.QueryContext(ctx, `SELECT id FROM classes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
