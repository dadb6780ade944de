package db

import (
	"context"
	"database/sql"

	"github.com/classcoord/telegram-class-bot/internal/models"
)

// GetUserByTelegramID возвращает пользователя или nil, если такого нет.
// Отсутствие — не ошибка: новый пользователь заводится через EnsureUser.
func GetUserByTelegramID(ctx context.Context, database *sql.DB, telegramID int64) (*models.User, error) {
	row := database.QueryRowContext(ctx, `
		SELECT id, telegram_id, tg_nickname, name, class_id
		FROM users WHERE telegram_id = $1`, telegramID)

	var u models.User
	if err := row.Scan(&u.ID, &u.TelegramID, &u.TgNickname, &u.Name, &u.ClassID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// EnsureUser находит пользователя по telegram_id или создаёт нового с
// ником из профиля Telegram. Возвращает (user, created). Гонка двух
// первых сообщений гасится UNIQUE(telegram_id) + ON CONFLICT.
func EnsureUser(ctx context.Context, database *sql.DB, telegramID int64, nickname string) (*models.User, bool, error) {
	if u, err := GetUserByTelegramID(ctx, database, telegramID); err != nil {
		return nil, false, err
	} else if u != nil {
		return u, false, nil
	}

	row := database.QueryRowContext(ctx, `
		INSERT INTO users (telegram_id, tg_nickname)
		VALUES ($1, $2)
		ON CONFLICT (telegram_id) DO UPDATE SET tg_nickname = excluded.tg_nickname
		RETURNING id, telegram_id, tg_nickname, name, class_id`, telegramID, nickname)

	var u models.User
	if err := row.Scan(&u.ID, &u.TelegramID, &u.TgNickname, &u.Name, &u.ClassID); err != nil {
		return nil, false, err
	}
	return &u, true, nil
}

// SetUserName записывает свободное имя, введённое пользователем.
func SetUserName(ctx context.Context, database *sql.DB, telegramID int64, name string) error {
	_, err := database.ExecContext(ctx, `UPDATE users SET name = $1 WHERE telegram_id = $2`, name, telegramID)
	return err
}
