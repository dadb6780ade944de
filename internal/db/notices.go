package db

import (
	"context"
	"database/sql"

	"github.com/classcoord/telegram-class-bot/internal/models"
)

func ListNotices(ctx context.Context, database *sql.DB, classID int64) ([]models.Notice, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT id, class_id, name, body, created_at
		FROM notices
		WHERE class_id = $1
		ORDER BY created_at, id`, classID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.Notice
	for rows.Next() {
		var n models.Notice
		if err := rows.Scan(&n.ID, &n.ClassID, &n.Name, &n.Body, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func GetNoticeByID(ctx context.Context, database *sql.DB, id int64) (*models.Notice, error) {
	row := database.QueryRowContext(ctx, `
		SELECT id, class_id, name, body, created_at FROM notices WHERE id = $1`, id)

	var n models.Notice
	if err := row.Scan(&n.ID, &n.ClassID, &n.Name, &n.Body, &n.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func CreateNotice(ctx context.Context, database *sql.DB, n models.Notice) (int64, error) {
	row := database.QueryRowContext(ctx, `
		INSERT INTO notices (class_id, name, body)
		VALUES ($1, $2, $3)
		RETURNING id`, n.ClassID, n.Name, n.Body)
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
