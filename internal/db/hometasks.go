package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/classcoord/telegram-class-bot/internal/models"
)

// dateOnly переводит момент в календарную дату его локации. Колонки DATE
// всегда получают строку, чтобы пояс сессии не сдвигал день.
func dateOnly(t time.Time) string { return t.Format("2006-01-02") }

// ListHomeTasksBetween — домашние задания класса с датой в полуоткрытом
// окне [start, end): задание, датированное ровно end, не попадает.
func ListHomeTasksBetween(ctx context.Context, database *sql.DB, classID int64, start, end time.Time) ([]models.HomeTask, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT id, class_id, lesson, date, task
		FROM home_tasks
		WHERE class_id = $1 AND date >= $2::date AND date < $3::date
		ORDER BY date, lesson, id`, classID, dateOnly(start), dateOnly(end))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.HomeTask
	for rows.Next() {
		var h models.HomeTask
		if err := rows.Scan(&h.ID, &h.ClassID, &h.Lesson, &h.Date, &h.Task); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func CreateHomeTask(ctx context.Context, database *sql.DB, h models.HomeTask) (int64, error) {
	row := database.QueryRowContext(ctx, `
		INSERT INTO home_tasks (class_id, lesson, date, task)
		VALUES ($1, $2, $3, $4)
		RETURNING id`, h.ClassID, h.Lesson, dateOnly(h.Date), h.Task)
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
