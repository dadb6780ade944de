package db

import (
	"context"
	"database/sql"

	"github.com/classcoord/telegram-class-bot/internal/models"
	"github.com/lib/pq"
)

func ListEvents(ctx context.Context, database *sql.DB, classID int64) ([]models.Event, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT id, class_id, name, date, description, tasks, complete_tasks
		FROM events
		WHERE class_id = $1
		ORDER BY date, id`, classID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.Event
	for rows.Next() {
		var e models.Event
		var date sql.NullTime
		if err := rows.Scan(&e.ID, &e.ClassID, &e.Name, &date, &e.Description,
			pq.Array(&e.Tasks), pq.Array(&e.CompleteTasks)); err != nil {
			return nil, err
		}
		if date.Valid {
			e.Date = date.Time
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func GetEventByID(ctx context.Context, database *sql.DB, id int64) (*models.Event, error) {
	row := database.QueryRowContext(ctx, `
		SELECT id, class_id, name, date, description, tasks, complete_tasks
		FROM events WHERE id = $1`, id)

	var e models.Event
	var date sql.NullTime
	if err := row.Scan(&e.ID, &e.ClassID, &e.Name, &date, &e.Description,
		pq.Array(&e.Tasks), pq.Array(&e.CompleteTasks)); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if date.Valid {
		e.Date = date.Time
	}
	return &e, nil
}

func CreateEvent(ctx context.Context, database *sql.DB, e models.Event) (int64, error) {
	// дата в DATE-колонку уходит строкой, чтобы пояс сессии не сдвигал день
	var date interface{}
	if !e.Date.IsZero() {
		date = e.Date.Format("2006-01-02")
	}
	row := database.QueryRowContext(ctx, `
		INSERT INTO events (class_id, name, date, description, tasks, complete_tasks)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		e.ClassID, e.Name, date, e.Description, pq.Array(e.Tasks), pq.Array(e.CompleteTasks))
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// CompleteEventTask помечает задачу мероприятия выполненной: дописывает её
// текст в complete_tasks, если задача есть в tasks и ещё не отмечена.
// Возвращает false, если менять было нечего.
func CompleteEventTask(ctx context.Context, database *sql.DB, eventID int64, task string) (bool, error) {
	res, err := database.ExecContext(ctx, `
		UPDATE events
		SET complete_tasks = array_append(complete_tasks, $2)
		WHERE id = $1
		  AND tasks @> ARRAY[$2]::text[]
		  AND NOT complete_tasks @> ARRAY[$2]::text[]`, eventID, task)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n == 1, nil
}
