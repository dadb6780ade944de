package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/classcoord/telegram-class-bot/internal/models"
	"github.com/lib/pq"
)

// GetScheduleByClass — расписание класса или nil, если строки нет
// (легальный случай только для классов, созданных до появления бота).
func GetScheduleByClass(ctx context.Context, database *sql.DB, classID int64) (*models.LessonSchedule, error) {
	row := database.QueryRowContext(ctx, `
		SELECT id, class_id, monday, tuesday, wednesday, thursday, friday
		FROM lesson_schedule WHERE class_id = $1`, classID)

	var s models.LessonSchedule
	if err := row.Scan(&s.ID, &s.ClassID,
		pq.Array(&s.Monday), pq.Array(&s.Tuesday), pq.Array(&s.Wednesday),
		pq.Array(&s.Thursday), pq.Array(&s.Friday)); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

var dayColumns = [5]string{"monday", "tuesday", "wednesday", "thursday", "friday"}

// SetScheduleDay заменяет список предметов одного дня (0 = Пн .. 4 = Пт).
func SetScheduleDay(ctx context.Context, database *sql.DB, classID int64, day int, subjects []string) error {
	if day < 0 || day > 4 {
		return fmt.Errorf("день %d вне диапазона Пн..Пт", day)
	}
	// имя колонки из фиксированного списка, не из пользовательского ввода
	q := `UPDATE lesson_schedule SET ` + dayColumns[day] + ` = $1 WHERE class_id = $2`
	res, err := database.ExecContext(ctx, q, pq.Array(subjects), classID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("расписание класса %d не найдено", classID)
	}
	return nil
}
