package db

import (
	"context"
	"database/sql"

	"github.com/classcoord/telegram-class-bot/internal/models"
)

func ListMoneyCollections(ctx context.Context, database *sql.DB, classID int64) ([]models.MoneyCollection, error) {
	rows, err := database.QueryContext(ctx, `
		SELECT id, class_id, name, target, collected
		FROM money_collections
		WHERE class_id = $1
		ORDER BY id`, classID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.MoneyCollection
	for rows.Next() {
		var m models.MoneyCollection
		if err := rows.Scan(&m.ID, &m.ClassID, &m.Name, &m.Target, &m.Collected); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func CreateMoneyCollection(ctx context.Context, database *sql.DB, m models.MoneyCollection) (int64, error) {
	row := database.QueryRowContext(ctx, `
		INSERT INTO money_collections (class_id, name, target)
		VALUES ($1, $2, $3)
		RETURNING id`, m.ClassID, m.Name, m.Target)
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// AddCollectedMoney увеличивает собранную сумму сбора.
func AddCollectedMoney(ctx context.Context, database *sql.DB, id, amount int64) error {
	_, err := database.ExecContext(ctx, `
		UPDATE money_collections SET collected = collected + $2 WHERE id = $1`, id, amount)
	return err
}
