package db

import (
	"database/sql"

	"github.com/classcoord/telegram-class-bot/internal/db/migrations"
	"github.com/pressly/goose/v3"
)

// Migrate накатывает embed-миграции goose до актуальной версии.
func Migrate(database *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(database, ".")
}
