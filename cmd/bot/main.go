package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/classcoord/telegram-class-bot/internal/app"
	"github.com/classcoord/telegram-class-bot/internal/config"
	"github.com/classcoord/telegram-class-bot/internal/db"
	"github.com/classcoord/telegram-class-bot/internal/jobs"
	"github.com/classcoord/telegram-class-bot/internal/logging"
	"github.com/classcoord/telegram-class-bot/internal/observability"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
)

const release = "telegram-class-bot@dev"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Не удалось загрузить .env файл, используем переменные окружения")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("Ошибка инициализации логгера: %v", err)
	}
	defer lg.Closer()
	sugar := lg.Sugar

	flushSentry, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, release)
	if err != nil {
		sugar.Warnw("sentry init", "err", err)
	}
	defer flushSentry()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		sugar.Fatalw("запуск бота", "err", err)
	}
	sugar.Infow("бот запущен", "username", bot.Self.UserName)

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		sugar.Fatalw("подключение к БД", "err", err)
	}
	defer func() { _ = database.Close() }()

	if err := db.Migrate(database); err != nil {
		sugar.Fatalw("миграция", "err", err)
	}

	app.StartHTTP(ctx, cfg.HTTPAddr, database)

	runner := jobs.New(ctx)
	digest := jobs.NewHomeworkDigest(bot, database, cfg.DigestHour, cfg.Location)
	runner.Every(time.Minute, "homework_digest", digest.Run)

	router := app.NewRouter(bot, database, cfg, sugar)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			bot.StopReceivingUpdates()
			sugar.Info("остановка по сигналу")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			router.HandleUpdate(ctx, update)
		}
	}
}
