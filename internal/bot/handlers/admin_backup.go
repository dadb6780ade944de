package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/classcoord/telegram-class-bot/internal/backupclient"
	"github.com/classcoord/telegram-class-bot/internal/metrics"
	"github.com/classcoord/telegram-class-bot/internal/observability"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleAdminBackup — снять бэкап БД через sidecar. Доступность только
// админам проверяет диспетчер.
func HandleAdminBackup(ctx context.Context, bot *tgbotapi.BotAPI, chatID int64) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Minute)
	defer cancel()

	sendText(bot, chatID, "💾 Снимаю бэкап БД…")

	path, err := backupclient.TriggerBackup(ctx)
	if err != nil {
		metrics.HandlerErrors.Inc()
		observability.CaptureErr(err)
		sendText(bot, chatID, fmt.Sprintf("❌ Бэкап не удался: %v", err))
		return
	}
	sendText(bot, chatID, "✅ Готово. Файл: "+path)
}
