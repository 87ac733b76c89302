package notificator

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	tgModels "github.com/go-telegram/bot/models"

	"github.com/nanakim-star/trc20bot/internal/models"
	"github.com/nanakim-star/trc20bot/pkg/logger"
)

// TelegramNotificator sends chat alerts through the Telegram Bot API. Every
// wallet carries its own bot token, so a bot client is built per message.
type TelegramNotificator struct {
	logger *logger.Logger

	serverURL string
	client    *http.Client
	timeout   time.Duration
}

func NewTelegramNotificator(logger *logger.Logger, serverURL string, timeout time.Duration) *TelegramNotificator {
	return &TelegramNotificator{
		logger:    logger.With("channel", channelTelegram),
		serverURL: serverURL,
		client:    &http.Client{Timeout: timeout},
		timeout:   timeout,
	}
}

func (t *TelegramNotificator) SendNotification(ctx context.Context, botToken, chatID, message string) error {
	opts := []bot.Option{
		bot.WithSkipGetMe(),
		bot.WithHTTPClient(t.timeout, t.client),
	}
	if t.serverURL != "" {
		opts = append(opts, bot.WithServerURL(t.serverURL))
	}

	b, err := bot.New(botToken, opts...)
	if err != nil {
		safe := redactToken(err, botToken)
		t.logger.Error("Failed to create Telegram bot", "error_type", fmt.Sprintf("%T", err), "error", safe)
		return fmt.Errorf("%w: create telegram bot: %s", models.ErrDispatch, safe)
	}

	params := &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      message,
		ParseMode: tgModels.ParseModeMarkdownV1,
	}
	msg, err := b.SendMessage(ctx, params)
	if err != nil {
		safe := redactToken(err, botToken)
		t.logger.Error("Exception occurred while sending Telegram alert", "chat_id", chatID, "error_type", fmt.Sprintf("%T", err), "error", safe)
		return fmt.Errorf("%w: send telegram alert: %s", models.ErrDispatch, safe)
	}

	t.logger.Info("Telegram alert sent", "chat_id", chatID, "message_id", msg.ID)
	return nil
}

// redactToken returns the error text with the bot token masked. Transport
// errors quote the request URL, which embeds the token.
func redactToken(err error, botToken string) string {
	msg := err.Error()
	if botToken == "" {
		return msg
	}
	return strings.ReplaceAll(msg, botToken, "<redacted>")
}
