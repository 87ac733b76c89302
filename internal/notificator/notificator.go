package notificator

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nanakim-star/trc20bot/internal/metrics"
	"github.com/nanakim-star/trc20bot/internal/models"
	"github.com/nanakim-star/trc20bot/pkg/logger"
)

const (
	channelTelegram = "telegram"
	channelCallback = "callback"
)

// Notificator delivers a deposit alert over the chat and callback channels.
// The channels run concurrently, each with its own timeout, and a failure in
// one never stops the other.
type Notificator struct {
	logger  *logger.Logger
	timeout time.Duration

	TelegramNotificator *TelegramNotificator
	CallbackNotificator *CallbackNotificator
}

func NewNotificator(logger *logger.Logger, telNotif *TelegramNotificator, callbackNotif *CallbackNotificator, timeout time.Duration) *Notificator {
	return &Notificator{
		logger:              logger,
		timeout:             timeout,
		TelegramNotificator: telNotif,
		CallbackNotificator: callbackNotif,
	}
}

func (n *Notificator) Dispatch(ctx context.Context, req *models.DispatchRequest) *models.DispatchReport {
	report := &models.DispatchReport{
		Callback: models.ChannelResult{Status: models.ChannelSkipped},
	}

	var g errgroup.Group
	g.Go(func() error {
		report.Chat = n.send(ctx, channelTelegram, func(ctx context.Context) error {
			return n.TelegramNotificator.SendNotification(ctx, req.BotToken, req.ChatID, req.Message)
		})
		return nil
	})
	if req.CallbackURL != "" {
		g.Go(func() error {
			report.Callback = n.send(ctx, channelCallback, func(ctx context.Context) error {
				return n.CallbackNotificator.SendNotification(ctx, req.CallbackURL, req.CallbackAPIKey, req.Callback)
			})
			return nil
		})
	} else {
		metrics.NotificationsTotal.WithLabelValues(channelCallback, string(models.ChannelSkipped)).Inc()
	}
	_ = g.Wait()

	return report
}

// send runs one channel under its own timeout and records the outcome.
func (n *Notificator) send(ctx context.Context, channel string, fn func(context.Context) error) models.ChannelResult {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	start := time.Now()
	err := n.safeCall(func() error { return fn(ctx) }, channel)
	metrics.NotificationLatency.WithLabelValues(channel).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.NotificationsTotal.WithLabelValues(channel, string(models.ChannelFailed)).Inc()
		return models.ChannelResult{Status: models.ChannelFailed, Err: err}
	}
	metrics.NotificationsTotal.WithLabelValues(channel, string(models.ChannelSent)).Inc()
	return models.ChannelResult{Status: models.ChannelSent}
}

// safeCall runs a function with panic recovery
func (n *Notificator) safeCall(fn func() error, context string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			n.logger.Error("Function panicked",
				"context", context,
				"panic", r,
				"stack", string(debug.Stack()))
			err = fmt.Errorf("%w: %s panicked: %v", models.ErrDispatch, context, r)
		}
	}()
	return fn()
}
