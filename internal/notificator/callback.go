package notificator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nanakim-star/trc20bot/internal/models"
	"github.com/nanakim-star/trc20bot/pkg/logger"
)

// maxLoggedBody bounds how much of a callback response body is read and logged.
const maxLoggedBody = 4 << 10

// CallbackNotificator posts deposit payloads to operator supplied URLs.
type CallbackNotificator struct {
	logger *logger.Logger
	client *http.Client
}

func NewCallbackNotificator(logger *logger.Logger, timeout time.Duration) *CallbackNotificator {
	return &CallbackNotificator{
		logger: logger.With("channel", channelCallback),
		client: &http.Client{Timeout: timeout},
	}
}

// SendNotification posts data as JSON to url. The API key, when set, goes in
// the x-api-key header. An empty url is a no-op.
func (c *CallbackNotificator) SendNotification(ctx context.Context, url, apiKey string, data *models.CallbackPayload) error {
	if url == "" {
		return nil
	}

	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: marshal callback payload: %w", models.ErrDispatch, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		c.logger.Error("Invalid callback request", "url", url, "error", err)
		return fmt.Errorf("%w: create callback request: %w", models.ErrDispatch, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("x-api-key", apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Exception occurred while sending server alert", "url", url, "error_type", fmt.Sprintf("%T", err), "error", err)
		return fmt.Errorf("%w: send callback: %w", models.ErrDispatch, err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxLoggedBody))
	c.logger.Info("Server API response", "url", url, "status", resp.StatusCode, "body", string(respBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: callback returned status %d", models.ErrDispatch, resp.StatusCode)
	}
	return nil
}
