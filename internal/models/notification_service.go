package models

import "context"

type NotificationService interface {
	// Dispatch attempts every configured channel and reports each result.
	// It never fails as a whole.
	Dispatch(ctx context.Context, req *DispatchRequest) *DispatchReport
}

// DispatchRequest holds the targets and content of one deposit alert.
type DispatchRequest struct {
	BotToken string
	ChatID   string
	Message  string

	// CallbackURL is optional. When empty the callback channel is skipped.
	CallbackURL    string
	CallbackAPIKey string
	Callback       *CallbackPayload
}

type ChannelStatus string

const (
	ChannelSent    ChannelStatus = "sent"
	ChannelSkipped ChannelStatus = "skipped"
	ChannelFailed  ChannelStatus = "failed"
)

// ChannelResult is the outcome of a single notification channel.
type ChannelResult struct {
	Status ChannelStatus
	Err    error
}

// DispatchReport collects the outcome of both channels of a dispatch.
type DispatchReport struct {
	Chat     ChannelResult
	Callback ChannelResult
}
