package relay

import (
	"context"
	"fmt"

	"github.com/nanakim-star/trc20bot/internal/metrics"
	"github.com/nanakim-star/trc20bot/internal/models"
	"github.com/nanakim-star/trc20bot/pkg/validation"
)

const depositMessageFormat = "✅ *Deposit received*\n\n" +
	"💰 *Amount:* `%s` %s\n" +
	"🏠 *Address:* `%s`\n" +
	"🔗 *Tx ID:* `%s`"

// HandleDeposit processes one deposit webhook event.
//
// Events missing any field are rejected with a validation error. Events for
// another token contract, or for an address nobody registered, are
// acknowledged without notifying anyone. Otherwise both notification channels
// of the wallet are attempted; their results are logged and never turned
// into an error for the caller.
func (r *Relay) HandleDeposit(ctx context.Context, event *models.DepositEvent) (models.DepositOutcome, error) {
	r.logger.Info("Received deposit webhook",
		"address", event.Address,
		"amount", event.Amount,
		"tx_id", event.TxID,
		"contract_address", event.ContractAddress)

	amount := string(event.Amount)
	missing := validation.MissingFields(
		validation.Required("address", event.Address),
		validation.Required("amount", amount),
		validation.Required("txId", event.TxID),
		validation.Required("contractAddress", event.ContractAddress),
	)
	if len(missing) > 0 {
		metrics.WebhookEventsTotal.WithLabelValues("invalid").Inc()
		r.logger.Warn("Deposit webhook is missing required data", "missing", missing)
		return "", models.NewError(models.ErrValidation, "Missing required data")
	}

	if event.ContractAddress != r.config.MonitoredContractAddress {
		metrics.WebhookEventsTotal.WithLabelValues(string(models.OutcomeIgnored)).Inc()
		r.logger.Debug("Ignoring deposit for another contract", "contract_address", event.ContractAddress, "tx_id", event.TxID)
		return models.OutcomeIgnored, nil
	}

	address := validation.NormalizeAddress(event.Address)
	wallet, err := r.repo.GetWalletByAddress(ctx, address)
	if err != nil {
		// The sender only needs an acknowledgement; a failed lookup is ours to fix.
		metrics.WebhookEventsTotal.WithLabelValues("lookup_error").Inc()
		r.logger.Error("Failed to look up wallet for deposit", "address", address, "tx_id", event.TxID, "error", err)
		return models.OutcomeUnknownWallet, nil
	}
	if wallet == nil {
		metrics.WebhookEventsTotal.WithLabelValues(string(models.OutcomeUnknownWallet)).Inc()
		r.logger.Warn("Wallet not found for deposit address", "address", address, "tx_id", event.TxID)
		return models.OutcomeUnknownWallet, nil
	}

	r.logger.Info("Wallet found, sending notifications", "wallet", wallet.Name, "address", address, "tx_id", event.TxID)
	req := &models.DispatchRequest{
		BotToken: wallet.BotToken,
		ChatID:   wallet.ChatID,
		Message:  fmt.Sprintf(depositMessageFormat, amount, r.config.AssetSymbol, address, event.TxID),
	}
	if wallet.NotificationURL != "" {
		req.CallbackURL = wallet.NotificationURL
		req.CallbackAPIKey = wallet.NotificationAPIKey
		req.Callback = &models.CallbackPayload{
			Amount:     amount,
			Address:    address,
			TxID:       event.TxID,
			WalletName: wallet.Name,
		}
	}

	// The webhook caller going away must not cut the notifications short.
	report := r.notificator.Dispatch(context.WithoutCancel(ctx), req)

	metrics.WebhookEventsTotal.WithLabelValues(string(models.OutcomeDispatched)).Inc()
	r.logger.Info("Deposit notifications attempted",
		"wallet", wallet.Name,
		"tx_id", event.TxID,
		"chat_status", report.Chat.Status,
		"chat_error", errorString(report.Chat.Err),
		"callback_status", report.Callback.Status,
		"callback_error", errorString(report.Callback.Err))
	return models.OutcomeDispatched, nil
}

func errorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
