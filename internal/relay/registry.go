package relay

import (
	"context"
	"errors"

	"github.com/nanakim-star/trc20bot/internal/metrics"
	"github.com/nanakim-star/trc20bot/internal/models"
	"github.com/nanakim-star/trc20bot/pkg/validation"
)

// ListWallets returns every registered wallet ordered by id.
func (r *Relay) ListWallets(ctx context.Context) ([]*models.Wallet, error) {
	return r.repo.ListWallets(ctx)
}

// CreateWallet stores a new wallet. Name, address, bot token and chat id are
// required; the address must not be registered yet.
func (r *Relay) CreateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	wallet.ID = 0
	wallet.Address = validation.NormalizeAddress(wallet.Address)

	if err := validation.RequireFields(
		validation.Required("name", wallet.Name),
		validation.Required("address", wallet.Address),
		validation.Required("bot_token", wallet.BotToken),
		validation.Required("chat_id", wallet.ChatID),
	); err != nil {
		r.logger.Debug("Rejected wallet", "error", err)
		recordRegistry("create", err)
		return nil, models.NewError(models.ErrValidation, "Missing required fields")
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	if err := r.repo.CreateWallet(ctx, wallet); err != nil {
		recordRegistry("create", err)
		if !isClassified(err) {
			r.logger.Error("Failed to create wallet", "address", wallet.Address, "error", err)
		}
		return nil, err
	}

	recordRegistry("create", nil)
	r.logger.Info("Wallet registered", "id", wallet.ID, "name", wallet.Name, "address", wallet.Address)
	return wallet, nil
}

// UpdateWallet applies patch to the wallet with the given id. Fields the
// patch leaves nil keep their stored value.
func (r *Relay) UpdateWallet(ctx context.Context, id uint, patch *models.WalletPatch) (*models.Wallet, error) {
	if patch.Address != nil {
		normalized := validation.NormalizeAddress(*patch.Address)
		patch.Address = &normalized
	}

	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	wallet, err := r.repo.UpdateWallet(ctx, id, patch)
	if err != nil {
		recordRegistry("update", err)
		if !isClassified(err) {
			r.logger.Error("Failed to update wallet", "id", id, "error", err)
		}
		return nil, err
	}

	recordRegistry("update", nil)
	r.logger.Info("Wallet updated", "id", wallet.ID, "address", wallet.Address)
	return wallet, nil
}

// DeleteWallet removes the wallet with the given id.
func (r *Relay) DeleteWallet(ctx context.Context, id uint) error {
	r.writeMu.Lock()
	defer r.writeMu.Unlock()

	if err := r.repo.DeleteWallet(ctx, id); err != nil {
		recordRegistry("delete", err)
		if !isClassified(err) {
			r.logger.Error("Failed to delete wallet", "id", id, "error", err)
		}
		return err
	}

	recordRegistry("delete", nil)
	r.logger.Info("Wallet deleted", "id", id)
	return nil
}

// FindByAddress returns the wallet registered for address, or nil.
func (r *Relay) FindByAddress(ctx context.Context, address string) (*models.Wallet, error) {
	return r.repo.GetWalletByAddress(ctx, validation.NormalizeAddress(address))
}

func isClassified(err error) bool {
	var modelErr *models.Error
	return errors.As(err, &modelErr)
}

func recordRegistry(operation string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, models.ErrValidation):
		result = "invalid"
	case errors.Is(err, models.ErrConflict):
		result = "conflict"
	case errors.Is(err, models.ErrNotFound):
		result = "not_found"
	default:
		result = "error"
	}
	metrics.RegistryOperationsTotal.WithLabelValues(operation, result).Inc()
}
