package relay

import (
	"sync"

	"github.com/nanakim-star/trc20bot/internal/auth"
	"github.com/nanakim-star/trc20bot/internal/config"
	"github.com/nanakim-star/trc20bot/internal/models"
	"github.com/nanakim-star/trc20bot/pkg/logger"
)

// Relay is the main struct of the application. It owns the wallet registry,
// the deposit webhook intake and admin authentication, and is built once at
// startup and handed to the HTTP server.
type Relay struct {
	logger *logger.Logger
	config *config.Config

	repo        models.Repository
	notificator models.NotificationService
	tokens      *auth.TokenIssuer

	// writeMu serialises registry writes so the address uniqueness check and
	// the write that follows it cannot interleave with another writer.
	writeMu sync.Mutex
}

// NewRelay creates a new Relay instance
func NewRelay(
	repo models.Repository,
	notificator models.NotificationService,
	logger *logger.Logger,
	config *config.Config,
) *Relay {
	return &Relay{
		repo:        repo,
		notificator: notificator,
		logger:      logger,
		config:      config,
		tokens:      auth.NewTokenIssuer(config.JWTSecretKey, config.TokenTTL),
	}
}

// AssetSymbol returns the ticker of the monitored token.
func (r *Relay) AssetSymbol() string {
	return r.config.AssetSymbol
}
