package relay

import (
	"context"
	"crypto/subtle"

	"github.com/nanakim-star/trc20bot/internal/auth"
	"github.com/nanakim-star/trc20bot/internal/models"
)

// SetupAdmin creates the admin user from ADMIN_USERNAME / ADMIN_PASSWORD, or
// resets its password when it already exists. key must equal SETUP_KEY; an
// unset SETUP_KEY disables the endpoint.
func (r *Relay) SetupAdmin(ctx context.Context, key string) (string, bool, error) {
	expected := r.config.SetupKey
	if expected == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
		r.logger.Warn("Rejected admin setup attempt")
		return "", false, models.NewError(models.ErrAuth, "Unauthorized")
	}

	username, password := r.config.AdminUsername, r.config.AdminPassword
	if username == "" || password == "" {
		return "", false, models.NewError(models.ErrConfig, "ADMIN_USERNAME and ADMIN_PASSWORD must be set in environment variables.")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", false, err
	}
	created, err := r.repo.SaveUser(ctx, username, hash)
	if err != nil {
		r.logger.Error("Failed to save admin user", "username", username, "error", err)
		return "", false, err
	}

	r.logger.Info("Admin user saved", "username", username, "created", created)
	return username, created, nil
}

// Login verifies the credentials and returns a bearer token.
func (r *Relay) Login(ctx context.Context, username, password string) (string, error) {
	user, err := r.repo.GetUser(ctx, username)
	if err != nil {
		r.logger.Error("Failed to get user", "username", username, "error", err)
		return "", err
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, password) {
		r.logger.Warn("Failed login attempt", "username", username)
		return "", models.NewError(models.ErrAuth, "Bad username or password")
	}

	return r.tokens.Issue(user.Username)
}

// Authenticate verifies a bearer token and returns the username it was issued to.
func (r *Relay) Authenticate(token string) (string, error) {
	return r.tokens.Verify(token)
}
