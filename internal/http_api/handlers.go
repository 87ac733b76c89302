package http_api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nanakim-star/trc20bot/internal/models"
)

// LoginRequest represents the JSON body of the /login endpoint
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// index is a liveness probe.
func (s *HTTPServer) index(c *gin.Context) {
	c.String(http.StatusOK, "Bot server is alive.")
}

// setupAdmin creates the admin user, or resets its password, when the key
// query parameter matches SETUP_KEY.
func (s *HTTPServer) setupAdmin(c *gin.Context) {
	username, created, err := s.relay.SetupAdmin(c.Request.Context(), c.Query("key"))
	if err != nil {
		status, msg := errorStatus(err)
		if status == http.StatusInternalServerError {
			s.requestLogger(c).Error("Admin setup failed", "error", err)
		}
		c.String(status, msg)
		return
	}

	if created {
		c.String(http.StatusOK, fmt.Sprintf("Admin user '%s' created successfully.", username))
		return
	}
	c.String(http.StatusOK, fmt.Sprintf("Admin user '%s' password has been updated successfully.", username))
}

// login exchanges admin credentials for a bearer token.
func (s *HTTPServer) login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.requestLogger(c).Debug("Invalid login body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	token, err := s.relay.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token})
}

// authMiddleware rejects requests without a valid bearer token.
func (s *HTTPServer) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Missing Authorization Header"})
			return
		}

		subject, err := s.relay.Authenticate(strings.TrimSpace(token))
		if err != nil {
			s.requestLogger(c).Debug("Rejected bearer token", "error", err)
			status, msg := errorStatus(err)
			c.AbortWithStatusJSON(status, gin.H{"msg": msg})
			return
		}

		c.Set("username", subject)
		c.Next()
	}
}

func (s *HTTPServer) listWallets(c *gin.Context) {
	wallets, err := s.relay.ListWallets(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	if wallets == nil {
		wallets = []*models.Wallet{}
	}
	c.JSON(http.StatusOK, wallets)
}

func (s *HTTPServer) createWallet(c *gin.Context) {
	var wallet models.Wallet
	if err := c.ShouldBindJSON(&wallet); err != nil {
		s.requestLogger(c).Debug("Invalid wallet body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	created, err := s.relay.CreateWallet(c.Request.Context(), &wallet)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Wallet added successfully", "id": created.ID})
}

func (s *HTTPServer) updateWallet(c *gin.Context) {
	id, ok := walletID(c)
	if !ok {
		return
	}

	var patch models.WalletPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		s.requestLogger(c).Debug("Invalid wallet patch", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid request body"})
		return
	}

	if _, err := s.relay.UpdateWallet(c.Request.Context(), id, &patch); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Wallet updated successfully"})
}

func (s *HTTPServer) deleteWallet(c *gin.Context) {
	id, ok := walletID(c)
	if !ok {
		return
	}

	if err := s.relay.DeleteWallet(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Wallet deleted successfully"})
}

// tatumWebhook receives deposit events. Every well-formed event is
// acknowledged with 200, whatever happened to the notifications.
func (s *HTTPServer) tatumWebhook(c *gin.Context) {
	var event models.DepositEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		s.requestLogger(c).Warn("Invalid webhook payload", "error", err)
		c.String(http.StatusBadRequest, "Missing required data")
		return
	}

	outcome, err := s.relay.HandleDeposit(c.Request.Context(), &event)
	if err != nil {
		status, msg := errorStatus(err)
		if status == http.StatusInternalServerError {
			s.requestLogger(c).Error("Webhook processing failed", "error", err)
		}
		c.String(status, msg)
		return
	}

	if outcome == models.OutcomeIgnored {
		c.String(http.StatusOK, "Transaction is not for "+s.relay.AssetSymbol())
		return
	}
	c.String(http.StatusOK, "Webhook received and processed")
}

// walletID parses the :id path parameter, answering 400 when it is not a
// positive integer.
func walletID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid wallet id"})
		return 0, false
	}
	return uint(id), true
}
