package http_api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nanakim-star/trc20bot/internal/models"
)

// errorStatus maps an error kind to its HTTP status and client message.
// Unclassified errors never leak their text.
func errorStatus(err error) (int, string) {
	var modelErr *models.Error
	if !errors.As(err, &modelErr) {
		return http.StatusInternalServerError, "internal error"
	}

	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrConflict):
		return http.StatusBadRequest, modelErr.Msg
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, modelErr.Msg
	case errors.Is(err, models.ErrAuth):
		return http.StatusUnauthorized, modelErr.Msg
	default:
		return http.StatusInternalServerError, modelErr.Msg
	}
}

// respondError writes err as a {"msg": ...} JSON body.
func (s *HTTPServer) respondError(c *gin.Context, err error) {
	status, msg := errorStatus(err)
	if status == http.StatusInternalServerError {
		s.requestLogger(c).Error("Request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, gin.H{"msg": msg})
}
