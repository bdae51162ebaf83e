package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"legal-qa-bot/internal/domain"
	"legal-qa-bot/internal/service"
)

// UpgradeHandler accepts status-upgrade requests and forwards them by mail.
type UpgradeHandler struct {
	logger   *zap.Logger
	upgrades *service.UpgradeService
}

func NewUpgradeHandler(logger *zap.Logger, upgrades *service.UpgradeService) *UpgradeHandler {
	return &UpgradeHandler{
		logger:   logger,
		upgrades: upgrades,
	}
}

// Request handles POST /api/status/upgrade.
func (h *UpgradeHandler) Request(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
		return
	}

	var req struct {
		RequestedStatus string `json:"requested_status" binding:"required"`
		Message         string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid upgrade request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	err := h.upgrades.RequestUpgrade(c.Request.Context(), token, domain.UserStatus(req.RequestedStatus), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "unknown status"})
		case errors.Is(err, service.ErrEmailSendFailure):
			c.JSON(http.StatusServiceUnavailable, gin.H{"detail": "email delivery unavailable"})
		default:
			h.logger.Error("upgrade request failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not submit request"})
		}
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "request_sent"})
}
