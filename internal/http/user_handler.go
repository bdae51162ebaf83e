package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"legal-qa-bot/internal/service"
)

// UserHandler serves the profile endpoints behind the demo bearer token.
type UserHandler struct {
	logger   *zap.Logger
	accounts *service.AccountService
}

func NewUserHandler(logger *zap.Logger, accounts *service.AccountService) *UserHandler {
	return &UserHandler{
		logger:   logger,
		accounts: accounts,
	}
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
		return
	}

	user, err := h.accounts.ProfileForToken(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
			return
		}
		h.logger.Error("profile read failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not load profile"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update handles PUT /api/users/me.
func (h *UserHandler) Update(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
		return
	}

	var req struct {
		Name  string `json:"name"`
		Photo string `json:"photo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid profile update", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	user, err := h.accounts.UpdateProfile(c.Request.Context(), token, req.Name, req.Photo)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
			return
		}
		h.logger.Error("profile update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not update profile"})
		return
	}
	c.JSON(http.StatusOK, user)
}
