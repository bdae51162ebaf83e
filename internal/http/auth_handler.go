package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"legal-qa-bot/internal/domain"
	"legal-qa-bot/internal/service"
)

// AuthHandler serves the demo auth endpoints. Error bodies use a "detail"
// field; the client shows it verbatim.
type AuthHandler struct {
	logger   *zap.Logger
	accounts *service.AccountService
}

func NewAuthHandler(logger *zap.Logger, accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{
		logger:   logger,
		accounts: accounts,
	}
}

// Login handles POST /api/auth/login. Demo semantics: any credentials are
// accepted, the token is derived from the email.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Email required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": domain.TokenForEmail(req.Email)})
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password"`
		Name     string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid register request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	account, err := h.accounts.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid email"})
		case errors.Is(err, service.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{"detail": "email already registered"})
		default:
			h.logger.Error("register failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not register"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    account.ID,
		"email": account.Email,
		"name":  account.Name,
	})
}
