package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"legal-qa-bot/internal/service"
)

// QueryHandler serves the stubbed answer endpoint. This is the extension
// point a real retrieval-augmented backend replaces.
type QueryHandler struct {
	logger   *zap.Logger
	answerer service.Answerer
	accounts *service.AccountService
}

func NewQueryHandler(logger *zap.Logger, answerer service.Answerer, accounts *service.AccountService) *QueryHandler {
	return &QueryHandler{
		logger:   logger,
		answerer: answerer,
		accounts: accounts,
	}
}

// Query handles POST /api/query.
func (h *QueryHandler) Query(c *gin.Context) {
	var req struct {
		Query string `json:"query" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid query request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	answer, err := h.answerer.Answer(c.Request.Context(), req.Query)
	if err != nil {
		h.logger.Error("answer failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not answer"})
		return
	}

	// Quota is best-effort: unauthenticated demo calls still get answers.
	if token := bearerToken(c); token != "" {
		if _, err := h.accounts.SpendRequest(c.Request.Context(), token); err != nil {
			h.logger.Warn("spend request failed", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, answer)
}
