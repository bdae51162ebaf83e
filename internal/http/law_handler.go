package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"legal-qa-bot/internal/repository"
	"legal-qa-bot/internal/service"
)

// LawHandler serves the demo law corpus and the search stub.
type LawHandler struct {
	logger *zap.Logger
	laws   repository.LawRepository
	search *service.SearchService
}

func NewLawHandler(logger *zap.Logger, laws repository.LawRepository, search *service.SearchService) *LawHandler {
	return &LawHandler{
		logger: logger,
		laws:   laws,
		search: search,
	}
}

// List handles GET /api/laws.
func (h *LawHandler) List(c *gin.Context) {
	laws, err := h.laws.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list laws failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not list laws"})
		return
	}
	c.JSON(http.StatusOK, laws)
}

// Get handles GET /api/laws/:id.
func (h *LawHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid law id"})
		return
	}

	law, err := h.laws.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not found"})
			return
		}
		h.logger.Error("get law failed", zap.Error(err), zap.Int("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not get law"})
		return
	}
	c.JSON(http.StatusOK, law)
}

// Search handles POST /api/search.
func (h *LawHandler) Search(c *gin.Context) {
	var req struct {
		Query string `json:"query" binding:"required"`
		TopK  int    `json:"top_k"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid search request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}

	hits, err := h.search.Search(c.Request.Context(), req.Query, req.TopK)
	if err != nil {
		h.logger.Error("search failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "could not search"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": hits})
}
