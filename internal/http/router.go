package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the Gin engine with middlewares and the demo API routes.
func NewRouter(
	logger *zap.Logger,
	authH *AuthHandler,
	lawH *LawHandler,
	queryH *QueryHandler,
	userH *UserHandler,
	upgradeH *UpgradeHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	auth := r.Group("/api/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/register", authH.Register)

	r.GET("/api/laws", lawH.List)
	r.GET("/api/laws/:id", lawH.Get)
	r.POST("/api/search", lawH.Search)

	r.POST("/api/query", queryH.Query)

	users := r.Group("/api/users")
	users.GET("/me", userH.Me)
	users.PUT("/me", userH.Update)

	r.POST("/api/status/upgrade", upgradeH.Request)

	return r
}

// zapLoggerMiddleware logs one line per request.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware forces Content-Type: application/json on responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

// bearerToken pulls the bearer token from the Authorization header, or ""
// when absent.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
