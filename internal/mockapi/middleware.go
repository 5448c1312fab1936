package mockapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ulule/limiter/v3"

	"github.com/AssoGestion/asso_gestion_app/internal/utils"
)

type contextKey string

const (
	loggerKey contextKey = "logger"
	claimsKey contextKey = "claims"
)

// RequestLogging injects a request-scoped logger into the Gin context and
// logs completion with status and latency.
func RequestLogging(baseLogger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		requestLogger := baseLogger.With(
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)

		c.Header("X-Request-ID", requestID)
		c.Set(string(loggerKey), requestLogger)

		c.Next()

		requestLogger.Info("Request completed",
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		)
	}
}

// LoggerFrom retrieves the request-scoped logger, falling back to the
// default logger when the middleware did not run.
func LoggerFrom(c *gin.Context) *slog.Logger {
	if v, ok := c.Get(string(loggerKey)); ok {
		if logger, ok := v.(*slog.Logger); ok {
			return logger
		}
	}
	return slog.Default()
}

// Auth validates the bearer token and stores its claims in the context.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			respondError(c, http.StatusUnauthorized, "Authorization header must be Bearer {token}", nil)
			return
		}

		claims, err := utils.ParseAndValidateJWT(token, jwtSecret)
		if err != nil {
			LoggerFrom(c).Warn("Invalid token", "error", err)
			respondError(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			return
		}
		if claims.Subject == "" {
			respondError(c, http.StatusUnauthorized, "Invalid token claims", nil)
			return
		}

		c.Set(string(claimsKey), claims)
		c.Next()
	}
}

// ClaimsFrom returns the validated token claims, or nil on unauthenticated
// routes.
func ClaimsFrom(c *gin.Context) *utils.SessionClaims {
	if v, ok := c.Get(string(claimsKey)); ok {
		if claims, ok := v.(*utils.SessionClaims); ok {
			return claims
		}
	}
	return nil
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):], true
	}
	return "", false
}

// RateLimit applies per-IP rate limiting backed by the given limiter.
func RateLimit(instance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		lctx, err := instance.Get(c.Request.Context(), ip)
		if err != nil {
			LoggerFrom(c).Error("Rate limit check failed", slog.String("ip", ip), slog.String("error", err.Error()))
			respondError(c, http.StatusInternalServerError, "Internal server error during rate limit check", nil)
			return
		}
		if lctx.Reached {
			LoggerFrom(c).Warn("Rate limit exceeded", slog.String("ip", ip), slog.Int64("limit", lctx.Limit))
			respondError(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
			return
		}
		c.Next()
	}
}
