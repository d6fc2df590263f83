package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"payping-dispatch/internal/handler/httperr"
	"payping-dispatch/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// CronSecretHeader carries the shared secret the scheduler sends.
const CronSecretHeader = "X-Cron-Secret"

// RequireCronSecret guards the dispatch trigger from public invocation. With
// no secret configured the guard is skipped entirely; the endpoint is assumed
// to be reachable only from trusted infrastructure in that case.
func RequireCronSecret(cfg config.CronConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.Secret == "" {
			c.Next()
			return
		}

		supplied := c.GetHeader(CronSecretHeader)
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(cfg.Secret)) != 1 {
			slog.Warn("unauthorized cron access attempt", "client_ip", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.Response{
				Error:   "Unauthorized",
				Message: "Invalid cron secret",
			})
			return
		}

		c.Next()
	}
}
