package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
)

// RequestID attaches a unique id to every request so log lines and the JSON
// response envelope can be correlated. An incoming X-Request-ID is honored to
// keep ids stable across proxies.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(string(domain.KeyRequestID), id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
