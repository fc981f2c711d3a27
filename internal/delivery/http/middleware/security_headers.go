package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware sets the response hardening headers. This service
// serves JSON plus the swagger UI, so the CSP only admits same-origin assets;
// Supabase stays reachable for browsers calling the API directly.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Content-Security-Policy",
			"default-src 'self'; "+
				"img-src 'self' data:; "+
				"style-src 'self' 'unsafe-inline'; "+
				"connect-src 'self' https://*.supabase.co; "+
				"frame-ancestors 'none'")

		// Authenticated payloads are user data; keep them out of shared caches.
		if c.GetHeader("Authorization") != "" || c.GetHeader("Cookie") != "" {
			c.Header("Cache-Control", "no-store")
		}

		c.Next()
	}
}
