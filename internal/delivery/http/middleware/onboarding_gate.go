package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Koushik2208/contentgen-pro/internal/delivery/http/response"
	"github.com/Koushik2208/contentgen-pro/internal/domain"
	"github.com/Koushik2208/contentgen-pro/internal/usecase"
)

// RequireOnboarded gates dashboard routes behind a completed onboarding flow.
// The status checker de-duplicates concurrent lookups and fails open, so a
// slow or failing database never locks users out of routes they may be
// entitled to; at worst a not-yet-onboarded user sees an empty dashboard.
func RequireOnboarded(checker *usecase.StatusChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(string(domain.KeyUserID))
		if userID == "" {
			response.Error(c, http.StatusUnauthorized, "User not authenticated", nil)
			c.Abort()
			return
		}

		if !checker.Check(c.Request.Context(), userID) {
			response.Error(c, http.StatusForbidden, "Onboarding not completed", gin.H{
				"redirect_to": "/onboarding",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
