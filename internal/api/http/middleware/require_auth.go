package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/damataprodutora/portfolio-backend/internal/session"
)

// RequireAuth guards admin and mutating routes behind a live session. API
// callers (Accept: application/json) get a 401 JSON body; browser navigations
// are redirected to the login page instead.
func RequireAuth(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(session.CookieName)

		valid, err := sessions.Valid(c.Request.Context(), token)
		if err != nil {
			log.Printf("[error] operation=require_auth error=%v", err)
		}
		if valid {
			c.Next()
			return
		}

		if acceptsJSON(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Session expired. Please log in again.",
			})
			return
		}

		c.Redirect(http.StatusFound, "/login.html")
		c.Abort()
	}
}

func acceptsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
