package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/budgetbuddy/budgetbuddy/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// SessionUserKey is the session entry holding the logged-in user's id for
// the browser cookie flow.
const SessionUserKey = "user_id"

type AuthMiddleware struct {
	accountService *services.AccountService
	testMode       bool
}

func NewAuthMiddleware(accountService *services.AccountService, testMode bool) *AuthMiddleware {
	return &AuthMiddleware{
		accountService: accountService,
		testMode:       testMode,
	}
}

// RequireAuth resolves the requesting user from, in order: the test-mode
// header, a Bearer token, or the session cookie. The resolved id is stored
// on the context for handlers; every service call takes it explicitly.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.testMode {
			header := c.GetHeader("X-Test-User-ID")
			if header == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "X-Test-User-ID header required in test mode"})
				c.Abort()
				return
			}
			id, err := strconv.ParseUint(header, 10, 64)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid X-Test-User-ID header"})
				c.Abort()
				return
			}
			c.Set(userIDKey, uint(id))
			c.Next()
			return
		}

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
				c.Abort()
				return
			}

			userID, err := m.accountService.ValidateToken(parts[1])
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
				c.Abort()
				return
			}

			c.Set(userIDKey, userID)
			c.Next()
			return
		}

		session := sessions.Default(c)
		if id, ok := session.Get(SessionUserKey).(uint); ok {
			c.Set(userIDKey, id)
			c.Next()
			return
		}

		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		c.Abort()
	}
}

func GetUserID(c *gin.Context) uint {
	id, exists := c.Get(userIDKey)
	if !exists {
		return 0
	}
	return id.(uint)
}
