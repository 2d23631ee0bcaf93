package middleware

import (
	"net/http"
	"strings"

	"navmind/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	userIDKey   = "userID"
	userRoleKey = "userRole"
)

// RequireAuth accepts "Authorization: Bearer <jwt>" signed with secret and
// stores the caller in the context for RequireRoles.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "missing bearer token",
				"code":       "unauthorized",
				"request_id": GetRequestID(c),
			})
			return
		}

		rc, err := services.ParseToken(secret, strings.TrimSpace(raw))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      err.Error(),
				"code":       "unauthorized",
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Set(userIDKey, int64(rc.UserID))
		c.Set(userRoleKey, rc.Role)
		c.Next()
	}
}

// GetUserID returns the caller id set by RequireAuth, 0 for anonymous requests.
func GetUserID(c *gin.Context) int64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// RequireRoles only lets through callers whose role (set by RequireAuth) is allowed.
//
//	r.GET("/admin", RequireAuth(secret), RequireRoles("admin"), handler)
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(userRoleKey)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "unauthorized: no role in context",
			})
			return
		}
		if _, ok := allowed[strings.ToLower(strings.TrimSpace(role))]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "forbidden: role not allowed",
			})
			return
		}
		c.Next()
	}
}
