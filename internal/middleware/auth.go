package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"qr-menu/pkg/response"
)

// AdminKeyHeader carries the shared admin key.
const AdminKeyHeader = "X-Admin-Key"

// AdminAuth guards the admin dashboard routes. With no key configured every
// request is rejected.
func (m Middleware) AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.adminKey == "" {
			m.l.Warnf(c.Request.Context(), "middleware.AdminAuth: admin api key not configured, rejecting %s", c.FullPath())
			response.Unauthorized(c)
			return
		}

		key := c.GetHeader(AdminKeyHeader)
		if subtle.ConstantTimeCompare([]byte(key), []byte(m.adminKey)) != 1 {
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
