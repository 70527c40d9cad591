package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"namunjari/internal/infra/security"
)

// AdminAuth gates the operator endpoints behind the single admin password.
// The password travels in the X-Admin-Password header; there are no user
// accounts or sessions.
type AdminAuth struct {
	Verifier security.PasswordVerifier
}

func (m AdminAuth) Handle(c *gin.Context) {
	if m.Verifier.Hash == "" {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "admin access not configured"})
		return
	}
	if err := m.Verifier.Verify(c.GetHeader("X-Admin-Password")); err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid admin password"})
		return
	}
	c.Next()
}
