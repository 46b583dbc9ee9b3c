package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	"github.com/BruksfildServices01/employee-portal/internal/httperr"
)

const ContextIdentity = "identity"

// TokenParser resolves a bearer token into the caller's identity.
type TokenParser interface {
	Parse(token string) (access.Identity, error)
}

func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.AbortWith(c, httperr.ErrUnauthenticated("Not authorized, no token"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.AbortWith(c, httperr.ErrUnauthenticated("Not authorized, no token"))
			return
		}

		id, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.AbortWith(c, httperr.ErrUnauthenticated("Not authorized, token failed"))
			return
		}

		c.Set(ContextIdentity, id)
		c.Request = c.Request.WithContext(access.WithIdentity(c.Request.Context(), id))

		c.Next()
	}
}

// IdentityFrom returns the identity AuthMiddleware attached.
func IdentityFrom(c *gin.Context) (access.Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return access.Identity{}, false
	}
	id, ok := v.(access.Identity)
	return id, ok
}
