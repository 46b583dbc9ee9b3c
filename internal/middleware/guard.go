package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	"github.com/BruksfildServices01/employee-portal/internal/httperr"
)

// OwnerResolver returns the manager id of the record named by the :id path
// parameter.
type OwnerResolver func(ctx context.Context, id string) (string, error)

// Rule is what a route requires of its caller. The zero Rule only requires
// authentication.
type Rule struct {
	Role   access.Role
	Action access.Action
	Owner  OwnerResolver
}

// Guard enforces rule after AuthMiddleware. Ownership is checked with the
// same policy the usecases apply.
func Guard(policy access.ScopePolicy, rule Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			httperr.AbortWith(c, httperr.ErrUnauthenticated("Not authorized, no token"))
			return
		}

		if rule.Role != "" {
			if err := access.RequireRole(id, rule.Role); err != nil {
				httperr.AbortWith(c, err)
				return
			}
		}

		if rule.Action != "" {
			owner := id.AccountID
			if rule.Owner != nil {
				var err error
				owner, err = rule.Owner(c.Request.Context(), c.Param("id"))
				if err != nil {
					httperr.AbortWith(c, err)
					return
				}
			}
			if err := policy.Authorize(id, rule.Action, owner); err != nil {
				httperr.AbortWith(c, err)
				return
			}
		}

		c.Next()
	}
}
