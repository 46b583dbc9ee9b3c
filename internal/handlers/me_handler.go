package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/employee-portal/internal/dto"
	"github.com/BruksfildServices01/employee-portal/internal/httperr"
	"github.com/BruksfildServices01/employee-portal/internal/httpresp"
	"github.com/BruksfildServices01/employee-portal/internal/middleware"
)

type MeHandler struct{}

func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// GetMe answers from the token; it does not hit the store.
func (h *MeHandler) GetMe(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Respond(c, httperr.ErrUnauthenticated("Not authorized, no token"))
		return
	}

	httpresp.OK(c, dto.AccountSummary{
		ID:    id.AccountID,
		Email: id.Email,
		Role:  string(id.Role),
	})
}
