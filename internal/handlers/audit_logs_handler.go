package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/employee-portal/internal/httperr"
	"github.com/BruksfildServices01/employee-portal/internal/httpresp"
	"github.com/BruksfildServices01/employee-portal/internal/middleware"
	ucEmployee "github.com/BruksfildServices01/employee-portal/internal/usecase/employee"
)

type AuditLogsHandler struct {
	list *ucEmployee.ListAuditLogs
}

func NewAuditLogsHandler(list *ucEmployee.ListAuditLogs) *AuditLogsHandler {
	return &AuditLogsHandler{list: list}
}

// List returns the most recent entries; ?limit= is clamped, garbage falls
// back to the default.
func (h *AuditLogsHandler) List(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c)
	limit, _ := strconv.Atoi(c.Query("limit"))

	logs, err := h.list.Execute(c.Request.Context(), caller, limit)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, logs)
}
