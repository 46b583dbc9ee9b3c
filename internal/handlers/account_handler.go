package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/employee-portal/internal/httperr"
	"github.com/BruksfildServices01/employee-portal/internal/httpresp"
	"github.com/BruksfildServices01/employee-portal/internal/middleware"
	ucAccount "github.com/BruksfildServices01/employee-portal/internal/usecase/account"
)

// ======================================================
// HANDLER
// ======================================================

type AccountHandler struct {
	create *ucAccount.CreateSupervisor
	list   *ucAccount.ListSupervisors
	del    *ucAccount.DeleteAccount
}

func NewAccountHandler(
	create *ucAccount.CreateSupervisor,
	list *ucAccount.ListSupervisors,
	del *ucAccount.DeleteAccount,
) *AccountHandler {
	return &AccountHandler{
		create: create,
		list:   list,
		del:    del,
	}
}

// ======================================================
// CREATE SUPERVISOR
// ======================================================

func (h *AccountHandler) CreateSupervisor(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c)

	var req ucAccount.CreateSupervisorInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.ErrValidation("Please provide email and password"))
		return
	}

	out, err := h.create.Execute(c.Request.Context(), caller, req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, out)
}

// ======================================================
// LIST SUPERVISORS
// ======================================================

func (h *AccountHandler) ListSupervisors(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c)

	out, err := h.list.Execute(c.Request.Context(), caller)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// DELETE ACCOUNT
// ======================================================

func (h *AccountHandler) Delete(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c)

	if err := h.del.Execute(c.Request.Context(), caller, c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, "User deleted")
}
