package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/employee-portal/internal/dto"
	"github.com/BruksfildServices01/employee-portal/internal/httperr"
	"github.com/BruksfildServices01/employee-portal/internal/httpresp"
	"github.com/BruksfildServices01/employee-portal/internal/middleware"
	"github.com/BruksfildServices01/employee-portal/internal/pagination"
	ucEmployee "github.com/BruksfildServices01/employee-portal/internal/usecase/employee"
)

// ======================================================
// HANDLER
// ======================================================

type EmployeeHandler struct {
	list   *ucEmployee.ListEmployees
	get    *ucEmployee.GetEmployee
	create *ucEmployee.CreateEmployee
	update *ucEmployee.UpdateEmployee
	del    *ucEmployee.DeleteEmployee
	stats  *ucEmployee.EmployeeStats
	photo  *ucEmployee.UploadPhoto

	photoMaxBytes int64
}

type EmployeeUsecases struct {
	List   *ucEmployee.ListEmployees
	Get    *ucEmployee.GetEmployee
	Create *ucEmployee.CreateEmployee
	Update *ucEmployee.UpdateEmployee
	Delete *ucEmployee.DeleteEmployee
	Stats  *ucEmployee.EmployeeStats
	Photo  *ucEmployee.UploadPhoto
}

func NewEmployeeHandler(uc EmployeeUsecases, photoMaxBytes int64) *EmployeeHandler {
	return &EmployeeHandler{
		list:          uc.List,
		get:           uc.Get,
		create:        uc.Create,
		update:        uc.Update,
		del:           uc.Delete,
		stats:         uc.Stats,
		photo:         uc.Photo,
		photoMaxBytes: photoMaxBytes,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *EmployeeHandler) List(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c)

	res, err := h.list.Execute(c.Request.Context(), caller, ucEmployee.ListInput{
		Page:       pagination.FromQuery(c.Query("page"), c.Query("limit")),
		Search:     c.Query("search"),
		Department: c.Query("department"),
		Status:     c.Query("status"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EmployeeListResponse{
		Success:        true,
		Count:          len(res.Employees),
		TotalPages:     res.Page.TotalPages,
		CurrentPage:    res.Page.Page,
		TotalEmployees: res.Page.Total,
		Employees:      res.Employees,
	})
}

// ======================================================
// GET / STATS
// ======================================================

func (h *EmployeeHandler) Get(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c)

	e, err := h.get.Execute(c.Request.Context(), caller, c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, e)
}

func (h *EmployeeHandler) Stats(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c)

	st, err := h.stats.Execute(c.Request.Context(), caller)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, st)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *EmployeeHandler) Create(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c)

	var req dto.EmployeeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.ErrValidation("Invalid request body"))
		return
	}

	e, err := h.create.Execute(c.Request.Context(), caller, req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, e)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c)

	var req dto.EmployeeInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.ErrValidation("Invalid request body"))
		return
	}

	e, err := h.update.Execute(c.Request.Context(), caller, c.Param("id"), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, e)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c)

	if err := h.del.Execute(c.Request.Context(), caller, c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{})
}

// ======================================================
// PHOTO
// ======================================================

func (h *EmployeeHandler) UploadPhoto(c *gin.Context) {
	caller, _ := middleware.IdentityFrom(c)

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.photoMaxBytes)

	file, err := c.FormFile("photo")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.Respond(c, httperr.ErrValidation("Photo must be at most %d bytes", h.photoMaxBytes))
			return
		}
		httperr.Respond(c, httperr.ErrValidation("Please upload a photo"))
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer f.Close()

	e, err := h.photo.Execute(c.Request.Context(), caller, c.Param("id"), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, e)
}
