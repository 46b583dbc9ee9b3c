package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/employee-portal/internal/dto"
	"github.com/BruksfildServices01/employee-portal/internal/httperr"
	ucSession "github.com/BruksfildServices01/employee-portal/internal/usecase/session"
)

type AuthHandler struct {
	login *ucSession.Login
}

func NewAuthHandler(login *ucSession.Login) *AuthHandler {
	return &AuthHandler{login: login}
}

// --------- Responses ---------

type LoginResponse struct {
	Success   bool               `json:"success"`
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expiresAt"`
	User      dto.AccountSummary `json:"user"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req ucSession.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.ErrValidation("Please provide email and password"))
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Success:   true,
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
		User:      res.User,
	})
}
