package dto

import (
	"time"

	"github.com/BruksfildServices01/employee-portal/internal/models"
)

// AccountSummary is the only shape accounts leave the API in.
type AccountSummary struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

func NewAccountSummary(a *models.Account) AccountSummary {
	return AccountSummary{
		ID:        a.ID,
		Email:     a.Email,
		Role:      a.Role,
		CreatedAt: a.CreatedAt,
	}
}

type LoginResult struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	User      AccountSummary `json:"user"`
}
