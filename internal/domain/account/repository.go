package account

import (
	"context"

	"github.com/BruksfildServices01/employee-portal/internal/models"
)

// Repository is the Credential Store.
type Repository interface {
	Create(ctx context.Context, a *models.Account) error
	GetByID(ctx context.Context, id string) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	// ListByRole returns accounts newest first.
	ListByRole(ctx context.Context, role string) ([]models.Account, error)
	Delete(ctx context.Context, id string) error
}
