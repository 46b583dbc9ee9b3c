package account

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/employee-portal/internal/auth"
	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	domain "github.com/BruksfildServices01/employee-portal/internal/domain/account"
	"github.com/BruksfildServices01/employee-portal/internal/dto"
	"github.com/BruksfildServices01/employee-portal/internal/httperr"
	"github.com/BruksfildServices01/employee-portal/internal/models"
	"github.com/BruksfildServices01/employee-portal/internal/validators"
)

// SeedAdmin creates an admin account. It is only reachable from the admin
// CLI; the API never creates admins.
type SeedAdmin struct {
	repo   domain.Repository
	hasher auth.PasswordHasher
}

func NewSeedAdmin(repo domain.Repository, hasher auth.PasswordHasher) *SeedAdmin {
	return &SeedAdmin{repo: repo, hasher: hasher}
}

func (uc *SeedAdmin) Execute(ctx context.Context, email, password string) (*dto.AccountSummary, error) {
	email = validators.NormalizeEmail(email)
	if !validators.IsEmail(email) {
		return nil, httperr.ErrValidation("Please provide a valid email")
	}
	if err := validators.CheckPassword(password); err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	acc := &models.Account{
		Email:        email,
		PasswordHash: hash,
		Role:         string(access.RoleAdmin),
	}
	if err := uc.repo.Create(ctx, acc); err != nil {
		return nil, err
	}

	out := dto.NewAccountSummary(acc)
	return &out, nil
}
