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

type CreateSupervisorInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateSupervisor struct {
	repo        domain.Repository
	hasher      auth.PasswordHasher
	policy      access.ScopePolicy
	domainCheck func(email string) bool
}

// NewCreateSupervisor enables the DNS check on the email domain when
// checkDomain is set.
func NewCreateSupervisor(
	repo domain.Repository,
	hasher auth.PasswordHasher,
	policy access.ScopePolicy,
	checkDomain bool,
) *CreateSupervisor {
	uc := &CreateSupervisor{
		repo:        repo,
		hasher:      hasher,
		policy:      policy,
		domainCheck: func(string) bool { return true },
	}
	if checkDomain {
		uc.domainCheck = validators.IsEmailDomainValid
	}
	return uc
}

func (uc *CreateSupervisor) Execute(
	ctx context.Context,
	caller access.Identity,
	in CreateSupervisorInput,
) (*dto.AccountSummary, error) {

	if err := uc.policy.Authorize(caller, access.ActionManageAccounts, ""); err != nil {
		return nil, err
	}

	email := validators.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, httperr.ErrValidation("Please provide email and password")
	}
	if !validators.IsEmail(email) {
		return nil, httperr.ErrValidation("Please provide a valid email")
	}
	if err := validators.CheckPassword(in.Password); err != nil {
		return nil, err
	}
	if !uc.domainCheck(email) {
		return nil, httperr.ErrValidation("Email domain cannot receive mail")
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	acc := &models.Account{
		Email:        email,
		PasswordHash: hash,
		Role:         string(access.RoleSupervisor),
	}
	if err := uc.repo.Create(ctx, acc); err != nil {
		return nil, err
	}

	out := dto.NewAccountSummary(acc)
	return &out, nil
}
