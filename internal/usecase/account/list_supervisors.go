package account

import (
	"context"

	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	domain "github.com/BruksfildServices01/employee-portal/internal/domain/account"
	"github.com/BruksfildServices01/employee-portal/internal/dto"
)

type ListSupervisors struct {
	repo   domain.Repository
	policy access.ScopePolicy
}

func NewListSupervisors(repo domain.Repository, policy access.ScopePolicy) *ListSupervisors {
	return &ListSupervisors{repo: repo, policy: policy}
}

func (uc *ListSupervisors) Execute(ctx context.Context, caller access.Identity) ([]dto.AccountSummary, error) {
	if err := uc.policy.Authorize(caller, access.ActionManageAccounts, ""); err != nil {
		return nil, err
	}

	accounts, err := uc.repo.ListByRole(ctx, string(access.RoleSupervisor))
	if err != nil {
		return nil, err
	}

	out := make([]dto.AccountSummary, 0, len(accounts))
	for i := range accounts {
		out = append(out, dto.NewAccountSummary(&accounts[i]))
	}
	return out, nil
}
