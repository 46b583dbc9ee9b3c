package employee

import (
	"context"

	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	domain "github.com/BruksfildServices01/employee-portal/internal/domain/employee"
)

type EmployeeStats struct {
	repo   domain.Repository
	policy access.ScopePolicy
}

func NewEmployeeStats(repo domain.Repository, policy access.ScopePolicy) *EmployeeStats {
	return &EmployeeStats{repo: repo, policy: policy}
}

func (uc *EmployeeStats) Execute(ctx context.Context, caller access.Identity) (domain.Stats, error) {
	return uc.repo.Stats(ctx, uc.policy.ManagerScope(caller))
}
