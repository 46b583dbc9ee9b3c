package employee

import (
	"context"

	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	domain "github.com/BruksfildServices01/employee-portal/internal/domain/employee"
	"github.com/BruksfildServices01/employee-portal/internal/models"
)

type GetEmployee struct {
	repo   domain.Repository
	policy access.ScopePolicy
}

func NewGetEmployee(repo domain.Repository, policy access.ScopePolicy) *GetEmployee {
	return &GetEmployee{repo: repo, policy: policy}
}

func (uc *GetEmployee) Execute(
	ctx context.Context,
	caller access.Identity,
	id string,
) (*models.Employee, error) {

	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.policy.Authorize(caller, access.ActionRead, e.ManagedBy()); err != nil {
		return nil, err
	}
	return e, nil
}

// OwnerOf returns the manager of an employee, for route guards that check
// ownership before the handler runs.
func (uc *GetEmployee) OwnerOf(ctx context.Context, id string) (string, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return e.ManagedBy(), nil
}
