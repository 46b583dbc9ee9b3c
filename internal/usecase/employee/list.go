package employee

import (
	"context"

	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	domain "github.com/BruksfildServices01/employee-portal/internal/domain/employee"
	"github.com/BruksfildServices01/employee-portal/internal/models"
	"github.com/BruksfildServices01/employee-portal/internal/pagination"
)

type ListInput struct {
	Page       pagination.Request
	Search     string
	Department string
	Status     string
}

type ListResult struct {
	Employees []models.Employee
	Page      pagination.Result
}

type ListEmployees struct {
	repo   domain.Repository
	policy access.ScopePolicy
}

func NewListEmployees(repo domain.Repository, policy access.ScopePolicy) *ListEmployees {
	return &ListEmployees{repo: repo, policy: policy}
}

// Execute applies the caller's scope before counting, so totals and pages
// only ever describe records the caller may see.
func (uc *ListEmployees) Execute(
	ctx context.Context,
	caller access.Identity,
	in ListInput,
) (*ListResult, error) {

	if err := uc.policy.Authorize(caller, access.ActionRead, caller.AccountID); err != nil {
		return nil, err
	}

	filter := domain.NewFilter(in.Search, in.Department, in.Status)
	filter.ManagerID = uc.policy.ManagerScope(caller)

	page := pagination.NewRequest(in.Page.Page, in.Page.PageSize)
	employees, total, err := uc.repo.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []models.Employee{}
	}

	return &ListResult{
		Employees: employees,
		Page:      pagination.NewResult(total, page),
	}, nil
}
