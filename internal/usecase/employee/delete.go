package employee

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/employee-portal/internal/audit"
	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	domain "github.com/BruksfildServices01/employee-portal/internal/domain/employee"
	"github.com/BruksfildServices01/employee-portal/internal/models"
)

type DeleteEmployee struct {
	repo   domain.Repository
	policy access.ScopePolicy
	audit  audit.Recorder
}

func NewDeleteEmployee(
	repo domain.Repository,
	policy access.ScopePolicy,
	audit audit.Recorder,
) *DeleteEmployee {
	return &DeleteEmployee{
		repo:   repo,
		policy: policy,
		audit:  audit,
	}
}

func (uc *DeleteEmployee) Execute(
	ctx context.Context,
	caller access.Identity,
	id string,
) error {

	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.policy.Authorize(caller, access.ActionDelete, e.ManagedBy()); err != nil {
		return err
	}

	_, err = audit.Track(ctx, uc.audit, caller, models.AuditDelete,
		func(ctx context.Context) (*models.Employee, audit.Target, error) {
			if err := uc.repo.Delete(ctx, id); err != nil {
				return nil, audit.Target{}, err
			}
			return e, audit.Target{
				Resource: e.Email,
				Details:  fmt.Sprintf("Deleted employee %s (%s %s)", e.EmployeeID, e.FirstName, e.LastName),
			}, nil
		})
	return err
}
