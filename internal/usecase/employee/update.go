package employee

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/employee-portal/internal/audit"
	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	"github.com/BruksfildServices01/employee-portal/internal/domain/account"
	domain "github.com/BruksfildServices01/employee-portal/internal/domain/employee"
	"github.com/BruksfildServices01/employee-portal/internal/dto"
	"github.com/BruksfildServices01/employee-portal/internal/httperr"
	"github.com/BruksfildServices01/employee-portal/internal/models"
)

type UpdateEmployee struct {
	repo     domain.Repository
	accounts account.Repository
	policy   access.ScopePolicy
	audit    audit.Recorder
	loc      *time.Location
}

func NewUpdateEmployee(
	repo domain.Repository,
	accounts account.Repository,
	policy access.ScopePolicy,
	audit audit.Recorder,
	loc *time.Location,
) *UpdateEmployee {
	return &UpdateEmployee{
		repo:     repo,
		accounts: accounts,
		policy:   policy,
		audit:    audit,
		loc:      loc,
	}
}

// Execute applies a full or partial update. The employee id is immutable:
// sending the current value is accepted, any other value is rejected.
func (uc *UpdateEmployee) Execute(
	ctx context.Context,
	caller access.Identity,
	id string,
	in dto.EmployeeInput,
) (*models.Employee, error) {

	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.policy.Authorize(caller, access.ActionUpdate, e.ManagedBy()); err != nil {
		return nil, err
	}

	if in.EmployeeID != nil && strings.TrimSpace(*in.EmployeeID) != e.EmployeeID {
		return nil, httperr.ErrValidation("Employee ID cannot be changed")
	}

	changed, err := applyInput(e, in, uc.loc)
	if err != nil {
		return nil, err
	}

	if in.ManagerID != nil {
		managerID := strings.TrimSpace(*in.ManagerID)
		if managerID == "" {
			return nil, httperr.ErrValidation("managerId cannot be empty")
		}
		if managerID != e.ManagedBy() {
			if err := uc.policy.Authorize(caller, access.ActionUpdate, managerID); err != nil {
				return nil, err
			}
			if err := resolveManager(ctx, uc.accounts, managerID); err != nil {
				return nil, err
			}
			e.ManagerID = &managerID
			changed = append(changed, "managerId")
		}
	}

	return audit.Track(ctx, uc.audit, caller, models.AuditUpdate,
		func(ctx context.Context) (*models.Employee, audit.Target, error) {
			if err := uc.repo.Update(ctx, e); err != nil {
				return nil, audit.Target{}, err
			}
			return e, audit.Target{
				Resource: e.Email,
				Details:  describeChanges(changed),
			}, nil
		})
}
