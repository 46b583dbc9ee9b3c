package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/employee-portal/internal/audit"
	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	"github.com/BruksfildServices01/employee-portal/internal/domain/account"
	domain "github.com/BruksfildServices01/employee-portal/internal/domain/employee"
	"github.com/BruksfildServices01/employee-portal/internal/dto"
	"github.com/BruksfildServices01/employee-portal/internal/models"
)

type CreateEmployee struct {
	repo     domain.Repository
	accounts account.Repository
	policy   access.ScopePolicy
	audit    audit.Recorder
	loc      *time.Location
}

func NewCreateEmployee(
	repo domain.Repository,
	accounts account.Repository,
	policy access.ScopePolicy,
	audit audit.Recorder,
	loc *time.Location,
) *CreateEmployee {
	return &CreateEmployee{
		repo:     repo,
		accounts: accounts,
		policy:   policy,
		audit:    audit,
		loc:      loc,
	}
}

func (uc *CreateEmployee) Execute(
	ctx context.Context,
	caller access.Identity,
	in dto.EmployeeInput,
) (*models.Employee, error) {

	if err := validateRequired(in); err != nil {
		return nil, err
	}

	e := &models.Employee{
		EmployeeID: strings.TrimSpace(*in.EmployeeID),
		Status:     string(domain.InitialStatus()),
	}
	if _, err := applyInput(e, in, uc.loc); err != nil {
		return nil, err
	}

	managerID := caller.AccountID
	if !blank(in.ManagerID) {
		managerID = strings.TrimSpace(*in.ManagerID)
	}
	if err := uc.policy.Authorize(caller, access.ActionCreate, managerID); err != nil {
		return nil, err
	}
	if err := resolveManager(ctx, uc.accounts, managerID); err != nil {
		return nil, err
	}

	creatorID := caller.AccountID
	e.ManagerID = &managerID
	e.CreatedByID = &creatorID

	return audit.Track(ctx, uc.audit, caller, models.AuditCreate,
		func(ctx context.Context) (*models.Employee, audit.Target, error) {
			if err := uc.repo.Create(ctx, e); err != nil {
				return nil, audit.Target{}, err
			}
			return e, audit.Target{
				Resource: e.Email,
				Details:  fmt.Sprintf("Created employee %s %s (%s)", e.FirstName, e.LastName, e.EmployeeID),
			}, nil
		})
}
