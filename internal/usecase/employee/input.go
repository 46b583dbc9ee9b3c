package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/employee-portal/internal/domain/account"
	domain "github.com/BruksfildServices01/employee-portal/internal/domain/employee"
	"github.com/BruksfildServices01/employee-portal/internal/dto"
	"github.com/BruksfildServices01/employee-portal/internal/httperr"
	"github.com/BruksfildServices01/employee-portal/internal/models"
	"github.com/BruksfildServices01/employee-portal/internal/timezone"
	"github.com/BruksfildServices01/employee-portal/internal/validators"
)

var requiredFields = []struct {
	name string
	get  func(dto.EmployeeInput) *string
}{
	{"firstName", func(in dto.EmployeeInput) *string { return in.FirstName }},
	{"lastName", func(in dto.EmployeeInput) *string { return in.LastName }},
	{"email", func(in dto.EmployeeInput) *string { return in.Email }},
	{"employeeId", func(in dto.EmployeeInput) *string { return in.EmployeeID }},
	{"department", func(in dto.EmployeeInput) *string { return in.Department }},
	{"role", func(in dto.EmployeeInput) *string { return in.Role }},
	{"dateOfJoining", func(in dto.EmployeeInput) *string { return in.DateOfJoining }},
}

func blank(v *string) bool {
	return v == nil || strings.TrimSpace(*v) == ""
}

func validateRequired(in dto.EmployeeInput) error {
	var missing []string
	for _, f := range requiredFields {
		if blank(f.get(in)) {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return httperr.ErrValidation("Missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// applyInput copies the present fields of in onto e and returns the names of
// the fields whose value changed. employeeId and managerId are handled by
// the callers because their rules differ between create and update.
func applyInput(e *models.Employee, in dto.EmployeeInput, loc *time.Location) ([]string, error) {
	var changed []string

	text := func(name string, dst *string, v *string) error {
		if v == nil {
			return nil
		}
		val := strings.TrimSpace(*v)
		if val == "" {
			return httperr.ErrValidation("%s cannot be empty", name)
		}
		if *dst != val {
			*dst = val
			changed = append(changed, name)
		}
		return nil
	}

	if err := text("firstName", &e.FirstName, in.FirstName); err != nil {
		return nil, err
	}
	if err := text("lastName", &e.LastName, in.LastName); err != nil {
		return nil, err
	}
	if err := text("department", &e.Department, in.Department); err != nil {
		return nil, err
	}
	if err := text("role", &e.Position, in.Role); err != nil {
		return nil, err
	}

	if in.Email != nil {
		email := validators.NormalizeEmail(*in.Email)
		if !validators.IsEmail(email) {
			return nil, httperr.ErrValidation("Please provide a valid email")
		}
		if e.Email != email {
			e.Email = email
			changed = append(changed, "email")
		}
	}

	if in.Status != nil {
		st, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		if e.Status != string(st) {
			e.Status = string(st)
			changed = append(changed, "status")
		}
	}

	if in.DateOfJoining != nil {
		d, err := timezone.ParseDate(*in.DateOfJoining, loc)
		if err != nil {
			return nil, httperr.ErrValidation("dateOfJoining must be a date (YYYY-MM-DD)")
		}
		if !e.DateOfJoining.Equal(d) {
			e.DateOfJoining = d
			changed = append(changed, "dateOfJoining")
		}
	}

	if in.Notes != nil {
		notes := strings.TrimSpace(*in.Notes)
		if e.Notes != notes {
			e.Notes = notes
			changed = append(changed, "notes")
		}
	}

	return changed, nil
}

// resolveManager checks that the manager reference names an existing account.
func resolveManager(ctx context.Context, accounts account.Repository, managerID string) error {
	if _, err := accounts.GetByID(ctx, managerID); err != nil {
		if httperr.IsBusiness(err, httperr.CodeNotFound) {
			return httperr.ErrValidation("Manager not found")
		}
		return fmt.Errorf("resolve manager: %w", err)
	}
	return nil
}

func describeChanges(changed []string) string {
	if len(changed) == 0 {
		return "No fields changed"
	}
	return "Updated fields: " + strings.Join(changed, ", ")
}
