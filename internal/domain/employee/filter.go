package employee

import (
	"strings"

	"github.com/BruksfildServices01/employee-portal/internal/models"
)

// Sentinel filter values sent by the portal's dropdowns.
const (
	AllDepartments = "All Departments"
	AllStatuses    = "All Status"
)

// Filter narrows a list query. Empty fields do not filter.
type Filter struct {
	Search     string
	Department string
	Status     string
	// ManagerID restricts results to one manager's employees.
	ManagerID string
}

func NewFilter(search, department, status string) Filter {
	f := Filter{
		Search:     strings.TrimSpace(search),
		Department: strings.TrimSpace(department),
		Status:     strings.ToLower(strings.TrimSpace(status)),
	}
	if f.Department == AllDepartments {
		f.Department = ""
	}
	if f.Status == strings.ToLower(AllStatuses) {
		f.Status = ""
	}
	return f
}

// Matches applies the filter to a single record, mirroring the store query.
func (f Filter) Matches(e *models.Employee) bool {
	if f.ManagerID != "" && e.ManagedBy() != f.ManagerID {
		return false
	}
	if f.Department != "" && e.Department != f.Department {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	for _, field := range []string{e.FirstName, e.LastName, e.Email, e.EmployeeID} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// EscapeLike escapes LIKE wildcards so the search term matches literally.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
