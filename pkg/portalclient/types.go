package portalclient

import "time"

type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

func (a Account) IsAdmin() bool {
	return a.Role == "admin"
}

type Employee struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	EmployeeID      string    `json:"employeeId"`
	Department      string    `json:"department"`
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	DateOfJoining   time.Time `json:"dateOfJoining"`
	ProfilePhotoURL string    `json:"profilePhotoUrl"`
	Notes           string    `json:"notes"`
	ManagerID       *string   `json:"managerId"`
	CreatedBy       *string   `json:"createdBy"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// EmployeeInput is sent as-is; nil fields are left out of the request and
// therefore untouched on update.
type EmployeeInput struct {
	FirstName     *string `json:"firstName,omitempty"`
	LastName      *string `json:"lastName,omitempty"`
	Email         *string `json:"email,omitempty"`
	EmployeeID    *string `json:"employeeId,omitempty"`
	Department    *string `json:"department,omitempty"`
	Role          *string `json:"role,omitempty"`
	Status        *string `json:"status,omitempty"`
	DateOfJoining *string `json:"dateOfJoining,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	ManagerID     *string `json:"managerId,omitempty"`
}

// String is a helper for building EmployeeInput literals.
func String(v string) *string {
	return &v
}

type ListParams struct {
	Page       int
	Limit      int
	Search     string
	Department string
	Status     string
}

type EmployeePage struct {
	Count          int        `json:"count"`
	TotalPages     int        `json:"totalPages"`
	CurrentPage    int        `json:"currentPage"`
	TotalEmployees int64      `json:"totalEmployees"`
	Employees      []Employee `json:"employees"`
}

type Stats struct {
	Total       int64 `json:"total"`
	Active      int64 `json:"active"`
	Inactive    int64 `json:"inactive"`
	Departments int64 `json:"departments"`
}

type AuditLogEntry struct {
	ID             string    `json:"id"`
	Action         string    `json:"action"`
	TargetResource string    `json:"targetResource"`
	Details        string    `json:"details"`
	IPAddress      string    `json:"ipAddress,omitempty"`
	User           Account   `json:"user"`
	CreatedAt      time.Time `json:"createdAt"`
}
