package dto

import "github.com/BruksfildServices01/employee-portal/internal/models"

// EmployeeInput carries create and update payloads. Nil fields are absent.
type EmployeeInput struct {
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Email         *string `json:"email"`
	EmployeeID    *string `json:"employeeId"`
	Department    *string `json:"department"`
	Role          *string `json:"role"`
	Status        *string `json:"status"`
	DateOfJoining *string `json:"dateOfJoining"`
	Notes         *string `json:"notes"`
	ManagerID     *string `json:"managerId"`
}

type EmployeeListResponse struct {
	Success        bool              `json:"success"`
	Count          int               `json:"count"`
	TotalPages     int               `json:"totalPages"`
	CurrentPage    int               `json:"currentPage"`
	TotalEmployees int64             `json:"totalEmployees"`
	Employees      []models.Employee `json:"employees"`
}
