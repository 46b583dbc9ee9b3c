package employee

import (
	"context"

	"github.com/BruksfildServices01/employee-portal/internal/models"
	"github.com/BruksfildServices01/employee-portal/internal/pagination"
)

// Repository is the Employee Store. Implementations enforce email and
// employee id uniqueness themselves and report it as a conflict error.
type Repository interface {
	List(
		ctx context.Context,
		filter Filter,
		page pagination.Request,
	) ([]models.Employee, int64, error)

	GetByID(
		ctx context.Context,
		id string,
	) (*models.Employee, error)

	Create(
		ctx context.Context,
		e *models.Employee,
	) error

	Update(
		ctx context.Context,
		e *models.Employee,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error

	Stats(
		ctx context.Context,
		managerID string,
	) (Stats, error)
}

type Stats struct {
	Total       int64 `json:"total"`
	Active      int64 `json:"active"`
	Inactive    int64 `json:"inactive"`
	Departments int64 `json:"departments"`
}
