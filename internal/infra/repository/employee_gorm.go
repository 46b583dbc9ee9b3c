package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/employee-portal/internal/domain/employee"
	"github.com/BruksfildServices01/employee-portal/internal/httperr"
	"github.com/BruksfildServices01/employee-portal/internal/models"
	"github.com/BruksfildServices01/employee-portal/internal/pagination"
)

const employeeNotFound = "Employee not found"

type EmployeeGormRepository struct {
	db *gorm.DB
}

func NewEmployeeGormRepository(db *gorm.DB) *EmployeeGormRepository {
	return &EmployeeGormRepository{db: db}
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *EmployeeGormRepository) scoped(ctx context.Context, f domain.Filter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Employee{})

	if f.ManagerID != "" {
		q = q.Where("manager_id = ?", f.ManagerID)
	}
	if f.Department != "" {
		q = q.Where("department = ?", f.Department)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		like := "%" + domain.EscapeLike(strings.ToLower(f.Search)) + "%"
		q = q.Where(
			"(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(employee_code) LIKE ?)",
			like, like, like, like,
		)
	}
	return q
}

func (r *EmployeeGormRepository) List(
	ctx context.Context,
	filter domain.Filter,
	page pagination.Request,
) ([]models.Employee, int64, error) {

	q := r.scoped(ctx, filter)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count employees: %w", err)
	}

	var employees []models.Employee
	if err := q.Session(&gorm.Session{}).
		Order("created_at DESC").
		Limit(page.Limit()).
		Offset(page.Offset()).
		Find(&employees).Error; err != nil {
		return nil, 0, fmt.Errorf("list employees: %w", err)
	}

	return employees, total, nil
}

func (r *EmployeeGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Employee, error) {

	var e models.Employee
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&e).Error; err != nil {
		return nil, translate(err, employeeNotFound)
	}
	return &e, nil
}

func (r *EmployeeGormRepository) Stats(
	ctx context.Context,
	managerID string,
) (domain.Stats, error) {

	type statusCount struct {
		Status string
		Count  int64
	}

	var rows []statusCount
	if err := r.scoped(ctx, domain.Filter{ManagerID: managerID}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return domain.Stats{}, fmt.Errorf("employee stats: %w", err)
	}

	var st domain.Stats
	for _, row := range rows {
		st.Total += row.Count
		switch domain.Status(row.Status) {
		case domain.StatusActive:
			st.Active = row.Count
		case domain.StatusInactive:
			st.Inactive = row.Count
		}
	}

	if err := r.scoped(ctx, domain.Filter{ManagerID: managerID}).
		Distinct("department").
		Count(&st.Departments).Error; err != nil {
		return domain.Stats{}, fmt.Errorf("employee stats: %w", err)
	}

	return st, nil
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

// Create relies on the unique indexes for email and employee id; a
// violation comes back as a conflict error.
func (r *EmployeeGormRepository) Create(
	ctx context.Context,
	e *models.Employee,
) error {
	return translate(r.db.WithContext(ctx).Create(e).Error, employeeNotFound)
}

func (r *EmployeeGormRepository) Update(
	ctx context.Context,
	e *models.Employee,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Employee{ID: e.ID}).
		Select(
			"first_name", "last_name", "email", "department", "position", "status",
			"date_of_joining", "profile_photo_url", "notes", "manager_id", "updated_at",
		).
		Updates(e)
	if res.Error != nil {
		return translate(res.Error, employeeNotFound)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound(employeeNotFound)
	}
	return nil
}

func (r *EmployeeGormRepository) Delete(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Employee{})
	if res.Error != nil {
		return translate(res.Error, employeeNotFound)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound(employeeNotFound)
	}
	return nil
}
