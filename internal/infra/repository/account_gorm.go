package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/employee-portal/internal/httperr"
	"github.com/BruksfildServices01/employee-portal/internal/models"
)

const accountNotFound = "Account not found"

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) Create(ctx context.Context, a *models.Account) error {
	return translate(r.db.WithContext(ctx).Create(a).Error, accountNotFound)
}

func (r *AccountGormRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	var a models.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, translate(err, accountNotFound)
	}
	return &a, nil
}

func (r *AccountGormRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	var a models.Account
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&a).Error; err != nil {
		return nil, translate(err, accountNotFound)
	}
	return &a, nil
}

func (r *AccountGormRepository) ListByRole(ctx context.Context, role string) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.WithContext(ctx).
		Where("role = ?", role).
		Order("created_at DESC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// Delete removes the account. Employees referencing it keep existing with a
// NULL manager / creator through the foreign key's ON DELETE SET NULL.
func (r *AccountGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Account{})
	if res.Error != nil {
		return translate(res.Error, accountNotFound)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound(accountNotFound)
	}
	return nil
}
