package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	FirstName  string `gorm:"size:100;not null" json:"firstName"`
	LastName   string `gorm:"size:100;not null" json:"lastName"`
	Email      string `gorm:"size:255;uniqueIndex:idx_employees_email;not null" json:"email"`
	EmployeeID string `gorm:"column:employee_code;size:50;uniqueIndex:idx_employees_employee_code;not null" json:"employeeId"`
	Department string `gorm:"size:100;not null;index" json:"department"`
	Position   string `gorm:"size:100;not null" json:"role"`
	Status     string `gorm:"size:20;not null;index" json:"status"`

	DateOfJoining   time.Time `gorm:"not null" json:"dateOfJoining"`
	ProfilePhotoURL string    `gorm:"size:512" json:"profilePhotoUrl"`
	Notes           string    `gorm:"type:text" json:"notes"`

	ManagerID *string  `gorm:"type:uuid;index" json:"managerId"`
	Manager   *Account `gorm:"foreignKey:ManagerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedByID *string  `gorm:"type:uuid" json:"createdBy"`
	CreatedBy   *Account `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e *Employee) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// ManagedBy returns the manager account id, or "" when unassigned.
func (e *Employee) ManagedBy() string {
	if e.ManagerID == nil {
		return ""
	}
	return *e.ManagerID
}
