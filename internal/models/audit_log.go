package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditAction string

const (
	AuditCreate AuditAction = "CREATE"
	AuditUpdate AuditAction = "UPDATE"
	AuditDelete AuditAction = "DELETE"
	AuditLogin  AuditAction = "LOGIN"
)

func (a AuditAction) Valid() bool {
	switch a {
	case AuditCreate, AuditUpdate, AuditDelete, AuditLogin:
		return true
	}
	return false
}

// AuditLog rows are append-only. Actor email and role are copied at write
// time so entries stay readable after the account is gone.
type AuditLog struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ActorID    string      `gorm:"type:uuid;index" json:"actorId"`
	ActorEmail string      `gorm:"size:255" json:"actorEmail"`
	ActorRole  string      `gorm:"size:20" json:"actorRole"`
	Action     AuditAction `gorm:"size:20;not null;index" json:"action"`

	TargetResource string `gorm:"size:255" json:"targetResource"`
	Details        string `gorm:"type:text" json:"details"`
	IPAddress      string `gorm:"size:64" json:"ipAddress"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

func (l *AuditLog) BeforeCreate(*gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
