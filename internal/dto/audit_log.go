package dto

import (
	"time"

	"github.com/BruksfildServices01/employee-portal/internal/models"
)

type AuditActor struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AuditLogEntry struct {
	ID             string             `json:"id"`
	Action         models.AuditAction `json:"action"`
	TargetResource string             `json:"targetResource"`
	Details        string             `json:"details"`
	IPAddress      string             `json:"ipAddress,omitempty"`
	User           AuditActor         `json:"user"`
	CreatedAt      time.Time          `json:"createdAt"`
}

func NewAuditLogEntry(l models.AuditLog) AuditLogEntry {
	return AuditLogEntry{
		ID:             l.ID,
		Action:         l.Action,
		TargetResource: l.TargetResource,
		Details:        l.Details,
		IPAddress:      l.IPAddress,
		User: AuditActor{
			ID:    l.ActorID,
			Email: l.ActorEmail,
			Role:  l.ActorRole,
		},
		CreatedAt: l.CreatedAt,
	}
}
