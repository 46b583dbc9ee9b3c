package employee

import (
	"context"

	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	"github.com/BruksfildServices01/employee-portal/internal/domain/auditlog"
	"github.com/BruksfildServices01/employee-portal/internal/dto"
)

type ListAuditLogs struct {
	repo   auditlog.Repository
	policy access.ScopePolicy
}

func NewListAuditLogs(repo auditlog.Repository, policy access.ScopePolicy) *ListAuditLogs {
	return &ListAuditLogs{repo: repo, policy: policy}
}

func (uc *ListAuditLogs) Execute(
	ctx context.Context,
	caller access.Identity,
	limit int,
) ([]dto.AuditLogEntry, error) {

	if err := uc.policy.Authorize(caller, access.ActionReadAudit, ""); err != nil {
		return nil, err
	}

	logs, err := uc.repo.ListRecent(ctx, auditlog.ClampLimit(limit))
	if err != nil {
		return nil, err
	}

	out := make([]dto.AuditLogEntry, 0, len(logs))
	for _, l := range logs {
		out = append(out, dto.NewAuditLogEntry(l))
	}
	return out, nil
}
