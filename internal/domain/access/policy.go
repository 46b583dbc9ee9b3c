package access

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/employee-portal/internal/httperr"
)

// ===============================
// Actions
// ===============================

type Action string

const (
	ActionRead           Action = "read"
	ActionCreate         Action = "create"
	ActionUpdate         Action = "update"
	ActionDelete         Action = "delete"
	ActionManageAccounts Action = "manage_accounts"
	ActionReadAudit      Action = "read_audit"
)

// ===============================
// Employee scope policy
// ===============================

// ScopePolicy decides which employee records a supervisor may see and mutate.
// It is chosen once at startup.
type ScopePolicy string

const (
	ScopeFlat      ScopePolicy = "flat"
	ScopeByManager ScopePolicy = "by-manager"
)

func ParseScopePolicy(s string) (ScopePolicy, error) {
	switch p := ScopePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case ScopeFlat, ScopeByManager:
		return p, nil
	default:
		return "", fmt.Errorf("unknown employee scope policy %q", s)
	}
}

// Decide reports whether id may perform action on an employee whose manager
// is ownerID. ownerID is ignored for actions that do not target an employee.
func (p ScopePolicy) Decide(id Identity, action Action, ownerID string) bool {
	if !id.Role.Valid() || id.AccountID == "" {
		return false
	}
	if id.IsAdmin() {
		return true
	}

	switch action {
	case ActionManageAccounts, ActionReadAudit:
		return false
	case ActionRead, ActionCreate, ActionUpdate, ActionDelete:
		if p == ScopeFlat {
			return true
		}
		return ownerID != "" && ownerID == id.AccountID
	default:
		return false
	}
}

// ManagerScope returns the manager id list queries must be restricted to,
// or "" when the caller sees every employee.
func (p ScopePolicy) ManagerScope(id Identity) string {
	if id.IsAdmin() || p == ScopeFlat {
		return ""
	}
	return id.AccountID
}

// Authorize is Decide returning the error the API reports.
func (p ScopePolicy) Authorize(id Identity, action Action, ownerID string) error {
	if p.Decide(id, action, ownerID) {
		return nil
	}
	return httperr.ErrForbidden("You are not allowed to perform this action")
}

// RequireRole is the role gate.
func RequireRole(id Identity, role Role) error {
	if id.Role != role {
		return httperr.ErrForbidden("Access denied")
	}
	return nil
}
