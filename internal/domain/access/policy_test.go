package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/employee-portal/internal/httperr"
)

var (
	admin = Identity{AccountID: "a-1", Email: "admin@x.com", Role: RoleAdmin}
	sup   = Identity{AccountID: "s-1", Email: "sup@x.com", Role: RoleSupervisor}
	other = Identity{AccountID: "s-2", Email: "other@x.com", Role: RoleSupervisor}
)

func TestParseScopePolicy(t *testing.T) {
	p, err := ParseScopePolicy(" By-Manager ")
	require.NoError(t, err)
	assert.Equal(t, ScopeByManager, p)

	p, err = ParseScopePolicy("flat")
	require.NoError(t, err)
	assert.Equal(t, ScopeFlat, p)

	_, err = ParseScopePolicy("")
	assert.Error(t, err)
}

func TestScopePolicy_Decide(t *testing.T) {
	cases := []struct {
		name   string
		policy ScopePolicy
		id     Identity
		action Action
		owner  string
		want   bool
	}{
		{"admin reads anything", ScopeByManager, admin, ActionRead, "s-1", true},
		{"admin deletes unassigned", ScopeByManager, admin, ActionDelete, "", true},
		{"admin manages accounts", ScopeFlat, admin, ActionManageAccounts, "", true},
		{"supervisor never manages accounts", ScopeFlat, sup, ActionManageAccounts, "", false},
		{"supervisor never reads audit", ScopeFlat, sup, ActionReadAudit, "", false},
		{"by-manager own employee update", ScopeByManager, sup, ActionUpdate, "s-1", true},
		{"by-manager foreign employee update", ScopeByManager, sup, ActionUpdate, "s-2", false},
		{"by-manager foreign employee delete", ScopeByManager, sup, ActionDelete, "s-2", false},
		{"by-manager unassigned employee", ScopeByManager, sup, ActionRead, "", false},
		{"by-manager create for self", ScopeByManager, sup, ActionCreate, "s-1", true},
		{"by-manager create for someone else", ScopeByManager, sup, ActionCreate, "s-2", false},
		{"flat foreign employee delete", ScopeFlat, other, ActionDelete, "s-1", true},
		{"flat create for someone else", ScopeFlat, sup, ActionCreate, "s-2", true},
		{"unknown role", ScopeFlat, Identity{AccountID: "x", Role: "guest"}, ActionRead, "", false},
		{"missing account id", ScopeFlat, Identity{Role: RoleAdmin}, ActionRead, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.policy.Decide(tc.id, tc.action, tc.owner))
		})
	}
}

func TestScopePolicy_ManagerScope(t *testing.T) {
	assert.Equal(t, "", ScopeByManager.ManagerScope(admin))
	assert.Equal(t, "s-1", ScopeByManager.ManagerScope(sup))
	assert.Equal(t, "", ScopeFlat.ManagerScope(sup))
}

func TestAuthorize_ReturnsForbidden(t *testing.T) {
	err := ScopeByManager.Authorize(sup, ActionDelete, "s-2")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeForbidden))
	assert.NoError(t, ScopeByManager.Authorize(sup, ActionDelete, "s-1"))
}

func TestRequireRole(t *testing.T) {
	assert.NoError(t, RequireRole(admin, RoleAdmin))
	assert.True(t, httperr.IsBusiness(RequireRole(sup, RoleAdmin), httperr.CodeForbidden))
}

func TestIdentityContext(t *testing.T) {
	_, ok := IdentityFrom(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), sup)
	got, ok := IdentityFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, sup, got)
}
