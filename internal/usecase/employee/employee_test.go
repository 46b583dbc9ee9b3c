package employee

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/employee-portal/internal/audit"
	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	"github.com/BruksfildServices01/employee-portal/internal/dto"
	"github.com/BruksfildServices01/employee-portal/internal/httperr"
	"github.com/BruksfildServices01/employee-portal/internal/infra/memory"
	"github.com/BruksfildServices01/employee-portal/internal/models"
	"github.com/BruksfildServices01/employee-portal/internal/pagination"
)

type fixture struct {
	store  *memory.Store
	rec    audit.Recorder
	policy access.ScopePolicy

	admin access.Identity
	supA  access.Identity
	supB  access.Identity
}

func newFixture(t *testing.T, policy access.ScopePolicy) *fixture {
	t.Helper()
	s := memory.NewStore()

	seed := func(email string, role access.Role) access.Identity {
		acc := &models.Account{Email: email, PasswordHash: "x", Role: string(role)}
		require.NoError(t, s.Accounts().Create(context.Background(), acc))
		return access.Identity{AccountID: acc.ID, Email: acc.Email, Role: role}
	}

	return &fixture{
		store:  s,
		rec:    audit.NewDispatcher(audit.New(s.AuditLogs()), zap.NewNop()),
		policy: policy,
		admin:  seed("admin@corp.com", access.RoleAdmin),
		supA:   seed("a@corp.com", access.RoleSupervisor),
		supB:   seed("b@corp.com", access.RoleSupervisor),
	}
}

func (f *fixture) create() *CreateEmployee {
	return NewCreateEmployee(f.store.Employees(), f.store.Accounts(), f.policy, f.rec, time.UTC)
}

func (f *fixture) update() *UpdateEmployee {
	return NewUpdateEmployee(f.store.Employees(), f.store.Accounts(), f.policy, f.rec, time.UTC)
}

func (f *fixture) auditLogs(t *testing.T) []models.AuditLog {
	t.Helper()
	logs, err := f.store.AuditLogs().ListRecent(context.Background(), 500)
	require.NoError(t, err)
	return logs
}

func (f *fixture) mustCreate(t *testing.T, caller access.Identity, n int) *models.Employee {
	t.Helper()
	e, err := f.create().Execute(context.Background(), caller, input(n))
	require.NoError(t, err)
	return e
}

func strp(s string) *string { return &s }

func input(n int) dto.EmployeeInput {
	return dto.EmployeeInput{
		FirstName:     strp(fmt.Sprintf("Ana%d", n)),
		LastName:      strp("Silva"),
		Email:         strp(fmt.Sprintf("Ana%d@Corp.com", n)),
		EmployeeID:    strp(fmt.Sprintf("EMP-%03d", n)),
		Department:    strp("Engineering"),
		Role:          strp("Engineer"),
		DateOfJoining: strp("2024-03-01"),
	}
}

func codeOf(t *testing.T, err error) string {
	t.Helper()
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok, "expected business error, got %v", err)
	return be.Code
}

// ======================================================
// CREATE
// ======================================================

func TestCreate_Defaults(t *testing.T) {
	f := newFixture(t, access.ScopeByManager)

	e := f.mustCreate(t, f.supA, 1)

	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "ana1@corp.com", e.Email)
	assert.Equal(t, "active", e.Status)
	assert.Equal(t, f.supA.AccountID, e.ManagedBy())
	require.NotNil(t, e.CreatedByID)
	assert.Equal(t, f.supA.AccountID, *e.CreatedByID)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), e.DateOfJoining)

	logs := f.auditLogs(t)
	require.Len(t, logs, 1)
	assert.Equal(t, models.AuditCreate, logs[0].Action)
	assert.Equal(t, "ana1@corp.com", logs[0].TargetResource)
	assert.Equal(t, "a@corp.com", logs[0].ActorEmail)
	assert.Equal(t, "supervisor", logs[0].ActorRole)
}

func TestCreate_MissingFields(t *testing.T) {
	f := newFixture(t, access.ScopeByManager)

	in := input(1)
	in.Email = nil
	in.Department = strp("  ")

	_, err := f.create().Execute(context.Background(), f.admin, in)

	assert.Equal(t, httperr.CodeValidation, codeOf(t, err))
	assert.EqualError(t, err, "Missing required fields: email, department")
	assert.Empty(t, f.auditLogs(t))
}

func TestCreate_MalformedValues(t *testing.T) {
	f := newFixture(t, access.ScopeByManager)

	cases := map[string]func(*dto.EmployeeInput){
		"email":  func(in *dto.EmployeeInput) { in.Email = strp("not-an-email") },
		"status": func(in *dto.EmployeeInput) { in.Status = strp("retired") },
		"date":   func(in *dto.EmployeeInput) { in.DateOfJoining = strp("yesterday") },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := input(1)
			mutate(&in)
			_, err := f.create().Execute(context.Background(), f.admin, in)
			assert.Equal(t, httperr.CodeValidation, codeOf(t, err))
		})
	}
}

func TestCreate_Duplicate(t *testing.T) {
	f := newFixture(t, access.ScopeByManager)
	f.mustCreate(t, f.admin, 1)

	dupEmail := input(2)
	dupEmail.Email = strp("ana1@corp.com")
	_, err := f.create().Execute(context.Background(), f.admin, dupEmail)
	assert.Equal(t, httperr.CodeConflict, codeOf(t, err))

	dupCode := input(3)
	dupCode.EmployeeID = strp("EMP-001")
	_, err = f.create().Execute(context.Background(), f.admin, dupCode)
	assert.Equal(t, httperr.CodeConflict, codeOf(t, err))

	assert.Len(t, f.auditLogs(t), 1)
}

// Emails are case-insensitive identities: stored lower-cased, so casing
// variants collide and re-sending a differently cased address is not a change.
func TestEmail_StoredLowerCased(t *testing.T) {
	f := newFixture(t, access.ScopeByManager)

	in := input(1)
	in.Email = strp("  Ana.Souza@Corp.COM ")
	e, err := f.create().Execute(context.Background(), f.admin, in)
	require.NoError(t, err)
	assert.Equal(t, "ana.souza@corp.com", e.Email)

	stored, err := f.store.Employees().GetByID(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana.souza@corp.com", stored.Email)

	dup := input(2)
	dup.Email = strp("ANA.SOUZA@corp.com")
	_, err = f.create().Execute(context.Background(), f.admin, dup)
	assert.Equal(t, httperr.CodeConflict, codeOf(t, err))

	_, err = f.update().Execute(context.Background(), f.admin, e.ID, dto.EmployeeInput{Email: strp("Ana.Souza@CORP.com")})
	require.NoError(t, err)
	logs := f.auditLogs(t)
	assert.Equal(t, "No fields changed", logs[0].Details)
}

func TestCreate_ExplicitManager(t *testing.T) {
	t.Run("admin assigns any supervisor", func(t *testing.T) {
		f := newFixture(t, access.ScopeByManager)
		in := input(1)
		in.ManagerID = strp(f.supB.AccountID)

		e, err := f.create().Execute(context.Background(), f.admin, in)
		require.NoError(t, err)
		assert.Equal(t, f.supB.AccountID, e.ManagedBy())
	})

	t.Run("unknown manager", func(t *testing.T) {
		f := newFixture(t, access.ScopeByManager)
		in := input(1)
		in.ManagerID = strp("11111111-1111-1111-1111-111111111111")

		_, err := f.create().Execute(context.Background(), f.admin, in)
		assert.Equal(t, httperr.CodeValidation, codeOf(t, err))
		assert.EqualError(t, err, "Manager not found")
	})

	t.Run("supervisor assigns another supervisor under by-manager", func(t *testing.T) {
		f := newFixture(t, access.ScopeByManager)
		in := input(1)
		in.ManagerID = strp(f.supB.AccountID)

		_, err := f.create().Execute(context.Background(), f.supA, in)
		assert.Equal(t, httperr.CodeForbidden, codeOf(t, err))
	})

	t.Run("supervisor assigns another supervisor under flat", func(t *testing.T) {
		f := newFixture(t, access.ScopeFlat)
		in := input(1)
		in.ManagerID = strp(f.supB.AccountID)

		e, err := f.create().Execute(context.Background(), f.supA, in)
		require.NoError(t, err)
		assert.Equal(t, f.supB.AccountID, e.ManagedBy())
	})
}

// ======================================================
// UPDATE
// ======================================================

func TestUpdate_ChangedFields(t *testing.T) {
	f := newFixture(t, access.ScopeByManager)
	e := f.mustCreate(t, f.supA, 1)

	got, err := f.update().Execute(context.Background(), f.supA, e.ID, dto.EmployeeInput{
		FirstName:  strp("Beatriz"),
		LastName:   strp("Silva"),
		Status:     strp("Inactive"),
		EmployeeID: strp("EMP-001"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Beatriz", got.FirstName)
	assert.Equal(t, "inactive", got.Status)

	logs := f.auditLogs(t)
	require.Len(t, logs, 2)
	assert.Equal(t, models.AuditUpdate, logs[0].Action)
	assert.Equal(t, "Updated fields: firstName, status", logs[0].Details)
}

func TestUpdate_EmployeeIDImmutable(t *testing.T) {
	f := newFixture(t, access.ScopeByManager)
	e := f.mustCreate(t, f.admin, 1)

	_, err := f.update().Execute(context.Background(), f.admin, e.ID, dto.EmployeeInput{
		EmployeeID: strp("EMP-999"),
	})

	assert.Equal(t, httperr.CodeValidation, codeOf(t, err))
	assert.EqualError(t, err, "Employee ID cannot be changed")
}

func TestUpdate_ErrorOrder(t *testing.T) {
	f := newFixture(t, access.ScopeByManager)
	e := f.mustCreate(t, f.supA, 1)

	_, err := f.update().Execute(context.Background(), f.supB, "missing", dto.EmployeeInput{EmployeeID: strp("X")})
	assert.Equal(t, httperr.CodeNotFound, codeOf(t, err))

	_, err = f.update().Execute(context.Background(), f.supB, e.ID, dto.EmployeeInput{EmployeeID: strp("X")})
	assert.Equal(t, httperr.CodeForbidden, codeOf(t, err))
}

func TestUpdate_ReassignManager(t *testing.T) {
	f := newFixture(t, access.ScopeByManager)
	e := f.mustCreate(t, f.supA, 1)

	_, err := f.update().Execute(context.Background(), f.supA, e.ID, dto.EmployeeInput{ManagerID: strp(f.supB.AccountID)})
	assert.Equal(t, httperr.CodeForbidden, codeOf(t, err))

	got, err := f.update().Execute(context.Background(), f.admin, e.ID, dto.EmployeeInput{ManagerID: strp(f.supB.AccountID)})
	require.NoError(t, err)
	assert.Equal(t, f.supB.AccountID, got.ManagedBy())
}

// ======================================================
// DELETE / GET
// ======================================================

func TestDelete(t *testing.T) {
	f := newFixture(t, access.ScopeByManager)
	e := f.mustCreate(t, f.supA, 7)
	uc := NewDeleteEmployee(f.store.Employees(), f.policy, f.rec)

	err := uc.Execute(context.Background(), f.supB, e.ID)
	assert.Equal(t, httperr.CodeForbidden, codeOf(t, err))

	require.NoError(t, uc.Execute(context.Background(), f.supA, e.ID))

	logs := f.auditLogs(t)
	require.Len(t, logs, 2)
	assert.Equal(t, models.AuditDelete, logs[0].Action)
	assert.Equal(t, "ana7@corp.com", logs[0].TargetResource)
	assert.Contains(t, logs[0].Details, "EMP-007")

	err = uc.Execute(context.Background(), f.supA, e.ID)
	assert.Equal(t, httperr.CodeNotFound, codeOf(t, err))
}

func TestGet_Scope(t *testing.T) {
	f := newFixture(t, access.ScopeByManager)
	e := f.mustCreate(t, f.supA, 1)
	uc := NewGetEmployee(f.store.Employees(), f.policy)

	_, err := uc.Execute(context.Background(), f.supA, e.ID)
	assert.NoError(t, err)
	_, err = uc.Execute(context.Background(), f.admin, e.ID)
	assert.NoError(t, err)
	_, err = uc.Execute(context.Background(), f.supB, e.ID)
	assert.Equal(t, httperr.CodeForbidden, codeOf(t, err))

	owner, err := uc.OwnerOf(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, f.supA.AccountID, owner)
}

// ======================================================
// LIST / STATS
// ======================================================

func TestList_ScopeAndPaging(t *testing.T) {
	f := newFixture(t, access.ScopeByManager)
	for i := 1; i <= 5; i++ {
		f.mustCreate(t, f.supA, i)
	}
	for i := 6; i <= 7; i++ {
		f.mustCreate(t, f.supB, i)
	}
	uc := NewListEmployees(f.store.Employees(), f.policy)

	res, err := uc.Execute(context.Background(), f.supA, ListInput{Page: pagination.NewRequest(2, 2)})
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Page.Total)
	assert.Equal(t, 3, res.Page.TotalPages)
	require.Len(t, res.Employees, 2)
	assert.Equal(t, "EMP-003", res.Employees[0].EmployeeID)

	res, err = uc.Execute(context.Background(), f.admin, ListInput{Page: pagination.NewRequest(1, 10)})
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.Page.Total)
	assert.Equal(t, "EMP-007", res.Employees[0].EmployeeID)

	res, err = uc.Execute(context.Background(), f.supB, ListInput{Search: "ana6", Department: "All Departments"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Page.Total)

	res, err = uc.Execute(context.Background(), f.supB, ListInput{Search: "ana1"})
	require.NoError(t, err)
	assert.Empty(t, res.Employees)
	assert.NotNil(t, res.Employees)
}

func TestList_HugePageNumber(t *testing.T) {
	f := newFixture(t, access.ScopeByManager)
	f.mustCreate(t, f.supA, 1)
	uc := NewListEmployees(f.store.Employees(), f.policy)

	res, err := uc.Execute(context.Background(), f.admin, ListInput{
		Page: pagination.FromQuery("1000000000000000000", "10"),
	})
	require.NoError(t, err)
	assert.Empty(t, res.Employees)
	assert.Equal(t, int64(1), res.Page.Total)
	assert.Equal(t, 1, res.Page.TotalPages)
}

func TestList_FlatPolicy(t *testing.T) {
	f := newFixture(t, access.ScopeFlat)
	f.mustCreate(t, f.supA, 1)
	f.mustCreate(t, f.supB, 2)

	res, err := NewListEmployees(f.store.Employees(), f.policy).
		Execute(context.Background(), f.supA, ListInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Page.Total)
}

func TestStats_Scoped(t *testing.T) {
	f := newFixture(t, access.ScopeByManager)
	f.mustCreate(t, f.supA, 1)
	inactive := input(2)
	inactive.Status = strp("inactive")
	inactive.Department = strp("Sales")
	_, err := f.create().Execute(context.Background(), f.supA, inactive)
	require.NoError(t, err)
	f.mustCreate(t, f.supB, 3)

	uc := NewEmployeeStats(f.store.Employees(), f.policy)

	st, err := uc.Execute(context.Background(), f.supA)
	require.NoError(t, err)
	assert.Equal(t, int64(2), st.Total)
	assert.Equal(t, int64(1), st.Active)
	assert.Equal(t, int64(1), st.Inactive)
	assert.Equal(t, int64(2), st.Departments)

	st, err = uc.Execute(context.Background(), f.admin)
	require.NoError(t, err)
	assert.Equal(t, int64(3), st.Total)
}

// ======================================================
// AUDIT LOGS
// ======================================================

func TestListAuditLogs(t *testing.T) {
	f := newFixture(t, access.ScopeByManager)
	f.mustCreate(t, f.supA, 1)
	f.mustCreate(t, f.supA, 2)
	uc := NewListAuditLogs(f.store.AuditLogs(), f.policy)

	_, err := uc.Execute(context.Background(), f.supA, 0)
	assert.Equal(t, httperr.CodeForbidden, codeOf(t, err))

	entries, err := uc.Execute(context.Background(), f.admin, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "ana2@corp.com", entries[0].TargetResource)
	assert.Equal(t, "a@corp.com", entries[0].User.Email)
	assert.Equal(t, "supervisor", entries[0].User.Role)

	entries, err = uc.Execute(context.Background(), f.admin, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// ======================================================
// PHOTO
// ======================================================

type fakeObjectStore struct {
	keys []string
	err  error
}

func (s *fakeObjectStore) Put(_ context.Context, key, contentType string, body []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.keys = append(s.keys, key)
	return "https://cdn.example.com/" + key, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 20))))
	return buf.Bytes()
}

func TestUploadPhoto(t *testing.T) {
	f := newFixture(t, access.ScopeByManager)
	e := f.mustCreate(t, f.supA, 1)
	store := &fakeObjectStore{}
	uc := NewUploadPhoto(f.store.Employees(), f.policy, f.rec, store, 16)

	got, err := uc.Execute(context.Background(), f.supA, e.ID, bytes.NewReader(pngBytes(t)))
	require.NoError(t, err)

	require.Len(t, store.keys, 1)
	assert.True(t, strings.HasPrefix(store.keys[0], "employees/"+e.ID+"/"))
	assert.True(t, strings.HasSuffix(store.keys[0], ".webp"))
	assert.Equal(t, "https://cdn.example.com/"+store.keys[0], got.ProfilePhotoURL)

	logs := f.auditLogs(t)
	require.Len(t, logs, 2)
	assert.Equal(t, models.AuditUpdate, logs[0].Action)
	assert.Equal(t, "Updated fields: profilePhotoUrl", logs[0].Details)
}

func TestUploadPhoto_Errors(t *testing.T) {
	f := newFixture(t, access.ScopeByManager)
	e := f.mustCreate(t, f.supA, 1)

	_, err := NewUploadPhoto(f.store.Employees(), f.policy, f.rec, nil, 16).
		Execute(context.Background(), f.supA, e.ID, bytes.NewReader(pngBytes(t)))
	assert.Equal(t, httperr.CodeUnavailable, codeOf(t, err))

	uc := NewUploadPhoto(f.store.Employees(), f.policy, f.rec, &fakeObjectStore{}, 16)

	_, err = uc.Execute(context.Background(), f.supB, e.ID, bytes.NewReader(pngBytes(t)))
	assert.Equal(t, httperr.CodeForbidden, codeOf(t, err))

	_, err = uc.Execute(context.Background(), f.supA, e.ID, strings.NewReader("plain text"))
	assert.Equal(t, httperr.CodeValidation, codeOf(t, err))

	failing := NewUploadPhoto(f.store.Employees(), f.policy, f.rec, &fakeObjectStore{err: errors.New("s3 down")}, 16)
	_, err = failing.Execute(context.Background(), f.supA, e.ID, bytes.NewReader(pngBytes(t)))
	assert.Error(t, err)

	assert.Len(t, f.auditLogs(t), 1)
}
