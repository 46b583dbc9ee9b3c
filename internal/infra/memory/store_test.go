package memory

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/employee-portal/internal/domain/employee"
	"github.com/BruksfildServices01/employee-portal/internal/httperr"
	"github.com/BruksfildServices01/employee-portal/internal/models"
	"github.com/BruksfildServices01/employee-portal/internal/pagination"
)

func newEmployee(n int, managerID string) *models.Employee {
	return &models.Employee{
		FirstName:     fmt.Sprintf("First%d", n),
		LastName:      fmt.Sprintf("Last%d", n),
		Email:         fmt.Sprintf("emp%d@corp.com", n),
		EmployeeID:    fmt.Sprintf("EMP-%03d", n),
		Department:    "Engineering",
		Position:      "Engineer",
		Status:        "active",
		DateOfJoining: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		ManagerID:     &managerID,
	}
}

func seedManager(t *testing.T, s *Store) string {
	t.Helper()
	acc := &models.Account{Email: "boss@corp.com", PasswordHash: "x", Role: "supervisor"}
	require.NoError(t, s.Accounts().Create(context.Background(), acc))
	return acc.ID
}

func TestEmployees_ConcurrentDuplicateCreates(t *testing.T) {
	s := NewStore()
	mgr := seedManager(t, s)
	repo := s.Employees()

	var ok, conflicts atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Create(context.Background(), newEmployee(1, mgr))
			switch {
			case err == nil:
				ok.Add(1)
			case httperr.IsBusiness(err, httperr.CodeConflict):
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, ok.Load())
	assert.EqualValues(t, 19, conflicts.Load())
}

func TestEmployees_ListNewestFirstAndPaginated(t *testing.T) {
	s := NewStore()
	mgr := seedManager(t, s)
	repo := s.Employees()
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Create(ctx, newEmployee(i, mgr)))
	}

	page1, total, err := repo.List(ctx, employee.Filter{}, pagination.NewRequest(1, 2))
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, page1, 2)
	assert.Equal(t, "EMP-005", page1[0].EmployeeID)
	assert.Equal(t, "EMP-004", page1[1].EmployeeID)

	page3, _, err := repo.List(ctx, employee.Filter{}, pagination.NewRequest(3, 2))
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, "EMP-001", page3[0].EmployeeID)

	beyond, _, err := repo.List(ctx, employee.Filter{}, pagination.NewRequest(9, 2))
	require.NoError(t, err)
	assert.Empty(t, beyond)

	huge, total, err := repo.List(ctx, employee.Filter{}, pagination.FromQuery("1000000000000000000", "10"))
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	assert.Empty(t, huge)

	overflowed, _, err := repo.List(ctx, employee.Filter{}, pagination.Request{Page: math.MaxInt, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, overflowed)
}

func TestEmployees_UpdateRejectsDuplicateEmail(t *testing.T) {
	s := NewStore()
	mgr := seedManager(t, s)
	repo := s.Employees()
	ctx := context.Background()

	a, b := newEmployee(1, mgr), newEmployee(2, mgr)
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	b.Email = "EMP1@corp.com"
	err := repo.Update(ctx, b)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeConflict))
}

func TestEmployees_ReturnedRecordsAreCopies(t *testing.T) {
	s := NewStore()
	mgr := seedManager(t, s)
	repo := s.Employees()
	ctx := context.Background()

	e := newEmployee(1, mgr)
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	got.FirstName = "Changed"
	*got.ManagerID = "someone"

	again, err := repo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "First1", again.FirstName)
	assert.Equal(t, mgr, again.ManagedBy())
}

func TestAccounts_DeleteClearsManagerReferences(t *testing.T) {
	s := NewStore()
	mgr := seedManager(t, s)
	ctx := context.Background()

	e := newEmployee(1, mgr)
	e.CreatedByID = &mgr
	require.NoError(t, s.Employees().Create(ctx, e))

	require.NoError(t, s.Accounts().Delete(ctx, mgr))

	got, err := s.Employees().GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.Nil(t, got.ManagerID)
	assert.Nil(t, got.CreatedByID)

	err = s.Accounts().Delete(ctx, mgr)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFound))
}

func TestEmployees_UnknownManagerRejected(t *testing.T) {
	s := NewStore()
	err := s.Employees().Create(context.Background(), newEmployee(1, "ghost"))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeValidation))
}

func TestEmployees_Stats(t *testing.T) {
	s := NewStore()
	mgr := seedManager(t, s)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		e := newEmployee(i, mgr)
		if i == 3 {
			e.Status = "inactive"
			e.Department = "Sales"
		}
		require.NoError(t, s.Employees().Create(ctx, e))
	}

	st, err := s.Employees().Stats(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, employee.Stats{Total: 3, Active: 2, Inactive: 1, Departments: 2}, st)

	st, err = s.Employees().Stats(ctx, "someone-else")
	require.NoError(t, err)
	assert.Zero(t, st.Total)
}

func TestAudit_ListRecent(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.AuditLogs().Append(ctx, &models.AuditLog{
			Action:         models.AuditCreate,
			TargetResource: fmt.Sprintf("t%d", i),
		}))
	}

	got, err := s.AuditLogs().ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "t4", got[0].TargetResource)
	assert.Equal(t, "t2", got[2].TargetResource)
}
