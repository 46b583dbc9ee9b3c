package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/employee-portal/internal/domain/employee"
	"github.com/BruksfildServices01/employee-portal/internal/httperr"
	"github.com/BruksfildServices01/employee-portal/internal/models"
	"github.com/BruksfildServices01/employee-portal/internal/pagination"
)

// Store keeps accounts, employees and audit entries in process memory.
// Uniqueness is checked under the write lock, so concurrent creates cannot
// both succeed.
type Store struct {
	mu sync.RWMutex

	seq       int64
	accounts  map[string]*record[models.Account]
	employees map[string]*record[models.Employee]
	audit     []record[models.AuditLog]

	now func() time.Time
}

type record[T any] struct {
	seq int64
	val T
}

func NewStore() *Store {
	return &Store{
		accounts:  make(map[string]*record[models.Account]),
		employees: make(map[string]*record[models.Employee]),
		now:       time.Now,
	}
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Accounts() *AccountRepository   { return &AccountRepository{s: s} }
func (s *Store) Employees() *EmployeeRepository { return &EmployeeRepository{s: s} }
func (s *Store) AuditLogs() *AuditRepository    { return &AuditRepository{s: s} }

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

// ======================================================
// ACCOUNTS
// ======================================================

type AccountRepository struct {
	s *Store
}

func (r *AccountRepository) Create(_ context.Context, a *models.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rec := range r.s.accounts {
		if strings.EqualFold(rec.val.Email, a.Email) {
			return httperr.ErrConflict("Email already exists")
		}
	}

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	now := r.s.now()
	a.CreatedAt, a.UpdatedAt = now, now
	r.s.accounts[a.ID] = &record[models.Account]{seq: r.s.nextSeq(), val: *a}
	return nil
}

func (r *AccountRepository) GetByID(_ context.Context, id string) (*models.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.accounts[id]
	if !ok {
		return nil, httperr.ErrNotFound("Account not found")
	}
	a := rec.val
	return &a, nil
}

func (r *AccountRepository) GetByEmail(_ context.Context, email string) (*models.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, rec := range r.s.accounts {
		if strings.EqualFold(rec.val.Email, email) {
			a := rec.val
			return &a, nil
		}
	}
	return nil, httperr.ErrNotFound("Account not found")
}

func (r *AccountRepository) ListByRole(_ context.Context, role string) ([]models.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	recs := make([]*record[models.Account], 0)
	for _, rec := range r.s.accounts {
		if rec.val.Role == role {
			recs = append(recs, rec)
		}
	}
	sortNewestFirst(recs, func(rec *record[models.Account]) (time.Time, int64) {
		return rec.val.CreatedAt, rec.seq
	})

	out := make([]models.Account, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.val)
	}
	return out, nil
}

// Delete removes the account and clears references to it, like the
// ON DELETE SET NULL foreign keys do in Postgres.
func (r *AccountRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.accounts[id]; !ok {
		return httperr.ErrNotFound("Account not found")
	}
	delete(r.s.accounts, id)

	for _, rec := range r.s.employees {
		if rec.val.ManagerID != nil && *rec.val.ManagerID == id {
			rec.val.ManagerID = nil
		}
		if rec.val.CreatedByID != nil && *rec.val.CreatedByID == id {
			rec.val.CreatedByID = nil
		}
	}
	return nil
}

// ======================================================
// EMPLOYEES
// ======================================================

type EmployeeRepository struct {
	s *Store
}

func (r *EmployeeRepository) List(
	_ context.Context,
	filter employee.Filter,
	page pagination.Request,
) ([]models.Employee, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := make([]*record[models.Employee], 0)
	for _, rec := range r.s.employees {
		e := rec.val
		if filter.Matches(&e) {
			matched = append(matched, rec)
		}
	}
	sortNewestFirst(matched, func(rec *record[models.Employee]) (time.Time, int64) {
		return rec.val.CreatedAt, rec.seq
	})

	total := int64(len(matched))
	start := page.Offset()
	if start < 0 || start > len(matched) {
		start = len(matched)
	}
	end := min(start+page.Limit(), len(matched))

	out := make([]models.Employee, 0, end-start)
	for _, rec := range matched[start:end] {
		out = append(out, cloneEmployee(rec.val))
	}
	return out, total, nil
}

func (r *EmployeeRepository) GetByID(_ context.Context, id string) (*models.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.employees[id]
	if !ok {
		return nil, httperr.ErrNotFound("Employee not found")
	}
	e := cloneEmployee(rec.val)
	return &e, nil
}

func (r *EmployeeRepository) Create(_ context.Context, e *models.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkUnique(e, ""); err != nil {
		return err
	}
	if err := r.checkManager(e); err != nil {
		return err
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	now := r.s.now()
	e.CreatedAt, e.UpdatedAt = now, now
	r.s.employees[e.ID] = &record[models.Employee]{seq: r.s.nextSeq(), val: cloneEmployee(*e)}
	return nil
}

func (r *EmployeeRepository) Update(_ context.Context, e *models.Employee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.employees[e.ID]
	if !ok {
		return httperr.ErrNotFound("Employee not found")
	}
	if err := r.checkUnique(e, e.ID); err != nil {
		return err
	}
	if err := r.checkManager(e); err != nil {
		return err
	}

	e.CreatedAt = rec.val.CreatedAt
	e.CreatedByID = rec.val.CreatedByID
	e.UpdatedAt = r.s.now()
	rec.val = cloneEmployee(*e)
	return nil
}

func (r *EmployeeRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[id]; !ok {
		return httperr.ErrNotFound("Employee not found")
	}
	delete(r.s.employees, id)
	return nil
}

func (r *EmployeeRepository) Stats(_ context.Context, managerID string) (employee.Stats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var st employee.Stats
	departments := make(map[string]struct{})
	filter := employee.Filter{ManagerID: managerID}
	for _, rec := range r.s.employees {
		e := rec.val
		if !filter.Matches(&e) {
			continue
		}
		st.Total++
		switch employee.Status(e.Status) {
		case employee.StatusActive:
			st.Active++
		case employee.StatusInactive:
			st.Inactive++
		}
		departments[e.Department] = struct{}{}
	}
	st.Departments = int64(len(departments))
	return st, nil
}

func (r *EmployeeRepository) checkUnique(e *models.Employee, selfID string) error {
	for id, rec := range r.s.employees {
		if id == selfID {
			continue
		}
		if strings.EqualFold(rec.val.Email, e.Email) {
			return httperr.ErrConflict("Email already exists")
		}
		if rec.val.EmployeeID == e.EmployeeID {
			return httperr.ErrConflict("Employee ID already exists")
		}
	}
	return nil
}

func (r *EmployeeRepository) checkManager(e *models.Employee) error {
	if e.ManagerID == nil {
		return nil
	}
	if _, ok := r.s.accounts[*e.ManagerID]; !ok {
		return httperr.ErrValidation("Manager not found")
	}
	return nil
}

func cloneEmployee(e models.Employee) models.Employee {
	if e.ManagerID != nil {
		v := *e.ManagerID
		e.ManagerID = &v
	}
	if e.CreatedByID != nil {
		v := *e.CreatedByID
		e.CreatedByID = &v
	}
	e.Manager, e.CreatedBy = nil, nil
	return e
}

// ======================================================
// AUDIT
// ======================================================

type AuditRepository struct {
	s *Store
}

func (r *AuditRepository) Append(_ context.Context, entry *models.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	entry.CreatedAt = r.s.now()
	r.s.audit = append(r.s.audit, record[models.AuditLog]{seq: r.s.nextSeq(), val: *entry})
	return nil
}

func (r *AuditRepository) ListRecent(_ context.Context, limit int) ([]models.AuditLog, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.AuditLog, 0, min(limit, len(r.s.audit)))
	for i := len(r.s.audit) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.s.audit[i].val)
	}
	return out, nil
}

// --------------------------------------------------

func sortNewestFirst[T any](recs []T, key func(T) (time.Time, int64)) {
	sort.SliceStable(recs, func(i, j int) bool {
		ti, si := key(recs[i])
		tj, sj := key(recs[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return si > sj
	})
}
