package db

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/employee-portal/internal/config"
	"github.com/BruksfildServices01/employee-portal/internal/domain/account"
	"github.com/BruksfildServices01/employee-portal/internal/domain/auditlog"
	"github.com/BruksfildServices01/employee-portal/internal/domain/employee"
	"github.com/BruksfildServices01/employee-portal/internal/infra/memory"
	infraRepo "github.com/BruksfildServices01/employee-portal/internal/infra/repository"
)

// Stores is the set of repositories for one STORE_DRIVER.
type Stores struct {
	Accounts  account.Repository
	Employees employee.Repository
	AuditLogs auditlog.Repository
	Pinger    interface {
		Ping(ctx context.Context) error
	}

	close func() error
}

func (s *Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStores connects the configured driver. The postgres schema is migrated
// when migrate is set.
func OpenStores(cfg *config.Config, migrate bool) (*Stores, error) {
	switch cfg.StoreDriver {
	case "memory":
		mem := memory.NewStore()
		return &Stores{
			Accounts:  mem.Accounts(),
			Employees: mem.Employees(),
			AuditLogs: mem.AuditLogs(),
			Pinger:    mem,
		}, nil

	case "postgres":
		gdb, err := NewDB(cfg)
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := Migrate(gdb); err != nil {
				return nil, err
			}
		}
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql.DB: %w", err)
		}
		return &Stores{
			Accounts:  infraRepo.NewAccountGormRepository(gdb),
			Employees: infraRepo.NewEmployeeGormRepository(gdb),
			AuditLogs: infraRepo.NewAuditGormRepository(gdb),
			Pinger:    NewPinger(gdb),
			close:     sqlDB.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}
