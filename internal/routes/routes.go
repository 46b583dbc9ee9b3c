package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/employee-portal/internal/audit"
	"github.com/BruksfildServices01/employee-portal/internal/auth"
	"github.com/BruksfildServices01/employee-portal/internal/config"
	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	"github.com/BruksfildServices01/employee-portal/internal/domain/account"
	"github.com/BruksfildServices01/employee-portal/internal/domain/auditlog"
	"github.com/BruksfildServices01/employee-portal/internal/domain/employee"
	"github.com/BruksfildServices01/employee-portal/internal/handlers"
	"github.com/BruksfildServices01/employee-portal/internal/httperr"
	"github.com/BruksfildServices01/employee-portal/internal/limiter"
	"github.com/BruksfildServices01/employee-portal/internal/metrics"
	"github.com/BruksfildServices01/employee-portal/internal/middleware"
	"github.com/BruksfildServices01/employee-portal/internal/storage"
	"github.com/BruksfildServices01/employee-portal/internal/timezone"
	ucAccount "github.com/BruksfildServices01/employee-portal/internal/usecase/account"
	ucEmployee "github.com/BruksfildServices01/employee-portal/internal/usecase/employee"
	ucSession "github.com/BruksfildServices01/employee-portal/internal/usecase/session"
)

// Dependencies are the singletons main builds for the selected store driver.
type Dependencies struct {
	Config  *config.Config
	Log     *zap.Logger
	Metrics *metrics.Metrics

	Accounts  account.Repository
	Employees employee.Repository
	AuditLogs auditlog.Repository
	Store     handlers.Pinger

	Tokens       *auth.TokenIssuer
	Hasher       auth.PasswordHasher
	LoginLimiter limiter.Limiter
	// Photos is nil when object storage is not configured.
	Photos storage.ObjectStore
}

type guardKind int

const (
	public guardKind = iota
	authenticated
	adminOnly
)

type route struct {
	method  string
	path    string
	guard   guardKind
	rule    middleware.Rule
	pre     []gin.HandlerFunc
	handler gin.HandlerFunc
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {
	cfg := deps.Config
	log := deps.Log
	policy := cfg.ScopePolicy

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.Recovery(log),
		middleware.RequestLogger(log.Named("http")),
		middleware.Instrument(deps.Metrics),
		middleware.CORSMiddleware(cfg.CORSOrigins),
		middleware.Origin(),
	)

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditDispatcher := audit.NewDispatcher(
		audit.New(deps.AuditLogs),
		log,
		audit.WithFailureHook(deps.Metrics.AuditFailure),
	)
	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// USE CASES
	// ======================================================
	loginUC := ucSession.NewLogin(deps.Accounts, deps.Hasher, deps.Tokens, auditDispatcher, cfg.AuditLogins, deps.Metrics)

	createSupervisorUC := ucAccount.NewCreateSupervisor(deps.Accounts, deps.Hasher, policy, cfg.EmailDomainCheck)
	listSupervisorsUC := ucAccount.NewListSupervisors(deps.Accounts, policy)
	deleteAccountUC := ucAccount.NewDeleteAccount(deps.Accounts, policy)

	getEmployeeUC := ucEmployee.NewGetEmployee(deps.Employees, policy)
	employeeUCs := handlers.EmployeeUsecases{
		List:   ucEmployee.NewListEmployees(deps.Employees, policy),
		Get:    getEmployeeUC,
		Create: ucEmployee.NewCreateEmployee(deps.Employees, deps.Accounts, policy, auditDispatcher, loc),
		Update: ucEmployee.NewUpdateEmployee(deps.Employees, deps.Accounts, policy, auditDispatcher, loc),
		Delete: ucEmployee.NewDeleteEmployee(deps.Employees, policy, auditDispatcher),
		Stats:  ucEmployee.NewEmployeeStats(deps.Employees, policy),
		Photo:  ucEmployee.NewUploadPhoto(deps.Employees, policy, auditDispatcher, deps.Photos, cfg.PhotoMaxSide),
	}
	listAuditLogsUC := ucEmployee.NewListAuditLogs(deps.AuditLogs, policy)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(deps.Store, log)
	authHandler := handlers.NewAuthHandler(loginUC)
	meHandler := handlers.NewMeHandler()
	accountHandler := handlers.NewAccountHandler(createSupervisorUC, listSupervisorsUC, deleteAccountUC)
	employeeHandler := handlers.NewEmployeeHandler(employeeUCs, cfg.PhotoMaxBytes)
	auditLogsHandler := handlers.NewAuditLogsHandler(listAuditLogsUC)

	loginLimit := middleware.RateLimit(deps.LoginLimiter, log, func() {
		deps.Metrics.LoginOutcome(metrics.LoginRateLimited)
	})
	owner := middleware.OwnerResolver(getEmployeeUC.OwnerOf)

	// ======================================================
	// ROUTE TABLE
	// ======================================================
	table := []route{
		{method: http.MethodGet, path: "/", guard: public, handler: healthHandler.Root},
		{method: http.MethodGet, path: "/health", guard: public, handler: healthHandler.Live},
		{method: http.MethodGet, path: "/readyz", guard: public, handler: healthHandler.Ready},
		{method: http.MethodGet, path: "/metrics", guard: public, handler: gin.WrapH(deps.Metrics.Handler())},

		// AUTH
		{method: http.MethodPost, path: "/auth/login", guard: public, pre: []gin.HandlerFunc{loginLimit}, handler: authHandler.Login},
		{method: http.MethodGet, path: "/auth/me", guard: authenticated, handler: meHandler.GetMe},
		{method: http.MethodPost, path: "/auth/create-supervisor", guard: adminOnly,
			rule: middleware.Rule{Action: access.ActionManageAccounts}, handler: accountHandler.CreateSupervisor},
		{method: http.MethodGet, path: "/auth/supervisors", guard: adminOnly,
			rule: middleware.Rule{Action: access.ActionManageAccounts}, handler: accountHandler.ListSupervisors},
		{method: http.MethodDelete, path: "/auth/users/:id", guard: adminOnly,
			rule: middleware.Rule{Action: access.ActionManageAccounts}, handler: accountHandler.Delete},

		// EMPLOYEES
		{method: http.MethodGet, path: "/employees", guard: authenticated,
			rule: middleware.Rule{Action: access.ActionRead}, handler: employeeHandler.List},
		{method: http.MethodPost, path: "/employees", guard: authenticated,
			rule: middleware.Rule{Action: access.ActionCreate}, handler: employeeHandler.Create},
		{method: http.MethodGet, path: "/employees/stats", guard: authenticated, handler: employeeHandler.Stats},
		{method: http.MethodGet, path: "/employees/audit-logs", guard: adminOnly,
			rule: middleware.Rule{Action: access.ActionReadAudit}, handler: auditLogsHandler.List},
		{method: http.MethodGet, path: "/employees/:id", guard: authenticated,
			rule: middleware.Rule{Action: access.ActionRead, Owner: owner}, handler: employeeHandler.Get},
		{method: http.MethodPut, path: "/employees/:id", guard: authenticated,
			rule: middleware.Rule{Action: access.ActionUpdate, Owner: owner}, handler: employeeHandler.Update},
		{method: http.MethodDelete, path: "/employees/:id", guard: authenticated,
			rule: middleware.Rule{Action: access.ActionDelete, Owner: owner}, handler: employeeHandler.Delete},
		{method: http.MethodPut, path: "/employees/:id/photo", guard: authenticated,
			rule: middleware.Rule{Action: access.ActionUpdate, Owner: owner}, handler: employeeHandler.UploadPhoto},
	}

	api := r.Group(cfg.APIBasePath)
	authn := middleware.AuthMiddleware(deps.Tokens)

	for _, rt := range table {
		chain := append([]gin.HandlerFunc{}, rt.pre...)

		switch rt.guard {
		case authenticated:
			chain = append(chain, authn, middleware.Guard(policy, rt.rule))
		case adminOnly:
			rule := rt.rule
			rule.Role = access.RoleAdmin
			chain = append(chain, authn, middleware.Guard(policy, rule))
		}

		api.Handle(rt.method, rt.path, append(chain, rt.handler)...)
	}

	r.NoRoute(func(c *gin.Context) {
		httperr.Respond(c, httperr.ErrNotFound("Route not found"))
	})
}
