package session

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/employee-portal/internal/audit"
	"github.com/BruksfildServices01/employee-portal/internal/auth"
	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	"github.com/BruksfildServices01/employee-portal/internal/domain/account"
	"github.com/BruksfildServices01/employee-portal/internal/dto"
	"github.com/BruksfildServices01/employee-portal/internal/httperr"
	"github.com/BruksfildServices01/employee-portal/internal/metrics"
	"github.com/BruksfildServices01/employee-portal/internal/models"
	"github.com/BruksfildServices01/employee-portal/internal/validators"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// OutcomeRecorder counts login attempts.
type OutcomeRecorder interface {
	LoginOutcome(outcome string)
}

type Login struct {
	accounts    account.Repository
	hasher      auth.PasswordHasher
	tokens      *auth.TokenIssuer
	audit       audit.Recorder
	auditLogins bool
	outcomes    OutcomeRecorder
}

func NewLogin(
	accounts account.Repository,
	hasher auth.PasswordHasher,
	tokens *auth.TokenIssuer,
	audit audit.Recorder,
	auditLogins bool,
	outcomes OutcomeRecorder,
) *Login {
	return &Login{
		accounts:    accounts,
		hasher:      hasher,
		tokens:      tokens,
		audit:       audit,
		auditLogins: auditLogins,
		outcomes:    outcomes,
	}
}

// Execute answers unknown emails and wrong passwords identically.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*dto.LoginResult, error) {
	email := validators.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, httperr.ErrValidation("Please provide email and password")
	}

	acc, err := uc.accounts.GetByEmail(ctx, email)
	if err != nil {
		if !httperr.IsBusiness(err, httperr.CodeNotFound) {
			return nil, fmt.Errorf("load account: %w", err)
		}
		uc.hasher.Compare("", in.Password)
		uc.outcomes.LoginOutcome(metrics.LoginInvalid)
		return nil, httperr.ErrInvalidCredentials()
	}

	if !uc.hasher.Compare(acc.PasswordHash, in.Password) {
		uc.outcomes.LoginOutcome(metrics.LoginInvalid)
		return nil, httperr.ErrInvalidCredentials()
	}

	id := access.Identity{
		AccountID: acc.ID,
		Email:     acc.Email,
		Role:      access.Role(acc.Role),
	}

	token, expiresAt, err := uc.tokens.Issue(id)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	if uc.auditLogins {
		uc.audit.Dispatch(ctx, audit.Event{
			Actor:   id,
			Action:  models.AuditLogin,
			Target:  acc.Email,
			Details: "User logged in",
		})
	}
	uc.outcomes.LoginOutcome(metrics.LoginSuccess)

	return &dto.LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.NewAccountSummary(acc),
	}, nil
}
