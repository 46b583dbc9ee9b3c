package account

import (
	"context"

	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	domain "github.com/BruksfildServices01/employee-portal/internal/domain/account"
	"github.com/BruksfildServices01/employee-portal/internal/httperr"
)

type DeleteAccount struct {
	repo   domain.Repository
	policy access.ScopePolicy
}

func NewDeleteAccount(repo domain.Repository, policy access.ScopePolicy) *DeleteAccount {
	return &DeleteAccount{repo: repo, policy: policy}
}

// Execute removes the account. Employees it managed or created keep their
// rows with the reference cleared.
func (uc *DeleteAccount) Execute(ctx context.Context, caller access.Identity, id string) error {
	if err := uc.policy.Authorize(caller, access.ActionManageAccounts, ""); err != nil {
		return err
	}
	if id == caller.AccountID {
		return httperr.ErrSelfDeletion()
	}
	return uc.repo.Delete(ctx, id)
}
