package validators

import (
	"github.com/BruksfildServices01/employee-portal/internal/httperr"
)

// CheckPassword enforces the length bounds every stored password shares.
func CheckPassword(password string) error {
	if len(password) < MinPasswordLength {
		return httperr.ErrValidation("Password must be at least %d characters", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return httperr.ErrValidation("Password must be at most %d bytes", MaxPasswordLength)
	}
	return nil
}
