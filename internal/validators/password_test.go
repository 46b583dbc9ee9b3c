package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/employee-portal/internal/httperr"
)

func TestCheckPassword(t *testing.T) {
	assert.NoError(t, CheckPassword("secret"))
	assert.NoError(t, CheckPassword(strings.Repeat("x", MaxPasswordLength)))

	for _, pw := range []string{"", "12345", strings.Repeat("x", MaxPasswordLength+1), strings.Repeat("é", 40)} {
		assert.True(t, httperr.IsBusiness(CheckPassword(pw), httperr.CodeValidation), "len=%d", len(pw))
	}
}
