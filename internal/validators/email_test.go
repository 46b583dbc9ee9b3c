package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	valid := []string{"admin@x.com", "first.last@corp.co.uk", "a-b@sub.domain.org", "user_1@x.io"}
	for _, e := range valid {
		assert.True(t, IsEmail(e), e)
	}

	invalid := []string{"", "plain", "@x.com", "a@", "a@x", "a@x.c", "a b@x.com", "a@x.comma"}
	for _, e := range invalid {
		assert.False(t, IsEmail(e), e)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "admin@x.com", NormalizeEmail("  Admin@X.com "))
}

func TestIsEmailDomainValid_Malformed(t *testing.T) {
	assert.False(t, IsEmailDomainValid("no-at-sign"))
	assert.False(t, IsEmailDomainValid("trailing@"))
}
