// internal/models/user_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPasswordIsPlainEquality(t *testing.T) {
	u := &User{Password: "secret"}

	assert.True(t, u.CheckPassword("secret"))
	assert.False(t, u.CheckPassword("Secret"))
	assert.False(t, u.CheckPassword(""))
}
