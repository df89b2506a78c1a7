package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmin_SetAndCheckPassword(t *testing.T) {
	// Arrange
	admin := &Admin{Username: "admin"}

	// Act
	err := admin.SetPassword("s3cret-password")

	// Assert
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", admin.PasswordHash, "Пароль должен храниться в виде хеша")
	assert.True(t, admin.CheckPassword("s3cret-password"))
	assert.False(t, admin.CheckPassword("wrong-password"))
}
