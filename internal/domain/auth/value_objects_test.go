//go:build unit

package auth_test

import (
	"testing"

	"skipass-api/internal/domain/auth"
	"skipass-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	c, err := auth.NewCredentials("  Ana@Gmail.com ", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, "ana@gmail.com", c.Email())
	assert.Equal(t, "secret-pass", c.Password())

	_, err = auth.NewCredentials("", "secret-pass")
	assert.ErrorIs(t, err, auth.ErrMissingCredentials)
	assert.True(t, errs.Is(err, errs.ErrInvalidInput))

	_, err = auth.NewCredentials("ana@gmail.com", "")
	assert.ErrorIs(t, err, auth.ErrMissingCredentials)
}
