//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"skipass-api/internal/domain/user"
	"skipass-api/internal/pkg/errs"
	"skipass-api/internal/testutil/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("success: defaults build an active customer", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		name, _ := user.NewName("Ana Pop")
		email, _ := user.NewEmail("ana.pop@gmail.com")
		expected := user.NewUser(name, email, "hashed_password", user.RoleCustomer, time.Now())

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
		assert.Equal(t, "ana.pop@gmail.com", actual.Email().Value())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "gmail OK", mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@gmail.com") }},
			{name: "yahoo OK", mutate: func(b *builder.UserBuilder) { b.WithEmail("first.last+ski@yahoo.com") }},
			{name: "upper case OK", mutate: func(b *builder.UserBuilder) { b.WithEmail("Ana@GMAIL.com") }},
			{name: "empty NG", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "other provider NG", mutate: func(b *builder.UserBuilder) { b.WithEmail("ana@example.com") }, errIs: user.ErrInvalidEmail},
			{name: "missing @ NG", mutate: func(b *builder.UserBuilder) { b.WithEmail("anagmail.com") }, errIs: user.ErrInvalidEmail},
			{name: "lookalike domain NG", mutate: func(b *builder.UserBuilder) { b.WithEmail("ana@gmail.com.ro") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "customer OK", mutate: func(b *builder.UserBuilder) { b.WithRole("customer") }},
			{name: "admin OK", mutate: func(b *builder.UserBuilder) { b.WithRole("admin") }},
			{name: "unknown NG", mutate: func(b *builder.UserBuilder) { b.WithRole("operator") }, errIs: user.ErrInvalidRole},
			{name: "empty NG", mutate: func(b *builder.UserBuilder) { b.WithRole("") }, errIs: user.ErrInvalidRole},
		})
	})

	t.Run("name", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "trimmed OK", mutate: func(b *builder.UserBuilder) { b.WithName("  Ion  ") }},
			{name: "100 runes OK", mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("ș", 100)) }},
			{name: "blank NG", mutate: func(b *builder.UserBuilder) { b.WithName("   ") }, errIs: user.ErrInvalidName},
			{name: "101 runes NG", mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", 101)) }, errIs: user.ErrInvalidName},
		})
	})
}

func TestPassword(t *testing.T) {
	_, err := user.NewPassword("1234567")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	assert.True(t, errs.Is(err, errs.ErrInvalidInput))

	p, err := user.NewConfirmedPassword("correct-horse", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "correct-horse", p.Value())

	_, err = user.NewConfirmedPassword("correct-horse", "correct-h0rse")
	assert.ErrorIs(t, err, user.ErrPasswordMismatch)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
