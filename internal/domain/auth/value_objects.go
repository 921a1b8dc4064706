package auth

import (
	"strings"

	"skipass-api/internal/pkg/errs"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrMissingCredentials = errs.New("email and password are required")
)

// Credentials are only checked for presence. Format rules apply at
// registration; on login every mismatch must look the same to the caller.
type Credentials struct {
	email    string
	password string
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email := strings.ToLower(strings.TrimSpace(emailStr))
	if email == "" || passwordStr == "" {
		return Credentials{}, errs.Mark(ErrMissingCredentials, errs.ErrInvalidInput)
	}

	return Credentials{
		email:    email,
		password: passwordStr,
	}, nil
}

func (c Credentials) Email() string {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}
