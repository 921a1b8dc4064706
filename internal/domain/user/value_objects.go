package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"skipass-api/internal/pkg/errs"
)

var (
	ErrInvalidEmail     = errs.New("email must be a gmail.com or yahoo.com address")
	ErrInvalidRole      = errs.New("invalid role")
	ErrPasswordTooWeak  = errs.New("password must be at least 8 characters long")
	ErrPasswordMismatch = errs.New("passwords do not match")
	ErrInvalidName      = errs.New("name must be between 1 and 100 characters")
)

const (
	MinPasswordLength = 8
	MaxNameLength     = 100
)

// Only the two providers the storefront supports are accepted.
var emailRegex = regexp.MustCompile(`(?i)^[\w.+-]+@(gmail\.com|yahoo\.com)$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, errs.Mark(ErrInvalidEmail, errs.ErrInvalidInput)
	}
	return Email{value: strings.ToLower(s)}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if utf8.RuneCountInString(s) < MinPasswordLength {
		return Password{}, errs.Mark(ErrPasswordTooWeak, errs.ErrInvalidInput)
	}
	return Password{value: s}, nil
}

// NewConfirmedPassword is used on registration where the form repeats the password.
func NewConfirmedPassword(s, confirm string) (Password, error) {
	p, err := NewPassword(s)
	if err != nil {
		return Password{}, err
	}
	if s != confirm {
		return Password{}, errs.Mark(ErrPasswordMismatch, errs.ErrInvalidInput)
	}
	return p, nil
}

func (p Password) Value() string {
	return p.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	n := utf8.RuneCountInString(s)
	if n == 0 || n > MaxNameLength {
		return Name{}, errs.Mark(ErrInvalidName, errs.ErrInvalidInput)
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}
