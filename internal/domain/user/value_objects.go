package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidRole      = errors.New("invalid role")
	ErrPasswordTooWeak  = errors.New("password must be at least 8 characters long")
	ErrPasswordMismatch = errors.New("passwords do not match")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(email, password string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}

	p, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{email: e, password: p}, nil
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }

// Registration carries the validated sign-up payload. The confirmation
// password is checked here so handlers never see a half-valid registration.
type Registration struct {
	credentials Credentials
	firstName   string
	lastName    string
}

func NewRegistration(email, password, passwordConfirm, firstName, lastName string) (Registration, error) {
	if password != passwordConfirm {
		return Registration{}, ErrPasswordMismatch
	}

	credentials, err := NewCredentials(email, password)
	if err != nil {
		return Registration{}, err
	}

	return Registration{
		credentials: credentials,
		firstName:   strings.TrimSpace(firstName),
		lastName:    strings.TrimSpace(lastName),
	}, nil
}

func (r Registration) Credentials() Credentials { return r.credentials }
func (r Registration) FirstName() string        { return r.firstName }
func (r Registration) LastName() string         { return r.lastName }
