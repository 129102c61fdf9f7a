package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 100
	minPasswordLen = 6
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserExists        = errors.New("username already taken")
	ErrWrongCredentials  = errors.New("wrong credentials")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrNotLoggedIn       = errors.New("not logged in")
	ErrSessionExpired    = errors.New("login session expired")
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c Credentials) Normalized() Credentials {
	return Credentials{
		Username: strings.ToLower(strings.TrimSpace(c.Username)),
		Password: c.Password,
	}
}

// ValidateNew checks the rules applied at registration.
func (c Credentials) ValidateNew() error {
	c = c.Normalized()
	switch {
	case len(c.Username) < minUsernameLen || len(c.Username) > maxUsernameLen:
		return fmt.Errorf("%w: username must have between %d and %d characters", ErrInvalidCredential, minUsernameLen, maxUsernameLen)
	case strings.ContainsAny(c.Username, " \t|"):
		return fmt.Errorf("%w: username contains invalid characters", ErrInvalidCredential)
	case len(c.Password) < minPasswordLen:
		return fmt.Errorf("%w: password must have at least %d characters", ErrInvalidCredential, minPasswordLen)
	}
	return nil
}
