package auth

import (
	"context"

	"github.com/google/uuid"
)

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

// Checker resolves a login token to the user it was issued for.
type Checker interface {
	UserID(ctx context.Context, token string) (uuid.UUID, error)
}

type LoginTestChecker struct {
	LoggedSessions map[string]uuid.UUID
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		map[string]uuid.UUID{},
	}
}

func (c *LoginTestChecker) UserID(_ context.Context, token string) (uuid.UUID, error) {
	if userID, ok := c.LoggedSessions[token]; !ok {
		return uuid.Nil, ErrNotLoggedIn
	} else {
		return userID, nil
	}
}
