package auth

import "context"

type LoginTestChecker struct {
	LoggedSessions map[string]int64
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		map[string]int64{},
	}
}

func (c *LoginTestChecker) UserID(_ context.Context, token string) (int64, error) {
	userID, ok := c.LoggedSessions[token]
	if !ok {
		return 0, ErrNoSession
	}
	return userID, nil
}
