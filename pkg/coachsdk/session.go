package coachsdk

import "time"

// Session is an authenticated handle on the coaching service.
type Session struct {
	client    *SDKClient
	token     string
	user      UserInfo
	expiresAt time.Time
}

func newSession(c *SDKClient, auth AuthResponse) *Session {
	return &Session{
		client:    c,
		token:     auth.Token,
		user:      auth.User,
		expiresAt: auth.ExpiresAt,
	}
}

// Token returns the bearer token, e.g. for persisting across restarts.
func (s *Session) Token() string { return s.token }

// User returns the account this session belongs to.
func (s *Session) User() UserInfo { return s.user }

// ExpiresAt returns when the bearer token lapses.
func (s *Session) ExpiresAt() time.Time { return s.expiresAt }

// Expired reports whether the token has lapsed.
func (s *Session) Expired() bool {
	return time.Now().After(s.expiresAt)
}
