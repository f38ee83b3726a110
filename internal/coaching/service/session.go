package service

import (
	"time"

	"github.com/ultracoach/ultracoach/internal/coaching/domain"
	"github.com/ultracoach/ultracoach/pkg/jwtx"
)

// SessionService mints bearer tokens for authenticated users.
type SessionService struct {
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
}

func (s *SessionService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return jwtx.DefaultSessionTTL
}

// Mint signs a session token for the user and returns it with its expiry.
func (s *SessionService) Mint(u domain.User) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.ttl())

	claims := jwtx.NewSessionClaims(u.ID, string(u.Role), u.Email, u.FullName, s.Issuer, s.ttl(), now)
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}
