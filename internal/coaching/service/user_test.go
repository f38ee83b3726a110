package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ultracoach/ultracoach/internal/coaching/domain"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &UserService{Store: st}

	u, err := svc.Register(ctx, "Trail.Runner@Example.COM", "Trail Runner", "correct horse battery", "runner")
	require.NoError(t, err)
	require.Equal(t, "trail.runner@example.com", u.Email)
	require.Equal(t, domain.RoleRunner, u.Role)
	require.NotEqual(t, "correct horse battery", u.PasswordHash)

	// Lookup is case-insensitive because the email was normalised.
	got, err := svc.Authenticate(ctx, "TRAIL.RUNNER@example.com", "correct horse battery")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = svc.Authenticate(ctx, u.Email, "wrong password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &UserService{Store: st}

	cases := []struct {
		name     string
		email    string
		fullName string
		password string
		role     string
	}{
		{"missing email", "", "Someone", "long enough pw", "coach"},
		{"malformed email", "not-an-email", "Someone", "long enough pw", "coach"},
		{"missing name", "a@example.com", "", "long enough pw", "coach"},
		{"short password", "a@example.com", "Someone", "short", "coach"},
		{"bad role", "a@example.com", "Someone", "long enough pw", "referee"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.email, tc.fullName, tc.password, tc.role)
			require.ErrorIs(t, err, ErrInvalidUserRequest)
		})
	}

	t.Run("duplicate email", func(t *testing.T) {
		_, err := svc.Register(ctx, "dup@example.com", "First", "long enough pw", "coach")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "dup@example.com", "Second", "long enough pw", "runner")
		require.ErrorIs(t, err, ErrEmailTaken)
	})
}
