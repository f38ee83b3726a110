package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/ultracoach/ultracoach/internal/coaching/domain"
	"github.com/ultracoach/ultracoach/internal/coaching/store"
	"github.com/ultracoach/ultracoach/pkg/cryptox"
	"github.com/ultracoach/ultracoach/pkg/idx"
)

func newInvitationService(st store.Store, mailer *captureMailer) *InvitationService {
	svc := &InvitationService{
		Store:         st,
		Relationships: &RelationshipService{Store: st},
		BaseURL:       "http://localhost:8080",
	}
	if mailer != nil {
		svc.Mailer = mailer
	}
	return svc
}

func TestCreateInvitation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := &captureMailer{}
	svc := newInvitationService(st, mailer)

	coach := createTestUser(t, st, "coach-carla", domain.RoleCoach)

	t.Run("stores only the token fingerprint", func(t *testing.T) {
		inv, token, emailSent, err := svc.Create(ctx, coach.ID, "runner@example.com", "runner", "join me")
		require.NoError(t, err)
		require.True(t, emailSent)
		require.NotEmpty(t, token)
		require.NotEqual(t, token, inv.TokenHash)
		require.Equal(t, cryptox.FingerprintToken(token), inv.TokenHash)
		require.Equal(t, domain.InvitationPending, inv.Status)
		require.Zero(t, inv.ResendCount)
		require.True(t, inv.ExpiresAt.After(time.Now()))

		stored, err := st.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, inv.TokenHash, stored.TokenHash)
		require.NotContains(t, stored.TokenHash, token)
	})

	t.Run("emails the accept and decline links", func(t *testing.T) {
		mailer.sent = nil
		_, token, emailSent, err := svc.Create(ctx, coach.ID, "athlete@example.com", "runner", "")
		require.NoError(t, err)
		require.True(t, emailSent)
		require.Len(t, mailer.sent, 1)
		require.Equal(t, "athlete@example.com", mailer.sent[0].To)
		require.Contains(t, mailer.sent[0].Body, "/v1/invitations/accept/"+token)
		require.Contains(t, mailer.sent[0].Body, "/v1/invitations/decline/"+token)
	})

	t.Run("delivery failure is flagged, not fatal", func(t *testing.T) {
		broken := newInvitationService(st, &captureMailer{fail: errSMTPDown})
		inv, _, emailSent, err := broken.Create(ctx, coach.ID, "unreachable@example.com", "runner", "")
		require.NoError(t, err)
		require.False(t, emailSent)

		// The invitation still exists despite the failed email.
		_, err = st.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
	})

	t.Run("no mailer means not sent", func(t *testing.T) {
		plain := newInvitationService(st, nil)
		_, _, emailSent, err := plain.Create(ctx, coach.ID, "offline@example.com", "runner", "")
		require.NoError(t, err)
		require.False(t, emailSent)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, _, _, err := svc.Create(ctx, coach.ID, "not-an-email", "runner", "")
		require.ErrorIs(t, err, ErrInvalidInvitationRequest)

		_, _, _, err = svc.Create(ctx, coach.ID, "x@example.com", "wizard", "")
		require.ErrorIs(t, err, ErrInvalidInvitationRequest)

		// A coach cannot invite another coach.
		_, _, _, err = svc.Create(ctx, coach.ID, "x@example.com", "coach", "")
		require.ErrorIs(t, err, ErrInvalidInvitationRequest)

		_, _, _, err = svc.Create(ctx, idx.New().String(), "x@example.com", "runner", "")
		require.ErrorIs(t, err, ErrInvalidInvitationRequest)
	})
}

func TestResendRotatesToken(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newInvitationService(st, &captureMailer{})

	coach := createTestUser(t, st, "coach-rachel", domain.RoleCoach)

	created, oldToken, _, err := svc.Create(ctx, coach.ID, "runner@example.com", "runner", "")
	require.NoError(t, err)

	resent, _, err := svc.Resend(ctx, created.ID, coach.ID)
	require.NoError(t, err)

	require.Equal(t, 1, resent.ResendCount)
	require.NotNil(t, resent.LastResentAt)
	require.NotEqual(t, created.TokenHash, resent.TokenHash)
	require.True(t, resent.ExpiresAt.After(created.ExpiresAt))

	// The old link is dead: its fingerprint no longer matches any row.
	res, err := svc.Validate(ctx, oldToken)
	require.NoError(t, err)
	require.False(t, res.Valid)
}

func TestResendLimit(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newInvitationService(st, &captureMailer{})
	svc.MaxResends = 3

	coach := createTestUser(t, st, "coach-max", domain.RoleCoach)

	inv, _, _, err := svc.Create(ctx, coach.ID, "runner@example.com", "runner", "")
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		resent, _, err := svc.Resend(ctx, inv.ID, coach.ID)
		require.NoError(t, err)
		require.Equal(t, i, resent.ResendCount)
	}

	_, _, err = svc.Resend(ctx, inv.ID, coach.ID)
	require.ErrorIs(t, err, ErrResendLimit)

	// The refusal mutated nothing.
	stored, err := st.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, 3, stored.ResendCount)
}

func TestResendAuthorization(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newInvitationService(st, &captureMailer{})

	coach := createTestUser(t, st, "coach-owner", domain.RoleCoach)
	other := createTestUser(t, st, "coach-other", domain.RoleCoach)

	inv, _, _, err := svc.Create(ctx, coach.ID, "runner@example.com", "runner", "")
	require.NoError(t, err)

	_, _, err = svc.Resend(ctx, inv.ID, other.ID)
	require.ErrorIs(t, err, ErrNotInviter)

	_, _, err = svc.Resend(ctx, idx.New().String(), coach.ID)
	require.ErrorIs(t, err, ErrInvitationNotFound)
}

func TestResendNonPending(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newInvitationService(st, &captureMailer{})

	coach := createTestUser(t, st, "coach-np", domain.RoleCoach)

	inv, token, _, err := svc.Create(ctx, coach.ID, "runner@example.com", "runner", "")
	require.NoError(t, err)
	require.NoError(t, svc.Decline(ctx, token))

	_, _, err = svc.Resend(ctx, inv.ID, coach.ID)

	var statusErr *InvalidStatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, domain.InvitationDeclined, statusErr.Status)
}

func TestResendAfterExpiry(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newInvitationService(st, &captureMailer{})

	coach := createTestUser(t, st, "coach-late", domain.RoleCoach)
	inv := seedInvitation(t, st, coach.ID, "stale-token", time.Now().UTC().Add(-48*time.Hour))

	// An expired pending invitation can still be resent: the resend
	// issues a fresh token with a fresh expiry.
	resent, _, err := svc.Resend(ctx, inv.ID, coach.ID)
	require.NoError(t, err)
	require.True(t, resent.ExpiresAt.After(time.Now()))
	require.NotEqual(t, inv.TokenHash, resent.TokenHash)
}

func TestValidate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newInvitationService(st, &captureMailer{})

	coach := createTestUser(t, st, "coach-val", domain.RoleCoach)

	t.Run("valid token exposes inviter details", func(t *testing.T) {
		_, token, _, err := svc.Create(ctx, coach.ID, "runner@example.com", "runner", "hello there")
		require.NoError(t, err)

		res, err := svc.Validate(ctx, token)
		require.NoError(t, err)
		require.True(t, res.Valid)
		require.NotNil(t, res.Invitation)
		require.Equal(t, coach.FullName, res.Invitation.InviterName)
		require.Equal(t, domain.RoleRunner, res.Invitation.Role)
		require.Equal(t, "hello there", res.Invitation.Message)
		require.False(t, res.ExistingUser)
	})

	t.Run("flags an existing account for the invitee email", func(t *testing.T) {
		runner := createTestUser(t, st, "existing-runner", domain.RoleRunner)
		_, token, _, err := svc.Create(ctx, coach.ID, runner.Email, "runner", "")
		require.NoError(t, err)

		res, err := svc.Validate(ctx, token)
		require.NoError(t, err)
		require.True(t, res.Valid)
		require.True(t, res.ExistingUser)
	})

	t.Run("expired and unknown tokens are indistinguishable", func(t *testing.T) {
		seedInvitation(t, st, coach.ID, "expired-token", time.Now().UTC().Add(-time.Hour))

		expired, err := svc.Validate(ctx, "expired-token")
		require.NoError(t, err)

		unknown, err := svc.Validate(ctx, "no-such-token")
		require.NoError(t, err)

		require.Equal(t, expired, unknown)
		require.False(t, expired.Valid)
		require.Nil(t, expired.Invitation)
		require.NotEmpty(t, expired.Message)
	})

	t.Run("declined token is invalid", func(t *testing.T) {
		_, token, _, err := svc.Create(ctx, coach.ID, "gone@example.com", "runner", "")
		require.NoError(t, err)
		require.NoError(t, svc.Decline(ctx, token))

		res, err := svc.Validate(ctx, token)
		require.NoError(t, err)
		require.False(t, res.Valid)
	})
}

func TestAcceptEstablishesRelationship(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newInvitationService(st, &captureMailer{})

	coach := createTestUser(t, st, "coach-acc", domain.RoleCoach)
	runner := createTestUser(t, st, "runner-acc", domain.RoleRunner)

	inv, token, _, err := svc.Create(ctx, coach.ID, runner.Email, "runner", "")
	require.NoError(t, err)

	redirect, err := svc.Accept(ctx, token, runner.ID)
	require.NoError(t, err)
	require.Equal(t, "/runner/dashboard", redirect)

	stored, err := st.Invitations().GetInvitationByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InvitationAccepted, stored.Status)
	require.Equal(t, runner.ID, stored.AcceptedBy)

	rel, err := st.Relationships().GetCurrentRelationship(ctx, coach.ID, runner.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RelationshipActive, rel.Status)
	require.Equal(t, domain.RelationshipInvited, rel.Kind)
	require.Equal(t, coach.ID, rel.InitiatedBy)

	// A second accept with the same token fails and leaves exactly one
	// relationship behind.
	_, err = svc.Accept(ctx, token, runner.ID)
	require.ErrorIs(t, err, ErrInvitationInvalid)

	rels, err := st.Relationships().ListRelationshipsByUser(ctx, runner.ID)
	require.NoError(t, err)
	require.Len(t, rels, 1)
}

func TestAcceptRunnerInvitingCoach(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newInvitationService(st, &captureMailer{})

	runner := createTestUser(t, st, "runner-inv", domain.RoleRunner)
	coach := createTestUser(t, st, "coach-joined", domain.RoleCoach)

	_, token, _, err := svc.Create(ctx, runner.ID, coach.Email, "coach", "")
	require.NoError(t, err)

	redirect, err := svc.Accept(ctx, token, coach.ID)
	require.NoError(t, err)
	require.Equal(t, "/coach/dashboard", redirect)

	rel, err := st.Relationships().GetCurrentRelationship(ctx, coach.ID, runner.ID)
	require.NoError(t, err)
	require.Equal(t, coach.ID, rel.CoachID)
	require.Equal(t, runner.ID, rel.RunnerID)
	require.Equal(t, runner.ID, rel.InitiatedBy)
}

func TestAcceptGuards(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newInvitationService(st, &captureMailer{})

	coach := createTestUser(t, st, "coach-grd", domain.RoleCoach)
	otherCoach := createTestUser(t, st, "coach-grd2", domain.RoleCoach)
	runner := createTestUser(t, st, "runner-grd", domain.RoleRunner)

	t.Run("wrong role cannot accept", func(t *testing.T) {
		_, token, _, err := svc.Create(ctx, coach.ID, "someone@example.com", "runner", "")
		require.NoError(t, err)

		_, err = svc.Accept(ctx, token, otherCoach.ID)
		require.ErrorIs(t, err, ErrRoleMismatch)
	})

	t.Run("expired token cannot be accepted", func(t *testing.T) {
		seedInvitation(t, st, coach.ID, "too-late", time.Now().UTC().Add(-time.Minute))

		_, err := svc.Accept(ctx, "too-late", runner.ID)
		require.ErrorIs(t, err, ErrInvitationInvalid)
	})

	t.Run("unknown token cannot be accepted", func(t *testing.T) {
		_, err := svc.Accept(ctx, "never-issued", runner.ID)
		require.ErrorIs(t, err, ErrInvitationInvalid)
	})
}

func TestAcceptActivatesExistingPendingRelationship(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newInvitationService(st, &captureMailer{})

	coach := createTestUser(t, st, "coach-pre", domain.RoleCoach)
	runner := createTestUser(t, st, "runner-pre", domain.RoleRunner)

	// A manual connect already left a pending pairing behind.
	pending, err := svc.Relationships.Connect(ctx, runner.ID, coach.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RelationshipPending, pending.Status)

	_, token, _, err := svc.Create(ctx, coach.ID, runner.Email, "runner", "")
	require.NoError(t, err)

	_, err = svc.Accept(ctx, token, runner.ID)
	require.NoError(t, err)

	// The accept promoted the existing row instead of inserting a twin.
	rel, err := st.Relationships().GetCurrentRelationship(ctx, coach.ID, runner.ID)
	require.NoError(t, err)
	require.Equal(t, pending.ID, rel.ID)
	require.Equal(t, domain.RelationshipActive, rel.Status)
}

func TestDecline(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newInvitationService(st, &captureMailer{})

	coach := createTestUser(t, st, "coach-dec", domain.RoleCoach)
	runner := createTestUser(t, st, "runner-dec", domain.RoleRunner)

	t.Run("declining twice is a no-op", func(t *testing.T) {
		inv, token, _, err := svc.Create(ctx, coach.ID, "nope@example.com", "runner", "")
		require.NoError(t, err)

		require.NoError(t, svc.Decline(ctx, token))
		require.NoError(t, svc.Decline(ctx, token))

		stored, err := st.Invitations().GetInvitationByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationDeclined, stored.Status)
	})

	t.Run("accepted invitations cannot be declined", func(t *testing.T) {
		_, token, _, err := svc.Create(ctx, coach.ID, runner.Email, "runner", "")
		require.NoError(t, err)

		_, err = svc.Accept(ctx, token, runner.ID)
		require.NoError(t, err)

		err = svc.Decline(ctx, token)
		var statusErr *InvalidStatusError
		require.ErrorAs(t, err, &statusErr)
		require.Equal(t, domain.InvitationAccepted, statusErr.Status)
	})

	t.Run("unknown token", func(t *testing.T) {
		require.ErrorIs(t, svc.Decline(ctx, "never-issued"), ErrInvitationInvalid)
	})
}

func TestListByInviterOrder(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := newInvitationService(st, &captureMailer{})

	coach := createTestUser(t, st, "coach-list", domain.RoleCoach)

	first, _, _, err := svc.Create(ctx, coach.ID, "a@example.com", "runner", "")
	require.NoError(t, err)
	second, _, _, err := svc.Create(ctx, coach.ID, "b@example.com", "runner", "")
	require.NoError(t, err)

	list, err := svc.ListByInviter(ctx, coach.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	ids := []string{list[0].ID, list[1].ID}
	require.Contains(t, ids, first.ID)
	require.Contains(t, ids, second.ID)
}

// seedInvitation inserts a pending invitation with a chosen raw token and
// expiry, bypassing the service so tests can age it arbitrarily.
func seedInvitation(t *testing.T, st store.Store, inviterID, rawToken string, expiresAt time.Time) domain.Invitation {
	t.Helper()

	inv := domain.Invitation{
		ID:        idx.New().String(),
		InviterID: inviterID,
		Email:     "seeded@example.com",
		Role:      domain.RoleRunner,
		TokenHash: cryptox.FingerprintToken(rawToken),
		ExpiresAt: expiresAt,
		Status:    domain.InvitationPending,
	}
	require.NoError(t, st.Invitations().CreateInvitation(context.Background(), inv))
	return inv
}
