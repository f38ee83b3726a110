package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ultracoach/ultracoach/internal/coaching/domain"
	"github.com/ultracoach/ultracoach/internal/coaching/store"
	"github.com/ultracoach/ultracoach/pkg/cryptox"
	"github.com/ultracoach/ultracoach/pkg/idx"
	"github.com/ultracoach/ultracoach/pkg/mailx"
	"github.com/ultracoach/ultracoach/pkg/slogx"
)

var (
	ErrInvalidInvitationRequest = errors.New("invalid invitation request")
	ErrInvitationNotFound       = errors.New("invitation not found")
	ErrNotInviter               = errors.New("requester is not the inviter")
	ErrResendLimit              = errors.New("resend limit reached")
	// ErrInvitationInvalid covers expired, consumed, and never-existed
	// tokens alike so callers cannot enumerate which it was.
	ErrInvitationInvalid = errors.New("invitation is expired or invalid")
	ErrRoleMismatch      = errors.New("session role does not match the invited role")
)

// InvalidStatusError reports a lifecycle operation attempted on an
// invitation that is no longer pending. The current status is included so
// handlers can surface it.
type InvalidStatusError struct {
	Status domain.InvitationStatus
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invitation is %s, not pending", e.Status)
}

// Defaults used when the service is constructed with zero values.
const (
	DefaultMaxResends     = 3
	DefaultExpirationDays = 7
)

// InvitationService orchestrates the invitation lifecycle:
// create, resend, validate, accept, decline.
type InvitationService struct {
	Store         store.Store
	Relationships *RelationshipService
	Mailer        mailx.Mailer

	// BaseURL is the public URL accept/decline links are built against.
	BaseURL string
	// MaxResends bounds how often a pending invitation can be re-issued.
	MaxResends int
	// ExpirationDays is how long a freshly issued token lives.
	ExpirationDays int
}

func (s *InvitationService) maxResends() int {
	if s.MaxResends > 0 {
		return s.MaxResends
	}
	return DefaultMaxResends
}

func (s *InvitationService) expiration() time.Duration {
	days := s.ExpirationDays
	if days <= 0 {
		days = DefaultExpirationDays
	}
	return time.Duration(days) * 24 * time.Hour
}

// Create issues a new invitation from inviterID to email. The raw token is
// returned exactly once, here; only its fingerprint is stored. The
// invitation email is sent after the insert commits, and a delivery
// failure is reported through the emailSent flag, never as an error.
func (s *InvitationService) Create(
	ctx context.Context,
	inviterID, email, role, message string,
) (domain.Invitation, string, bool, error) {
	log := slogx.FromContext(ctx)

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.Invitation{}, "", false, ErrInvalidInvitationRequest
	}
	if !domain.ValidRole(role) {
		return domain.Invitation{}, "", false, ErrInvalidInvitationRequest
	}

	inviter, err := s.Store.Users().GetUserByID(ctx, inviterID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, "", false, ErrInvalidInvitationRequest
		}
		log.Error("failed to fetch inviter", slog.Any("error", err))
		return domain.Invitation{}, "", false, err
	}

	// The invitee's role must complement the inviter's: a coach invites
	// runners and a runner invites coaches.
	if domain.Role(role) == inviter.Role {
		return domain.Invitation{}, "", false, ErrInvalidInvitationRequest
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, "", false, err
	}

	inv := domain.Invitation{
		ID:        idx.New().String(),
		InviterID: inviterID,
		Email:     email,
		Role:      domain.Role(role),
		Message:   strings.TrimSpace(message),
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: time.Now().UTC().Add(s.expiration()),
		Status:    domain.InvitationPending,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Invitations().CreateInvitation(ctx, inv)
	})
	if err != nil {
		log.Error("failed to create invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return domain.Invitation{}, "", false, err
	}

	emailSent := s.sendInvitationEmail(ctx, inv, inviter.FullName, token)

	log.Info("invitation created",
		slog.String("invitation_id", inv.ID),
		slog.String("inviter_id", inviterID),
		slog.String("invited_role", role),
		slog.Time("expires_at", inv.ExpiresAt),
		slog.Bool("email_sent", emailSent),
	)

	return inv, token, emailSent, nil
}

// Resend reissues a fresh token and later expiry for a pending
// invitation, bounded by the resend counter. Only the original inviter may
// resend. The previous link dies because the stored fingerprint is
// replaced. Resending an invitation whose token has already lapsed is
// allowed: resend means "issue a fresh, later-expiring token", not
// "extend the existing one".
func (s *InvitationService) Resend(
	ctx context.Context,
	invitationID, requesterID string,
) (domain.Invitation, bool, error) {
	log := slogx.FromContext(ctx)

	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invitation{}, false, ErrInvitationNotFound
		}
		log.Error("failed to fetch invitation", slog.Any("error", err))
		return domain.Invitation{}, false, err
	}

	if inv.InviterID != requesterID {
		log.Warn("resend attempted by non-inviter",
			slog.String("invitation_id", invitationID),
			slog.String("requester_id", requesterID),
		)
		return domain.Invitation{}, false, ErrNotInviter
	}

	if inv.Status != domain.InvitationPending {
		return domain.Invitation{}, false, &InvalidStatusError{Status: inv.Status}
	}

	if inv.ResendCount >= s.maxResends() {
		log.Warn("resend limit reached",
			slog.String("invitation_id", invitationID),
			slog.Int("resend_count", inv.ResendCount),
		)
		return domain.Invitation{}, false, ErrResendLimit
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		log.Error("failed to generate invitation token", slog.Any("error", err))
		return domain.Invitation{}, false, err
	}

	now := time.Now().UTC()
	newHash := cryptox.FingerprintToken(token)
	newExpiry := now.Add(s.expiration())

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Invitations().RotateInvitationToken(ctx, inv.ID, newHash, newExpiry, now)
	})
	if err != nil {
		if errors.Is(err, store.ErrStaleStatus) {
			// Lost a race with accept/decline; report the fresh status.
			current, ferr := s.Store.Invitations().GetInvitationByID(ctx, inv.ID)
			if ferr == nil {
				return domain.Invitation{}, false, &InvalidStatusError{Status: current.Status}
			}
			return domain.Invitation{}, false, &InvalidStatusError{Status: inv.Status}
		}
		log.Error("failed to rotate invitation token", slog.Any("error", err))
		return domain.Invitation{}, false, err
	}

	inv.TokenHash = newHash
	inv.ExpiresAt = newExpiry
	inv.ResendCount++
	inv.LastResentAt = &now

	// The token regeneration is authoritative even if the email never
	// leaves the building; the caller learns about delivery via the flag.
	var inviterName string
	if inviter, ferr := s.Store.Users().GetUserByID(ctx, inv.InviterID); ferr == nil {
		inviterName = inviter.FullName
	}
	emailSent := s.sendInvitationEmail(ctx, inv, inviterName, token)

	log.Info("invitation resent",
		slog.String("invitation_id", inv.ID),
		slog.Int("resend_count", inv.ResendCount),
		slog.Time("expires_at", inv.ExpiresAt),
		slog.Bool("email_sent", emailSent),
	)

	return inv, emailSent, nil
}

// ValidationResult is what a prospective invitee sees before deciding.
type ValidationResult struct {
	Valid        bool
	Message      string
	Invitation   *InvitationDetails
	ExistingUser bool
}

// InvitationDetails is the subset of an invitation shown to its invitee.
type InvitationDetails struct {
	InviterName string
	InviterID   string
	Email       string
	Role        domain.Role
	Message     string
	ExpiresAt   time.Time
}

// Validate checks a presented raw token. Expired, consumed, and unknown
// tokens all produce the same generic result so the endpoint cannot be
// used to probe which invitations exist.
func (s *InvitationService) Validate(ctx context.Context, rawToken string) (ValidationResult, error) {
	log := slogx.FromContext(ctx)

	invalid := ValidationResult{Valid: false, Message: "This invitation is expired or invalid."}

	if rawToken == "" {
		return invalid, nil
	}

	inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(rawToken))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return invalid, nil
		}
		log.Error("failed to fetch invitation by token", slog.Any("error", err))
		return ValidationResult{}, err
	}

	if inv.Status != domain.InvitationPending || inv.Expired(time.Now().UTC()) {
		return invalid, nil
	}

	var inviterName string
	if inviter, ferr := s.Store.Users().GetUserByID(ctx, inv.InviterID); ferr == nil {
		inviterName = inviter.FullName
	}

	existing := false
	if _, ferr := s.Store.Users().GetUserByEmail(ctx, inv.Email); ferr == nil {
		existing = true
	} else if !errors.Is(ferr, store.ErrNotFound) {
		log.Error("failed to check invitee account", slog.Any("error", ferr))
		return ValidationResult{}, ferr
	}

	return ValidationResult{
		Valid: true,
		Invitation: &InvitationDetails{
			InviterName: inviterName,
			InviterID:   inv.InviterID,
			Email:       inv.Email,
			Role:        inv.Role,
			Message:     inv.Message,
			ExpiresAt:   inv.ExpiresAt,
		},
		ExistingUser: existing,
	}, nil
}

// Accept consumes a valid token on behalf of an authenticated user and
// establishes the coach/runner pairing. The status transition and the
// relationship creation commit in one transaction so a crash cannot leave
// an accepted invitation without its relationship. Returns the
// role-appropriate redirect target.
func (s *InvitationService) Accept(ctx context.Context, rawToken, userID string) (string, error) {
	log := slogx.FromContext(ctx)

	inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(rawToken))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvitationInvalid
		}
		log.Error("failed to fetch invitation by token", slog.Any("error", err))
		return "", err
	}

	if inv.Status != domain.InvitationPending || inv.Expired(time.Now().UTC()) {
		return "", ErrInvitationInvalid
	}

	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvitationInvalid
		}
		log.Error("failed to fetch accepting user", slog.Any("error", err))
		return "", err
	}

	if user.Role != inv.Role {
		return "", ErrRoleMismatch
	}

	// Resolve the pairing: the invited role tells us which side the
	// acceptor sits on.
	coachID, runnerID := inv.InviterID, user.ID
	if inv.Role == domain.RoleCoach {
		coachID, runnerID = user.ID, inv.InviterID
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invitations().UpdateInvitationStatus(
			ctx, inv.ID, domain.InvitationPending, domain.InvitationAccepted, user.ID,
		); err != nil {
			return err
		}

		_, err := s.Relationships.Ensure(ctx, tx, coachID, runnerID, inv.InviterID, domain.RelationshipInvited, true)
		return err
	})
	if err != nil {
		if errors.Is(err, store.ErrStaleStatus) {
			// Someone else consumed the token first.
			return "", ErrInvitationInvalid
		}
		log.Error("failed to accept invitation",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return "", err
	}

	log.Info("invitation accepted",
		slog.String("invitation_id", inv.ID),
		slog.String("accepted_by", user.ID),
		slog.String("coach_id", coachID),
		slog.String("runner_id", runnerID),
	)

	if user.Role == domain.RoleCoach {
		return "/coach/dashboard", nil
	}
	return "/runner/dashboard", nil
}

// Decline marks the invitation declined. Declining twice is a no-op.
func (s *InvitationService) Decline(ctx context.Context, rawToken string) error {
	log := slogx.FromContext(ctx)

	inv, err := s.Store.Invitations().GetInvitationByTokenHash(ctx, cryptox.FingerprintToken(rawToken))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationInvalid
		}
		log.Error("failed to fetch invitation by token", slog.Any("error", err))
		return err
	}

	switch inv.Status {
	case domain.InvitationDeclined:
		return nil // idempotent
	case domain.InvitationAccepted:
		return &InvalidStatusError{Status: inv.Status}
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Invitations().UpdateInvitationStatus(
			ctx, inv.ID, domain.InvitationPending, domain.InvitationDeclined, "",
		)
	})
	if err != nil {
		if errors.Is(err, store.ErrStaleStatus) {
			current, ferr := s.Store.Invitations().GetInvitationByID(ctx, inv.ID)
			if ferr == nil && current.Status == domain.InvitationDeclined {
				return nil
			}
			return ErrInvitationInvalid
		}
		log.Error("failed to decline invitation", slog.Any("error", err))
		return err
	}

	log.Info("invitation declined", slog.String("invitation_id", inv.ID))
	return nil
}

// ListByInviter returns every invitation the user has sent, newest first.
func (s *InvitationService) ListByInviter(ctx context.Context, inviterID string) ([]domain.Invitation, error) {
	return s.Store.Invitations().ListInvitationsByInviter(ctx, inviterID)
}

// sendInvitationEmail delivers the accept/decline links. Returns whether
// delivery succeeded; failures are logged and never bubble up because the
// database mutation has already committed.
func (s *InvitationService) sendInvitationEmail(
	ctx context.Context,
	inv domain.Invitation,
	inviterName, rawToken string,
) bool {
	log := slogx.FromContext(ctx)

	if s.Mailer == nil {
		log.Debug("mailer not configured, skipping invitation email",
			slog.String("invitation_id", inv.ID),
		)
		return false
	}

	base := strings.TrimSuffix(s.BaseURL, "/")
	acceptURL := fmt.Sprintf("%s/v1/invitations/accept/%s", base, rawToken)
	declineURL := fmt.Sprintf("%s/v1/invitations/decline/%s", base, rawToken)

	subject := fmt.Sprintf("%s invited you to train together on UltraCoach", inviterName)
	if inviterName == "" {
		subject = "You've been invited to train on UltraCoach"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Hi,\n\n")
	if inviterName != "" {
		fmt.Fprintf(&b, "%s has invited you to join UltraCoach as a %s.\n\n", inviterName, inv.Role)
	} else {
		fmt.Fprintf(&b, "You have been invited to join UltraCoach as a %s.\n\n", inv.Role)
	}
	if inv.Message != "" {
		fmt.Fprintf(&b, "They added a note:\n%s\n\n", inv.Message)
	}
	fmt.Fprintf(&b, "Accept the invitation:\n%s\n\n", acceptURL)
	fmt.Fprintf(&b, "Or decline it:\n%s\n\n", declineURL)
	fmt.Fprintf(&b, "This link expires on %s.\n", inv.ExpiresAt.Format(time.RFC1123))

	if err := s.Mailer.Send(ctx, inv.Email, subject, b.String()); err != nil {
		log.Warn("invitation email delivery failed",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
		return false
	}
	return true
}
