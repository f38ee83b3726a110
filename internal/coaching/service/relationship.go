package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ultracoach/ultracoach/internal/coaching/domain"
	"github.com/ultracoach/ultracoach/internal/coaching/store"
	"github.com/ultracoach/ultracoach/pkg/idx"
	"github.com/ultracoach/ultracoach/pkg/slogx"
)

var (
	ErrRelationshipNotFound   = errors.New("relationship not found")
	ErrNotParticipant         = errors.New("requester is not part of this relationship")
	ErrNotCounterpart         = errors.New("only the invited party can approve")
	ErrSelfPairing            = errors.New("cannot pair a user with themselves")
	ErrSameRole               = errors.New("a pairing needs one coach and one runner")
	ErrUserNotFound           = errors.New("user not found")
	ErrRelationshipNotPending = errors.New("relationship is not pending")
)

// RelationshipService manages the coach/runner pairings themselves,
// independent of how they came to exist.
type RelationshipService struct {
	Store store.Store
}

// RelationshipView is a relationship as seen by one of its two members:
// the other member is resolved so the caller never has to work out which
// side they are on.
type RelationshipView struct {
	Relationship domain.Relationship
	OtherParty   domain.User
}

// Ensure makes sure exactly one live relationship exists for the pair,
// creating it when absent. With activate set, an existing pending row is
// promoted to active; an already-active row is returned untouched. The
// store argument lets callers run Ensure inside their own transaction.
func (s *RelationshipService) Ensure(
	ctx context.Context,
	st store.Store,
	coachID, runnerID, initiatedBy string,
	kind domain.RelationshipKind,
	activate bool,
) (domain.Relationship, error) {
	log := slogx.FromContext(ctx)

	if coachID == runnerID {
		return domain.Relationship{}, ErrSelfPairing
	}

	rel, err := st.Relationships().GetCurrentRelationship(ctx, coachID, runnerID)
	switch {
	case err == nil:
		if activate && rel.Status == domain.RelationshipPending {
			if uerr := st.Relationships().UpdateRelationshipStatus(ctx, rel.ID, domain.RelationshipActive); uerr != nil {
				return domain.Relationship{}, uerr
			}
			rel.Status = domain.RelationshipActive
		}
		return rel, nil

	case errors.Is(err, store.ErrNotFound):
		// fall through to create

	default:
		log.Error("failed to look up relationship", slog.Any("error", err))
		return domain.Relationship{}, err
	}

	status := domain.RelationshipPending
	if activate {
		status = domain.RelationshipActive
	}

	rel = domain.Relationship{
		ID:          idx.New().String(),
		CoachID:     coachID,
		RunnerID:    runnerID,
		Status:      status,
		Kind:        kind,
		InitiatedBy: initiatedBy,
	}

	if err := st.Relationships().CreateRelationship(ctx, rel); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost a race with a concurrent Ensure; the winner's row is
			// the live one.
			return st.Relationships().GetCurrentRelationship(ctx, coachID, runnerID)
		}
		log.Error("failed to create relationship", slog.Any("error", err))
		return domain.Relationship{}, err
	}

	log.Info("relationship created",
		slog.String("relationship_id", rel.ID),
		slog.String("coach_id", coachID),
		slog.String("runner_id", runnerID),
		slog.String("status", string(rel.Status)),
	)

	return rel, nil
}

// Connect lets an authenticated user request a pairing with another user
// directly, without an invitation token. The new relationship starts
// pending until the other party approves. Connecting to an already
// pending or active counterpart returns the existing relationship.
func (s *RelationshipService) Connect(ctx context.Context, requesterID, otherUserID string) (domain.Relationship, error) {
	log := slogx.FromContext(ctx)

	if requesterID == otherUserID {
		return domain.Relationship{}, ErrSelfPairing
	}

	requester, err := s.Store.Users().GetUserByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Relationship{}, ErrUserNotFound
		}
		log.Error("failed to fetch requester", slog.Any("error", err))
		return domain.Relationship{}, err
	}

	other, err := s.Store.Users().GetUserByID(ctx, otherUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Relationship{}, ErrUserNotFound
		}
		log.Error("failed to fetch counterpart", slog.Any("error", err))
		return domain.Relationship{}, err
	}

	if requester.Role == other.Role {
		return domain.Relationship{}, ErrSameRole
	}

	coachID, runnerID := requesterID, otherUserID
	if requester.Role == domain.RoleRunner {
		coachID, runnerID = otherUserID, requesterID
	}

	return s.Ensure(ctx, s.Store, coachID, runnerID, requesterID, domain.RelationshipStandard, false)
}

// Approve promotes a pending relationship to active. Only the member who
// did not initiate it may approve.
func (s *RelationshipService) Approve(ctx context.Context, relationshipID, requesterID string) (domain.Relationship, error) {
	log := slogx.FromContext(ctx)

	rel, err := s.Store.Relationships().GetRelationshipByID(ctx, relationshipID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Relationship{}, ErrRelationshipNotFound
		}
		log.Error("failed to fetch relationship", slog.Any("error", err))
		return domain.Relationship{}, err
	}

	if !rel.Involves(requesterID) {
		return domain.Relationship{}, ErrNotParticipant
	}
	if rel.InitiatedBy == requesterID {
		return domain.Relationship{}, ErrNotCounterpart
	}
	if rel.Status != domain.RelationshipPending {
		return domain.Relationship{}, ErrRelationshipNotPending
	}

	if err := s.Store.Relationships().UpdateRelationshipStatus(ctx, rel.ID, domain.RelationshipActive); err != nil {
		log.Error("failed to approve relationship", slog.Any("error", err))
		return domain.Relationship{}, err
	}
	rel.Status = domain.RelationshipActive

	log.Info("relationship approved",
		slog.String("relationship_id", rel.ID),
		slog.String("approved_by", requesterID),
	)

	return rel, nil
}

// Deactivate ends a pairing. Either member may do it, and repeating it is
// a no-op. Once inactive a relationship never comes back; a future
// pairing of the same two users gets a fresh row.
func (s *RelationshipService) Deactivate(ctx context.Context, relationshipID, requesterID string) error {
	log := slogx.FromContext(ctx)

	rel, err := s.Store.Relationships().GetRelationshipByID(ctx, relationshipID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRelationshipNotFound
		}
		log.Error("failed to fetch relationship", slog.Any("error", err))
		return err
	}

	if !rel.Involves(requesterID) {
		return ErrNotParticipant
	}
	if rel.Status == domain.RelationshipInactive {
		return nil // idempotent
	}

	if err := s.Store.Relationships().UpdateRelationshipStatus(ctx, rel.ID, domain.RelationshipInactive); err != nil {
		log.Error("failed to deactivate relationship", slog.Any("error", err))
		return err
	}

	log.Info("relationship deactivated",
		slog.String("relationship_id", rel.ID),
		slog.String("deactivated_by", requesterID),
	)

	return nil
}

// ViewFor resolves the other member of a relationship for the viewer.
func (s *RelationshipService) ViewFor(ctx context.Context, rel domain.Relationship, viewerID string) (RelationshipView, error) {
	other, err := s.Store.Users().GetUserByID(ctx, rel.OtherParty(viewerID))
	if err != nil {
		return RelationshipView{}, err
	}
	other.PasswordHash = ""
	return RelationshipView{Relationship: rel, OtherParty: other}, nil
}

// List returns every relationship the viewer is part of, each with the
// other member resolved.
func (s *RelationshipService) List(ctx context.Context, viewerID string) ([]RelationshipView, error) {
	log := slogx.FromContext(ctx)

	rels, err := s.Store.Relationships().ListRelationshipsByUser(ctx, viewerID)
	if err != nil {
		log.Error("failed to list relationships", slog.Any("error", err))
		return nil, err
	}

	views := make([]RelationshipView, 0, len(rels))
	for _, rel := range rels {
		view, err := s.ViewFor(ctx, rel, viewerID)
		if err != nil {
			log.Error("failed to resolve other party",
				slog.String("relationship_id", rel.ID),
				slog.Any("error", err),
			)
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
