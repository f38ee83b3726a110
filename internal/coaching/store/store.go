package store

import (
	"context"
	"errors"
	"time"

	"github.com/ultracoach/ultracoach/internal/coaching/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrStaleStatus reports that a conditional status update matched no
	// row, i.e. the record moved out of the expected state concurrently.
	ErrStaleStatus = errors.New("store: stale status")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable.
type Store interface {
	Users() Users
	Invitations() Invitations
	Relationships() Relationships

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle multi-step operations that must be atomic
	// (e.g. accept invitation + create relationship).
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login and invitation validation.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type Invitations interface {
	// CreateInvitation writes a new pending invitation (token_hash is the
	// SHA-256 fingerprint of the opaque secret).
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByID returns an invitation regardless of status.
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// GetInvitationByTokenHash returns an invitation by fingerprint
	// regardless of status or expiry; callers decide what the state means.
	GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error)

	// RotateInvitationToken replaces the token hash and expiry, increments
	// resend_count and stamps last_resent_at, but only while the row is
	// still pending. Returns ErrStaleStatus if the row moved out of pending.
	RotateInvitationToken(ctx context.Context, id, newHash string, expiresAt, resentAt time.Time) error

	// UpdateInvitationStatus transitions status away from pending.
	// acceptedBy may be empty (decline). Returns ErrStaleStatus when the
	// row is not in fromStatus anymore.
	UpdateInvitationStatus(ctx context.Context, id string, from, to domain.InvitationStatus, acceptedBy string) error

	// ListInvitationsByInviter returns all invitations sent by a user,
	// newest first.
	ListInvitationsByInviter(ctx context.Context, inviterID string) ([]domain.Invitation, error)

	// DeleteInvitationsExpiredBefore removes rows whose expiry is older
	// than the cutoff. Housekeeping only; expiry enforcement is lazy.
	DeleteInvitationsExpiredBefore(ctx context.Context, cutoff time.Time) error
}

type Relationships interface {
	// CreateRelationship inserts a new pairing row.
	CreateRelationship(ctx context.Context, rel domain.Relationship) error

	// GetRelationshipByID fetches a pairing by id.
	GetRelationshipByID(ctx context.Context, id string) (domain.Relationship, error)

	// GetCurrentRelationship returns the pending or active row for a
	// (coach, runner) pair; inactive rows are ignored.
	GetCurrentRelationship(ctx context.Context, coachID, runnerID string) (domain.Relationship, error)

	// UpdateRelationshipStatus transitions a pairing's status.
	UpdateRelationshipStatus(ctx context.Context, id string, status domain.RelationshipStatus) error

	// ListRelationshipsByUser returns every pairing the user participates
	// in, as coach or runner, newest first.
	ListRelationshipsByUser(ctx context.Context, userID string) ([]domain.Relationship, error)
}
