package domain

import "time"

type RelationshipStatus string

const (
	RelationshipPending  RelationshipStatus = "pending"
	RelationshipActive   RelationshipStatus = "active"
	RelationshipInactive RelationshipStatus = "inactive"
)

// RelationshipKind records how the pairing came to exist.
type RelationshipKind string

const (
	// RelationshipStandard is a manual connect that still needs the
	// counterpart's approval.
	RelationshipStandard RelationshipKind = "standard"
	// RelationshipInvited was auto-created by an accepted invitation.
	RelationshipInvited RelationshipKind = "invited"
)

// Relationship is the durable pairing record between a coach and a
// runner. Rows are never hard-deleted, only deactivated, and the same row
// serves both participants symmetrically.
type Relationship struct {
	ID          string
	CoachID     string
	RunnerID    string
	Status      RelationshipStatus
	Kind        RelationshipKind
	InitiatedBy string // user ID that created the pairing
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OtherParty resolves the counterpart's user ID relative to the viewer.
// Returns empty when the viewer is not part of the relationship.
func (r Relationship) OtherParty(viewerID string) string {
	switch viewerID {
	case r.CoachID:
		return r.RunnerID
	case r.RunnerID:
		return r.CoachID
	default:
		return ""
	}
}

// Involves reports whether the user is one of the two parties.
func (r Relationship) Involves(userID string) bool {
	return userID == r.CoachID || userID == r.RunnerID
}
