package domain

import "time"

// InvitationStatus is the stored lifecycle state of an invitation.
// "expired" is deliberately absent: expiry is derived from ExpiresAt at
// read time and never written back.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

// Invitation is a pending offer from a coach to a prospective athlete (or
// vice versa) to form a coaching relationship, carrying a single-use
// secret token. Only the SHA-256 fingerprint of the secret is stored.
type Invitation struct {
	ID           string
	InviterID    string
	Email        string // invitee email
	Role         Role   // role the invitee will hold
	Message      string // optional personal note included in the email
	TokenHash    string
	ExpiresAt    time.Time
	Status       InvitationStatus
	ResendCount  int
	LastResentAt *time.Time
	AcceptedBy   string // user ID that accepted, empty until then
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Expired reports whether the invitation is past its expiry at the given
// instant. Expiry is enforced lazily wherever the token is presented.
func (i Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
