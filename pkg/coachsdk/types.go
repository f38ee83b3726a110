package coachsdk

import "time"

// ErrorResponse is the failure envelope every endpoint shares.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ============================================================================
// Accounts and sessions
// ============================================================================

// RegisterRequest creates a new coach or runner account.
type RegisterRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
	Role     string `json:"role"` // "coach" or "runner"
}

// LoginRequest exchanges credentials for a session token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserInfo is the public view of an account.
type UserInfo struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// AuthResponse is returned from both register and login.
type AuthResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      UserInfo  `json:"user"`
}

// ============================================================================
// Invitations
// ============================================================================

// CreateInvitationRequest issues an invitation to an email address.
type CreateInvitationRequest struct {
	Email   string `json:"email"`
	Role    string `json:"role"` // role the invitee will hold
	Message string `json:"message,omitempty"`
}

// InvitationInfo is the inviter's view of one of their invitations. The
// token itself never appears here; it is only ever returned at creation.
type InvitationInfo struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	Message      string     `json:"message,omitempty"`
	Status       string     `json:"status"`
	ExpiresAt    time.Time  `json:"expiresAt"`
	ResendCount  int        `json:"resendCount"`
	LastResentAt *time.Time `json:"lastResentAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// CreateInvitationResponse carries the raw token exactly once so the
// inviter can share the link out of band if email delivery failed.
type CreateInvitationResponse struct {
	Success    bool           `json:"success"`
	Message    string         `json:"message,omitempty"`
	Invitation InvitationInfo `json:"invitation"`
	Token      string         `json:"token"`
	EmailSent  bool           `json:"emailSent"`
}

// ListInvitationsResponse lists the caller's sent invitations.
type ListInvitationsResponse struct {
	Success     bool             `json:"success"`
	Invitations []InvitationInfo `json:"invitations"`
}

// ResendInvitationInfo is the slim invitation summary in a resend result.
type ResendInvitationInfo struct {
	ID          string    `json:"id"`
	ExpiresAt   time.Time `json:"expiresAt"`
	ResendCount int       `json:"resendCount"`
}

// ResendInvitationResponse reports a successful resend. The fresh token
// travels only in the email, never in this response.
type ResendInvitationResponse struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message,omitempty"`
	Invitation ResendInvitationInfo `json:"invitation"`
	EmailSent  bool                 `json:"emailSent"`
}

// InvitationPreview is what a prospective invitee sees while the token is
// still valid.
type InvitationPreview struct {
	InviterName string    `json:"inviterName"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Message     string    `json:"message,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// ValidateInvitationResponse is the result of presenting a token without
// consuming it. Invalid tokens of every kind produce the same shape.
type ValidateInvitationResponse struct {
	Valid        bool               `json:"valid"`
	Message      string             `json:"message,omitempty"`
	Invitation   *InvitationPreview `json:"invitation,omitempty"`
	ExistingUser bool               `json:"existingUser,omitempty"`
}

// AcceptInvitationResponse reports a consumed token and where to send the
// new member next.
type AcceptInvitationResponse struct {
	Success     bool   `json:"success"`
	RedirectURL string `json:"redirectUrl"`
	Message     string `json:"message,omitempty"`
}

// DeclineInvitationResponse acknowledges a declined invitation.
type DeclineInvitationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ============================================================================
// Relationships
// ============================================================================

// ConnectRequest asks to pair with another user directly.
type ConnectRequest struct {
	UserID string `json:"userId"`
}

// RelationshipInfo is a pairing as seen by one of its members; the other
// member is already resolved.
type RelationshipInfo struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	Kind        string    `json:"kind"`
	InitiatedBy string    `json:"initiatedBy"`
	OtherParty  UserInfo  `json:"otherParty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RelationshipResponse wraps a single relationship result.
type RelationshipResponse struct {
	Success      bool             `json:"success"`
	Relationship RelationshipInfo `json:"relationship"`
}

// ListRelationshipsResponse lists every pairing the caller is part of.
type ListRelationshipsResponse struct {
	Success       bool               `json:"success"`
	Relationships []RelationshipInfo `json:"relationships"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned from /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Version string        `json:"version"`
	Uptime  string        `json:"uptime"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
