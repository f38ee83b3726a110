package coachsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// ValidateInvitation checks a raw invitation token without consuming it.
// This is unauthenticated: the invitee may not have an account yet.
func (c *SDKClient) ValidateInvitation(ctx context.Context, token string) (*ValidateInvitationResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet,
		"/v1/invitations/accept/"+url.PathEscape(token), nil, nil)
	if err != nil {
		return nil, err
	}

	var out ValidateInvitationResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeclineInvitation declines by token. Unauthenticated, and idempotent on
// the server side.
func (c *SDKClient) DeclineInvitation(ctx context.Context, token string) (*DeclineInvitationResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost,
		"/v1/invitations/decline/"+url.PathEscape(token), nil, nil)
	if err != nil {
		return nil, err
	}

	var out DeclineInvitationResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateInvitation issues an invitation from the session user.
func (s *Session) CreateInvitation(ctx context.Context, req CreateInvitationRequest) (*CreateInvitationResponse, error) {
	resp, err := s.postAuthJSON(ctx, "/v1/invitations", req)
	if err != nil {
		return nil, err
	}

	var out CreateInvitationResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInvitations returns the invitations the session user has sent.
func (s *Session) ListInvitations(ctx context.Context) (*ListInvitationsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/invitations", nil)
	if err != nil {
		return nil, err
	}

	var out ListInvitationsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResendInvitation reissues a pending invitation's token and email.
func (s *Session) ResendInvitation(ctx context.Context, invitationID string) (*ResendInvitationResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost,
		fmt.Sprintf("/v1/invitations/%s/resend", url.PathEscape(invitationID)), nil)
	if err != nil {
		return nil, err
	}

	var out ResendInvitationResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvitation consumes a token on behalf of the session user.
func (s *Session) AcceptInvitation(ctx context.Context, token string) (*AcceptInvitationResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost,
		"/v1/invitations/accept/"+url.PathEscape(token), nil)
	if err != nil {
		return nil, err
	}

	var out AcceptInvitationResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
