package coachsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Connect requests a pairing with another user. The relationship stays
// pending until the other party approves.
func (s *Session) Connect(ctx context.Context, userID string) (*RelationshipResponse, error) {
	resp, err := s.postAuthJSON(ctx, "/v1/relationships/connect", ConnectRequest{UserID: userID})
	if err != nil {
		return nil, err
	}

	var out RelationshipResponse
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListRelationships returns every pairing the session user is part of.
func (s *Session) ListRelationships(ctx context.Context) (*ListRelationshipsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/relationships", nil)
	if err != nil {
		return nil, err
	}

	var out ListRelationshipsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ApproveRelationship activates a pending pairing initiated by the other
// party.
func (s *Session) ApproveRelationship(ctx context.Context, relationshipID string) (*RelationshipResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost,
		fmt.Sprintf("/v1/relationships/%s/approve", url.PathEscape(relationshipID)), nil)
	if err != nil {
		return nil, err
	}

	var out RelationshipResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeactivateRelationship ends a pairing. Repeating it is a no-op.
func (s *Session) DeactivateRelationship(ctx context.Context, relationshipID string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete,
		"/v1/relationships/"+url.PathEscape(relationshipID), nil)
	if err != nil {
		return err
	}

	var out DeclineInvitationResponse
	return decodeJSON(resp, &out, http.StatusOK)
}
