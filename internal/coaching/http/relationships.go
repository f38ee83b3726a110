package http

import (
	"encoding/json"
	"net/http"

	"github.com/ultracoach/ultracoach/internal/coaching/service"
	"github.com/ultracoach/ultracoach/pkg/coachsdk"
	"github.com/ultracoach/ultracoach/pkg/httpx"
)

type RelationshipHandler struct {
	RelationshipService *service.RelationshipService
}

// HandleConnect godoc
//
//	@Summary		Connect Endpoint
//	@Description	Request a coaching pairing with another user directly. The relationship stays pending until the other party approves it.
//	@Tags			Relationships
//	@Accept			json
//	@Produce		json
//	@Param			request	body		coachsdk.ConnectRequest			true	"Connect request"
//	@Success		201		{object}	coachsdk.RelationshipResponse	"relationship"
//	@Failure		400		{object}	coachsdk.ErrorResponse			"error, message"
//	@Failure		401		{object}	coachsdk.ErrorResponse			"error, message"
//	@Failure		404		{object}	coachsdk.ErrorResponse			"error, message"
//	@Failure		500		{object}	coachsdk.ErrorResponse			"error, message"
//	@Security		BearerAuth
//	@Router			/v1/relationships/connect [post].
func (h *RelationshipHandler) HandleConnect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		coachsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req coachsdk.ConnectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		coachsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	rel, err := h.RelationshipService.Connect(ctx, userID, req.UserID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	view, err := h.RelationshipService.ViewFor(ctx, rel, userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, coachsdk.RelationshipResponse{
		Success:      true,
		Relationship: toRelationshipInfo(view),
	})
}

// HandleList godoc
//
//	@Summary		List Relationships Endpoint
//	@Description	List every pairing the authenticated user is part of, with the other member resolved.
//	@Tags			Relationships
//	@Produce		json
//	@Success		200	{object}	coachsdk.ListRelationshipsResponse	"relationships"
//	@Failure		401	{object}	coachsdk.ErrorResponse				"error, message"
//	@Failure		500	{object}	coachsdk.ErrorResponse				"error, message"
//	@Security		BearerAuth
//	@Router			/v1/relationships [get].
func (h *RelationshipHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		coachsdk.ErrUnauthorized.WriteError(w)
		return
	}

	views, err := h.RelationshipService.List(ctx, userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	infos := make([]coachsdk.RelationshipInfo, 0, len(views))
	for _, view := range views {
		infos = append(infos, toRelationshipInfo(view))
	}

	httpx.WriteJSON(w, http.StatusOK, coachsdk.ListRelationshipsResponse{
		Success:       true,
		Relationships: infos,
	})
}

// HandleApprove godoc
//
//	@Summary		Approve Relationship Endpoint
//	@Description	Activate a pending pairing. Only the member who did not initiate it may approve.
//	@Tags			Relationships
//	@Produce		json
//	@Param			id	path		string							true	"Relationship ID"
//	@Success		200	{object}	coachsdk.RelationshipResponse	"relationship"
//	@Failure		400	{object}	coachsdk.ErrorResponse			"error, message"
//	@Failure		401	{object}	coachsdk.ErrorResponse			"error, message"
//	@Failure		403	{object}	coachsdk.ErrorResponse			"error, message"
//	@Failure		404	{object}	coachsdk.ErrorResponse			"error, message"
//	@Failure		500	{object}	coachsdk.ErrorResponse			"error, message"
//	@Security		BearerAuth
//	@Router			/v1/relationships/{id}/approve [post].
func (h *RelationshipHandler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		coachsdk.ErrUnauthorized.WriteError(w)
		return
	}

	relationshipID := r.PathValue("id")
	if relationshipID == "" {
		coachsdk.ErrIDMissing.WriteError(w)
		return
	}

	rel, err := h.RelationshipService.Approve(ctx, relationshipID, userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	view, err := h.RelationshipService.ViewFor(ctx, rel, userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, coachsdk.RelationshipResponse{
		Success:      true,
		Relationship: toRelationshipInfo(view),
	})
}

// HandleDeactivate godoc
//
//	@Summary		Deactivate Relationship Endpoint
//	@Description	End a pairing. Either member may do it; repeating it is a no-op. Deactivated relationships never reactivate.
//	@Tags			Relationships
//	@Produce		json
//	@Param			id	path		string					true	"Relationship ID"
//	@Success		200	{object}	coachsdk.DeclineInvitationResponse	"success, message"
//	@Failure		401	{object}	coachsdk.ErrorResponse	"error, message"
//	@Failure		403	{object}	coachsdk.ErrorResponse	"error, message"
//	@Failure		404	{object}	coachsdk.ErrorResponse	"error, message"
//	@Failure		500	{object}	coachsdk.ErrorResponse	"error, message"
//	@Security		BearerAuth
//	@Router			/v1/relationships/{id} [delete].
func (h *RelationshipHandler) HandleDeactivate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		coachsdk.ErrUnauthorized.WriteError(w)
		return
	}

	relationshipID := r.PathValue("id")
	if relationshipID == "" {
		coachsdk.ErrIDMissing.WriteError(w)
		return
	}

	if err := h.RelationshipService.Deactivate(ctx, relationshipID, userID); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Relationship deactivated",
	})
}

func toRelationshipInfo(view service.RelationshipView) coachsdk.RelationshipInfo {
	return coachsdk.RelationshipInfo{
		ID:          view.Relationship.ID,
		Status:      string(view.Relationship.Status),
		Kind:        string(view.Relationship.Kind),
		InitiatedBy: view.Relationship.InitiatedBy,
		OtherParty:  toUserInfo(view.OtherParty),
		CreatedAt:   view.Relationship.CreatedAt,
	}
}
