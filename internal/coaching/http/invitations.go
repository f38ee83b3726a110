package http

import (
	"encoding/json"
	"net/http"

	"github.com/ultracoach/ultracoach/internal/coaching/domain"
	"github.com/ultracoach/ultracoach/internal/coaching/service"
	"github.com/ultracoach/ultracoach/pkg/coachsdk"
	"github.com/ultracoach/ultracoach/pkg/httpx"
)

type InvitationHandler struct {
	InvitationService *service.InvitationService
}

// HandleCreate godoc
//
//	@Summary		Create Invitation Endpoint
//	@Description	Issue an invitation to an email address. The raw token is returned once in this response and otherwise travels only in the invitation email.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		coachsdk.CreateInvitationRequest	true	"Invitation request"
//	@Success		201		{object}	coachsdk.CreateInvitationResponse	"invitation, token, emailSent"
//	@Failure		400		{object}	coachsdk.ErrorResponse				"error, message"
//	@Failure		401		{object}	coachsdk.ErrorResponse				"error, message"
//	@Failure		500		{object}	coachsdk.ErrorResponse				"error, message"
//	@Security		BearerAuth
//	@Router			/v1/invitations [post].
func (h *InvitationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		coachsdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req coachsdk.CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		coachsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	inv, token, emailSent, err := h.InvitationService.Create(ctx, userID, req.Email, req.Role, req.Message)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, coachsdk.CreateInvitationResponse{
		Success:    true,
		Message:    "Invitation created",
		Invitation: toInvitationInfo(inv),
		Token:      token,
		EmailSent:  emailSent,
	})
}

// HandleList godoc
//
//	@Summary		List Invitations Endpoint
//	@Description	List invitations sent by the authenticated user, newest first.
//	@Tags			Invitations
//	@Produce		json
//	@Success		200	{object}	coachsdk.ListInvitationsResponse	"invitations"
//	@Failure		401	{object}	coachsdk.ErrorResponse				"error, message"
//	@Failure		500	{object}	coachsdk.ErrorResponse				"error, message"
//	@Security		BearerAuth
//	@Router			/v1/invitations [get].
func (h *InvitationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		coachsdk.ErrUnauthorized.WriteError(w)
		return
	}

	invitations, err := h.InvitationService.ListByInviter(ctx, userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	infos := make([]coachsdk.InvitationInfo, 0, len(invitations))
	for _, inv := range invitations {
		infos = append(infos, toInvitationInfo(inv))
	}

	httpx.WriteJSON(w, http.StatusOK, coachsdk.ListInvitationsResponse{
		Success:     true,
		Invitations: infos,
	})
}

// HandleResend godoc
//
//	@Summary		Resend Invitation Endpoint
//	@Description	Reissue a pending invitation with a fresh token and expiry. The previous link stops working. Only the inviter may resend, and only while the resend limit has not been reached.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string								true	"Invitation ID"
//	@Success		200	{object}	coachsdk.ResendInvitationResponse	"invitation, emailSent"
//	@Failure		400	{object}	coachsdk.ErrorResponse				"error, message"
//	@Failure		401	{object}	coachsdk.ErrorResponse				"error, message"
//	@Failure		403	{object}	coachsdk.ErrorResponse				"error, message"
//	@Failure		404	{object}	coachsdk.ErrorResponse				"error, message"
//	@Failure		429	{object}	coachsdk.ErrorResponse				"error, message"
//	@Failure		500	{object}	coachsdk.ErrorResponse				"error, message"
//	@Security		BearerAuth
//	@Router			/v1/invitations/{id}/resend [post].
func (h *InvitationHandler) HandleResend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		coachsdk.ErrUnauthorized.WriteError(w)
		return
	}

	invitationID := r.PathValue("id")
	if invitationID == "" {
		coachsdk.ErrIDMissing.WriteError(w)
		return
	}

	inv, emailSent, err := h.InvitationService.Resend(ctx, invitationID, userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, coachsdk.ResendInvitationResponse{
		Success: true,
		Message: "Invitation resent",
		Invitation: coachsdk.ResendInvitationInfo{
			ID:          inv.ID,
			ExpiresAt:   inv.ExpiresAt,
			ResendCount: inv.ResendCount,
		},
		EmailSent: emailSent,
	})
}

// HandleValidate godoc
//
//	@Summary		Validate Invitation Endpoint
//	@Description	Check an invitation token without consuming it. Expired and unknown tokens produce the same generic result.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string									true	"Raw invitation token"
//	@Success		200		{object}	coachsdk.ValidateInvitationResponse		"valid, invitation?, existingUser?"
//	@Failure		500		{object}	coachsdk.ErrorResponse					"error, message"
//	@Router			/v1/invitations/accept/{token} [get].
func (h *InvitationHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := h.InvitationService.Validate(ctx, r.PathValue("token"))
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	out := coachsdk.ValidateInvitationResponse{
		Valid:        res.Valid,
		Message:      res.Message,
		ExistingUser: res.ExistingUser,
	}
	if res.Invitation != nil {
		out.Invitation = &coachsdk.InvitationPreview{
			InviterName: res.Invitation.InviterName,
			Email:       res.Invitation.Email,
			Role:        string(res.Invitation.Role),
			Message:     res.Invitation.Message,
			ExpiresAt:   res.Invitation.ExpiresAt,
		}
	}

	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleAccept godoc
//
//	@Summary		Accept Invitation Endpoint
//	@Description	Consume an invitation token on behalf of the authenticated user, establishing the coaching relationship and returning a role-appropriate redirect target.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string								true	"Raw invitation token"
//	@Success		200		{object}	coachsdk.AcceptInvitationResponse	"redirectUrl"
//	@Failure		401		{object}	coachsdk.ErrorResponse				"error, message"
//	@Failure		403		{object}	coachsdk.ErrorResponse				"error, message"
//	@Failure		404		{object}	coachsdk.ErrorResponse				"error, message"
//	@Failure		500		{object}	coachsdk.ErrorResponse				"error, message"
//	@Security		BearerAuth
//	@Router			/v1/invitations/accept/{token} [post].
func (h *InvitationHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		coachsdk.ErrUnauthorized.WriteError(w)
		return
	}

	redirectURL, err := h.InvitationService.Accept(ctx, r.PathValue("token"), userID)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, coachsdk.AcceptInvitationResponse{
		Success:     true,
		RedirectURL: redirectURL,
		Message:     "Invitation accepted",
	})
}

// HandleDecline godoc
//
//	@Summary		Decline Invitation Endpoint
//	@Description	Decline an invitation by token. No account or session is required, and declining twice is harmless.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string								true	"Raw invitation token"
//	@Success		200		{object}	coachsdk.DeclineInvitationResponse	"success, message"
//	@Failure		400		{object}	coachsdk.ErrorResponse				"error, message"
//	@Failure		404		{object}	coachsdk.ErrorResponse				"error, message"
//	@Failure		500		{object}	coachsdk.ErrorResponse				"error, message"
//	@Router			/v1/invitations/decline/{token} [post].
func (h *InvitationHandler) HandleDecline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.InvitationService.Decline(ctx, r.PathValue("token")); err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, coachsdk.DeclineInvitationResponse{
		Success: true,
		Message: "Invitation declined",
	})
}

func toInvitationInfo(inv domain.Invitation) coachsdk.InvitationInfo {
	return coachsdk.InvitationInfo{
		ID:           inv.ID,
		Email:        inv.Email,
		Role:         string(inv.Role),
		Message:      inv.Message,
		Status:       string(inv.Status),
		ExpiresAt:    inv.ExpiresAt,
		ResendCount:  inv.ResendCount,
		LastResentAt: inv.LastResentAt,
		CreatedAt:    inv.CreatedAt,
	}
}
