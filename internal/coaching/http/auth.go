package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ultracoach/ultracoach/internal/coaching/domain"
	"github.com/ultracoach/ultracoach/internal/coaching/service"
	"github.com/ultracoach/ultracoach/pkg/coachsdk"
	"github.com/ultracoach/ultracoach/pkg/httpx"
	"github.com/ultracoach/ultracoach/pkg/slogx"
)

type AuthHandler struct {
	UserService    *service.UserService
	SessionService *service.SessionService
}

// HandleRegister godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a coach or runner account and receive a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		coachsdk.RegisterRequest	true	"Registration request"
//	@Success		201		{object}	coachsdk.AuthResponse		"token, expiresAt, user"
//	@Failure		400		{object}	coachsdk.ErrorResponse		"error, message"
//	@Failure		409		{object}	coachsdk.ErrorResponse		"error, message"
//	@Failure		500		{object}	coachsdk.ErrorResponse		"error, message"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req coachsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		coachsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UserService.Register(ctx, req.Email, req.FullName, req.Password, req.Role)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	h.writeSession(ctx, w, user, http.StatusCreated)
}

// HandleLogin godoc
//
//	@Summary		Login Endpoint
//	@Description	Exchange email and password for a session token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		coachsdk.LoginRequest	true	"Login request"
//	@Success		200		{object}	coachsdk.AuthResponse	"token, expiresAt, user"
//	@Failure		401		{object}	coachsdk.ErrorResponse	"error, message"
//	@Failure		500		{object}	coachsdk.ErrorResponse	"error, message"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req coachsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		coachsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.UserService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(ctx, w, err)
		return
	}

	h.writeSession(ctx, w, user, http.StatusOK)
}

func (h *AuthHandler) writeSession(ctx context.Context, w http.ResponseWriter, user domain.User, status int) {
	token, expiresAt, err := h.SessionService.Mint(user)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to mint session token", "err", err)
		coachsdk.ErrInternal.WriteError(w)
		return
	}

	httpx.WriteJSON(w, status, coachsdk.AuthResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserInfo(user),
	})
}

func toUserInfo(u domain.User) coachsdk.UserInfo {
	return coachsdk.UserInfo{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
	}
}
